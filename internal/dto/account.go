package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a cash-side account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof='Checking' 'Savings' 'Credit Card'"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"` // may be negative for cards
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Kind           domain.AccountKind `json:"kind"`
	Balance        decimal.Decimal    `json:"balance"`
	BalanceDisplay string             `json:"balanceDisplay"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Kind:           acc.Kind,
		Balance:        acc.Balance,
		BalanceDisplay: utils.FormatIDR(acc.Balance),
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// CreateChartOfAccountRequest defines a new ledger account.
type CreateChartOfAccountRequest struct {
	Code           int                 `json:"code" binding:"required,gt=0"`
	Name           string              `json:"name" binding:"required"`
	AccountType    domain.AccountType  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Level          domain.AccountLevel `json:"level" binding:"required,oneof='HEADER' 'GROUP ACCOUNT' 'ACCOUNT' 'SUB ACCOUNT'"`
	Classification string              `json:"classification"`
}

// ChartOfAccountResponse mirrors domain.ChartOfAccount.
type ChartOfAccountResponse struct {
	AccountID      string              `json:"accountID"`
	Code           int                 `json:"code"`
	Name           string              `json:"name"`
	AccountType    domain.AccountType  `json:"accountType"`
	Level          domain.AccountLevel `json:"level"`
	Classification string              `json:"classification"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ToChartOfAccountResponse converts a domain.ChartOfAccount to its DTO.
func ToChartOfAccountResponse(c *domain.ChartOfAccount) ChartOfAccountResponse {
	return ChartOfAccountResponse{
		AccountID:      c.AccountID,
		Code:           c.Code,
		Name:           c.Name,
		AccountType:    c.AccountType,
		Level:          c.Level,
		Classification: c.Classification,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListChartOfAccountResponse converts a slice of ledger accounts.
func ToListChartOfAccountResponse(accounts []domain.ChartOfAccount) []ChartOfAccountResponse {
	res := make([]ChartOfAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToChartOfAccountResponse(&accounts[i])
	}
	return res
}
