package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind is the kind of a cash/bank account shown on the dashboard.
type AccountKind string

const (
	Checking   AccountKind = "Checking"
	Savings    AccountKind = "Savings"
	CreditCard AccountKind = "Credit Card"
)

// Account is a cash-side account whose balance is moved only by transactions.
type Account struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Kind      AccountKind     `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	AuditFields
}

// AccountType defines the fundamental accounting type of a ledger account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNormal reports whether the account type grows on the debit side.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// AccountLevel places a ledger account in the chart hierarchy.
type AccountLevel string

const (
	LevelHeader       AccountLevel = "HEADER"
	LevelGroupAccount AccountLevel = "GROUP ACCOUNT"
	LevelAccount      AccountLevel = "ACCOUNT"
	LevelSubAccount   AccountLevel = "SUB ACCOUNT"
)

// ChartOfAccount is a ledger account that journal lines post against.
type ChartOfAccount struct {
	AccountID      string       `json:"accountID"`
	Code           int          `json:"code"`
	Name           string       `json:"name"`
	AccountType    AccountType  `json:"accountType"`
	Level          AccountLevel `json:"level"`
	Classification string       `json:"classification"`
	AuditFields
}
