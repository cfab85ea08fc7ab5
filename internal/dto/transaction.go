package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record income or an expense.
// An empty Category asks the categorizer for a suggestion.
type CreateTransactionRequest struct {
	Description string           `json:"description" binding:"required"`
	Amount      decimal.Decimal  `json:"amount" binding:"required,gt=0"`
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Direction   domain.Direction `json:"direction" binding:"required,oneof=income expense"`
	Category    string           `json:"category"`
	AccountID   string           `json:"accountID" binding:"required"`
	CustomerID  string           `json:"customerID" binding:"omitempty,excluded_with=VendorID"`
	VendorID    string           `json:"vendorID" binding:"omitempty,excluded_with=CustomerID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string           `json:"transactionID"`
	Date          string           `json:"date"`
	Description   string           `json:"description"`
	Amount        decimal.Decimal  `json:"amount"`
	Direction     domain.Direction `json:"direction"`
	Category      string           `json:"category"`
	AccountID     string           `json:"accountID"`
	CustomerID    string           `json:"customerID,omitempty"`
	VendorID      string           `json:"vendorID,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// CreateTransactionResponse returns the stored transaction and the account it moved.
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Account     AccountResponse     `json:"account"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// CategorizeRequest asks for a category suggestion.
type CategorizeRequest struct {
	Description string `json:"description" binding:"required"`
}

// CategorizeResponse carries the suggestion, always one of the known categories.
type CategorizeResponse struct {
	Category string `json:"category"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date.Format(domain.DateLayout),
		Description:   txn.Description,
		Amount:        txn.Amount,
		Direction:     txn.Direction,
		Category:      txn.Category,
		AccountID:     txn.AccountID,
		CustomerID:    txn.CustomerID,
		VendorID:      txn.VendorID,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
