package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

// Categorizer suggests a category for a transaction description.
// Implementations return one of domain.TransactionCategories.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (string, error)
}

// TransactionSvc records and lists single-sided cash movements.
type TransactionSvc interface {
	// CreateTransaction stores the transaction and moves its account balance.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.Account, error)

	// ListTransactions returns a page of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// SuggestCategory never fails; anything unusable becomes domain.OtherCategory.
	SuggestCategory(ctx context.Context, description string) string
}
