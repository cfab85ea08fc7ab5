package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// ListTransactions returns transactions newest first using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for transactions
type TransactionWriter interface {
	// AddTransaction appends txn and applies it to its account balance in one step.
	// A missing account or counterparty leaves the store untouched. The stored
	// transaction and the updated account are returned.
	AddTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, *domain.Account, error)
}

// TransactionRepositoryFacade combines the transaction interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
