package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// AccountReader defines read operations for cash-side accounts
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns every account in creation order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for cash-side accounts.
// Balances are never written directly; see TransactionWriter.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// ChartOfAccountReader defines read operations for ledger accounts
type ChartOfAccountReader interface {
	FindChartAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error)

	// FindChartAccountsByIDs returns the accounts found; missing IDs are simply absent from the map.
	FindChartAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error)

	// ListChartOfAccounts returns the chart ordered by code.
	ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)
}

// ChartOfAccountWriter defines write operations for ledger accounts
type ChartOfAccountWriter interface {
	// SaveChartAccount persists a new ledger account. Codes are unique.
	SaveChartAccount(ctx context.Context, account domain.ChartOfAccount) error
}

// ChartOfAccountRepositoryFacade combines the ledger account interfaces
type ChartOfAccountRepositoryFacade interface {
	ChartOfAccountReader
	ChartOfAccountWriter
}
