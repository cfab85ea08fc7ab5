package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns every cash-side account.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with its opening balance.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
}

// ChartOfAccountSvc manages the ledger accounts journals post against.
type ChartOfAccountSvc interface {
	// CreateChartAccount adds a ledger account. The code must be unique and fall
	// inside a numbering rule when rules exist for its width.
	CreateChartAccount(ctx context.Context, req dto.CreateChartOfAccountRequest) (*domain.ChartOfAccount, error)

	ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	ChartOfAccountSvc
}
