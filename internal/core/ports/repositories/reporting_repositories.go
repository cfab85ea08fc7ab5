package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetAccountActivity sums journal lines per ledger account for one yearbook.
	// An empty yearbookID covers every yearbook. Accounts without lines are omitted.
	GetAccountActivity(ctx context.Context, yearbookID string) ([]domain.AccountActivity, error)
}
