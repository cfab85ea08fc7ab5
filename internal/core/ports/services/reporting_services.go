package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance lists every ledger account with activity in the yearbook.
	// An empty yearbookID selects the open yearbook.
	TrialBalance(ctx context.Context, yearbookID string) (*domain.TrialBalance, error)

	// IncomeStatement nets revenue against expenses for the yearbook.
	IncomeStatement(ctx context.Context, yearbookID string) (*domain.IncomeStatement, error)

	// Dashboard gathers the landing-page summary.
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
}
