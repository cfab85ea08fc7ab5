package services

import (
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// A nil categorizer falls back to the static one.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, categorizer portssvc.Categorizer) *portssvc.ServiceContainer {
	if categorizer == nil {
		categorizer = NewStaticCategorizer()
	}

	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.ChartRepo,
		WithNumberingRules(repos.NumberingRepo),
	)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		WithCategorizer(categorizer, cfg.CategorizeTimeout),
	)
	container.Yearbook = NewYearbookService(repos.YearbookRepo)
	container.Setup = NewSetupService(repos.NumberingRepo, repos.CounterpartyRepo)

	// Drafts submit through the journal service so both paths share one set of checks
	container.Journal = NewJournalService(repos.JournalRepo, repos.ChartRepo, repos.YearbookRepo)
	container.Draft = NewDraftService(container.Journal, repos.YearbookRepo, WithDraftTTL(cfg.DraftTTL))

	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.ChartRepo,
		repos.YearbookRepo,
		WithDashboardSources(repos.AccountRepo, repos.TransactionRepo, repos.JournalRepo),
	)

	return container
}
