package memory

import (
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
)

// NewRepositoryProvider exposes one Store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newAccountRepository(store),
		ChartRepo:        newChartRepository(store),
		TransactionRepo:  newTransactionRepository(store),
		JournalRepo:      newJournalRepository(store),
		YearbookRepo:     newYearbookRepository(store),
		NumberingRepo:    newNumberingRepository(store),
		CounterpartyRepo: newCounterpartyRepository(store),
		ReportingRepo:    newReportingRepository(store),
	}
}
