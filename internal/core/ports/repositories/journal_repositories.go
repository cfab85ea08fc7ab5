package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ListJournals retrieves journals newest first using token-based pagination.
	ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// CountJournals returns the number of stored journals, reversals included.
	CountJournals(ctx context.Context) (int, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// AddJournalEntry validates and stores a journal. Nothing is stored on failure.
	AddJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// SaveReversal stores the offsetting entry and marks the original REVERSED atomically.
	SaveReversal(ctx context.Context, originalID string, reversal domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
