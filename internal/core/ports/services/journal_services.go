package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal by its ID.
	GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)

	// ListJournals retrieves a page of journals, newest first.
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal validates and posts a journal submitted in one request.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error)

	// PostJournal validates and posts entry. ID, status and audit fields are assigned here.
	PostJournal(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)

	// ReverseJournal posts an offsetting entry for an existing journal.
	ReverseJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}

// JournalDraftSvc keeps journal drafts in memory while they are edited.
// Every returned draft is a copy; edits go through the service.
type JournalDraftSvc interface {
	CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (*domain.JournalDraft, error)
	GetDraft(ctx context.Context, draftID string) (*domain.JournalDraft, error)
	UpdateDraftHeader(ctx context.Context, draftID string, req dto.UpdateDraftHeaderRequest) (*domain.JournalDraft, error)
	AddLine(ctx context.Context, draftID string) (*domain.JournalDraft, error)
	UpdateLine(ctx context.Context, draftID, lineID string, req dto.UpdateDraftLineRequest) (*domain.JournalDraft, error)

	// RemoveLine reports false when the draft is already at its minimum size.
	RemoveLine(ctx context.Context, draftID, lineID string) (bool, *domain.JournalDraft, error)

	// SubmitDraft posts the draft as a journal and forgets it. On failure the
	// draft keeps its lines.
	SubmitDraft(ctx context.Context, draftID string) (*domain.JournalEntry, error)

	DiscardDraft(ctx context.Context, draftID string) error

	// PurgeExpired drops drafts untouched since before now minus the TTL.
	PurgeExpired(ctx context.Context, now time.Time) int
}
