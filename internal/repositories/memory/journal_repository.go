package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/SscSPs/bookkeeping_console/internal/utils/pagination"
)

const journalTokenKind = "journal"

type journalRepository struct {
	BaseRepository
}

func newJournalRepository(store *Store) *journalRepository {
	return &journalRepository{BaseRepository{store: store}}
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

func (r *journalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	var out domain.JournalEntry
	err := r.read(ctx, func(s *Store) error {
		j, ok := s.journalIndex[journalID]
		if !ok {
			return fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, journalID)
		}
		out = cloneJournal(j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *journalRepository) ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	limit = pageLimit(limit)
	var before int64 = -1
	if nextToken != nil && *nextToken != "" {
		seq, err := pagination.DecodeToken(*nextToken, journalTokenKind)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before = seq
	}

	var (
		out  []domain.JournalEntry
		next *string
	)
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.JournalEntry, 0, limit)
		for i := len(s.journals) - 1; i >= 0; i-- {
			entry := s.journals[i]
			if before >= 0 && entry.seq >= before {
				continue
			}
			if len(out) == limit {
				token := pagination.EncodeToken(journalTokenKind, s.journals[i+1].seq)
				next = &token
				break
			}
			out = append(out, cloneJournal(entry.item))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, next, nil
}

func (r *journalRepository) CountJournals(ctx context.Context) (int, error) {
	var n int
	err := r.read(ctx, func(s *Store) error {
		n = len(s.journals)
		return nil
	})
	return n, err
}

// checkEntry repeats the posting rules so nothing unbalanced can be stored,
// whichever path it came from. Caller holds the lock.
func (s *Store) checkEntry(entry domain.JournalEntry) error {
	if entry.JournalID == "" {
		return fmt.Errorf("%w: journal ID is required", apperrors.ErrValidation)
	}
	if _, exists := s.journalIndex[entry.JournalID]; exists {
		return fmt.Errorf("%w: journal %s", apperrors.ErrDuplicate, entry.JournalID)
	}
	if err := accounting.ValidateJournalLines(entry.Lines); err != nil {
		return err
	}
	if !s.hasYearbook(entry.YearbookID) {
		return fmt.Errorf("%w: yearbook %s", apperrors.ErrNotFound, entry.YearbookID)
	}
	for _, l := range entry.Lines {
		if _, ok := s.chart[l.AccountID]; !ok {
			return fmt.Errorf("%w: ledger account %s", apperrors.ErrNotFound, l.AccountID)
		}
	}
	return nil
}

func (s *Store) appendJournal(entry domain.JournalEntry) {
	stored := cloneJournal(&entry)
	s.journals = append(s.journals, sequenced[*domain.JournalEntry]{seq: s.nextSeq(), item: &stored})
	s.journalIndex[stored.JournalID] = &stored
}

// AddJournalEntry commits the whole entry or nothing.
func (r *journalRepository) AddJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.write(ctx, func(s *Store) error {
		if err := s.checkEntry(entry); err != nil {
			return err
		}
		s.appendJournal(entry)
		return nil
	})
}

// SaveReversal stores the offsetting entry and flags the original in one step.
func (r *journalRepository) SaveReversal(ctx context.Context, originalID string, reversal domain.JournalEntry) error {
	return r.write(ctx, func(s *Store) error {
		original, ok := s.journalIndex[originalID]
		if !ok {
			return fmt.Errorf("%w: journal %s", apperrors.ErrNotFound, originalID)
		}
		if original.Status == domain.Reversed {
			return fmt.Errorf("%w: journal %s is already reversed", apperrors.ErrConflict, originalID)
		}
		if original.ReversalOf != "" {
			return fmt.Errorf("%w: journal %s is itself a reversal", apperrors.ErrConflict, originalID)
		}
		if reversal.ReversalOf != originalID {
			return fmt.Errorf("%w: reversal does not point at journal %s", apperrors.ErrValidation, originalID)
		}
		if err := s.checkEntry(reversal); err != nil {
			return err
		}

		s.appendJournal(reversal)
		original.Status = domain.Reversed
		original.ReversedBy = reversal.JournalID
		original.LastUpdatedAt = s.now()
		return nil
	})
}
