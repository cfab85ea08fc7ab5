package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

// draftService keeps journal drafts in memory until they are submitted or discarded.
type draftService struct {
	BaseService
	mu           sync.Mutex
	drafts       map[string]*domain.JournalDraft
	journals     portssvc.JournalWriterSvc
	yearbookRepo portsrepo.YearbookReader
	ttl          time.Duration
}

// DraftServiceOption is a functional option for configuring the draft service
type DraftServiceOption func(*draftService)

// WithDraftTTL sets how long an untouched draft survives PurgeExpired. Zero keeps drafts forever.
func WithDraftTTL(ttl time.Duration) DraftServiceOption {
	return func(s *draftService) {
		s.ttl = ttl
	}
}

// NewDraftService creates a draft service that submits through journals.
func NewDraftService(journals portssvc.JournalWriterSvc, yearbookRepo portsrepo.YearbookReader, options ...DraftServiceOption) portssvc.JournalDraftSvc {
	svc := &draftService{
		drafts:       make(map[string]*domain.JournalDraft),
		journals:     journals,
		yearbookRepo: yearbookRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.JournalDraftSvc = (*draftService)(nil)

// copyDraft returns a detached copy; callers never see the live lines slice.
func copyDraft(d *domain.JournalDraft) *domain.JournalDraft {
	cp := *d
	cp.Lines = d.SnapshotLines()
	return &cp
}

func touch(d *domain.JournalDraft) {
	d.LastUpdatedAt = time.Now().UTC()
}

// edit runs fn on the live draft under the service lock.
func (s *draftService) edit(draftID string, fn func(d *domain.JournalDraft) error) (*domain.JournalDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	touch(d)
	return copyDraft(d), nil
}

func (s *draftService) CreateDraft(ctx context.Context, req dto.CreateDraftRequest) (*domain.JournalDraft, error) {
	yearbookID := strings.TrimSpace(req.YearbookID)
	var open *domain.Yearbook
	if yearbookID == "" {
		yb, err := s.yearbookRepo.FindOpenYearbook(ctx)
		switch {
		case err == nil:
			open = yb
			yearbookID = yb.YearbookID
		case !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to look up open yearbook for draft")
			return nil, err
		}
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	} else {
		date = today()
		// default into the open yearbook rather than a date it cannot accept
		if open != nil && !open.Covers(date) {
			date = open.StartDate
		}
	}

	d := domain.NewJournalDraft(uuid.NewString(), date, yearbookID, uuid.NewString)
	d.Source = req.Source
	d.Comment = req.Comment
	now := time.Now().UTC()
	d.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	s.mu.Lock()
	s.drafts[d.DraftID] = d
	out := copyDraft(d)
	s.mu.Unlock()

	s.LogDebug(ctx, "Journal draft opened", slog.String("draft_id", d.DraftID), slog.String("yearbook_id", yearbookID))
	return out, nil
}

func (s *draftService) GetDraft(ctx context.Context, draftID string) (*domain.JournalDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[draftID]
	if !ok {
		return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	return copyDraft(d), nil
}

func (s *draftService) UpdateDraftHeader(ctx context.Context, draftID string, req dto.UpdateDraftHeaderRequest) (*domain.JournalDraft, error) {
	var date *time.Time
	if req.Date != nil {
		parsed, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		date = &parsed
	}
	return s.edit(draftID, func(d *domain.JournalDraft) error {
		if date != nil {
			d.Date = *date
		}
		if req.Source != nil {
			d.Source = *req.Source
		}
		if req.Comment != nil {
			d.Comment = *req.Comment
		}
		if req.YearbookID != nil {
			d.YearbookID = strings.TrimSpace(*req.YearbookID)
		}
		return nil
	})
}

func (s *draftService) AddLine(ctx context.Context, draftID string) (*domain.JournalDraft, error) {
	return s.edit(draftID, func(d *domain.JournalDraft) error {
		d.AddLine()
		return nil
	})
}

func (s *draftService) UpdateLine(ctx context.Context, draftID, lineID string, req dto.UpdateDraftLineRequest) (*domain.JournalDraft, error) {
	return s.edit(draftID, func(d *domain.JournalDraft) error {
		return d.SetField(lineID, req.Field, req.Value)
	})
}

func (s *draftService) RemoveLine(ctx context.Context, draftID, lineID string) (bool, *domain.JournalDraft, error) {
	var removed bool
	d, err := s.edit(draftID, func(d *domain.JournalDraft) error {
		var err error
		removed, err = d.RemoveLine(lineID)
		return err
	})
	if err != nil {
		return false, nil, err
	}
	return removed, d, nil
}

// SubmitDraft holds the draft lock across posting so a draft is never posted twice.
func (s *draftService) SubmitDraft(ctx context.Context, draftID string) (*domain.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}

	entry, err := s.journals.PostJournal(ctx, domain.JournalEntry{
		Date:       d.Date,
		Source:     d.Source,
		Comment:    d.Comment,
		YearbookID: d.YearbookID,
		Lines:      d.SnapshotLines(),
	})
	if err != nil {
		s.LogDebug(ctx, "Draft submission rejected", slog.String("draft_id", draftID), slog.String("reason", err.Error()))
		return nil, err
	}

	delete(s.drafts, draftID)
	s.LogInfo(ctx, "Draft submitted", slog.String("draft_id", draftID), slog.String("journal_id", entry.JournalID))
	return entry, nil
}

func (s *draftService) DiscardDraft(ctx context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[draftID]; !ok {
		return fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	delete(s.drafts, draftID)
	return nil
}

func (s *draftService) PurgeExpired(ctx context.Context, now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for id, d := range s.drafts {
		if d.LastUpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
			purged++
		}
	}
	if purged > 0 {
		s.LogInfo(ctx, "Expired drafts purged", slog.Int("count", purged))
	}
	return purged
}
