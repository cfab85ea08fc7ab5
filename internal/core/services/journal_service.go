package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
)

var (
	ErrNoOpenYearbook     = fmt.Errorf("%w: no open yearbook to post into", apperrors.ErrValidation)
	ErrYearbookClosed     = fmt.Errorf("%w: yearbook is closed", apperrors.ErrValidation)
	ErrUnknownYearbook    = fmt.Errorf("%w: yearbook does not exist", apperrors.ErrValidation)
	ErrUnknownLineAccount = fmt.Errorf("%w: journal line references an unknown account", apperrors.ErrValidation)
	ErrAlreadyReversed    = fmt.Errorf("%w: journal is already reversed", apperrors.ErrConflict)
	ErrReverseReversal    = fmt.Errorf("%w: cannot reverse a journal that is already a reversal", apperrors.ErrConflict)
)

// ReversalSource is the source recorded on offsetting entries.
const ReversalSource = "Reversal"

// journalService validates and posts balanced journal entries.
type journalService struct {
	BaseService
	journalRepo  portsrepo.JournalRepositoryFacade
	chartRepo    portsrepo.ChartOfAccountReader
	yearbookRepo portsrepo.YearbookReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, chartRepo portsrepo.ChartOfAccountReader, yearbookRepo portsrepo.YearbookReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:  journalRepo,
		chartRepo:    chartRepo,
		yearbookRepo: yearbookRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = l.ToDomain(uuid.NewString())
	}

	return s.PostJournal(ctx, domain.JournalEntry{
		Date:       date,
		Source:     strings.TrimSpace(req.Source),
		Comment:    req.Comment,
		YearbookID: req.YearbookID,
		Lines:      lines,
	})
}

func (s *journalService) PostJournal(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	if err := accounting.ValidateJournalLines(entry.Lines); err != nil {
		s.LogDebug(ctx, "Journal rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	yb, err := s.resolveYearbook(ctx, entry.YearbookID)
	if err != nil {
		return nil, err
	}
	if yb.Status != domain.YearbookOpening {
		return nil, fmt.Errorf("%w (%s)", ErrYearbookClosed, yb.YearbookID)
	}

	if err := s.checkLineAccounts(ctx, entry.Lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry.JournalID = uuid.NewString()
	entry.YearbookID = yb.YearbookID
	entry.Status = domain.Posted
	entry.ReversalOf = ""
	entry.ReversedBy = ""
	entry.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
	for i := range entry.Lines {
		if entry.Lines[i].LineID == "" {
			entry.Lines[i].LineID = uuid.NewString()
		}
		if entry.Lines[i].Adjustment == nil {
			entry.Lines[i].Adjustment = domain.NoAdjustment{}
		}
	}

	if err := s.journalRepo.AddJournalEntry(ctx, entry); err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to store journal", slog.String("journal_id", entry.JournalID))
		}
		return nil, err
	}

	totals := accounting.ComputeTotals(entry.Lines)
	s.LogInfo(ctx, "Journal posted",
		slog.String("journal_id", entry.JournalID),
		slog.String("yearbook_id", entry.YearbookID),
		slog.Int("lines", len(entry.Lines)),
		slog.String("total", totals.TotalDebit.String()))
	return &entry, nil
}

func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal", slog.String("journal_id", journalID))
		}
		return nil, err
	}
	return journal, nil
}

func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	journals, nextToken, err := s.journalRepo.ListJournals(ctx, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journals")
		}
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return &dto.ListJournalsResponse{
		Journals:  dto.ToJournalResponses(journals),
		NextToken: nextToken,
	}, nil
}

// ReverseJournal posts the mirror image of a journal on the original date and
// yearbook, then flags the original as reversed.
func (s *journalService) ReverseJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if original.ReversalOf != "" {
		return nil, ErrReverseReversal
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w (reversed by %s)", ErrAlreadyReversed, original.ReversedBy)
	}

	now := time.Now().UTC()
	reversal := domain.JournalEntry{
		JournalID:   uuid.NewString(),
		Date:        original.Date,
		Source:      ReversalSource,
		Comment:     "Reversal of " + original.JournalID,
		YearbookID:  original.YearbookID,
		Status:      domain.Posted,
		ReversalOf:  original.JournalID,
		Lines:       accounting.OffsettingLines(original.Lines, uuid.NewString),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	if err := s.journalRepo.SaveReversal(ctx, original.JournalID, reversal); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save reversal", slog.String("journal_id", journalID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal reversed",
		slog.String("journal_id", original.JournalID),
		slog.String("reversal_id", reversal.JournalID))
	return &reversal, nil
}

// resolveYearbook treats an empty ID as the open yearbook.
func (s *journalService) resolveYearbook(ctx context.Context, yearbookID string) (*domain.Yearbook, error) {
	if yearbookID == "" {
		yb, err := s.yearbookRepo.FindOpenYearbook(ctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoOpenYearbook
		}
		return yb, err
	}
	yb, err := s.yearbookRepo.FindYearbookByID(ctx, yearbookID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w (%s)", ErrUnknownYearbook, yearbookID)
	}
	return yb, err
}

func (s *journalService) checkLineAccounts(ctx context.Context, lines []domain.JournalLine) error {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.AccountID)
	}
	found, err := s.chartRepo.FindChartAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to look up line accounts: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w (%s)", ErrUnknownLineAccount, id)
		}
	}
	return nil
}
