package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

type yearbookService struct {
	BaseService
	yearbookRepo portsrepo.YearbookRepositoryFacade
}

// NewYearbookService creates a new yearbook service.
func NewYearbookService(repo portsrepo.YearbookRepositoryFacade) portssvc.YearbookSvc {
	return &yearbookService{yearbookRepo: repo}
}

var _ portssvc.YearbookSvc = (*yearbookService)(nil)

func (s *yearbookService) CreateYearbook(ctx context.Context, req dto.CreateYearbookRequest) (*domain.Yearbook, error) {
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	yb, err := s.yearbookRepo.AddYearbook(ctx, domain.Yearbook{
		Year:        req.Year,
		StartDate:   start,
		EndDate:     end,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to add yearbook", slog.Int("year", req.Year))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Yearbook opened", slog.String("yearbook_id", yb.YearbookID), slog.Int("year", yb.Year))
	return yb, nil
}

func (s *yearbookService) ListYearbooks(ctx context.Context) ([]domain.Yearbook, error) {
	ybs, err := s.yearbookRepo.ListYearbooks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list yearbooks")
		return nil, fmt.Errorf("failed to list yearbooks: %w", err)
	}
	if ybs == nil {
		return []domain.Yearbook{}, nil
	}
	return ybs, nil
}

func (s *yearbookService) GetOpenYearbook(ctx context.Context) (*domain.Yearbook, error) {
	return s.yearbookRepo.FindOpenYearbook(ctx)
}
