package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

// YearbookSvc manages fiscal years.
type YearbookSvc interface {
	// CreateYearbook opens a new yearbook and closes the previously open one.
	CreateYearbook(ctx context.Context, req dto.CreateYearbookRequest) (*domain.Yearbook, error)
	ListYearbooks(ctx context.Context) ([]domain.Yearbook, error)
	GetOpenYearbook(ctx context.Context) (*domain.Yearbook, error)
}
