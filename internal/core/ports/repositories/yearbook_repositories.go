package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// YearbookReader defines read operations for yearbooks
type YearbookReader interface {
	FindYearbookByID(ctx context.Context, yearbookID string) (*domain.Yearbook, error)
	ListYearbooks(ctx context.Context) ([]domain.Yearbook, error)

	// FindOpenYearbook returns the Opening yearbook or ErrNotFound.
	FindOpenYearbook(ctx context.Context) (*domain.Yearbook, error)
}

// YearbookWriter defines write operations for yearbooks
type YearbookWriter interface {
	// AddYearbook closes every Opening yearbook and stores yb as the new Opening one.
	// The store assigns the ID.
	AddYearbook(ctx context.Context, yb domain.Yearbook) (*domain.Yearbook, error)
}

// YearbookRepositoryFacade combines the yearbook interfaces
type YearbookRepositoryFacade interface {
	YearbookReader
	YearbookWriter
}
