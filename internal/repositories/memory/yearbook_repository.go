package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
)

type yearbookRepository struct {
	BaseRepository
}

func newYearbookRepository(store *Store) *yearbookRepository {
	return &yearbookRepository{BaseRepository{store: store}}
}

var _ portsrepo.YearbookRepositoryFacade = (*yearbookRepository)(nil)

func (s *Store) hasYearbook(id string) bool {
	for _, yb := range s.yearbooks {
		if yb.YearbookID == id {
			return true
		}
	}
	return false
}

func (r *yearbookRepository) FindYearbookByID(ctx context.Context, yearbookID string) (*domain.Yearbook, error) {
	var out *domain.Yearbook
	err := r.read(ctx, func(s *Store) error {
		for _, yb := range s.yearbooks {
			if yb.YearbookID == yearbookID {
				found := yb
				out = &found
				return nil
			}
		}
		return fmt.Errorf("%w: yearbook %s", apperrors.ErrNotFound, yearbookID)
	})
	return out, err
}

func (r *yearbookRepository) ListYearbooks(ctx context.Context) ([]domain.Yearbook, error) {
	var out []domain.Yearbook
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.Yearbook, len(s.yearbooks))
		copy(out, s.yearbooks)
		return nil
	})
	return out, err
}

func (r *yearbookRepository) FindOpenYearbook(ctx context.Context) (*domain.Yearbook, error) {
	var out *domain.Yearbook
	err := r.read(ctx, func(s *Store) error {
		for _, yb := range s.yearbooks {
			if yb.Status == domain.YearbookOpening {
				found := yb
				out = &found
				return nil
			}
		}
		return fmt.Errorf("%w: no open yearbook", apperrors.ErrNotFound)
	})
	return out, err
}

// AddYearbook closes the open yearbook and appends yb as the only Opening one.
func (r *yearbookRepository) AddYearbook(ctx context.Context, yb domain.Yearbook) (*domain.Yearbook, error) {
	var out domain.Yearbook
	err := r.write(ctx, func(s *Store) error {
		// One yearbook per fiscal year. The console itself never checked this.
		for _, existing := range s.yearbooks {
			if existing.Year == yb.Year {
				return fmt.Errorf("%w: yearbook for %d", apperrors.ErrDuplicate, yb.Year)
			}
		}
		now := s.now()
		for i := range s.yearbooks {
			if s.yearbooks[i].Status == domain.YearbookOpening {
				s.yearbooks[i].Status = domain.YearbookClosing
				s.yearbooks[i].LastUpdatedAt = now
			}
		}
		out = yb
		out.YearbookID = fmt.Sprintf("yb%d", len(s.yearbooks)+1)
		out.Status = domain.YearbookOpening
		if out.CreatedAt.IsZero() {
			out.CreatedAt = now
		}
		out.LastUpdatedAt = now
		s.yearbooks = append(s.yearbooks, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
