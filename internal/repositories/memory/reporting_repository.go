package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(store *Store) *reportingRepository {
	return &reportingRepository{BaseRepository{store: store}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountActivity sums every stored journal line. Reversed journals stay in
// the sum because their offsetting entries cancel them.
func (r *reportingRepository) GetAccountActivity(ctx context.Context, yearbookID string) ([]domain.AccountActivity, error) {
	byAccount := make(map[string]*domain.AccountActivity)
	err := r.read(ctx, func(s *Store) error {
		for _, entry := range s.journals {
			j := entry.item
			if yearbookID != "" && j.YearbookID != yearbookID {
				continue
			}
			for _, l := range j.Lines {
				act, ok := byAccount[l.AccountID]
				if !ok {
					act = &domain.AccountActivity{AccountID: l.AccountID, Debit: decimal.Zero, Credit: decimal.Zero}
					byAccount[l.AccountID] = act
				}
				act.Debit = act.Debit.Add(l.Debit)
				act.Credit = act.Credit.Add(l.Credit)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.AccountActivity, 0, len(byAccount))
	for _, act := range byAccount {
		out = append(out, *act)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}
