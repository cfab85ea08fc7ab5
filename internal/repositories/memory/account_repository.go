package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
)

type accountRepository struct {
	BaseRepository
}

func newAccountRepository(store *Store) *accountRepository {
	return &accountRepository{BaseRepository{store: store}}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var out domain.Account
	err := r.read(ctx, func(s *Store) error {
		acc, ok := s.accounts[accountID]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		out = *acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.Account, 0, len(s.accountOrder))
		for _, id := range s.accountOrder {
			out = append(out, *s.accounts[id])
		}
		return nil
	})
	return out, err
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return r.write(ctx, func(s *Store) error {
		if _, exists := s.accounts[account.AccountID]; exists {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.AccountID)
		}
		acc := account
		s.accounts[acc.AccountID] = &acc
		s.accountOrder = append(s.accountOrder, acc.AccountID)
		return nil
	})
}

type chartRepository struct {
	BaseRepository
}

func newChartRepository(store *Store) *chartRepository {
	return &chartRepository{BaseRepository{store: store}}
}

var _ portsrepo.ChartOfAccountRepositoryFacade = (*chartRepository)(nil)

func (r *chartRepository) FindChartAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	var out domain.ChartOfAccount
	err := r.read(ctx, func(s *Store) error {
		acc, ok := s.chart[accountID]
		if !ok {
			return fmt.Errorf("%w: ledger account %s", apperrors.ErrNotFound, accountID)
		}
		out = acc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *chartRepository) FindChartAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	out := make(map[string]domain.ChartOfAccount, len(accountIDs))
	err := r.read(ctx, func(s *Store) error {
		for _, id := range accountIDs {
			if acc, ok := s.chart[id]; ok {
				out[id] = acc
			}
		}
		return nil
	})
	return out, err
}

func (r *chartRepository) ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	var out []domain.ChartOfAccount
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.ChartOfAccount, 0, len(s.chart))
		for _, acc := range s.chart {
			out = append(out, acc)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, err
}

func (r *chartRepository) SaveChartAccount(ctx context.Context, account domain.ChartOfAccount) error {
	return r.write(ctx, func(s *Store) error {
		if _, exists := s.chart[account.AccountID]; exists {
			return fmt.Errorf("%w: ledger account %s", apperrors.ErrDuplicate, account.AccountID)
		}
		for _, existing := range s.chart {
			if existing.Code == account.Code {
				return fmt.Errorf("%w: account code %d is already used by %s", apperrors.ErrDuplicate, account.Code, existing.Name)
			}
		}
		s.chart[account.AccountID] = account
		return nil
	})
}
