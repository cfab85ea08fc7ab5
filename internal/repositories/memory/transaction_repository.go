package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/SscSPs/bookkeeping_console/internal/utils/pagination"
	"github.com/google/uuid"
)

const transactionTokenKind = "txn"

type transactionRepository struct {
	BaseRepository
}

func newTransactionRepository(store *Store) *transactionRepository {
	return &transactionRepository{BaseRepository{store: store}}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

// AddTransaction appends txn and projects it onto its account exactly once.
func (r *transactionRepository) AddTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, *domain.Account, error) {
	var (
		stored  domain.Transaction
		account domain.Account
	)
	err := r.write(ctx, func(s *Store) error {
		if err := txn.Validate(); err != nil {
			return err
		}
		acc, ok := s.accounts[txn.AccountID]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, txn.AccountID)
		}
		if txn.CustomerID != "" {
			if _, ok := s.customers[txn.CustomerID]; !ok {
				return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, txn.CustomerID)
			}
		}
		if txn.VendorID != "" {
			if _, ok := s.vendors[txn.VendorID]; !ok {
				return fmt.Errorf("%w: vendor %s", apperrors.ErrNotFound, txn.VendorID)
			}
		}

		newBalance, err := accounting.ProjectBalance(acc.Balance, txn.Direction, txn.Amount)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		stored = txn
		if stored.TransactionID == "" {
			stored.TransactionID = uuid.NewString()
		}
		now := s.now()
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		stored.LastUpdatedAt = now

		s.transactions = append(s.transactions, sequenced[domain.Transaction]{seq: s.nextSeq(), item: stored})
		acc.Balance = newBalance
		acc.LastUpdatedAt = now
		account = *acc
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &stored, &account, nil
}

// ListTransactions returns transactions newest first.
func (r *transactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pageLimit(limit)
	var before int64 = -1
	if nextToken != nil && *nextToken != "" {
		seq, err := pagination.DecodeToken(*nextToken, transactionTokenKind)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before = seq
	}

	var (
		out  []domain.Transaction
		next *string
	)
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.Transaction, 0, limit)
		for i := len(s.transactions) - 1; i >= 0; i-- {
			entry := s.transactions[i]
			if before >= 0 && entry.seq >= before {
				continue
			}
			if len(out) == limit {
				token := pagination.EncodeToken(transactionTokenKind, s.transactions[i+1].seq)
				next = &token
				break
			}
			out = append(out, entry.item)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return out, next, nil
}
