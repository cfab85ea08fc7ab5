package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// Store is the single in-memory source of truth for the ledger. Every repository
// in this package shares one Store, and every mutation holds its lock, so each
// write is applied completely or not at all.
type Store struct {
	mu sync.RWMutex

	accounts     map[string]*domain.Account
	accountOrder []string

	chart map[string]domain.ChartOfAccount

	transactions []sequenced[domain.Transaction]
	journals     []sequenced[*domain.JournalEntry]
	journalIndex map[string]*domain.JournalEntry
	seq          int64

	yearbooks []domain.Yearbook
	rules     []domain.AccountNumberingRule
	ruleSeq   int

	customers     map[string]domain.Customer
	customerOrder []string
	vendors       map[string]domain.Vendor
	vendorOrder   []string

	now func() time.Time
}

type sequenced[T any] struct {
	seq  int64
	item T
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		accounts:     make(map[string]*domain.Account),
		chart:        make(map[string]domain.ChartOfAccount),
		journalIndex: make(map[string]*domain.JournalEntry),
		customers:    make(map[string]domain.Customer),
		vendors:      make(map[string]domain.Vendor),
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	store *Store
}

// read runs fn under the shared lock after checking ctx.
func (r *BaseRepository) read(ctx context.Context, fn func(s *Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return fn(r.store)
}

// write runs fn under the exclusive lock after checking ctx. fn must validate
// everything before it mutates.
func (r *BaseRepository) write(ctx context.Context, fn func(s *Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store)
}

func cloneJournal(j *domain.JournalEntry) domain.JournalEntry {
	out := *j
	out.Lines = make([]domain.JournalLine, len(j.Lines))
	copy(out.Lines, j.Lines)
	return out
}

func pageLimit(limit int) int {
	if limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
