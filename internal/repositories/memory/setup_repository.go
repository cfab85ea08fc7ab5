package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
)

type numberingRepository struct {
	BaseRepository
}

func newNumberingRepository(store *Store) *numberingRepository {
	return &numberingRepository{BaseRepository{store: store}}
}

var _ portsrepo.NumberingRuleRepository = (*numberingRepository)(nil)

func (r *numberingRepository) ListNumberingRules(ctx context.Context) ([]domain.AccountNumberingRule, error) {
	var out []domain.AccountNumberingRule
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.AccountNumberingRule, len(s.rules))
		copy(out, s.rules)
		return nil
	})
	return out, err
}

func (r *numberingRepository) ReplaceNumberingRules(ctx context.Context, rules []domain.AccountNumberingRule) ([]domain.AccountNumberingRule, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: at least one rule is required", apperrors.ErrValidation)
	}
	digits := rules[0].Digits
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
		if rule.Digits != digits {
			return nil, fmt.Errorf("%w: every rule in a batch must use %d digits", apperrors.ErrValidation, digits)
		}
	}

	var out []domain.AccountNumberingRule
	err := r.write(ctx, func(s *Store) error {
		kept := make([]domain.AccountNumberingRule, 0, len(s.rules)+len(rules))
		for _, existing := range s.rules {
			if existing.Digits != digits {
				kept = append(kept, existing)
			}
		}
		for _, rule := range rules {
			s.ruleSeq++
			rule.RuleID = fmt.Sprintf("anr%d", s.ruleSeq)
			kept = append(kept, rule)
		}
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].Start < kept[j].Start })
		s.rules = kept

		out = make([]domain.AccountNumberingRule, len(kept))
		copy(out, kept)
		return nil
	})
	return out, err
}

type counterpartyRepository struct {
	BaseRepository
}

func newCounterpartyRepository(store *Store) *counterpartyRepository {
	return &counterpartyRepository{BaseRepository{store: store}}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*counterpartyRepository)(nil)

func (r *counterpartyRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var out domain.Customer
	err := r.read(ctx, func(s *Store) error {
		c, ok := s.customers[customerID]
		if !ok {
			return fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, customerID)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *counterpartyRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.Customer, 0, len(s.customerOrder))
		for _, id := range s.customerOrder {
			out = append(out, s.customers[id])
		}
		return nil
	})
	return out, err
}

func (r *counterpartyRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	var out domain.Vendor
	err := r.read(ctx, func(s *Store) error {
		v, ok := s.vendors[vendorID]
		if !ok {
			return fmt.Errorf("%w: vendor %s", apperrors.ErrNotFound, vendorID)
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *counterpartyRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	var out []domain.Vendor
	err := r.read(ctx, func(s *Store) error {
		out = make([]domain.Vendor, 0, len(s.vendorOrder))
		for _, id := range s.vendorOrder {
			out = append(out, s.vendors[id])
		}
		return nil
	})
	return out, err
}

func (r *counterpartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return r.write(ctx, func(s *Store) error {
		if _, exists := s.customers[customer.CustomerID]; exists {
			return fmt.Errorf("%w: customer %s", apperrors.ErrDuplicate, customer.CustomerID)
		}
		s.customers[customer.CustomerID] = customer
		s.customerOrder = append(s.customerOrder, customer.CustomerID)
		return nil
	})
}

func (r *counterpartyRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return r.write(ctx, func(s *Store) error {
		if _, exists := s.vendors[vendor.VendorID]; exists {
			return fmt.Errorf("%w: vendor %s", apperrors.ErrDuplicate, vendor.VendorID)
		}
		s.vendors[vendor.VendorID] = vendor
		s.vendorOrder = append(s.vendorOrder, vendor.VendorID)
		return nil
	})
}
