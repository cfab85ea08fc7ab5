package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
)

// NumberingRuleRepository stores account numbering rules
type NumberingRuleRepository interface {
	// ListNumberingRules returns the rules ordered by range start.
	ListNumberingRules(ctx context.Context) ([]domain.AccountNumberingRule, error)

	// ReplaceNumberingRules drops every rule with the batch's digit count and stores
	// the batch. All rules in the batch share one digit count. Returns the full rule set.
	ReplaceNumberingRules(ctx context.Context, rules []domain.AccountNumberingRule) ([]domain.AccountNumberingRule, error)
}

// CounterpartyReader defines read operations for customers and vendors
type CounterpartyReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}

// CounterpartyWriter defines write operations for customers and vendors
type CounterpartyWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	SaveVendor(ctx context.Context, vendor domain.Vendor) error
}

// CounterpartyRepositoryFacade combines the counterparty interfaces
type CounterpartyRepositoryFacade interface {
	CounterpartyReader
	CounterpartyWriter
}
