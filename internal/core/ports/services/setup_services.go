package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

// SetupSvc covers the setup pages: numbering rules and counterparties.
type SetupSvc interface {
	ReplaceNumberingRules(ctx context.Context, req dto.ReplaceNumberingRulesRequest) ([]domain.AccountNumberingRule, error)
	ListNumberingRules(ctx context.Context) ([]domain.AccountNumberingRule, error)

	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
}
