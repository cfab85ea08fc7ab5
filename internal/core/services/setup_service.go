package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/google/uuid"
)

type setupService struct {
	BaseService
	numberingRepo    portsrepo.NumberingRuleRepository
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
}

// NewSetupService creates the service behind the setup pages.
func NewSetupService(numberingRepo portsrepo.NumberingRuleRepository, counterpartyRepo portsrepo.CounterpartyRepositoryFacade) portssvc.SetupSvc {
	return &setupService{
		numberingRepo:    numberingRepo,
		counterpartyRepo: counterpartyRepo,
	}
}

var _ portssvc.SetupSvc = (*setupService)(nil)

func (s *setupService) ReplaceNumberingRules(ctx context.Context, req dto.ReplaceNumberingRulesRequest) ([]domain.AccountNumberingRule, error) {
	rules, err := s.numberingRepo.ReplaceNumberingRules(ctx, req.ToDomainRules())
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to replace numbering rules")
		}
		return nil, err
	}
	s.LogInfo(ctx, "Numbering rules replaced", slog.Int("digits", req.Rules[0].Digits), slog.Int("batch", len(req.Rules)))
	return rules, nil
}

func (s *setupService) ListNumberingRules(ctx context.Context) ([]domain.AccountNumberingRule, error) {
	rules, err := s.numberingRepo.ListNumberingRules(ctx)
	if err != nil {
		return nil, err
	}
	if rules == nil {
		return []domain.AccountNumberingRule{}, nil
	}
	return rules, nil
}

func (s *setupService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
	}
	if err := s.counterpartyRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer")
		return nil, err
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *setupService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.counterpartyRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *setupService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	vendor := domain.Vendor{
		VendorID:      uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Category:      req.Category,
		Code:          req.Code,
		ContactPerson: req.ContactPerson,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		PaymentTerms:  req.PaymentTerms,
	}
	if err := s.counterpartyRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to save vendor")
		return nil, err
	}
	s.LogInfo(ctx, "Vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

func (s *setupService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	vendors, err := s.counterpartyRepo.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}
