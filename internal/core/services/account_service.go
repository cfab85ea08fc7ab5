package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/google/uuid"
)

// ErrCodeOutsideNumbering is returned when a chart code misses every numbering rule of its width.
var ErrCodeOutsideNumbering = fmt.Errorf("%w: account code is outside every numbering rule", apperrors.ErrValidation)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo   portsrepo.AccountRepositoryFacade
	chartRepo     portsrepo.ChartOfAccountRepositoryFacade
	numberingRepo portsrepo.NumberingRuleRepository
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithNumberingRules makes new chart codes respect the configured numbering ranges.
func WithNumberingRules(repo portsrepo.NumberingRuleRepository) AccountServiceOption {
	return func(s *accountService) {
		s.numberingRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, chartRepo portsrepo.ChartOfAccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		chartRepo:   chartRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Kind:      req.Kind,
		Balance:   req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("kind", string(account.Kind)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// ErrNotFound is an expected outcome, not worth an error log
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) CreateChartAccount(ctx context.Context, req dto.CreateChartOfAccountRequest) (*domain.ChartOfAccount, error) {
	if err := s.checkNumbering(ctx, req.Code); err != nil {
		s.LogDebug(ctx, "Chart code rejected by numbering rules", slog.Int("code", req.Code))
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.ChartOfAccount{
		AccountID:      uuid.NewString(),
		Code:           req.Code,
		Name:           strings.TrimSpace(req.Name),
		AccountType:    req.AccountType,
		Level:          req.Level,
		Classification: req.Classification,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.chartRepo.SaveChartAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save chart account", slog.Int("code", account.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Chart account created", slog.String("account_id", account.AccountID), slog.Int("code", account.Code))
	return &account, nil
}

func (s *accountService) ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	chart, err := s.chartRepo.ListChartOfAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chart of accounts")
		return nil, fmt.Errorf("failed to list chart of accounts: %w", err)
	}
	if chart == nil {
		return []domain.ChartOfAccount{}, nil
	}
	return chart, nil
}

// checkNumbering accepts any code when no rule has the code's width.
func (s *accountService) checkNumbering(ctx context.Context, code int) error {
	if s.numberingRepo == nil {
		return nil
	}
	rules, err := s.numberingRepo.ListNumberingRules(ctx)
	if err != nil {
		return fmt.Errorf("failed to load numbering rules: %w", err)
	}
	digits := len(strconv.Itoa(code))
	constrained := false
	for _, rule := range rules {
		if rule.Digits != digits {
			continue
		}
		constrained = true
		if rule.Contains(code) {
			return nil
		}
	}
	if constrained {
		return fmt.Errorf("%w (code %d)", ErrCodeOutsideNumbering, code)
	}
	return nil
}
