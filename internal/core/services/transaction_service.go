package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
)

const defaultCategorizeTimeout = 5 * time.Second

// transactionService implements the TransactionSvc interface
type transactionService struct {
	BaseService
	txnRepo           portsrepo.TransactionRepositoryFacade
	categorizer       portssvc.Categorizer
	categorizeTimeout time.Duration
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithCategorizer sets the advisory categorizer and how long a suggestion may take.
func WithCategorizer(c portssvc.Categorizer, timeout time.Duration) TransactionServiceOption {
	return func(s *transactionService) {
		s.categorizer = c
		if timeout > 0 {
			s.categorizeTimeout = timeout
		}
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvc {
	svc := &transactionService{
		txnRepo:           repo,
		categorizeTimeout: defaultCategorizeTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, *domain.Account, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = s.SuggestCategory(ctx, req.Description)
	} else {
		category = domain.NormalizeCategory(category)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		Date:        date,
		Description: strings.TrimSpace(req.Description),
		Amount:      req.Amount,
		Direction:   req.Direction,
		Category:    category,
		AccountID:   req.AccountID,
		CustomerID:  req.CustomerID,
		VendorID:    req.VendorID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	stored, account, err := s.txnRepo.AddTransaction(ctx, txn)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to add transaction", slog.String("account_id", req.AccountID))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", stored.TransactionID),
		slog.String("account_id", account.AccountID),
		slog.String("direction", string(stored.Direction)),
		slog.String("balance", account.Balance.String()))
	return stored, account, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions")
		}
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *transactionService) SuggestCategory(ctx context.Context, description string) string {
	description = strings.TrimSpace(description)
	if description == "" || s.categorizer == nil {
		return domain.OtherCategory
	}

	ctx, cancel := context.WithTimeout(ctx, s.categorizeTimeout)
	defer cancel()

	suggestion, err := s.categorizer.Categorize(ctx, description)
	if err != nil {
		s.GetLogger(ctx).Warn("Categorizer failed, falling back", slog.String("error", err.Error()))
		return domain.OtherCategory
	}
	category := domain.NormalizeCategory(suggestion)
	s.LogDebug(ctx, "Category suggested", slog.String("raw", suggestion), slog.String("category", category))
	return category
}
