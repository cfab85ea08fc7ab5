package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/core/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) AddTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, *domain.Account, error) {
	args := m.Called(ctx, txn)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Account), args.Error(2)
}

// MockCategorizer is a mock type for the Categorizer interface
type MockCategorizer struct {
	mock.Mock
}

func (m *MockCategorizer) Categorize(ctx context.Context, description string) (string, error) {
	args := m.Called(ctx, description)
	return args.String(0), args.Error(1)
}

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockTransactionRepository
	mockCategorizer *MockCategorizer
	service         portssvc.TransactionSvc
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockCategorizer = new(MockCategorizer)
	suite.service = services.NewTransactionService(suite.mockRepo, services.WithCategorizer(suite.mockCategorizer, time.Second))
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (suite *TransactionServiceTestSuite) TestSuggestCategory() {
	ctx := context.Background()
	suite.mockCategorizer.On("Categorize", mock.Anything, "Gasoline").Return("transportation", nil).Once()
	suite.mockCategorizer.On("Categorize", mock.Anything, "Birthday gift").Return("Gifts", nil).Once()
	suite.mockCategorizer.On("Categorize", mock.Anything, "Netflix").Return("", errors.New("quota exceeded")).Once()

	suite.Equal("Transportation", suite.service.SuggestCategory(ctx, "Gasoline"))
	suite.Equal(domain.OtherCategory, suite.service.SuggestCategory(ctx, "Birthday gift"), "answers outside the allow-list")
	suite.Equal(domain.OtherCategory, suite.service.SuggestCategory(ctx, "Netflix"), "categorizer failures")
	suite.Equal(domain.OtherCategory, suite.service.SuggestCategory(ctx, "   "), "empty description skips the categorizer")

	suite.mockCategorizer.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AsksCategorizerWhenCategoryEmpty() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Description: "Monthly Software Subscription",
		Amount:      dec("49.99"),
		Date:        "2025-03-02",
		Direction:   domain.DirectionExpense,
		AccountID:   "acc3",
		VendorID:    "ven2",
	}
	suite.mockCategorizer.On("Categorize", mock.Anything, req.Description).Return("Utilities", nil).Once()

	stored := &domain.Transaction{TransactionID: "t10", Category: "Utilities", Direction: domain.DirectionExpense}
	account := &domain.Account{AccountID: "acc3", Balance: dec("-500.24")}
	suite.mockRepo.On("AddTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Category == "Utilities" && t.Amount.Equal(dec("49.99")) &&
			t.Date.Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)) && t.VendorID == "ven2"
	})).Return(stored, account, nil).Once()

	txn, acc, err := suite.service.CreateTransaction(ctx, req)
	suite.Require().NoError(err)
	suite.Equal("t10", txn.TransactionID)
	suite.True(acc.Balance.Equal(dec("-500.24")))

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCategorizer.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NormalizesGivenCategory() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Description: "Salary Deposit",
		Amount:      dec("2500"),
		Date:        "2025-03-15",
		Direction:   domain.DirectionIncome,
		Category:    "salary",
		AccountID:   "acc1",
	}
	suite.mockRepo.On("AddTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Category == "Salary"
	})).Return(&domain.Transaction{TransactionID: "t11"}, &domain.Account{AccountID: "acc1"}, nil).Once()

	_, _, err := suite.service.CreateTransaction(ctx, req)
	suite.Require().NoError(err)
	suite.mockCategorizer.AssertNotCalled(suite.T(), "Categorize", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Errors() {
	ctx := context.Background()
	_, _, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{Date: "yesterday", Category: "Salary"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	req := dto.CreateTransactionRequest{
		Description: "Salary Deposit", Amount: dec("1"), Date: "2025-03-15",
		Direction: domain.DirectionIncome, Category: "Salary", AccountID: "ghost",
	}
	suite.mockRepo.On("AddTransaction", ctx, mock.Anything).Return(nil, nil, apperrors.ErrNotFound).Once()
	_, _, err = suite.service.CreateTransaction(ctx, req)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions() {
	ctx := context.Background()
	next := "token"
	suite.mockRepo.On("ListTransactions", ctx, 2, (*string)(nil)).Return([]domain.Transaction{
		{TransactionID: "t1", Date: time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC)},
		{TransactionID: "t2", Date: time.Date(2024, 7, 21, 0, 0, 0, 0, time.UTC)},
	}, &next, nil).Once()

	res, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Len(res.Transactions, 2)
	suite.Equal("2024-07-22", res.Transactions[0].Date)
	suite.Equal(&next, res.NextToken)
}

func TestTransactionService_IntegrationWithStore(t *testing.T) {
	svc, _ := seededContainer(t)
	ctx := context.Background()

	txn, acc, err := svc.Transaction.CreateTransaction(ctx, dto.CreateTransactionRequest{
		Description: "Client Payment - Project Alpha",
		Amount:      dec("3500"),
		Date:        "2025-03-01",
		Direction:   domain.DirectionIncome,
		AccountID:   "acc1",
		CustomerID:  "cust1",
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if txn.Category != domain.OtherCategory {
		t.Errorf("static categorizer should yield %q, got %q", domain.OtherCategory, txn.Category)
	}
	if !acc.Balance.Equal(dec("8710.55")) {
		t.Errorf("balance = %s, want 8710.55", acc.Balance)
	}
}
