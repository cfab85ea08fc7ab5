package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/core/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockChartRepository is a mock type for the ChartOfAccountRepositoryFacade interface
type MockChartRepository struct {
	mock.Mock
}

func (m *MockChartRepository) FindChartAccountByID(ctx context.Context, accountID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartRepository) FindChartAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartRepository) ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartRepository) SaveChartAccount(ctx context.Context, account domain.ChartOfAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockAccountRepository
	mockChart *MockChartRepository
	service   portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockChart = new(MockChartRepository)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockChart)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: " Payroll ", Kind: domain.Checking, OpeningBalance: dec("1000")}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req)
	suite.Require().NoError(err)
	suite.NotEmpty(created.AccountID)
	suite.Equal("Payroll", created.Name)
	suite.True(created.Balance.Equal(dec("1000")))
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(assert.AnError).Once()

	created, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "X", Kind: domain.Savings})
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, "nope")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccounts", ctx).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)
	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestCreateChartAccount_NoRulesConfigured() {
	ctx := context.Background()
	suite.mockChart.On("SaveChartAccount", ctx, mock.MatchedBy(func(a domain.ChartOfAccount) bool {
		return a.Code == 42
	})).Return(nil).Once()

	created, err := suite.service.CreateChartAccount(ctx, dto.CreateChartOfAccountRequest{
		Code: 42, Name: "Kas Kecil", AccountType: domain.Asset, Level: domain.LevelAccount,
	})
	suite.Require().NoError(err)
	suite.Equal(42, created.Code)
}

func TestAccountService_ChartCodesFollowNumberingRules(t *testing.T) {
	ctx := context.Background()
	svc, _ := seededContainer(t)

	_, err := svc.Account.CreateChartAccount(ctx, dto.CreateChartOfAccountRequest{
		Code: 1103000, Name: "Kas Kecil", AccountType: domain.Asset, Level: domain.LevelAccount,
	})
	assert.NoError(t, err)

	_, err = svc.Account.CreateChartAccount(ctx, dto.CreateChartOfAccountRequest{
		Code: 9100000, Name: "Lain-lain", AccountType: domain.Expense, Level: domain.LevelAccount,
	})
	assert.ErrorIs(t, err, services.ErrCodeOutsideNumbering)

	// no rule has 4 digits, so any 4-digit code is accepted
	_, err = svc.Account.CreateChartAccount(ctx, dto.CreateChartOfAccountRequest{
		Code: 9100, Name: "Lain-lain", AccountType: domain.Expense, Level: domain.LevelAccount,
	})
	assert.NoError(t, err)

	_, err = svc.Account.CreateChartAccount(ctx, dto.CreateChartOfAccountRequest{
		Code: 1101000, Name: "Kas Dobel", AccountType: domain.Asset, Level: domain.LevelAccount,
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
