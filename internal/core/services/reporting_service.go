package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RecentTransactionCount is how many transactions the dashboard shows.
const RecentTransactionCount = 5

const dashboardPageSize = 100

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	chartRepo     portsrepo.ChartOfAccountReader
	yearbookRepo  portsrepo.YearbookReader

	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
	journalRepo portsrepo.JournalReader
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithDashboardSources wires the readers the dashboard summarizes.
func WithDashboardSources(accounts portsrepo.AccountReader, txns portsrepo.TransactionReader, journals portsrepo.JournalReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.accountRepo = accounts
		s.txnRepo = txns
		s.journalRepo = journals
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, chartRepo portsrepo.ChartOfAccountReader, yearbookRepo portsrepo.YearbookReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
		chartRepo:     chartRepo,
		yearbookRepo:  yearbookRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// reportRow joins a ledger account with its summed activity.
type reportRow struct {
	account  domain.ChartOfAccount
	activity domain.AccountActivity
}

// loadActivity resolves the yearbook and joins activity to the chart, ordered by code.
// With no yearbook given and none open, every yearbook is covered.
func (s *reportingService) loadActivity(ctx context.Context, yearbookID string) (string, []reportRow, error) {
	if yearbookID == "" {
		yb, err := s.yearbookRepo.FindOpenYearbook(ctx)
		switch {
		case err == nil:
			yearbookID = yb.YearbookID
		case !errors.Is(err, apperrors.ErrNotFound):
			return "", nil, err
		}
	} else if _, err := s.yearbookRepo.FindYearbookByID(ctx, yearbookID); err != nil {
		return "", nil, err
	}

	activity, err := s.reportingRepo.GetAccountActivity(ctx, yearbookID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load account activity: %w", err)
	}
	ids := make([]string, len(activity))
	for i, a := range activity {
		ids[i] = a.AccountID
	}
	chart, err := s.chartRepo.FindChartAccountsByIDs(ctx, ids)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}

	rows := make([]reportRow, 0, len(activity))
	for _, a := range activity {
		coa, ok := chart[a.AccountID]
		if !ok {
			s.GetLogger(ctx).Warn("Activity on account missing from chart", slog.String("account_id", a.AccountID))
			coa = domain.ChartOfAccount{AccountID: a.AccountID, Name: a.AccountID}
		}
		rows = append(rows, reportRow{account: coa, activity: a})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].account.Code < rows[j].account.Code })
	return yearbookID, rows, nil
}

// TrialBalance places each account's net movement in the debit or credit column.
func (s *reportingService) TrialBalance(ctx context.Context, yearbookID string) (*domain.TrialBalance, error) {
	ybID, rows, err := s.loadActivity(ctx, yearbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build trial balance", slog.String("yearbook_id", yearbookID))
		return nil, err
	}

	tb := &domain.TrialBalance{
		YearbookID:  ybID,
		Rows:        make([]domain.TrialBalanceRow, 0, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, r := range rows {
		row := domain.TrialBalanceRow{
			AccountID:   r.account.AccountID,
			Code:        r.account.Code,
			AccountName: r.account.Name,
			AccountType: r.account.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		net := r.activity.Debit.Sub(r.activity.Credit)
		if net.IsPositive() {
			row.Debit = net
		} else {
			row.Credit = net.Neg()
		}
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.Rows = append(tb.Rows, row)
	}

	s.LogDebug(ctx, "Trial balance built", slog.String("yearbook_id", ybID), slog.Int("rows", len(tb.Rows)))
	return tb, nil
}

// IncomeStatement nets revenue against expenses, each measured on its normal side.
func (s *reportingService) IncomeStatement(ctx context.Context, yearbookID string) (*domain.IncomeStatement, error) {
	ybID, rows, err := s.loadActivity(ctx, yearbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build income statement", slog.String("yearbook_id", yearbookID))
		return nil, err
	}

	is := &domain.IncomeStatement{
		YearbookID:    ybID,
		Revenue:       []domain.AccountAmount{},
		Expenses:      []domain.AccountAmount{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, r := range rows {
		t := r.account.AccountType
		if t != domain.Revenue && t != domain.Expense {
			continue
		}
		amount := domain.AccountAmount{
			AccountID: r.account.AccountID,
			Code:      r.account.Code,
			Name:      r.account.Name,
			NetAmount: accounting.NaturalAmount(domain.JournalLine{Debit: r.activity.Debit, Credit: r.activity.Credit}, t),
		}
		if t == domain.Revenue {
			is.Revenue = append(is.Revenue, amount)
			is.TotalRevenue = is.TotalRevenue.Add(amount.NetAmount)
		} else {
			is.Expenses = append(is.Expenses, amount)
			is.TotalExpenses = is.TotalExpenses.Add(amount.NetAmount)
		}
	}
	is.NetProfit = is.TotalRevenue.Sub(is.TotalExpenses)
	return is, nil
}

// Dashboard gathers its independent parts concurrently.
func (s *reportingService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	if s.accountRepo == nil || s.txnRepo == nil || s.journalRepo == nil {
		return nil, fmt.Errorf("%w: dashboard sources not configured", apperrors.ErrInternal)
	}

	summary := &domain.DashboardSummary{
		TotalBalance: decimal.Zero,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		accounts, err := s.accountRepo.ListAccounts(ctx)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, a := range accounts {
			total = total.Add(a.Balance)
		}
		summary.Accounts = accounts
		summary.TotalBalance = total
		return nil
	})

	g.Go(func() error {
		income, expense := decimal.Zero, decimal.Zero
		var recent []domain.Transaction
		var token *string
		for {
			page, next, err := s.txnRepo.ListTransactions(ctx, dashboardPageSize, token)
			if err != nil {
				return err
			}
			for _, t := range page {
				if len(recent) < RecentTransactionCount {
					recent = append(recent, t)
				}
				if t.Direction == domain.DirectionIncome {
					income = income.Add(t.Amount)
				} else {
					expense = expense.Add(t.Amount)
				}
			}
			if next == nil {
				break
			}
			token = next
		}
		summary.RecentTransactions = recent
		summary.TotalIncome = income
		summary.TotalExpense = expense
		return nil
	})

	g.Go(func() error {
		yb, err := s.yearbookRepo.FindOpenYearbook(ctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		summary.OpenYearbook = yb
		return nil
	})

	g.Go(func() error {
		n, err := s.journalRepo.CountJournals(ctx)
		if err != nil {
			return err
		}
		summary.JournalCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build dashboard")
		return nil, err
	}
	if summary.Accounts == nil {
		summary.Accounts = []domain.Account{}
	}
	if summary.RecentTransactions == nil {
		summary.RecentTransactions = []domain.Transaction{}
	}
	return summary, nil
}
