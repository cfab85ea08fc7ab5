package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_console/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	repos portsrepo.RepositoryProvider
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.store = NewStore(WithClock(func() time.Time { return fixed }))
	s.Require().NoError(s.store.SeedDemoData(s.ctx))
	s.repos = NewRepositoryProvider(s.store)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func (s *StoreTestSuite) balanced(id string) domain.JournalEntry {
	return domain.JournalEntry{
		JournalID:  id,
		Date:       day("2025-02-10"),
		Source:     "Penyesuaian Akhir Bulan",
		YearbookID: "yb2",
		Status:     domain.Posted,
		Lines: []domain.JournalLine{
			{LineID: id + "-1", AccountID: "coa-kas", Debit: dec("500000"), Credit: decimal.Zero, Adjustment: domain.NoAdjustment{}},
			{LineID: id + "-2", AccountID: "coa-modal", Debit: decimal.Zero, Credit: dec("500000"), Adjustment: domain.NoAdjustment{}},
		},
	}
}

func (s *StoreTestSuite) TestAddTransaction_IncomeAddsToBalance() {
	txn, acc, err := s.repos.TransactionRepo.AddTransaction(s.ctx, domain.Transaction{
		Date:        day("2025-03-01"),
		Description: "Client Payment - Project Beta",
		Amount:      dec("3500"),
		Direction:   domain.DirectionIncome,
		Category:    "Freelance",
		AccountID:   "acc1",
		CustomerID:  "cust1",
	})
	s.Require().NoError(err)
	s.NotEmpty(txn.TransactionID)
	s.True(acc.Balance.Equal(dec("8710.55")), acc.Balance.String())

	stored, err := s.repos.AccountRepo.FindAccountByID(s.ctx, "acc1")
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(dec("8710.55")))
}

func (s *StoreTestSuite) TestAddTransaction_ExpenseSubtracts() {
	_, acc, err := s.repos.TransactionRepo.AddTransaction(s.ctx, domain.Transaction{
		Date:        day("2025-03-01"),
		Description: "Hosting",
		Amount:      dec("49.99"),
		Direction:   domain.DirectionExpense,
		Category:    "Software/Hosting",
		AccountID:   "acc3",
		VendorID:    "ven2",
	})
	s.Require().NoError(err)
	s.True(acc.Balance.Equal(dec("-500.24")), acc.Balance.String())
}

func (s *StoreTestSuite) TestAddTransaction_MissingReferencesChangeNothing() {
	before, _, err := s.repos.TransactionRepo.ListTransactions(s.ctx, 100, nil)
	s.Require().NoError(err)

	base := domain.Transaction{
		Date:        day("2025-03-01"),
		Description: "Ghost",
		Amount:      dec("10"),
		Direction:   domain.DirectionIncome,
		AccountID:   "acc-missing",
	}
	_, _, err = s.repos.TransactionRepo.AddTransaction(s.ctx, base)
	s.ErrorIs(err, apperrors.ErrNotFound)

	withCustomer := base
	withCustomer.AccountID = "acc1"
	withCustomer.CustomerID = "cust-missing"
	_, _, err = s.repos.TransactionRepo.AddTransaction(s.ctx, withCustomer)
	s.ErrorIs(err, apperrors.ErrNotFound)

	vendorOnIncome := base
	vendorOnIncome.AccountID = "acc1"
	vendorOnIncome.VendorID = "ven1"
	_, _, err = s.repos.TransactionRepo.AddTransaction(s.ctx, vendorOnIncome)
	s.ErrorIs(err, apperrors.ErrValidation)

	after, _, err := s.repos.TransactionRepo.ListTransactions(s.ctx, 100, nil)
	s.Require().NoError(err)
	s.Len(after, len(before))
	acc, _ := s.repos.AccountRepo.FindAccountByID(s.ctx, "acc1")
	s.True(acc.Balance.Equal(dec("5210.55")))
}

func (s *StoreTestSuite) TestListTransactions_NewestFirstWithPages() {
	page1, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, 4, nil)
	s.Require().NoError(err)
	s.Require().Len(page1, 4)
	s.Equal("t1", page1[0].TransactionID)
	s.Equal("t4", page1[3].TransactionID)
	s.Require().NotNil(next)

	page2, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, 4, next)
	s.Require().NoError(err)
	s.Require().Len(page2, 4)
	s.Equal("t5", page2[0].TransactionID)

	page3, next, err := s.repos.TransactionRepo.ListTransactions(s.ctx, 4, next)
	s.Require().NoError(err)
	s.Require().Len(page3, 1)
	s.Equal("t9", page3[0].TransactionID)
	s.Nil(next)

	bad := "garbage"
	_, _, err = s.repos.TransactionRepo.ListTransactions(s.ctx, 4, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestAddJournalEntry_Balanced() {
	s.Require().NoError(s.repos.JournalRepo.AddJournalEntry(s.ctx, s.balanced("j1")))

	got, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "j1")
	s.Require().NoError(err)
	s.Len(got.Lines, 2)
	s.True(accounting.ComputeTotals(got.Lines).Difference.IsZero())

	err = s.repos.JournalRepo.AddJournalEntry(s.ctx, s.balanced("j1"))
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *StoreTestSuite) TestAddJournalEntry_RejectsUnbalancedAndUnknownRefs() {
	unbalanced := s.balanced("j1")
	unbalanced.Lines[1].Credit = dec("300000")
	s.ErrorIs(s.repos.JournalRepo.AddJournalEntry(s.ctx, unbalanced), accounting.ErrJournalUnbalanced)

	unknownAccount := s.balanced("j2")
	unknownAccount.Lines[0].AccountID = "coa-nope"
	s.ErrorIs(s.repos.JournalRepo.AddJournalEntry(s.ctx, unknownAccount), apperrors.ErrNotFound)

	unknownYearbook := s.balanced("j3")
	unknownYearbook.YearbookID = "yb9"
	s.ErrorIs(s.repos.JournalRepo.AddJournalEntry(s.ctx, unknownYearbook), apperrors.ErrNotFound)

	n, err := s.repos.JournalRepo.CountJournals(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *StoreTestSuite) TestStoredJournalIsIsolatedFromCaller() {
	entry := s.balanced("j1")
	s.Require().NoError(s.repos.JournalRepo.AddJournalEntry(s.ctx, entry))
	entry.Lines[0].Debit = dec("1")

	got, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "j1")
	s.Require().NoError(err)
	s.True(got.Lines[0].Debit.Equal(dec("500000")))
}

func (s *StoreTestSuite) TestSaveReversal() {
	s.Require().NoError(s.repos.JournalRepo.AddJournalEntry(s.ctx, s.balanced("j1")))

	rev := s.balanced("j1-rev")
	rev.ReversalOf = "j1"
	rev.Lines = accounting.OffsettingLines(rev.Lines, func() string { return "x" })
	s.Require().NoError(s.repos.JournalRepo.SaveReversal(s.ctx, "j1", rev))

	orig, _ := s.repos.JournalRepo.FindJournalByID(s.ctx, "j1")
	s.Equal(domain.Reversed, orig.Status)
	s.Equal("j1-rev", orig.ReversedBy)

	again := s.balanced("j1-rev2")
	again.ReversalOf = "j1"
	s.ErrorIs(s.repos.JournalRepo.SaveReversal(s.ctx, "j1", again), apperrors.ErrConflict)

	ofReversal := s.balanced("j1-rev-rev")
	ofReversal.ReversalOf = "j1-rev"
	s.ErrorIs(s.repos.JournalRepo.SaveReversal(s.ctx, "j1-rev", ofReversal), apperrors.ErrConflict)

	s.ErrorIs(s.repos.JournalRepo.SaveReversal(s.ctx, "missing", again), apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestListJournals_NewestFirst() {
	for _, id := range []string{"j1", "j2", "j3"} {
		s.Require().NoError(s.repos.JournalRepo.AddJournalEntry(s.ctx, s.balanced(id)))
	}
	page, next, err := s.repos.JournalRepo.ListJournals(s.ctx, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("j3", page[0].JournalID)
	s.Require().NotNil(next)

	page, next, err = s.repos.JournalRepo.ListJournals(s.ctx, 2, next)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("j1", page[0].JournalID)
	s.Nil(next)
}

func (s *StoreTestSuite) TestAddYearbook_FlipsOpening() {
	yb, err := s.repos.YearbookRepo.AddYearbook(s.ctx, domain.Yearbook{
		Year: 2026, StartDate: day("2026-01-01"), EndDate: day("2026-12-31"),
	})
	s.Require().NoError(err)
	s.Equal("yb3", yb.YearbookID)
	s.Equal(domain.YearbookOpening, yb.Status)

	all, err := s.repos.YearbookRepo.ListYearbooks(s.ctx)
	s.Require().NoError(err)
	opening := 0
	for _, y := range all {
		if y.Status == domain.YearbookOpening {
			opening++
		}
	}
	s.Equal(1, opening)
	s.Equal(domain.YearbookClosing, all[1].Status)

	open, err := s.repos.YearbookRepo.FindOpenYearbook(s.ctx)
	s.Require().NoError(err)
	s.Equal("yb3", open.YearbookID)

	_, err = s.repos.YearbookRepo.AddYearbook(s.ctx, domain.Yearbook{Year: 2026})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *StoreTestSuite) TestReplaceNumberingRules() {
	rules, err := s.repos.NumberingRepo.ReplaceNumberingRules(s.ctx, []domain.AccountNumberingRule{
		{GroupName: "Aset Lancar", Digits: 4, Start: 1000, End: 1499},
	})
	s.Require().NoError(err)
	s.Len(rules, 6)
	s.Equal(1000, rules[0].Start, "rules stay ordered by start")

	rules, err = s.repos.NumberingRepo.ReplaceNumberingRules(s.ctx, []domain.AccountNumberingRule{
		{GroupName: "Aset", Digits: 7, Start: 1000000, End: 1999999},
		{GroupName: "Lainnya", Digits: 7, Start: 2000000, End: 9999999},
	})
	s.Require().NoError(err)
	s.Len(rules, 3, "the five 7-digit rules were replaced by two")

	_, err = s.repos.NumberingRepo.ReplaceNumberingRules(s.ctx, []domain.AccountNumberingRule{
		{GroupName: "A", Digits: 4, Start: 1000, End: 1999},
		{GroupName: "B", Digits: 5, Start: 20000, End: 29999},
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	after, _ := s.repos.NumberingRepo.ListNumberingRules(s.ctx)
	s.Len(after, 3)
}

func (s *StoreTestSuite) TestChartAccountCodesAreUnique() {
	err := s.repos.ChartRepo.SaveChartAccount(s.ctx, domain.ChartOfAccount{AccountID: "coa-x", Code: 1101000, Name: "Kas Kecil"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	list, err := s.repos.ChartRepo.ListChartOfAccounts(s.ctx)
	s.Require().NoError(err)
	for i := 1; i < len(list); i++ {
		s.Less(list[i-1].Code, list[i].Code)
	}
}

func (s *StoreTestSuite) TestGetAccountActivity() {
	s.Require().NoError(s.repos.JournalRepo.AddJournalEntry(s.ctx, s.balanced("j1")))

	activity, err := s.repos.ReportingRepo.GetAccountActivity(s.ctx, "yb2")
	s.Require().NoError(err)
	s.Len(activity, 2)

	none, err := s.repos.ReportingRepo.GetAccountActivity(s.ctx, "yb1")
	s.Require().NoError(err)
	s.Empty(none)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repos := NewRepositoryProvider(NewStore())

	_, err := repos.AccountRepo.ListAccounts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.Error(t, repos.AccountRepo.SaveAccount(ctx, domain.Account{AccountID: "a"}))
}
