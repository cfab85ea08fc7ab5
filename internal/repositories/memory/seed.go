package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedDemoData loads the demo company. Transaction history is loaded as-is;
// the account balances below already include it.
func (s *Store) SeedDemoData(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	for _, acc := range []domain.Account{
		{AccountID: "acc1", Name: "Main Checking", Kind: domain.Checking, Balance: decimal.RequireFromString("5210.55")},
		{AccountID: "acc2", Name: "Business Savings", Kind: domain.Savings, Balance: decimal.RequireFromString("25000.00")},
		{AccountID: "acc3", Name: "Company Card", Kind: domain.CreditCard, Balance: decimal.RequireFromString("-450.25")},
	} {
		acc.AuditFields = audit
		s.accounts[acc.AccountID] = &acc
		s.accountOrder = append(s.accountOrder, acc.AccountID)
	}

	for _, c := range []domain.Customer{
		{CustomerID: "cust1", Name: "Innovate LLC", Email: "contact@innovatellc.com"},
		{CustomerID: "cust2", Name: "Solutions Inc.", Email: "billing@solutions.inc"},
		{CustomerID: "cust3", Name: "Synergy Co.", Email: "accounts@synergy.co"},
	} {
		c.AuditFields = audit
		s.customers[c.CustomerID] = c
		s.customerOrder = append(s.customerOrder, c.CustomerID)
	}

	for _, v := range []domain.Vendor{
		{VendorID: "ven1", Name: "Amazon Business", Category: "Office Supplies"},
		{VendorID: "ven2", Name: "DigitalOcean", Category: "Software/Hosting"},
		{VendorID: "ven3", Name: "Shell Fuel", Category: "Transportation"},
		{VendorID: "ven4", Name: "The Corner Cafe", Category: "Meals & Entertainment"},
	} {
		v.AuditFields = audit
		s.vendors[v.VendorID] = v
		s.vendorOrder = append(s.vendorOrder, v.VendorID)
	}

	// oldest first, so the newest ends up on top of the listing
	history := []domain.Transaction{
		{TransactionID: "t9", Date: day("2024-05-15"), Description: "Salary Deposit", Amount: decimal.NewFromInt(2500), Direction: domain.DirectionIncome, Category: "Salary", AccountID: "acc1"},
		{TransactionID: "t8", Date: day("2024-06-15"), Description: "Salary Deposit", Amount: decimal.NewFromInt(2500), Direction: domain.DirectionIncome, Category: "Salary", AccountID: "acc1"},
		{TransactionID: "t7", Date: day("2024-06-25"), Description: "Invoice #102 Payment", Amount: decimal.NewFromInt(1800), Direction: domain.DirectionIncome, Category: "Freelance", AccountID: "acc1", CustomerID: "cust2"},
		{TransactionID: "t6", Date: day("2024-07-15"), Description: "Salary Deposit", Amount: decimal.NewFromInt(2500), Direction: domain.DirectionIncome, Category: "Salary", AccountID: "acc1"},
		{TransactionID: "t5", Date: day("2024-07-18"), Description: "Lunch with Client", Amount: decimal.RequireFromString("85.00"), Direction: domain.DirectionExpense, Category: "Dining Out", AccountID: "acc3", VendorID: "ven4"},
		{TransactionID: "t4", Date: day("2024-07-19"), Description: "Gasoline", Amount: decimal.RequireFromString("55.20"), Direction: domain.DirectionExpense, Category: "Transportation", AccountID: "acc1", VendorID: "ven3"},
		{TransactionID: "t3", Date: day("2024-07-20"), Description: "Monthly Software Subscription", Amount: decimal.RequireFromString("49.99"), Direction: domain.DirectionExpense, Category: "Utilities", AccountID: "acc3", VendorID: "ven2"},
		{TransactionID: "t2", Date: day("2024-07-21"), Description: "Office Supplies", Amount: decimal.RequireFromString("125.50"), Direction: domain.DirectionExpense, Category: "Shopping", AccountID: "acc3", VendorID: "ven1"},
		{TransactionID: "t1", Date: day("2024-07-22"), Description: "Client Payment - Project Alpha", Amount: decimal.NewFromInt(3500), Direction: domain.DirectionIncome, Category: "Freelance", AccountID: "acc1", CustomerID: "cust1"},
	}
	for _, txn := range history {
		txn.AuditFields = audit
		s.transactions = append(s.transactions, sequenced[domain.Transaction]{seq: s.nextSeq(), item: txn})
	}

	s.yearbooks = append(s.yearbooks,
		domain.Yearbook{YearbookID: "yb1", Year: 2024, StartDate: day("2024-01-01"), EndDate: day("2024-12-31"), Status: domain.YearbookClosing, AuditFields: audit},
		domain.Yearbook{YearbookID: "yb2", Year: 2025, StartDate: day("2025-01-01"), EndDate: day("2025-12-31"), Status: domain.YearbookOpening, AuditFields: audit},
	)

	for i, r := range []struct {
		group      string
		start, end int
	}{
		{"Aset", 1000000, 1999999},
		{"Kewajiban", 2000000, 2999999},
		{"Ekuitas", 3000000, 3999999},
		{"Pendapatan", 4000000, 4999999},
		{"Beban", 5000000, 5999999},
	} {
		s.ruleSeq = i + 1
		s.rules = append(s.rules, domain.AccountNumberingRule{
			RuleID: fmt.Sprintf("anr%d", s.ruleSeq), GroupName: r.group, Digits: 7, Start: r.start, End: r.end,
		})
	}

	for _, c := range []domain.ChartOfAccount{
		{AccountID: "coa-kas", Code: 1101000, Name: "Kas", AccountType: domain.Asset, Level: domain.LevelAccount, Classification: "Kas dan Setara Kas"},
		{AccountID: "coa-bank", Code: 1102000, Name: "Bank", AccountType: domain.Asset, Level: domain.LevelAccount, Classification: "Kas dan Setara Kas"},
		{AccountID: "coa-piutang", Code: 1201000, Name: "Piutang Usaha", AccountType: domain.Asset, Level: domain.LevelAccount, Classification: "Piutang"},
		{AccountID: "coa-utang", Code: 2101000, Name: "Utang Usaha", AccountType: domain.Liability, Level: domain.LevelAccount, Classification: "Utang Lancar"},
		{AccountID: "coa-modal", Code: 3101000, Name: "Modal Disetor", AccountType: domain.Equity, Level: domain.LevelAccount, Classification: "Modal"},
		{AccountID: "coa-pendapatan", Code: 4101000, Name: "Pendapatan Jasa", AccountType: domain.Revenue, Level: domain.LevelAccount, Classification: "Pendapatan Usaha"},
		{AccountID: "coa-gaji", Code: 5101000, Name: "Beban Gaji", AccountType: domain.Expense, Level: domain.LevelAccount, Classification: "Beban Operasional"},
		{AccountID: "coa-sewa", Code: 5102000, Name: "Beban Sewa", AccountType: domain.Expense, Level: domain.LevelAccount, Classification: "Beban Operasional"},
		{AccountID: "coa-jamuan", Code: 5201000, Name: "Beban Jamuan", AccountType: domain.Expense, Level: domain.LevelAccount, Classification: "Beban Non Deductible"},
	} {
		c.AuditFields = audit
		s.chart[c.AccountID] = c
	}
	return nil
}
