package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        int             `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance is the list of rows plus column totals.
type TrialBalance struct {
	YearbookID  string            `json:"yearbookID"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      int             `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// IncomeStatement is the profit and loss view over revenue and expense accounts.
type IncomeStatement struct {
	YearbookID    string          `json:"yearbookID"`
	Revenue       []AccountAmount `json:"revenue"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// DashboardSummary is the landing-page overview.
type DashboardSummary struct {
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	Accounts           []Account       `json:"accounts"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
	OpenYearbook       *Yearbook       `json:"openYearbook,omitempty"`
	JournalCount       int             `json:"journalCount"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpense       decimal.Decimal `json:"totalExpense"`
}

// AccountActivity is the sum of posted journal lines against one ledger account.
type AccountActivity struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}
