package dto

import (
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportParams selects the yearbook a report covers. Empty means the open yearbook.
type ReportParams struct {
	YearbookID string `form:"yearbookID"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	domain.TrialBalance
	TotalDebitDisplay  string `json:"totalDebitDisplay"`
	TotalCreditDisplay string `json:"totalCreditDisplay"`
}

// IncomeStatementResponse represents the profit and loss report response
type IncomeStatementResponse struct {
	domain.IncomeStatement
	NetProfitDisplay string `json:"netProfitDisplay"`
}

// DashboardResponse is the dashboard summary with display strings.
type DashboardResponse struct {
	TotalBalance        decimal.Decimal       `json:"totalBalance"`
	TotalBalanceDisplay string                `json:"totalBalanceDisplay"`
	Accounts            []AccountResponse     `json:"accounts"`
	RecentTransactions  []TransactionResponse `json:"recentTransactions"`
	OpenYearbook        *YearbookResponse     `json:"openYearbook,omitempty"`
	JournalCount        int                   `json:"journalCount"`
	TotalIncome         decimal.Decimal       `json:"totalIncome"`
	TotalExpense        decimal.Decimal       `json:"totalExpense"`
}

// ToTrialBalanceResponse adds display strings to a trial balance.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	return TrialBalanceResponse{
		TrialBalance:       *tb,
		TotalDebitDisplay:  utils.FormatIDR(tb.TotalDebit),
		TotalCreditDisplay: utils.FormatIDR(tb.TotalCredit),
	}
}

// ToIncomeStatementResponse adds display strings to an income statement.
func ToIncomeStatementResponse(is *domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		IncomeStatement:  *is,
		NetProfitDisplay: utils.FormatIDR(is.NetProfit),
	}
}

// ToDashboardResponse converts the dashboard summary.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	res := DashboardResponse{
		TotalBalance:        s.TotalBalance,
		TotalBalanceDisplay: utils.FormatIDR(s.TotalBalance),
		Accounts:            ToListAccountResponse(s.Accounts),
		RecentTransactions:  ToTransactionResponses(s.RecentTransactions),
		JournalCount:        s.JournalCount,
		TotalIncome:         s.TotalIncome,
		TotalExpense:        s.TotalExpense,
	}
	if s.OpenYearbook != nil {
		yb := ToYearbookResponse(s.OpenYearbook)
		res.OpenYearbook = &yb
	}
	return res
}
