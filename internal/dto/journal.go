package dto

import (
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/utils"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one line of a directly submitted journal.
type JournalLineRequest struct {
	AccountID          string            `json:"accountID" binding:"required"`
	Comment            string            `json:"comment"`
	Debit              decimal.Decimal   `json:"debit"`
	Credit             decimal.Decimal   `json:"credit"`
	IsFiscalCorrection bool              `json:"isFiscalCorrection"`
	FiscalAdjustment   domain.FiscalCode `json:"fiscalAdjustment" binding:"omitempty,fiscal_code"`
}

// ToDomain builds the domain line. A fiscal adjustment without the flag is ignored.
func (r JournalLineRequest) ToDomain(lineID string) domain.JournalLine {
	var adj domain.LineAdjustment = domain.NoAdjustment{}
	if r.IsFiscalCorrection {
		adj = domain.FiscalCorrection{Code: r.FiscalAdjustment}
	}
	return domain.JournalLine{
		LineID:     lineID,
		AccountID:  r.AccountID,
		Comment:    r.Comment,
		Debit:      r.Debit,
		Credit:     r.Credit,
		Adjustment: adj,
	}
}

// CreateJournalRequest posts a complete journal in one call.
// An empty YearbookID means the currently open yearbook.
type CreateJournalRequest struct {
	Date       string               `json:"date" binding:"required,datetime=2006-01-02"`
	Source     string               `json:"source" binding:"required"`
	Comment    string               `json:"comment"`
	YearbookID string               `json:"yearbookID"`
	Lines      []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal or draft line.
type JournalLineResponse struct {
	LineID             string            `json:"lineID"`
	AccountID          string            `json:"accountID"`
	Comment            string            `json:"comment"`
	Debit              decimal.Decimal   `json:"debit"`
	Credit             decimal.Decimal   `json:"credit"`
	IsFiscalCorrection bool              `json:"isFiscalCorrection"`
	FiscalAdjustment   domain.FiscalCode `json:"fiscalAdjustment,omitempty"`
	FiscalLabel        string            `json:"fiscalLabel,omitempty"`
}

// TotalsResponse is the debit/credit summary with display strings.
type TotalsResponse struct {
	TotalDebit         decimal.Decimal `json:"totalDebit"`
	TotalCredit        decimal.Decimal `json:"totalCredit"`
	Difference         decimal.Decimal `json:"difference"`
	TotalDebitDisplay  string          `json:"totalDebitDisplay"`
	TotalCreditDisplay string          `json:"totalCreditDisplay"`
	DifferenceDisplay  string          `json:"differenceDisplay"`
	Balanced           bool            `json:"balanced"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID  string                `json:"journalID"`
	Date       string                `json:"date"`
	Source     string                `json:"source"`
	Comment    string                `json:"comment"`
	YearbookID string                `json:"yearbookID"`
	Status     domain.JournalStatus  `json:"status"`
	ReversalOf string                `json:"reversalOf,omitempty"`
	ReversedBy string                `json:"reversedBy,omitempty"`
	Lines      []JournalLineResponse `json:"lines"`
	Totals     TotalsResponse        `json:"totals"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalsResponse wraps a page of journals, newest first.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain line, flattening the adjustment.
func ToJournalLineResponse(l domain.JournalLine) JournalLineResponse {
	res := JournalLineResponse{
		LineID:    l.LineID,
		AccountID: l.AccountID,
		Comment:   l.Comment,
		Debit:     l.Debit,
		Credit:    l.Credit,
	}
	if fc, ok := domain.AsFiscalCorrection(l.Adjustment); ok {
		res.IsFiscalCorrection = true
		res.FiscalAdjustment = fc.Code
		res.FiscalLabel = fc.Code.Label()
	}
	return res
}

// ToJournalLineResponses converts a slice of lines.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	res := make([]JournalLineResponse, len(lines))
	for i, l := range lines {
		res[i] = ToJournalLineResponse(l)
	}
	return res
}

// ToTotalsResponse recomputes the totals of lines.
func ToTotalsResponse(lines []domain.JournalLine) TotalsResponse {
	t := accounting.ComputeTotals(lines)
	return TotalsResponse{
		TotalDebit:         t.TotalDebit,
		TotalCredit:        t.TotalCredit,
		Difference:         t.Difference,
		TotalDebitDisplay:  utils.FormatIDR(t.TotalDebit),
		TotalCreditDisplay: utils.FormatIDR(t.TotalCredit),
		DifferenceDisplay:  utils.FormatIDR(t.Difference),
		Balanced:           t.IsBalanced(),
	}
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
func ToJournalResponse(j *domain.JournalEntry) JournalResponse {
	return JournalResponse{
		JournalID:  j.JournalID,
		Date:       j.Date.Format(domain.DateLayout),
		Source:     j.Source,
		Comment:    j.Comment,
		YearbookID: j.YearbookID,
		Status:     j.Status,
		ReversalOf: j.ReversalOf,
		ReversedBy: j.ReversedBy,
		Lines:      ToJournalLineResponses(j.Lines),
		Totals:     ToTotalsResponse(j.Lines),
		CreatedAt:  j.CreatedAt,
	}
}

// ToJournalResponses converts a slice of journals.
func ToJournalResponses(journals []domain.JournalEntry) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i := range journals {
		res[i] = ToJournalResponse(&journals[i])
	}
	return res
}
