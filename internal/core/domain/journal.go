package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// FiscalCode classifies how a line is treated when reconciling book profit to taxable profit.
type FiscalCode string

const (
	FiscalNonTax       FiscalCode = "non_tax"
	FiscalPPhFinal     FiscalCode = "pph_final"
	FiscalKoreksiPlus  FiscalCode = "koreksi_plus"
	FiscalKoreksiMinus FiscalCode = "koreksi_minus"
)

var fiscalCodeLabels = map[FiscalCode]string{
	FiscalNonTax:       "Non Tax Object",
	FiscalPPhFinal:     "PPH Final",
	FiscalKoreksiPlus:  "Koreksi Positif",
	FiscalKoreksiMinus: "Koreksi Negatif",
}

// IsValid reports whether c is a known fiscal code.
func (c FiscalCode) IsValid() bool {
	_, ok := fiscalCodeLabels[c]
	return ok
}

// Label returns the display name of the code, or "" when unknown.
func (c FiscalCode) Label() string {
	return fiscalCodeLabels[c]
}

// LineAdjustment is the fiscal treatment attached to a journal line.
// It is either NoAdjustment or FiscalCorrection.
type LineAdjustment interface {
	isLineAdjustment()
}

// NoAdjustment marks a line with no fiscal correction.
type NoAdjustment struct{}

// FiscalCorrection marks a line as a fiscal correction. Code may be empty
// until the user picks one.
type FiscalCorrection struct {
	Code FiscalCode
}

func (NoAdjustment) isLineAdjustment()     {}
func (FiscalCorrection) isLineAdjustment() {}

// AsFiscalCorrection unwraps adj. A nil adjustment counts as NoAdjustment.
func AsFiscalCorrection(adj LineAdjustment) (FiscalCorrection, bool) {
	fc, ok := adj.(FiscalCorrection)
	return fc, ok
}

// JournalLine is one debit or credit line of a journal entry.
// At most one of Debit and Credit is positive.
type JournalLine struct {
	LineID     string          `json:"lineID"`
	AccountID  string          `json:"accountID"` // ChartOfAccount.AccountID
	Comment    string          `json:"comment"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	Adjustment LineAdjustment  `json:"-"`
}

// JournalEntry is a posted, balanced double-entry record.
type JournalEntry struct {
	JournalID  string        `json:"journalID"`
	Date       time.Time     `json:"date"`
	Source     string        `json:"source"`
	Comment    string        `json:"comment"`
	YearbookID string        `json:"yearbookID"`
	Status     JournalStatus `json:"status"`
	ReversalOf string        `json:"reversalOf,omitempty"`
	ReversedBy string        `json:"reversedBy,omitempty"`
	Lines      []JournalLine `json:"lines"`
	AuditFields
}
