package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MinDraftLines is the number of lines a draft opens with and never drops below.
const MinDraftLines = 2

// DraftField names an editable column of a draft line.
type DraftField string

const (
	FieldAccountID          DraftField = "accountId"
	FieldComment            DraftField = "comment"
	FieldDebit              DraftField = "debit"
	FieldCredit             DraftField = "credit"
	FieldIsFiscalCorrection DraftField = "isFiscalCorrection"
	FieldFiscalAdjustment   DraftField = "fiscalAdjustment"
)

// JournalDraft is a journal entry being composed. It is never persisted; it
// becomes a JournalEntry only when submitted.
type JournalDraft struct {
	DraftID    string
	Date       time.Time
	Source     string
	Comment    string
	YearbookID string
	Lines      []JournalLine
	AuditFields

	newLineID func() string
}

// NewJournalDraft opens a draft with two empty lines. newLineID supplies line IDs.
func NewJournalDraft(draftID string, date time.Time, yearbookID string, newLineID func() string) *JournalDraft {
	d := &JournalDraft{
		DraftID:    draftID,
		Date:       date,
		YearbookID: yearbookID,
		newLineID:  newLineID,
	}
	for range MinDraftLines {
		d.AddLine()
	}
	return d
}

// AddLine appends a zero-amount line with no account and returns it.
func (d *JournalDraft) AddLine() JournalLine {
	line := JournalLine{
		LineID:     d.newLineID(),
		Debit:      decimal.Zero,
		Credit:     decimal.Zero,
		Adjustment: NoAdjustment{},
	}
	d.Lines = append(d.Lines, line)
	return line
}

func (d *JournalDraft) indexOf(lineID string) int {
	for i := range d.Lines {
		if d.Lines[i].LineID == lineID {
			return i
		}
	}
	return -1
}

// RemoveLine deletes a line. It reports false and leaves the draft untouched
// when only MinDraftLines lines remain.
func (d *JournalDraft) RemoveLine(lineID string) (bool, error) {
	idx := d.indexOf(lineID)
	if idx < 0 {
		return false, fmt.Errorf("%w: line %s not in draft %s", apperrors.ErrNotFound, lineID, d.DraftID)
	}
	if len(d.Lines) <= MinDraftLines {
		return false, nil
	}
	d.Lines = append(d.Lines[:idx], d.Lines[idx+1:]...)
	return true, nil
}

// SetField applies a single-field edit to a line. A positive debit clears the
// credit and vice versa; clearing the fiscal correction flag drops the code.
func (d *JournalDraft) SetField(lineID string, field DraftField, value string) error {
	idx := d.indexOf(lineID)
	if idx < 0 {
		return fmt.Errorf("%w: line %s not in draft %s", apperrors.ErrNotFound, lineID, d.DraftID)
	}
	line := d.Lines[idx]

	switch field {
	case FieldAccountID:
		line.AccountID = strings.TrimSpace(value)
	case FieldComment:
		line.Comment = value
	case FieldDebit:
		amount, err := parseDraftAmount(value)
		if err != nil {
			return err
		}
		line.Debit = amount
		if amount.IsPositive() {
			line.Credit = decimal.Zero
		}
	case FieldCredit:
		amount, err := parseDraftAmount(value)
		if err != nil {
			return err
		}
		line.Credit = amount
		if amount.IsPositive() {
			line.Debit = decimal.Zero
		}
	case FieldIsFiscalCorrection:
		on, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", apperrors.ErrValidation, field)
		}
		if !on {
			line.Adjustment = NoAdjustment{}
		} else if _, already := AsFiscalCorrection(line.Adjustment); !already {
			line.Adjustment = FiscalCorrection{}
		}
	case FieldFiscalAdjustment:
		if _, ok := AsFiscalCorrection(line.Adjustment); !ok {
			return fmt.Errorf("%w: line is not marked as a fiscal correction", apperrors.ErrValidation)
		}
		code := FiscalCode(value)
		if code != "" && !code.IsValid() {
			return fmt.Errorf("%w: unknown fiscal adjustment %q", apperrors.ErrValidation, value)
		}
		line.Adjustment = FiscalCorrection{Code: code}
	default:
		return fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, field)
	}

	d.Lines[idx] = line
	return nil
}

// SnapshotLines returns a copy of the lines safe to hand outside the draft.
func (d *JournalDraft) SnapshotLines() []JournalLine {
	out := make([]JournalLine, len(d.Lines))
	copy(out, d.Lines)
	return out
}

func parseDraftAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrValidation, value)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amounts cannot be negative", apperrors.ErrValidation)
	}
	return amount, nil
}
