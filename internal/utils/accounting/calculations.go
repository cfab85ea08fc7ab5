package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest |debit - credit| still treated as balanced.
var BalanceTolerance = decimal.New(1, -3)

var (
	// ErrJournalUnbalanced carries the message shown when debits and credits differ.
	ErrJournalUnbalanced = fmt.Errorf("%w: Total Debit dan Kredit harus seimbang (balance).", apperrors.ErrValidation)
	// ErrLineMissingAccount carries the message shown when a line has no account.
	ErrLineMissingAccount = fmt.Errorf("%w: Harap pilih akun untuk setiap baris.", apperrors.ErrValidation)
	ErrJournalMinLines    = fmt.Errorf("%w: journal must have at least %d lines", apperrors.ErrValidation, domain.MinDraftLines)
	ErrLineBothSides      = fmt.Errorf("%w: a line cannot carry both a debit and a credit", apperrors.ErrValidation)
	ErrNegativeAmount     = fmt.Errorf("%w: line amounts cannot be negative", apperrors.ErrValidation)
)

// ErrUnknownDirection is returned by ProjectBalance for anything but income or expense.
var ErrUnknownDirection = errors.New("unknown transaction direction")

// JournalTotals is the running summary shown under a journal being edited.
type JournalTotals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"` // TotalDebit - TotalCredit
}

// IsBalanced reports whether the difference is within BalanceTolerance.
func (t JournalTotals) IsBalanced() bool {
	return t.Difference.Abs().LessThanOrEqual(BalanceTolerance)
}

// ComputeTotals sums both columns. It never fails; empty input yields zeros.
func ComputeTotals(lines []domain.JournalLine) JournalTotals {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return JournalTotals{
		TotalDebit:  debit,
		TotalCredit: credit,
		Difference:  debit.Sub(credit),
	}
}

// ValidateJournalLines checks everything a journal must satisfy before it is posted.
// Both the services and the store call it.
func ValidateJournalLines(lines []domain.JournalLine) error {
	if len(lines) < domain.MinDraftLines {
		return ErrJournalMinLines
	}
	for i, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w (line %d)", ErrNegativeAmount, i+1)
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			return fmt.Errorf("%w (line %d)", ErrLineBothSides, i+1)
		}
		if fc, ok := domain.AsFiscalCorrection(l.Adjustment); ok && fc.Code != "" && !fc.Code.IsValid() {
			return fmt.Errorf("%w: unknown fiscal adjustment %q (line %d)", apperrors.ErrValidation, fc.Code, i+1)
		}
	}
	if !ComputeTotals(lines).IsBalanced() {
		return ErrJournalUnbalanced
	}
	for _, l := range lines {
		if l.AccountID == "" {
			return ErrLineMissingAccount
		}
	}
	return nil
}

// ProjectBalance returns the account balance after applying a transaction:
// income adds the amount, expense subtracts it.
func ProjectBalance(balance decimal.Decimal, direction domain.Direction, amount decimal.Decimal) (decimal.Decimal, error) {
	switch direction {
	case domain.DirectionIncome:
		return balance.Add(amount), nil
	case domain.DirectionExpense:
		return balance.Sub(amount), nil
	default:
		return balance, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}
}

// NaturalAmount is the line's effect on the account measured on the account's
// normal side: debit minus credit for assets and expenses, the reverse otherwise.
func NaturalAmount(line domain.JournalLine, accountType domain.AccountType) decimal.Decimal {
	net := line.Debit.Sub(line.Credit)
	if accountType.IsDebitNormal() {
		return net
	}
	return net.Neg()
}

// OffsettingLines mirrors lines with debit and credit swapped, which cancels
// the original entry when posted.
func OffsettingLines(lines []domain.JournalLine, newLineID func() string) []domain.JournalLine {
	out := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalLine{
			LineID:     newLineID(),
			AccountID:  l.AccountID,
			Comment:    l.Comment,
			Debit:      l.Credit,
			Credit:     l.Debit,
			Adjustment: l.Adjustment,
		}
	}
	return out
}
