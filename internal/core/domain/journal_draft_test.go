package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDraft() *JournalDraft {
	n := 0
	return NewJournalDraft("draft-1", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "yb2", func() string {
		n++
		return fmt.Sprintf("line-%d", n)
	})
}

func TestNewJournalDraft_OpensWithTwoEmptyLines(t *testing.T) {
	d := newTestDraft()

	require.Len(t, d.Lines, 2)
	for _, l := range d.Lines {
		assert.Empty(t, l.AccountID)
		assert.True(t, l.Debit.IsZero())
		assert.True(t, l.Credit.IsZero())
		assert.Equal(t, NoAdjustment{}, l.Adjustment)
	}
	assert.NotEqual(t, d.Lines[0].LineID, d.Lines[1].LineID)
}

func TestJournalDraft_RemoveLine(t *testing.T) {
	d := newTestDraft()

	removed, err := d.RemoveLine("line-1")
	assert.NoError(t, err)
	assert.False(t, removed, "removal must be refused with only two lines")
	assert.Len(t, d.Lines, 2)

	d.AddLine()
	removed, err = d.RemoveLine("line-2")
	assert.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "line-1", d.Lines[0].LineID)
	assert.Equal(t, "line-3", d.Lines[1].LineID)

	_, err = d.RemoveLine("missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJournalDraft_SetField_DebitCreditExclusive(t *testing.T) {
	d := newTestDraft()

	require.NoError(t, d.SetField("line-1", FieldCredit, "250"))
	require.NoError(t, d.SetField("line-1", FieldDebit, "500000"))
	assert.True(t, d.Lines[0].Debit.Equal(decimal.NewFromInt(500000)))
	assert.True(t, d.Lines[0].Credit.IsZero(), "positive debit must zero the credit")

	require.NoError(t, d.SetField("line-1", FieldCredit, "10.5"))
	assert.True(t, d.Lines[0].Credit.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, d.Lines[0].Debit.IsZero(), "positive credit must zero the debit")

	// a zero entry does not clear the other side
	require.NoError(t, d.SetField("line-1", FieldDebit, "0"))
	assert.True(t, d.Lines[0].Credit.Equal(decimal.RequireFromString("10.5")))

	require.NoError(t, d.SetField("line-1", FieldCredit, ""))
	assert.True(t, d.Lines[0].Credit.IsZero())
}

func TestJournalDraft_SetField_RejectsBadAmounts(t *testing.T) {
	d := newTestDraft()

	for _, v := range []string{"-5", "abc"} {
		err := d.SetField("line-1", FieldDebit, v)
		assert.ErrorIs(t, err, apperrors.ErrValidation, v)
	}
	assert.True(t, d.Lines[0].Debit.IsZero())
}

func TestJournalDraft_SetField_FiscalCorrection(t *testing.T) {
	d := newTestDraft()

	err := d.SetField("line-1", FieldFiscalAdjustment, string(FiscalPPhFinal))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "code requires the flag first")

	require.NoError(t, d.SetField("line-1", FieldIsFiscalCorrection, "true"))
	fc, ok := AsFiscalCorrection(d.Lines[0].Adjustment)
	require.True(t, ok)
	assert.Empty(t, fc.Code)

	require.NoError(t, d.SetField("line-1", FieldFiscalAdjustment, string(FiscalKoreksiPlus)))
	// re-ticking keeps the chosen code
	require.NoError(t, d.SetField("line-1", FieldIsFiscalCorrection, "true"))
	fc, _ = AsFiscalCorrection(d.Lines[0].Adjustment)
	assert.Equal(t, FiscalKoreksiPlus, fc.Code)

	err = d.SetField("line-1", FieldFiscalAdjustment, "bogus")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, d.SetField("line-1", FieldIsFiscalCorrection, "false"))
	assert.Equal(t, NoAdjustment{}, d.Lines[0].Adjustment)
}

func TestJournalDraft_SetField_UnknownFieldAndLine(t *testing.T) {
	d := newTestDraft()

	assert.ErrorIs(t, d.SetField("line-1", DraftField("amount"), "1"), apperrors.ErrValidation)
	assert.ErrorIs(t, d.SetField("nope", FieldComment, "x"), apperrors.ErrNotFound)
	assert.ErrorIs(t, d.SetField("line-1", FieldIsFiscalCorrection, "maybe"), apperrors.ErrValidation)
}

func TestJournalDraft_SnapshotLinesIsACopy(t *testing.T) {
	d := newTestDraft()
	snap := d.SnapshotLines()
	snap[0].AccountID = "changed"
	assert.Empty(t, d.Lines[0].AccountID)
}
