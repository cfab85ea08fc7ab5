package domain

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	base := Transaction{
		Date:        time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC),
		Description: "Client Payment - Project Alpha",
		Amount:      decimal.NewFromInt(3500),
		Direction:   DirectionIncome,
		Category:    "Freelance",
		AccountID:   "acc1",
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid income", func(*Transaction) {}, false},
		{"income with customer", func(t *Transaction) { t.CustomerID = "cust1" }, false},
		{"expense with vendor", func(t *Transaction) { t.Direction = DirectionExpense; t.VendorID = "ven1" }, false},
		{"missing description", func(t *Transaction) { t.Description = "  " }, true},
		{"zero amount", func(t *Transaction) { t.Amount = decimal.Zero }, true},
		{"negative amount", func(t *Transaction) { t.Amount = decimal.NewFromInt(-1) }, true},
		{"bad direction", func(t *Transaction) { t.Direction = "transfer" }, true},
		{"missing account", func(t *Transaction) { t.AccountID = "" }, true},
		{"missing date", func(t *Transaction) { t.Date = time.Time{} }, true},
		{"customer and vendor", func(t *Transaction) { t.CustomerID = "cust1"; t.VendorID = "ven1" }, true},
		{"customer on expense", func(t *Transaction) { t.Direction = DirectionExpense; t.CustomerID = "cust1" }, true},
		{"vendor on income", func(t *Transaction) { t.VendorID = "ven1" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := base
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Software/Hosting", NormalizeCategory(" software/hosting\n"))
	assert.Equal(t, "Salary", NormalizeCategory("Salary"))
	assert.Equal(t, OtherCategory, NormalizeCategory("Groceries"))
	assert.Equal(t, OtherCategory, NormalizeCategory(""))
}

func TestAccountNumberingRule_Validate(t *testing.T) {
	ok := AccountNumberingRule{GroupName: "Aset", Digits: 7, Start: 1000000, End: 1999999}
	assert.NoError(t, ok.Validate())
	assert.True(t, ok.Contains(1101000))
	assert.False(t, ok.Contains(2000000))

	reversed := ok
	reversed.Start, reversed.End = ok.End, ok.Start
	assert.ErrorIs(t, reversed.Validate(), apperrors.ErrValidation)

	wrongWidth := ok
	wrongWidth.Start = 100000
	assert.ErrorIs(t, wrongWidth.Validate(), apperrors.ErrValidation)

	noName := ok
	noName.GroupName = ""
	assert.ErrorIs(t, noName.Validate(), apperrors.ErrValidation)
}
