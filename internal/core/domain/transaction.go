package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Direction says whether a transaction brings money in or sends it out.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

// IsValid reports whether d is one of the known directions.
func (d Direction) IsValid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// OtherCategory is the category used whenever no better one is known.
const OtherCategory = "Other"

// TransactionCategories is the allow-list offered to users and to the categorizer.
var TransactionCategories = []string{
	"Dining Out",
	"Freelance",
	"Meals & Entertainment",
	"Office Supplies",
	"Salary",
	"Shopping",
	"Software/Hosting",
	"Transportation",
	"Utilities",
	OtherCategory,
}

// NormalizeCategory maps a free-form answer onto the allow-list, case-insensitively.
// Unknown values become OtherCategory.
func NormalizeCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	idx := slices.IndexFunc(TransactionCategories, func(c string) bool {
		return strings.EqualFold(c, raw)
	})
	if idx < 0 {
		return OtherCategory
	}
	return TransactionCategories[idx]
}

// Transaction is a single-sided cash movement against one Account.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // always positive; Direction gives the sign
	Direction     Direction       `json:"direction"`
	Category      string          `json:"category"`
	AccountID     string          `json:"accountID"`
	CustomerID    string          `json:"customerID,omitempty"`
	VendorID      string          `json:"vendorID,omitempty"`
	AuditFields
}

// Validate checks the shape of a transaction before it reaches the store.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !t.Direction.IsValid() {
		return fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, t.Direction)
	}
	if t.AccountID == "" {
		return fmt.Errorf("%w: accountID is required", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if t.CustomerID != "" && t.VendorID != "" {
		return fmt.Errorf("%w: a transaction references either a customer or a vendor, not both", apperrors.ErrValidation)
	}
	if t.CustomerID != "" && t.Direction != DirectionIncome {
		return fmt.Errorf("%w: customers may only be attached to income", apperrors.ErrValidation)
	}
	if t.VendorID != "" && t.Direction != DirectionExpense {
		return fmt.Errorf("%w: vendors may only be attached to expenses", apperrors.ErrValidation)
	}
	return nil
}
