package dto

import (
	"reflect"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators teaches v about decimal amounts and fiscal codes.
// Decimals are validated as float64 so the numeric tags (gt, gte, ...) apply to them.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return v.RegisterValidation("fiscal_code", validateFiscalCode)
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func validateFiscalCode(fl validator.FieldLevel) bool {
	return domain.FiscalCode(fl.Field().String()).IsValid()
}
