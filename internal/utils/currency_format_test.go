package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500000", "500.000,00"},
		{"0", "0,00"},
		{"5210.55", "5.210,55"},
		{"12.345", "12,35"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatWithPrecision_Negative(t *testing.T) {
	got := FormatWithPrecision(decimal.RequireFromString("-200000"), 2)
	assert.Contains(t, got, "200.000,00")
	assert.Contains(t, got, "-")
}
