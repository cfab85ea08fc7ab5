package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
)

// staticCategorizer is used when no model backend is configured.
type staticCategorizer struct{}

// NewStaticCategorizer returns a Categorizer that always answers domain.OtherCategory.
func NewStaticCategorizer() portssvc.Categorizer {
	return staticCategorizer{}
}

func (staticCategorizer) Categorize(context.Context, string) (string, error) {
	return domain.OtherCategory, nil
}
