package services_test

import (
	"context"
	"testing"
	"time"

	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/core/services"
	"github.com/SscSPs/bookkeeping_console/internal/platform/config"
	"github.com/SscSPs/bookkeeping_console/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// seededContainer wires every service over a freshly seeded in-memory store.
func seededContainer(t *testing.T) (*portssvc.ServiceContainer, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SeedDemoData(context.Background()))
	cfg := &config.Config{CategorizeTimeout: time.Second, DraftTTL: time.Hour}
	return services.NewServiceContainer(cfg, memory.NewRepositoryProvider(store), nil), store
}
