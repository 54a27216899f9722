package seed

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstanic/telemetry-hub/internal/database"
	"github.com/mstanic/telemetry-hub/internal/store"
)

func TestRunSeedsOnce(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)

	s := store.New(db)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Run(ctx, s, logger))

	// A second run against seeded data must be a no-op, not a constraint error.
	require.NoError(t, Run(ctx, s, logger))

	customers, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	devices, err := s.ListDevices(ctx, "acme-123")
	require.NoError(t, err)
	assert.Len(t, devices, 2)

	count, err := s.CountEventsByEventID(ctx, "evt-a0")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
