package telemetry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstanic/telemetry-hub/internal/database"
	"github.com/mstanic/telemetry-hub/internal/models"
	"github.com/mstanic/telemetry-hub/internal/store"
)

// The service clock is pinned so window boundaries are exact.
var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)

	s := store.New(db)
	ctx := context.Background()

	require.NoError(t, s.CreateCustomer(ctx, &models.Customer{
		CustomerID: "acme-123",
		Name:       "Acme Corporation",
		CreatedAt:  testNow,
	}))
	require.NoError(t, s.CreateDevice(ctx, &models.Device{
		CustomerID: "acme-123",
		DeviceID:   "dev-001",
		Label:      "Boiler #3",
		Location:   "Plant A",
		CreatedAt:  testNow,
	}))

	service := NewService(s, "C")
	service.now = func() time.Time { return testNow }

	return service, s
}

func submit(t *testing.T, service *Service, eventID string, recordedAt time.Time, value float64, unit string) *SubmitResult {
	t.Helper()

	result, err := service.Submit(context.Background(), &models.TelemetryEvent{
		CustomerID: "acme-123",
		DeviceID:   "dev-001",
		EventID:    eventID,
		RecordedAt: recordedAt,
		Type:       "temperature",
		Value:      value,
		Unit:       unit,
	})
	require.NoError(t, err)

	return result
}

func TestSubmitIsIdempotent(t *testing.T) {
	service, s := newTestService(t)

	first := submit(t, service, "evt-x1", testNow.Add(-time.Hour), 21.0, "C")
	assert.False(t, first.Duplicate)

	// Resubmission with a different value is discarded, not merged.
	second := submit(t, service, "evt-x1", testNow.Add(-time.Hour), 42.0, "C")
	assert.True(t, second.Duplicate)

	count, err := s.CountEventsByEventID(context.Background(), "evt-x1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	events, err := service.Query(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 21.0, events[0].Value)
}

func TestSubmitSamePayloadNewEventIDIsNotDuplicate(t *testing.T) {
	service, _ := newTestService(t)

	submit(t, service, "evt-x1", testNow.Add(-time.Hour), 21.0, "C")
	result := submit(t, service, "evt-x2", testNow.Add(-time.Hour), 21.0, "C")

	assert.False(t, result.Duplicate)
}

func TestSubmitUnknownDevice(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Submit(context.Background(), &models.TelemetryEvent{
		CustomerID: "acme-123",
		DeviceID:   "dev-999",
		EventID:    "evt-1",
		RecordedAt: testNow,
		Type:       "temperature",
		Value:      21.0,
		Unit:       "C",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuerySortsOutOfOrderArrivals(t *testing.T) {
	service, _ := newTestService(t)

	submit(t, service, "evt-3", testNow.Add(-1*time.Hour), 3.0, "C")
	submit(t, service, "evt-1", testNow.Add(-3*time.Hour), 1.0, "C")
	submit(t, service, "evt-2", testNow.Add(-2*time.Hour), 2.0, "C")

	events, err := service.Query(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "evt-1", events[0].EventID)
	assert.Equal(t, "evt-2", events[1].EventID)
	assert.Equal(t, "evt-3", events[2].EventID)
}

func TestQueryWindowLowerBoundIsInclusive(t *testing.T) {
	service, _ := newTestService(t)

	submit(t, service, "evt-edge", testNow.Add(-24*time.Hour), 1.0, "C")
	submit(t, service, "evt-old", testNow.Add(-24*time.Hour-time.Second), 2.0, "C")

	events, err := service.Query(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt-edge", events[0].EventID)
}

func TestQueryNonPositiveHoursUsesDefault(t *testing.T) {
	service, _ := newTestService(t)

	submit(t, service, "evt-in", testNow.Add(-23*time.Hour), 1.0, "C")
	submit(t, service, "evt-out", testNow.Add(-25*time.Hour), 2.0, "C")

	for _, hours := range []int{0, -5} {
		events, err := service.Query(context.Background(), "acme-123", "dev-001", hours)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "evt-in", events[0].EventID)
	}
}

func TestQueryUnknownDevice(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Query(context.Background(), "acme-123", "dev-999", 24)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInsightsAggregates(t *testing.T) {
	service, _ := newTestService(t)

	submit(t, service, "evt-1", testNow.Add(-3*time.Hour), 21.0, "C")
	submit(t, service, "evt-2", testNow.Add(-2*time.Hour), 21.5, "C")
	submit(t, service, "evt-3", testNow.Add(-1*time.Hour), 22.0, "C")

	insights, err := service.Insights(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)

	require.NotNil(t, insights.Min)
	require.NotNil(t, insights.Max)
	require.NotNil(t, insights.Average)
	require.NotNil(t, insights.Latest)
	assert.Equal(t, 21.0, *insights.Min)
	assert.Equal(t, 22.0, *insights.Max)
	assert.Equal(t, 21.5, *insights.Average)
	assert.Equal(t, 22.0, *insights.Latest)
	assert.Equal(t, 3, insights.Count)
	assert.Equal(t, "C", insights.Unit)
}

func TestInsightsEmptyWindow(t *testing.T) {
	service, _ := newTestService(t)

	insights, err := service.Insights(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)

	assert.Equal(t, 0, insights.Count)
	assert.Nil(t, insights.Latest)
	assert.Nil(t, insights.Min)
	assert.Nil(t, insights.Average)
	assert.Nil(t, insights.Max)
	assert.Equal(t, "C", insights.Unit)
}

func TestInsightsLatestTieBreaksOnEventID(t *testing.T) {
	service, _ := newTestService(t)

	recordedAt := testNow.Add(-time.Hour)
	submit(t, service, "evt-a", recordedAt, 1.0, "C")
	submit(t, service, "evt-b", recordedAt, 2.0, "C")

	insights, err := service.Insights(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)

	require.NotNil(t, insights.Latest)
	assert.Equal(t, 2.0, *insights.Latest)
}

func TestInsightsReportLatestUnit(t *testing.T) {
	service, _ := newTestService(t)

	submit(t, service, "evt-1", testNow.Add(-2*time.Hour), 70.0, "F")
	submit(t, service, "evt-2", testNow.Add(-1*time.Hour), 21.0, "C")

	insights, err := service.Insights(context.Background(), "acme-123", "dev-001", 24)
	require.NoError(t, err)

	// Mixed-unit windows report the latest event's unit for every aggregate.
	assert.Equal(t, "C", insights.Unit)
}

func TestInsightsUnknownDevice(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Insights(context.Background(), "acme-123", "dev-999", 24)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
