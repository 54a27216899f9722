// Package seed provisions demo tenants and a day of telemetry. It runs once
// at startup when enabled in settings and writes through the same store
// interface as live traffic, so seeded rows get ReceivedAt stamps and dedup
// like any other event.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mstanic/telemetry-hub/internal/models"
	"github.com/mstanic/telemetry-hub/internal/store"
)

// Run is a no-op when any customer already exists.
func Run(ctx context.Context, s *store.Store, logger *slog.Logger) error {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if len(customers) > 0 {
		logger.Debug("Database already seeded")
		return nil
	}

	logger.Info("Seeding demo data")

	for _, customer := range demoCustomers() {
		if err := s.CreateCustomer(ctx, &customer); err != nil {
			return fmt.Errorf("seeding customer: %w", err)
		}
	}

	for _, device := range demoDevices() {
		if err := s.CreateDevice(ctx, &device); err != nil {
			return fmt.Errorf("seeding device: %w", err)
		}
	}

	for _, event := range demoEvents(time.Now().UTC()) {
		if err := s.InsertEvent(ctx, &event); err != nil {
			return fmt.Errorf("seeding event: %w", err)
		}
	}

	logger.Info("Demo data seeded")
	return nil
}

func demoCustomers() []models.Customer {
	now := time.Now().UTC()

	return []models.Customer{
		{CustomerID: "acme-123", Name: "Acme Corporation", CreatedAt: now},
		{CustomerID: "beta-456", Name: "Beta Industries", CreatedAt: now},
	}
}

func demoDevices() []models.Device {
	now := time.Now().UTC()

	return []models.Device{
		{CustomerID: "acme-123", DeviceID: "dev-001", Label: "Boiler #3", Location: "Plant A", CreatedAt: now},
		{CustomerID: "acme-123", DeviceID: "dev-002", Label: "Chiller #1", Location: "Plant A", CreatedAt: now},
		{CustomerID: "beta-456", DeviceID: "dev-100", Label: "Pump #9", Location: "Site B", CreatedAt: now},
	}
}

// demoEvents returns a day of readings for the boiler and the pump. The
// evt-a3 reading carries an older recorded time than evt-a2 on purpose: the
// demo data should exercise out-of-order arrival.
func demoEvents(now time.Time) []models.TelemetryEvent {
	return []models.TelemetryEvent{
		{
			CustomerID: "acme-123", DeviceID: "dev-001", EventID: "evt-a0",
			RecordedAt: now.Add(-23*time.Hour - 30*time.Minute),
			Type:       "temperature", Value: 21.0, Unit: "C",
		},
		{
			CustomerID: "acme-123", DeviceID: "dev-001", EventID: "evt-a1",
			RecordedAt: now.Add(-23 * time.Hour),
			Type:       "temperature", Value: 21.5, Unit: "C",
		},
		{
			CustomerID: "acme-123", DeviceID: "dev-001", EventID: "evt-a2",
			RecordedAt: now.Add(-22*time.Hour - 30*time.Minute),
			Type:       "temperature", Value: 22.0, Unit: "C",
		},
		{
			CustomerID: "acme-123", DeviceID: "dev-001", EventID: "evt-a3",
			RecordedAt: now.Add(-22*time.Hour - 45*time.Minute),
			Type:       "temperature", Value: 21.8, Unit: "C",
		},
		{
			CustomerID: "acme-123", DeviceID: "dev-001", EventID: "evt-a4",
			RecordedAt: now.Add(-1 * time.Hour),
			Type:       "temperature", Value: 23.1, Unit: "C",
		},
		{
			CustomerID: "beta-456", DeviceID: "dev-100", EventID: "evt-b0",
			RecordedAt: now.Add(-5 * time.Hour),
			Type:       "pressure", Value: 101.3, Unit: "kPa",
		},
		{
			CustomerID: "beta-456", DeviceID: "dev-100", EventID: "evt-b1",
			RecordedAt: now.Add(-2 * time.Hour),
			Type:       "pressure", Value: 99.8, Unit: "kPa",
		},
	}
}
