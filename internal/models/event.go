package models

import (
	"time"
)

// TelemetryEvent is a single scalar reading reported by a device.
//
// EventID carries a unique index across the whole table, not per customer.
// That makes it the dedup key for idempotent ingestion, but it also means a
// cross-tenant EventID collision silently drops the second tenant's event.
// This mirrors how provisioning hands out event IDs today and is kept
// deliberately; see DESIGN.md.
//
// RecordedAt is the device's clock and may arrive out of order. ReceivedAt is
// assigned by the store at acceptance and is never taken from the caller.
type TelemetryEvent struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID string    `gorm:"index:idx_telemetry_events_window,priority:1"`
	DeviceID   string    `gorm:"index:idx_telemetry_events_window,priority:2"`
	EventID    string    `gorm:"uniqueIndex"`
	RecordedAt time.Time `gorm:"index:idx_telemetry_events_window,priority:3"`
	ReceivedAt time.Time
	Type       string
	Value      float64
	Unit       string
}
