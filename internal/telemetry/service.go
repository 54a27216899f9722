// Package telemetry implements event ingestion and windowed queries over the
// store: idempotent submission keyed on event ID, trailing-window retrieval
// ordered by recorded time, and aggregate insights.
package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/mstanic/telemetry-hub/internal/models"
	"github.com/mstanic/telemetry-hub/internal/store"
)

// DefaultWindowHours is substituted when a caller omits the window size or
// supplies a non-positive one. Zero and negative values are not errors.
const DefaultWindowHours = 24

type Service struct {
	store       *store.Store
	defaultUnit string
	now         func() time.Time
}

func NewService(s *store.Store, defaultUnit string) *Service {
	return &Service{
		store:       s,
		defaultUnit: defaultUnit,
		now:         time.Now,
	}
}

// SubmitResult reports the outcome of an event submission. Duplicate
// submissions are successes, not errors.
type SubmitResult struct {
	EventID   string
	Duplicate bool
}

// Submit ingests one event. The device must already exist for its customer;
// otherwise store.ErrNotFound comes back and nothing is written.
//
// Dedup is by event ID equality alone. The first writer wins: a duplicate
// submission is discarded without comparing or merging payloads, even when
// its value or recorded time differ from the stored row.
func (s *Service) Submit(ctx context.Context, event *models.TelemetryEvent) (*SubmitResult, error) {
	if _, err := s.store.GetDevice(ctx, event.CustomerID, event.DeviceID); err != nil {
		return nil, err
	}

	err := s.store.InsertEvent(ctx, event)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEvent) {
			return &SubmitResult{EventID: event.EventID, Duplicate: true}, nil
		}
		return nil, err
	}

	return &SubmitResult{EventID: event.EventID, Duplicate: false}, nil
}

// Query returns the device's events from the trailing window, ascending by
// recorded time. The window is [now - hours, now], inclusive at the lower
// bound, and is evaluated against the clock on every call.
func (s *Service) Query(ctx context.Context, customerID, deviceID string, hours int) ([]models.TelemetryEvent, error) {
	if _, err := s.store.GetDevice(ctx, customerID, deviceID); err != nil {
		return nil, err
	}

	return s.store.EventsInWindow(ctx, customerID, deviceID, s.windowStart(hours), store.Ascending)
}

func (s *Service) windowStart(hours int) time.Time {
	if hours <= 0 {
		hours = DefaultWindowHours
	}

	return s.now().UTC().Add(-time.Duration(hours) * time.Hour)
}
