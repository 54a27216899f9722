// Package store wraps the database with the keyed lookups and the
// duplicate-aware event insert the rest of the system is built on.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mstanic/telemetry-hub/internal/models"
)

var (
	// ErrNotFound reports a missing customer or device. Handlers map it to
	// 404 so callers can tell "nothing there" from "system broken".
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEvent reports an insert that lost to an earlier event with
	// the same event ID. Not a failure; the ingest path converts it into a
	// successful duplicate response.
	ErrDuplicateEvent = errors.New("event already recorded")
)

// SortOrder selects the recorded_at traversal direction for window queries.
// Event ID breaks ties in the same direction, so the order is total and
// queries are deterministic under equal timestamps.
type SortOrder string

const (
	Ascending  SortOrder = "recorded_at ASC, event_id ASC"
	Descending SortOrder = "recorded_at DESC, event_id DESC"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// InsertEvent persists a single telemetry event. ReceivedAt is stamped here
// and never taken from the caller.
//
// Uniqueness of EventID is enforced by the database index, not by a prior
// lookup. Two racing submissions of the same event ID both reach the insert;
// exactly one wins the constraint and the loser gets ErrDuplicateEvent. A
// read-then-write check would let both pass.
func (s *Store) InsertEvent(ctx context.Context, event *models.TelemetryEvent) error {
	event.ReceivedAt = time.Now().UTC()

	err := s.db.WithContext(ctx).Create(event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("event %s: %w", event.EventID, ErrDuplicateEvent)
		}
		return fmt.Errorf("failed to insert event %s: %w", event.EventID, err)
	}

	return nil
}

// EventsInWindow returns the device's events with recorded_at >= since,
// inclusive, in the requested order. The window is unbounded above and the
// result set is uncapped; a device that reports densely over a huge window
// can make this arbitrarily large.
func (s *Store) EventsInWindow(ctx context.Context, customerID, deviceID string, since time.Time, order SortOrder) ([]models.TelemetryEvent, error) {
	var events []models.TelemetryEvent

	err := s.db.WithContext(ctx).
		Where("customer_id = ? AND device_id = ? AND recorded_at >= ?", customerID, deviceID, since).
		Order(string(order)).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query events for device %s/%s: %w", customerID, deviceID, err)
	}

	return events, nil
}

// CountEventsByEventID exists for tests and operational checks; the ingest
// path never uses it.
func (s *Store) CountEventsByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64

	err := s.db.WithContext(ctx).
		Model(&models.TelemetryEvent{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count events for %s: %w", eventID, err)
	}

	return count, nil
}
