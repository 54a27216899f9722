package telemetry

import (
	"context"

	"github.com/mstanic/telemetry-hub/internal/store"
)

// Insights summarizes a device's readings over a trailing window. The numeric
// fields are nil when the window holds no events; Unit is never nil and falls
// back to the configured default for an empty window.
type Insights struct {
	Latest  *float64 `json:"latest"`
	Min     *float64 `json:"min"`
	Average *float64 `json:"average"`
	Max     *float64 `json:"max"`
	Count   int      `json:"count"`
	Unit    string   `json:"unit"`
}

// Insights computes min/max/average/latest/count over the same window as
// Query. The store hands events back newest first with event ID as the
// tie-break, so "latest" is the first row even when recorded times collide.
//
// Unit is copied from the latest event without checking the rest of the
// window; a window mixing units reports min and max under the latest unit's
// label. Single-unit devices are the operating assumption today.
func (s *Service) Insights(ctx context.Context, customerID, deviceID string, hours int) (*Insights, error) {
	if _, err := s.store.GetDevice(ctx, customerID, deviceID); err != nil {
		return nil, err
	}

	events, err := s.store.EventsInWindow(ctx, customerID, deviceID, s.windowStart(hours), store.Descending)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return &Insights{Count: 0, Unit: s.defaultUnit}, nil
	}

	latest := events[0].Value
	min := events[0].Value
	max := events[0].Value
	sum := 0.0

	for _, event := range events {
		if event.Value < min {
			min = event.Value
		}
		if event.Value > max {
			max = event.Value
		}
		sum += event.Value
	}

	average := sum / float64(len(events))

	return &Insights{
		Latest:  &latest,
		Min:     &min,
		Average: &average,
		Max:     &max,
		Count:   len(events),
		Unit:    events[0].Unit,
	}, nil
}
