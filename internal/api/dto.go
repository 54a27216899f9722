package api

import (
	"time"

	"github.com/mstanic/telemetry-hub/internal/models"
)

// submitTelemetryRequest is the ingestion payload. Field presence is enforced
// with validator tags before the request reaches the dedup gate; Value gets
// an explicit finite check because validator has no notion of NaN.
type submitTelemetryRequest struct {
	CustomerID string    `json:"customerId" validate:"required"`
	DeviceID   string    `json:"deviceId" validate:"required"`
	EventID    string    `json:"eventId" validate:"required"`
	RecordedAt time.Time `json:"recordedAt" validate:"required"`
	Type       string    `json:"type" validate:"required"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit" validate:"required"`
}

type submitTelemetryResponse struct {
	EventID     string `json:"eventId"`
	IsDuplicate bool   `json:"isDuplicate"`
}

type customerResponse struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
}

type deviceResponse struct {
	CustomerID string `json:"customerId"`
	DeviceID   string `json:"deviceId"`
	Label      string `json:"label"`
	Location   string `json:"location"`
}

type eventResponse struct {
	EventID    string    `json:"eventId"`
	RecordedAt time.Time `json:"recordedAt"`
	ReceivedAt time.Time `json:"receivedAt"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
}

func newDeviceResponse(device *models.Device) deviceResponse {
	return deviceResponse{
		CustomerID: device.CustomerID,
		DeviceID:   device.DeviceID,
		Label:      device.Label,
		Location:   device.Location,
	}
}

func newEventResponses(events []models.TelemetryEvent) []eventResponse {
	responses := make([]eventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, eventResponse{
			EventID:    event.EventID,
			RecordedAt: event.RecordedAt,
			ReceivedAt: event.ReceivedAt,
			Type:       event.Type,
			Value:      event.Value,
			Unit:       event.Unit,
		})
	}

	return responses
}
