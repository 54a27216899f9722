package api

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() submitTelemetryRequest {
	return submitTelemetryRequest{
		CustomerID: "acme-123",
		DeviceID:   "dev-001",
		EventID:    "evt-1",
		RecordedAt: time.Now().UTC(),
		Type:       "temperature",
		Value:      21.0,
		Unit:       "C",
	}
}

func TestValidateSubmitRequest(t *testing.T) {
	req := validRequest()
	require.NoError(t, validateSubmitRequest(&req))
}

func TestValidateSubmitRequestRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*submitTelemetryRequest)
	}{
		{"customerId", func(r *submitTelemetryRequest) { r.CustomerID = "" }},
		{"deviceId", func(r *submitTelemetryRequest) { r.DeviceID = "" }},
		{"eventId", func(r *submitTelemetryRequest) { r.EventID = "" }},
		{"recordedAt", func(r *submitTelemetryRequest) { r.RecordedAt = time.Time{} }},
		{"type", func(r *submitTelemetryRequest) { r.Type = "" }},
		{"unit", func(r *submitTelemetryRequest) { r.Unit = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validateSubmitRequest(&req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateSubmitRequestRejectsNonFiniteValues(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		req := validRequest()
		req.Value = value

		assert.Error(t, validateSubmitRequest(&req))
	}
}
