// Package api exposes the telemetry engine over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/mstanic/telemetry-hub/internal/models"
	"github.com/mstanic/telemetry-hub/internal/store"
	"github.com/mstanic/telemetry-hub/internal/telemetry"
)

type Handler struct {
	store   *store.Store
	service *telemetry.Service
	logger  *slog.Logger
}

func NewHandler(s *store.Store, service *telemetry.Service, logger *slog.Logger) *Handler {
	return &Handler{
		store:   s,
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.ListCustomers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeStorage, "failed to retrieve customers", err)
		return
	}

	responses := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, customerResponse{
			CustomerID: customer.CustomerID,
			Name:       customer.Name,
		})
	}

	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) ListDevices(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	devices, err := h.store.ListDevices(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "customer "+customerID+" not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStorage, "failed to retrieve devices", err)
		return
	}

	responses := make([]deviceResponse, 0, len(devices))
	for i := range devices {
		responses = append(responses, newDeviceResponse(&devices[i]))
	}

	respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) GetDevice(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	deviceID := chi.URLParam(r, "deviceID")

	device, err := h.store.GetDevice(r.Context(), customerID, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "device "+deviceID+" not found for customer "+customerID, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStorage, "failed to retrieve device", err)
		return
	}

	respondJSON(w, http.StatusOK, newDeviceResponse(device))
}

func (h *Handler) SubmitTelemetry(w http.ResponseWriter, r *http.Request) {
	var req submitTelemetryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, "invalid request body", err)
		return
	}

	if err := validateSubmitRequest(&req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidation, err.Error(), nil)
		return
	}

	event := &models.TelemetryEvent{
		CustomerID: req.CustomerID,
		DeviceID:   req.DeviceID,
		EventID:    req.EventID,
		RecordedAt: req.RecordedAt.UTC(),
		Type:       req.Type,
		Value:      req.Value,
		Unit:       req.Unit,
	}

	result, err := h.service.Submit(r.Context(), event)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "device "+req.DeviceID+" not found for customer "+req.CustomerID, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStorage, "failed to process event", err)
		return
	}

	if result.Duplicate {
		h.logger.Info("Duplicate event received, ignoring", "event_id", result.EventID)
	} else {
		h.logger.Debug("Event accepted", "event_id", result.EventID, "customer_id", req.CustomerID, "device_id", req.DeviceID)
	}

	respondJSON(w, http.StatusOK, submitTelemetryResponse{
		EventID:     result.EventID,
		IsDuplicate: result.Duplicate,
	})
}

func (h *Handler) GetTelemetry(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	deviceID := chi.URLParam(r, "deviceID")
	hours := getIntParam(r, "hours", telemetry.DefaultWindowHours)

	events, err := h.service.Query(r.Context(), customerID, deviceID, hours)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "device "+deviceID+" not found for customer "+customerID, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStorage, "failed to retrieve telemetry", err)
		return
	}

	respondJSON(w, http.StatusOK, newEventResponses(events))
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")
	deviceID := chi.URLParam(r, "deviceID")
	hours := getIntParam(r, "hours", telemetry.DefaultWindowHours)

	insights, err := h.service.Insights(r.Context(), customerID, deviceID, hours)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "device "+deviceID+" not found for customer "+customerID, nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeStorage, "failed to compute insights", err)
		return
	}

	respondJSON(w, http.StatusOK, insights)
}
