package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
	"hospitrack/internal/usecase"
	"hospitrack/pkg/response"
	"hospitrack/pkg/validator"
)

type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
	validator    *validator.CustomValidator
}

func NewAlertHandler(alertUsecase usecase.AlertUsecase, validator *validator.CustomValidator) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
		validator:    validator,
	}
}

func (h *AlertHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAlertRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	alert, err := h.alertUsecase.CreateAlert(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidAlertSeverity) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to create alert")
		return
	}

	response.Message(w, http.StatusCreated, "Alert created successfully", map[string]interface{}{
		"id": alert.ID,
	})
}

// GetAllAlerts lists alerts newest first, filtered by ?ward=, ?severity= and ?resolved=
func (h *AlertHandler) GetAllAlerts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &entity.AlertFilter{
		Ward:     query.Get("ward"),
		Severity: query.Get("severity"),
	}

	if raw := query.Get("resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "Invalid resolved flag")
			return
		}
		filter.Resolved = &resolved
	}

	alerts, err := h.alertUsecase.GetAllAlerts(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get alerts")
		return
	}

	response.JSON(w, http.StatusOK, alerts)
}

func (h *AlertHandler) GetAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	alert, err := h.alertUsecase.GetAlert(r.Context(), id)
	if err != nil {
		writeAlertError(w, err, "Failed to get alert")
		return
	}

	response.JSON(w, http.StatusOK, alert)
}

func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	var req dto.AcknowledgeAlertRequest
	if !decodeOptional(w, r, h.validator, &req) {
		return
	}

	if err := h.alertUsecase.Acknowledge(r.Context(), id, &req); err != nil {
		writeAlertError(w, err, "Failed to acknowledge alert")
		return
	}

	response.Message(w, http.StatusOK, "Alert acknowledged", nil)
}

func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid alert ID")
		return
	}

	var req dto.ResolveAlertRequest
	if !decodeOptional(w, r, h.validator, &req) {
		return
	}

	if err := h.alertUsecase.Resolve(r.Context(), id, &req); err != nil {
		writeAlertError(w, err, "Failed to resolve alert")
		return
	}

	response.Message(w, http.StatusOK, "Alert resolved", nil)
}

func writeAlertError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, usecase.ErrAlertNotFound) {
		response.NotFound(w, "Alert not found")
		return
	}
	response.InternalServerError(w, fallback)
}
