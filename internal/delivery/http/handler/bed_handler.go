package handler

import (
	"errors"
	"net/http"

	"hospitrack/internal/delivery/dto"
	"hospitrack/internal/domain/entity"
	"hospitrack/internal/usecase"
	"hospitrack/pkg/response"
	"hospitrack/pkg/validator"
)

type BedHandler struct {
	bedUsecase usecase.BedUsecase
	validator  *validator.CustomValidator
}

func NewBedHandler(bedUsecase usecase.BedUsecase, validator *validator.CustomValidator) *BedHandler {
	return &BedHandler{
		bedUsecase: bedUsecase,
		validator:  validator,
	}
}

// CreateBed handles bed provisioning (admin only)
// @Summary Create bed
// @Tags Beds
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBedRequest true "Create Bed Request"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} response.ErrorResponse
// @Router /beds/ [post]
func (h *BedHandler) CreateBed(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBedRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	bed, err := h.bedUsecase.CreateBed(r.Context(), &req)
	if err != nil {
		writeBedError(w, err, "Failed to create bed")
		return
	}

	response.Message(w, http.StatusCreated, "Bed created successfully", map[string]interface{}{
		"id":  bed.ID,
		"bed": bed,
	})
}

// GetAllBeds lists beds filtered by ?ward= and ?status=
// @Summary List beds
// @Tags Beds
// @Security BearerAuth
// @Produce json
// @Param ward query string false "Ward"
// @Param status query string false "Status"
// @Success 200 {array} dto.BedResponse
// @Router /beds/ [get]
func (h *BedHandler) GetAllBeds(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &entity.BedFilter{
		Ward:   query.Get("ward"),
		Status: query.Get("status"),
	}

	beds, err := h.bedUsecase.GetAllBeds(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get beds")
		return
	}

	response.JSON(w, http.StatusOK, beds)
}

func (h *BedHandler) GetBed(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid bed ID")
		return
	}

	bed, err := h.bedUsecase.GetBed(r.Context(), id)
	if err != nil {
		writeBedError(w, err, "Failed to get bed")
		return
	}

	response.JSON(w, http.StatusOK, bed)
}

func (h *BedHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid bed ID")
		return
	}

	var req dto.UpdateBedStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	bed, err := h.bedUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		writeBedError(w, err, "Failed to update bed status")
		return
	}

	response.Message(w, http.StatusOK, "Bed status updated to "+bed.Status, nil)
}

func (h *BedHandler) AssignPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid bed ID")
		return
	}

	var req dto.AssignBedRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	if err := h.bedUsecase.AssignPatient(r.Context(), id, &req); err != nil {
		writeBedError(w, err, "Failed to assign patient")
		return
	}

	response.Message(w, http.StatusOK, "Patient assigned successfully", nil)
}

func (h *BedHandler) Release(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid bed ID")
		return
	}

	if err := h.bedUsecase.Release(r.Context(), id); err != nil {
		writeBedError(w, err, "Failed to release bed")
		return
	}

	response.Message(w, http.StatusOK, "Bed released successfully", nil)
}

func writeBedError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrBedNotFound):
		response.NotFound(w, "Bed not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrInvalidBedStatus):
		response.BadRequest(w, "Invalid status. Must be one of: Available, Occupied, Cleaning, Maintenance")
	case errors.Is(err, usecase.ErrUseAssignForOccupancy), errors.Is(err, usecase.ErrInvalidBedNumber):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrDuplicateBedNumber),
		errors.Is(err, usecase.ErrBedNotAvailable),
		errors.Is(err, usecase.ErrBedNotOccupied),
		errors.Is(err, usecase.ErrBedOccupied),
		errors.Is(err, usecase.ErrPatientAlreadyAssigned):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
