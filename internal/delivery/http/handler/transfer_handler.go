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

type TransferHandler struct {
	transferUsecase usecase.TransferUsecase
	validator       *validator.CustomValidator
}

func NewTransferHandler(transferUsecase usecase.TransferUsecase, validator *validator.CustomValidator) *TransferHandler {
	return &TransferHandler{
		transferUsecase: transferUsecase,
		validator:       validator,
	}
}

// RequestTransfer records a pending bed transfer
// @Summary Request transfer
// @Tags Transfers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransferRequest true "Create Transfer Request"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /transfers/ [post]
func (h *TransferHandler) RequestTransfer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	transfer, err := h.transferUsecase.RequestTransfer(r.Context(), &req)
	if err != nil {
		writeTransferError(w, err, "Failed to request transfer")
		return
	}

	response.Message(w, http.StatusCreated, "Transfer requested successfully", map[string]interface{}{
		"id":       transfer.ID,
		"transfer": transfer,
	})
}

func (h *TransferHandler) GetAllTransfers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := &entity.TransferFilter{}

	if status := query.Get("status"); status != "" {
		if !entity.TransferStatus(status).IsValid() {
			response.BadRequest(w, "Invalid transfer status")
			return
		}
		filter.Status = status
	}
	if raw := query.Get("patient_id"); raw != "" {
		patientID, err := strconv.Atoi(raw)
		if err != nil || patientID <= 0 {
			response.BadRequest(w, "Invalid patient ID")
			return
		}
		filter.PatientID = patientID
	}

	transfers, err := h.transferUsecase.GetAllTransfers(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to get transfers")
		return
	}

	response.JSON(w, http.StatusOK, transfers)
}

func (h *TransferHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid transfer ID")
		return
	}

	transfer, err := h.transferUsecase.GetTransfer(r.Context(), id)
	if err != nil {
		writeTransferError(w, err, "Failed to get transfer")
		return
	}

	response.JSON(w, http.StatusOK, transfer)
}

// Approve completes the bed move (admin or doctor)
func (h *TransferHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid transfer ID")
		return
	}

	var req dto.ApproveTransferRequest
	if !decodeOptional(w, r, h.validator, &req) {
		return
	}

	if err := h.transferUsecase.Approve(r.Context(), id, &req); err != nil {
		writeTransferError(w, err, "Failed to approve transfer")
		return
	}

	response.Message(w, http.StatusOK, "Transfer approved and completed", nil)
}

func (h *TransferHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.BadRequest(w, "Invalid transfer ID")
		return
	}

	var req dto.RejectTransferRequest
	if !decodeOptional(w, r, h.validator, &req) {
		return
	}

	if err := h.transferUsecase.Reject(r.Context(), id, &req); err != nil {
		writeTransferError(w, err, "Failed to reject transfer")
		return
	}

	response.Message(w, http.StatusOK, "Transfer rejected", nil)
}

func writeTransferError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrTransferNotFound):
		response.NotFound(w, "Transfer not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrBedNotFound):
		response.NotFound(w, "Bed not found")
	case errors.Is(err, usecase.ErrSameBedTransfer):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrBedNotAvailable),
		errors.Is(err, usecase.ErrTransferNotPending),
		errors.Is(err, usecase.ErrTransferStale):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
