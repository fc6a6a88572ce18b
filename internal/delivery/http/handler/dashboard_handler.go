package handler

import (
	"net/http"

	"hospitrack/internal/usecase"
	"hospitrack/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetSystemStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get system stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

func (h *DashboardHandler) GetBedOccupancy(w http.ResponseWriter, r *http.Request) {
	occupancy, err := h.dashboardUsecase.GetBedOccupancy(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bed occupancy")
		return
	}

	response.JSON(w, http.StatusOK, occupancy)
}

func (h *DashboardHandler) GetPatientStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetPatientStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patient stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
