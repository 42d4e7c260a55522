package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/handler/http/response"
)

type OvertimeHandler interface {
	ListEligible(w http.ResponseWriter, r *http.Request)
	CreateOvertimeRequest(w http.ResponseWriter, r *http.Request)
	ListOvertimeRequests(w http.ResponseWriter, r *http.Request)
	ApproveOvertimeRequest(w http.ResponseWriter, r *http.Request)
	RejectOvertimeRequest(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.Service
}

func NewOvertimeHandler(overtimeService overtime.Service) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

// ListEligible implements OvertimeHandler
func (h *overtimeHandlerImpl) ListEligible(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	results, err := h.overtimeService.ListEligible(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateOvertimeRequest implements OvertimeHandler
func (h *overtimeHandlerImpl) CreateOvertimeRequest(w http.ResponseWriter, r *http.Request) {
	var req overtime.CreateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overtimeService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", result)
}

// ListOvertimeRequests implements OvertimeHandler
func (h *overtimeHandlerImpl) ListOvertimeRequests(w http.ResponseWriter, r *http.Request) {
	filter := overtime.Filter{
		EmployeeID: queryParam(r, "employeeId"),
		Status:     queryParam(r, "status"),
		StartDate:  queryParam(r, "startDate"),
		EndDate:    queryParam(r, "endDate"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.overtimeService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ApproveOvertimeRequest implements OvertimeHandler
func (h *overtimeHandlerImpl) ApproveOvertimeRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime request ID is required", nil)
		return
	}

	result, err := h.overtimeService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", result)
}

// RejectOvertimeRequest implements OvertimeHandler
func (h *overtimeHandlerImpl) RejectOvertimeRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Overtime request ID is required", nil)
		return
	}

	result, err := h.overtimeService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", result)
}
