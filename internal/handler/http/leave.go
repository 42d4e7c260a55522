package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sathish136/mo-sub000/internal/domain/leave"
	"github.com/sathish136/mo-sub000/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeaveRequest(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	ApproveLeaveRequest(w http.ResponseWriter, r *http.Request)
	RejectLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// ListLeaveRequests implements LeaveHandler
func (h *leaveHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	filter := leave.Filter{
		EmployeeID: queryParam(r, "employeeId"),
		Status:     queryParam(r, "status"),
		StartDate:  queryParam(r, "startDate"),
		EndDate:    queryParam(r, "endDate"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// ApproveLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// RejectLeaveRequest implements LeaveHandler
func (h *leaveHandlerImpl) RejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	result, err := h.leaveService.Reject(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}
