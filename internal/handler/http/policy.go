package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/handler/http/response"
)

type PolicyHandler interface {
	GetWorkingHours(w http.ResponseWriter, r *http.Request)
	GetGroupWorkingHours(w http.ResponseWriter, r *http.Request)
	UpdateWorkingHours(w http.ResponseWriter, r *http.Request)
}

type policyHandlerImpl struct {
	policyService policy.Service
}

func NewPolicyHandler(policyService policy.Service) PolicyHandler {
	return &policyHandlerImpl{
		policyService: policyService,
	}
}

// GetWorkingHours implements PolicyHandler
func (h *policyHandlerImpl) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.policyService.GetGroupWorkingHours(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetGroupWorkingHours implements PolicyHandler
func (h *policyHandlerImpl) GetGroupWorkingHours(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	if group == "" {
		response.BadRequest(w, "Group is required", nil)
		return
	}

	result, err := h.policyService.GetGroupPolicy(r.Context(), group)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWorkingHours implements PolicyHandler
func (h *policyHandlerImpl) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	if group == "" {
		response.BadRequest(w, "Group is required", nil)
		return
	}

	var req policy.UpdateWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Group = group

	result, err := h.policyService.UpdateGroupWorkingHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Working hours updated", result)
}
