package http

import (
	"net/http"

	"github.com/sathish136/mo-sub000/internal/domain/report"
	"github.com/sathish136/mo-sub000/internal/handler/http/response"
)

type ReportHandler interface {
	DailySheet(w http.ResponseWriter, r *http.Request)
	MonthlySheet(w http.ResponseWriter, r *http.Request)
	LateArrivals(w http.ResponseWriter, r *http.Request)
	HalfDays(w http.ResponseWriter, r *http.Request)
	ShortLeaveUsage(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func dailyRequestFromQuery(r *http.Request) report.DailyReportRequest {
	return report.DailyReportRequest{
		Date:       r.URL.Query().Get("date"),
		EmployeeID: queryParam(r, "employeeId"),
		Group:      queryParam(r, "group"),
	}
}

func rangeRequestFromQuery(r *http.Request) report.RangeReportRequest {
	return report.RangeReportRequest{
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		EmployeeID: queryParam(r, "employeeId"),
		Group:      queryParam(r, "group"),
	}
}

// DailySheet implements ReportHandler
func (h *reportHandlerImpl) DailySheet(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.DailySheet(r.Context(), dailyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MonthlySheet implements ReportHandler
func (h *reportHandlerImpl) MonthlySheet(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.MonthlySheet(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// LateArrivals implements ReportHandler
func (h *reportHandlerImpl) LateArrivals(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.LateArrivals(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// HalfDays implements ReportHandler
func (h *reportHandlerImpl) HalfDays(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.HalfDays(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ShortLeaveUsage implements ReportHandler
func (h *reportHandlerImpl) ShortLeaveUsage(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ShortLeaveUsage(r.Context(), rangeRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
