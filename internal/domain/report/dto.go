package report

import (
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// DailyReportRequest selects one calendar date, optionally narrowed to one
// employee or one group.
type DailyReportRequest struct {
	Date       string  `json:"date"`
	EmployeeID *string `json:"employeeId,omitempty"`
	Group      *string `json:"group,omitempty"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Group != nil && !validator.IsInSlice(*r.Group, policy.ValidGroups()) {
		errs = append(errs, validator.ValidationError{
			Field:   "group",
			Message: "group must be one of: group_a, group_b",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Day returns the parsed date; call after Validate.
func (r *DailyReportRequest) Day() time.Time {
	d, _ := time.Parse("2006-01-02", r.Date)
	return d
}

// RangeReportRequest selects an inclusive date range.
type RangeReportRequest struct {
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	EmployeeID *string `json:"employeeId,omitempty"`
	Group      *string `json:"group,omitempty"`
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if r.Group != nil && !validator.IsInSlice(*r.Group, policy.ValidGroups()) {
		errs = append(errs, validator.ValidationError{
			Field:   "group",
			Message: "group must be one of: group_a, group_b",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range returns the parsed [start, end] pair; call after Validate.
func (r *RangeReportRequest) Range() (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", r.StartDate)
	end, _ := time.Parse("2006-01-02", r.EndDate)
	return start, end
}

// DailyRow is one employee's fully derived attendance for one date. The field
// names are part of the wire contract consumed by the UI.
type DailyRow struct {
	EmployeeID       string   `json:"employeeId"`
	FullName         string   `json:"fullName"`
	EmployeeGroup    string   `json:"employeeGroup"`
	Date             string   `json:"date"`
	InTime           *string  `json:"inTime"`
	OutTime          *string  `json:"outTime"`
	TotalHours       *float64 `json:"totalHours"`
	IsLate           bool     `json:"isLate"`
	IsHalfDay        bool     `json:"isHalfDay"`
	OnShortLeave     bool     `json:"onShortLeave"`
	Status           string   `json:"status"`
	ActualHours      float64  `json:"actualHours"`
	RequiredHours    float64  `json:"requiredHours"`
	OTHours          float64  `json:"otHours"`
	OTApprovalStatus string   `json:"otApprovalStatus"`
	// OTOverrideHours carries an explicit request's hours when one exists, so
	// both the calculated and the overriding value stay visible.
	OTOverrideHours *float64 `json:"otOverrideHours,omitempty"`
	Anomaly         bool     `json:"anomaly,omitempty"`
}

// DayCell is one calendar day inside a monthly sheet row.
type DayCell struct {
	InTime      *string  `json:"inTime"`
	OutTime     *string  `json:"outTime"`
	WorkedHours *float64 `json:"workedHours"`
	Status      string   `json:"status"` // sheet code: P, LT, HD, SL, AB, LV, HL
	Overtime    float64  `json:"overtime"`
}

// MonthlyRow is one employee's full sheet over the requested range. DailyData
// has one entry per calendar day in range, keyed YYYY-MM-DD; employees with no
// qualifying days still get a row with zero totals.
type MonthlyRow struct {
	EmployeeID         string             `json:"employeeId"`
	FullName           string             `json:"fullName"`
	EmployeeGroup      string             `json:"employeeGroup"`
	DailyData          map[string]DayCell `json:"dailyData"`
	TotalWorkedHours   float64            `json:"totalWorkedHours"`
	TotalOvertimeHours float64            `json:"totalOvertimeHours"`
	TotalPresentDays   int                `json:"totalPresentDays"`
}

// PolicySnapshot pairs filtered report rows with the thresholds that produced
// them, so the UI can display the policy in effect alongside results.
type PolicySnapshot map[string]policy.GroupPolicy

// FilteredReport is the shape of the late-arrival and half-day views.
type FilteredReport struct {
	Policy PolicySnapshot `json:"policy"`
	Rows   []DailyRow     `json:"rows"`
}

// ShortLeaveUsageRow counts one employee's short-leave days in one month.
type ShortLeaveUsageRow struct {
	EmployeeID    string `json:"employeeId"`
	FullName      string `json:"fullName"`
	EmployeeGroup string `json:"employeeGroup"`
	Month         string `json:"month"` // YYYY-MM
	Count         int    `json:"count"`
	MaxPerMonth   int    `json:"maxPerMonth"`
	OverQuota     bool   `json:"overQuota"`
}

// ShortLeaveUsageReport is the monthly quota view.
type ShortLeaveUsageReport struct {
	Policy PolicySnapshot       `json:"policy"`
	Rows   []ShortLeaveUsageRow `json:"rows"`
}
