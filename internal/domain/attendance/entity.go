package attendance

import (
	"time"
)

// Status is the single classification assigned to one employee-day.
type Status string

const (
	StatusPresent    Status = "Present"
	StatusLate       Status = "Late"
	StatusHalfDay    Status = "HalfDay"
	StatusShortLeave Status = "ShortLeave"
	StatusAbsent     Status = "Absent"
	StatusOnLeave    Status = "OnLeave"
	StatusHoliday    Status = "Holiday"
)

// SheetCode returns the short code used in aggregated monthly sheets.
func (s Status) SheetCode() string {
	switch s {
	case StatusPresent:
		return "P"
	case StatusLate:
		return "LT"
	case StatusHalfDay:
		return "HD"
	case StatusShortLeave:
		return "SL"
	case StatusAbsent:
		return "AB"
	case StatusOnLeave:
		return "LV"
	case StatusHoliday:
		return "HL"
	}
	return string(s)
}

// Record is one employee's raw attendance for one calendar date. At most one
// record exists per employee-day; absent days have no record at all.
type Record struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckIn      *time.Time
	CheckOut     *time.Time
	WorkingHours *float64
	Source       string // "device" or "manual"
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses
	EmployeeName  *string
	EmployeeGroup *string
}

// DayInput is everything the classifier needs for one employee-day.
type DayInput struct {
	CheckIn         *time.Time
	CheckOut        *time.Time
	OnApprovedLeave bool
	IsHoliday       bool
}

// DayResult is the classifier's verdict for one employee-day. Exactly one Status
// is set; WorkedHours is nil when the check-out is missing.
type DayResult struct {
	Status       Status
	LateMinutes  int
	IsLate       bool
	IsHalfDay    bool
	OnShortLeave bool
	WorkedHours  *float64
	Anomaly      bool
}
