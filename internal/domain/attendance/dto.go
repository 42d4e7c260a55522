package attendance

import (
	"time"

	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// DevicePunch is one raw biometric event as delivered by the device bridge.
type DevicePunch struct {
	EmployeeID string `json:"employeeId"`
	Timestamp  string `json:"timestamp"` // RFC3339
}

// SyncRequest carries a batch of punches from a device sync run.
type SyncRequest struct {
	Punches []DevicePunch `json:"punches"`
}

func (r *SyncRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Punches) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "punches",
			Message: "punches must not be empty",
		})
	}

	for i, p := range r.Punches {
		if validator.IsEmpty(p.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "punches[" + validator.Itoa(i) + "].employeeId",
				Message: "employeeId is required",
			})
		}
		if _, ok := validator.IsValidDateTime(p.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punches[" + validator.Itoa(i) + "].timestamp",
				Message: "timestamp must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualEntryRequest creates or corrects one employee-day record by hand.
type ManualEntryRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`               // YYYY-MM-DD
	CheckIn    *string `json:"checkIn,omitempty"`  // RFC3339
	CheckOut   *string `json:"checkOut,omitempty"` // RFC3339
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checkIn",
				Message: "checkIn must be an RFC3339 datetime",
			})
		}
	}

	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "checkOut",
				Message: "checkOut must be an RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordFilter narrows record listings; either date or startDate+endDate.
type RecordFilter struct {
	Date       *string `json:"date,omitempty"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	EmployeeID *string `json:"employeeId,omitempty"`
	Group      *string `json:"group,omitempty"`
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Date == nil && f.StartDate == nil && f.EndDate == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "either date or startDate+endDate is required",
		})
	}

	if f.Group != nil && !validator.IsInSlice(*f.Group, []string{"group_a", "group_b"}) {
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

// Range resolves the filter into an inclusive [start, end] date pair.
func (f *RecordFilter) Range() (time.Time, time.Time) {
	if f.Date != nil && *f.Date != "" {
		d, _ := time.Parse("2006-01-02", *f.Date)
		return d, d
	}
	var start, end time.Time
	if f.StartDate != nil {
		start, _ = time.Parse("2006-01-02", *f.StartDate)
	}
	if f.EndDate != nil {
		end, _ = time.Parse("2006-01-02", *f.EndDate)
	}
	if end.Before(start) {
		end = start
	}
	return start, end
}

// RecordResponse is the JSON shape for one raw attendance record.
type RecordResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employeeId"`
	FullName     string   `json:"fullName,omitempty"`
	Group        string   `json:"employeeGroup,omitempty"`
	Date         string   `json:"date"`
	CheckIn      *string  `json:"checkIn,omitempty"`
	CheckOut     *string  `json:"checkOut,omitempty"`
	WorkingHours *float64 `json:"workingHours,omitempty"`
	Source       string   `json:"source"`
}

// SyncResponse summarizes one device sync run.
type SyncResponse struct {
	Processed int              `json:"processed"`
	Records   []RecordResponse `json:"records"`
}
