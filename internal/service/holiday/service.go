package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/holiday"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// WeeklyOffDay is the implicit weekly holiday applied even without a calendar
// row for the date.
const WeeklyOffDay = time.Sunday

type HolidayServiceImpl struct {
	holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.Service {
	return &HolidayServiceImpl{Repository: holidayRepo}
}

// Create implements holiday.Service.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.Repository.Create(ctx, holiday.Holiday{
		Date: date,
		Type: holiday.Type(req.Type),
		Name: req.Name,
	})
	if err != nil {
		if errors.Is(err, holiday.ErrHolidayExists) {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.ToResponse(created), nil
}

// List implements holiday.Service.
func (s *HolidayServiceImpl) List(ctx context.Context, startDate, endDate string) ([]holiday.HolidayResponse, error) {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDate(startDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, ok := validator.IsValidDate(endDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	holidays, err := s.Repository.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}

	return responses, nil
}

// Delete implements holiday.Service.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// IsNonWorkingDay implements holiday.Service.
func (s *HolidayServiceImpl) IsNonWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	if date.Weekday() == WeeklyOffDay {
		return true, nil
	}

	holidays, err := s.Repository.ListInRange(ctx, date, date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	return len(holidays) > 0, nil
}

// NonWorkingDays implements holiday.Service.
func (s *HolidayServiceImpl) NonWorkingDays(ctx context.Context, start, end time.Time) (map[string]bool, error) {
	holidays, err := s.Repository.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	days := make(map[string]bool)
	for _, h := range holidays {
		days[h.Date.Format("2006-01-02")] = true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == WeeklyOffDay {
			days[d.Format("2006-01-02")] = true
		}
	}

	return days, nil
}
