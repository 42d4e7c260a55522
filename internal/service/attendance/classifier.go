package attendance

import (
	"log/slog"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
)

// ClassifyDay assigns exactly one status to a single employee-day.
//
// Precedence, first match wins:
//  1. holiday
//  2. approved leave
//  3. no check-in -> absent
//  4. arrival at/before grace boundary -> on time
//  5. arrival inside the open half-day window -> half day
//  6. any other arrival past grace -> late
//  7. full in/out pair worked less than a nominal day but more than half of one,
//     and not late or half-day -> short leave
//  8. present
//
// All time comparisons use minute-of-day integers on the check-in's local wall
// clock. A check-out before its check-in, or on a different calendar day, is a
// device-sync anomaly: worked hours become 0 and the record is flagged, never
// rejected.
func ClassifyDay(in attendance.DayInput, pol policy.GroupPolicy) attendance.DayResult {
	if in.IsHoliday {
		return attendance.DayResult{Status: attendance.StatusHoliday}
	}

	if in.OnApprovedLeave {
		// Stray device rows lose to an approved leave; no hours are computed.
		return attendance.DayResult{Status: attendance.StatusOnLeave}
	}

	if in.CheckIn == nil {
		return attendance.DayResult{Status: attendance.StatusAbsent}
	}

	var result attendance.DayResult

	inMinute := policy.MinuteOfDay(*in.CheckIn)
	lateMinutes := inMinute - pol.GraceMinute()

	if lateMinutes > 0 {
		result.LateMinutes = lateMinutes
		halfDayAfter, halfDayBefore := pol.HalfDayWindow()
		if inMinute > halfDayAfter && inMinute < halfDayBefore {
			result.IsHalfDay = true
			result.Status = attendance.StatusHalfDay
		} else {
			result.IsLate = true
			result.Status = attendance.StatusLate
		}
	}

	if in.CheckOut != nil {
		worked := workedHours(in, &result)
		result.WorkedHours = &worked

		if !result.IsLate && !result.IsHalfDay {
			nominal := pol.NominalHours()
			if worked < nominal && worked > nominal/2 {
				result.OnShortLeave = true
				result.Status = attendance.StatusShortLeave
			}
		}
	}

	if result.Status == "" {
		result.Status = attendance.StatusPresent
	}

	return result
}

// workedHours computes the in/out span in hours, zeroing out midnight-spanning
// or inverted pairs.
func workedHours(in attendance.DayInput, result *attendance.DayResult) float64 {
	sameDay := in.CheckIn.Year() == in.CheckOut.Year() &&
		in.CheckIn.YearDay() == in.CheckOut.YearDay()

	if !sameDay || in.CheckOut.Before(*in.CheckIn) {
		result.Anomaly = true
		slog.Warn("attendance pair is inverted or spans midnight, treating worked hours as zero",
			"check_in", in.CheckIn, "check_out", in.CheckOut)
		return 0
	}

	return in.CheckOut.Sub(*in.CheckIn).Hours()
}
