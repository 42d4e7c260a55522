package policy

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Employee group keys. Every employee belongs to exactly one of the two cohorts.
const (
	GroupA = "group_a"
	GroupB = "group_b"
)

// DefaultRequiredHours is used whenever a group's minHoursForOT is missing or
// unusable; a reporting request degrades to this value rather than failing.
const DefaultRequiredHours = 8.0

// GroupPolicy holds the working-hours configuration for one employee group.
// All clock fields are "HH:MM" 24-hour local wall-clock values. They are compared
// as minute-of-day offsets, never as absolute instants, so a policy can never
// straddle midnight.
type GroupPolicy struct {
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	MinHoursForOT float64           `json:"minHoursForOT"`
	LateArrival   LateArrivalPolicy `json:"lateArrivalPolicy"`
	ShortLeave    ShortLeavePolicy  `json:"shortLeavePolicy"`
}

// LateArrivalPolicy: arrival at/before GracePeriodUntil is on time; arrival inside
// the open interval (HalfDayAfter, HalfDayBefore) is a half day; any other arrival
// past the grace period is late.
type LateArrivalPolicy struct {
	GracePeriodUntil string `json:"gracePeriodUntil"`
	HalfDayAfter     string `json:"halfDayAfter"`
	HalfDayBefore    string `json:"halfDayBefore"`
}

// ShortLeavePolicy bounds the two daily short-leave windows and the monthly quota.
type ShortLeavePolicy struct {
	MorningStart        string `json:"morningStart"`
	MorningEnd          string `json:"morningEnd"`
	EveningStart        string `json:"eveningStart"`
	EveningEnd          string `json:"eveningEnd"`
	MaxPerMonth         int    `json:"maxPerMonth"`
	PreApprovalRequired bool   `json:"preApprovalRequired"`
}

// Defaults returns the built-in configuration used when the backing file is
// absent or a group entry is missing.
func Defaults() map[string]GroupPolicy {
	return map[string]GroupPolicy{
		GroupA: {
			StartTime:     "08:30",
			EndTime:       "17:00",
			MinHoursForOT: 7.75,
			LateArrival: LateArrivalPolicy{
				GracePeriodUntil: "09:00",
				HalfDayAfter:     "10:00",
				HalfDayBefore:    "14:45",
			},
			ShortLeave: ShortLeavePolicy{
				MorningStart:        "08:30",
				MorningEnd:          "10:00",
				EveningStart:        "15:15",
				EveningEnd:          "17:00",
				MaxPerMonth:         2,
				PreApprovalRequired: true,
			},
		},
		GroupB: {
			StartTime:     "08:45",
			EndTime:       "17:15",
			MinHoursForOT: 8.00,
			LateArrival: LateArrivalPolicy{
				GracePeriodUntil: "09:15",
				HalfDayAfter:     "10:15",
				HalfDayBefore:    "15:00",
			},
			ShortLeave: ShortLeavePolicy{
				MorningStart:        "08:45",
				MorningEnd:          "10:15",
				EveningStart:        "15:30",
				EveningEnd:          "17:15",
				MaxPerMonth:         2,
				PreApprovalRequired: true,
			},
		},
	}
}

// ValidGroups lists the accepted group keys.
func ValidGroups() []string {
	return []string{GroupA, GroupB}
}

// ParseClock converts an "HH:MM" string to a minute-of-day offset.
func ParseClock(clock string) (int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", clock)
	}
	return h*60 + m, nil
}

// ParseClockOr parses clock, falling back when the value is malformed.
func ParseClockOr(clock string, fallback int) int {
	if v, err := ParseClock(clock); err == nil {
		return v
	}
	return fallback
}

// MinuteOfDay returns t's wall-clock offset since local midnight, in minutes.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// StartMinute returns the nominal shift start as a minute offset (0 on failure).
func (p GroupPolicy) StartMinute() int {
	return ParseClockOr(p.StartTime, 0)
}

// EndMinute returns the nominal shift end as a minute offset.
func (p GroupPolicy) EndMinute() int {
	return ParseClockOr(p.EndTime, p.StartMinute())
}

// GraceMinute returns the on-time boundary. A malformed grace value means no
// grace period: the boundary collapses onto the shift start.
func (p GroupPolicy) GraceMinute() int {
	return ParseClockOr(p.LateArrival.GracePeriodUntil, p.StartMinute())
}

// HalfDayWindow returns the open (after, before) interval for half-day arrivals.
// A malformed window degenerates to empty (after == before == end of shift).
func (p GroupPolicy) HalfDayWindow() (after, before int) {
	after = ParseClockOr(p.LateArrival.HalfDayAfter, p.EndMinute())
	before = ParseClockOr(p.LateArrival.HalfDayBefore, after)
	return after, before
}

// NominalHours is the full-day shift length in hours.
func (p GroupPolicy) NominalHours() float64 {
	mins := p.EndMinute() - p.StartMinute()
	if mins <= 0 {
		return DefaultRequiredHours
	}
	return float64(mins) / 60.0
}

// RequiredHours is the minimum worked hours before overtime accrues.
func (p GroupPolicy) RequiredHours() float64 {
	if p.MinHoursForOT <= 0 {
		return DefaultRequiredHours
	}
	return p.MinHoursForOT
}
