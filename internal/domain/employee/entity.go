package employee

import "time"

// Employee is one staff member tracked by the attendance engine.
type Employee struct {
	ID        string
	Code      string
	FullName  string
	Group     string // "group_a" | "group_b"
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
