package holiday

import "time"

type Type string

const (
	TypeAnnual  Type = "annual"
	TypeSpecial Type = "special"
	TypeWeekend Type = "weekend"
)

// Holiday is one calendar entry on which attendance is not expected.
type Holiday struct {
	ID        string
	Date      time.Time
	Type      Type
	Name      string
	CreatedAt time.Time
}
