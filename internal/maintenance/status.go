package maintenance

import (
	"time"
)

// DueStatus is the urgency classification of a schedule item
type DueStatus string

const (
	StatusOverdue  DueStatus = "overdue"
	StatusDueSoon  DueStatus = "due-soon"
	StatusUpcoming DueStatus = "upcoming"
	StatusOK       DueStatus = "ok"
)

// Thresholds for the mileage and date axes. A countdown at or below the
// threshold falls into that class.
const (
	DueSoonMiles  = 1000
	UpcomingMiles = 5000
	DueSoonDays   = 30
	UpcomingDays  = 90
)

// Rank orders statuses by urgency, lower is more urgent.
func (s DueStatus) Rank() int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusDueSoon:
		return 1
	case StatusUpcoming:
		return 2
	default:
		return 3
	}
}

// IsAlert reports whether the status counts as an open alert (overdue or due-soon).
func (s DueStatus) IsAlert() bool {
	return s == StatusOverdue || s == StatusDueSoon
}

// moreUrgent returns whichever of a and b ranks more urgent.
func moreUrgent(a, b DueStatus) DueStatus {
	if b.Rank() < a.Rank() {
		return b
	}
	return a
}

// Due carries the derived next-due checkpoints of a schedule item.
// Either field may be nil when the item has no interval on that axis.
type Due struct {
	NextDueMileage *int
	NextDueDate    *time.Time
}

// Status is the result of evaluating a schedule item against the vehicle's
// odometer and the current date.
type Status struct {
	DueStatus     DueStatus `json:"due_status"`
	MilesUntilDue *int      `json:"miles_until_due"`
	DaysUntilDue  *int      `json:"days_until_due"`
}

// Compute classifies an item on both axes and keeps the more urgent result.
// Items with neither axis set are ok.
func Compute(due Due, currentMileage int, today time.Time) Status {
	status := Status{DueStatus: StatusOK}

	if due.NextDueMileage != nil {
		miles := *due.NextDueMileage - currentMileage
		status.MilesUntilDue = &miles
		status.DueStatus = moreUrgent(status.DueStatus, mileageStatus(miles))
	}

	if due.NextDueDate != nil {
		days := DaysBetween(today, *due.NextDueDate)
		status.DaysUntilDue = &days
		status.DueStatus = moreUrgent(status.DueStatus, dateStatus(days))
	}

	return status
}

func mileageStatus(milesUntilDue int) DueStatus {
	switch {
	case milesUntilDue <= 0:
		return StatusOverdue
	case milesUntilDue <= DueSoonMiles:
		return StatusDueSoon
	case milesUntilDue <= UpcomingMiles:
		return StatusUpcoming
	default:
		return StatusOK
	}
}

func dateStatus(daysUntilDue int) DueStatus {
	switch {
	case daysUntilDue <= 0:
		return StatusOverdue
	case daysUntilDue <= DueSoonDays:
		return StatusDueSoon
	case daysUntilDue <= UpcomingDays:
		return StatusUpcoming
	default:
		return StatusOK
	}
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Both instants are reduced to their UTC calendar date first, which equals
// ceil((to - from) / 24h) when `to` is a date at midnight.
func DaysBetween(from, to time.Time) int {
	f := DateOf(from)
	t := DateOf(to)
	return int(t.Sub(f).Hours() / 24)
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
