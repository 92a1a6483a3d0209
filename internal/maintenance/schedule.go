package maintenance

import (
	"math"
	"time"
)

// ConservativeFactor scales mileage intervals for the conservative preset.
const ConservativeFactor = 0.75

// Interval is the recurrence of a schedule item. At least one axis is
// expected to be set, but this is not enforced.
type Interval struct {
	Miles  *int
	Months *int
}

// Baseline is the odometer reading and date an interval is counted from.
type Baseline struct {
	Mileage int
	Date    time.Time
}

// NextDue derives the next-due checkpoints as baseline + interval on each
// axis. An axis without an interval has no checkpoint.
func NextDue(interval Interval, base Baseline) Due {
	var due Due

	if interval.Miles != nil {
		miles := base.Mileage + *interval.Miles
		due.NextDueMileage = &miles
	}

	if interval.Months != nil {
		date := DateOf(base.Date).AddDate(0, *interval.Months, 0)
		due.NextDueDate = &date
	}

	return due
}

// DueNow returns checkpoints that are already reached: the current mileage
// for mileage-based items and today for month-based items. Used for freshly
// seeded schedules, where the vehicle has no known service history.
func DueNow(interval Interval, currentMileage int, today time.Time) Due {
	var due Due

	if interval.Miles != nil {
		miles := currentMileage
		due.NextDueMileage = &miles
	}

	if interval.Months != nil {
		date := DateOf(today)
		due.NextDueDate = &date
	}

	return due
}

// ResolveBaseline picks the last-serviced checkpoint when one exists and
// falls back to the vehicle's current mileage and today otherwise.
func ResolveBaseline(lastMileage *int, lastDate *time.Time, currentMileage int, today time.Time) Baseline {
	base := Baseline{Mileage: currentMileage, Date: DateOf(today)}
	if lastMileage != nil {
		base.Mileage = *lastMileage
	}
	if lastDate != nil {
		base.Date = DateOf(*lastDate)
	}
	return base
}

// Conservative shortens a mileage interval by the conservative factor, rounding down.
func Conservative(miles int) int {
	return int(math.Floor(float64(miles) * ConservativeFactor))
}
