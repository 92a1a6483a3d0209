package maintenance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

var refToday = time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestCompute_NoAxesIsOK(t *testing.T) {
	status := Compute(Due{}, 50000, refToday)

	assert.Equal(t, StatusOK, status.DueStatus)
	assert.Nil(t, status.MilesUntilDue)
	assert.Nil(t, status.DaysUntilDue)
}

func TestCompute_MileageThresholds(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		want      DueStatus
	}{
		{"past due", -1, StatusOverdue},
		{"exactly due", 0, StatusOverdue},
		{"one mile left", 1, StatusDueSoon},
		{"due soon edge", 1000, StatusDueSoon},
		{"upcoming start", 1001, StatusUpcoming},
		{"upcoming edge", 5000, StatusUpcoming},
		{"far away", 5001, StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := 20000
			status := Compute(Due{NextDueMileage: intPtr(current + tt.remaining)}, current, refToday)

			assert.Equal(t, tt.want, status.DueStatus)
			require.NotNil(t, status.MilesUntilDue)
			assert.Equal(t, tt.remaining, *status.MilesUntilDue)
			assert.Nil(t, status.DaysUntilDue)
		})
	}
}

func TestCompute_DateThresholds(t *testing.T) {
	tests := []struct {
		name string
		days int
		want DueStatus
	}{
		{"yesterday", -1, StatusOverdue},
		{"today", 0, StatusOverdue},
		{"tomorrow", 1, StatusDueSoon},
		{"due soon edge", 30, StatusDueSoon},
		{"upcoming start", 31, StatusUpcoming},
		{"upcoming edge", 90, StatusUpcoming},
		{"far away", 91, StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := DateOf(refToday).AddDate(0, 0, tt.days)
			status := Compute(Due{NextDueDate: &due}, 0, refToday)

			assert.Equal(t, tt.want, status.DueStatus)
			require.NotNil(t, status.DaysUntilDue)
			assert.Equal(t, tt.days, *status.DaysUntilDue)
		})
	}
}

func TestCompute_MoreUrgentAxisWins(t *testing.T) {
	// overdue by date, ok by mileage
	status := Compute(Due{
		NextDueMileage: intPtr(100000),
		NextDueDate:    timePtr(DateOf(refToday).AddDate(0, 0, -3)),
	}, 10000, refToday)
	assert.Equal(t, StatusOverdue, status.DueStatus)

	// overdue by mileage, ok by date
	status = Compute(Due{
		NextDueMileage: intPtr(9000),
		NextDueDate:    timePtr(DateOf(refToday).AddDate(1, 0, 0)),
	}, 10000, refToday)
	assert.Equal(t, StatusOverdue, status.DueStatus)

	// upcoming by mileage, due soon by date
	status = Compute(Due{
		NextDueMileage: intPtr(13000),
		NextDueDate:    timePtr(DateOf(refToday).AddDate(0, 0, 10)),
	}, 10000, refToday)
	assert.Equal(t, StatusDueSoon, status.DueStatus)
}

func TestCompute_BothAxesNeverLessUrgentThanEither(t *testing.T) {
	current := 40000
	for _, milesLeft := range []int{-500, 0, 500, 3000, 9000} {
		for _, daysLeft := range []int{-10, 0, 15, 60, 200} {
			mileage := intPtr(current + milesLeft)
			date := timePtr(DateOf(refToday).AddDate(0, 0, daysLeft))

			both := Compute(Due{NextDueMileage: mileage, NextDueDate: date}, current, refToday)
			byMiles := Compute(Due{NextDueMileage: mileage}, current, refToday)
			byDate := Compute(Due{NextDueDate: date}, current, refToday)

			assert.LessOrEqual(t, both.DueStatus.Rank(), byMiles.DueStatus.Rank())
			assert.LessOrEqual(t, both.DueStatus.Rank(), byDate.DueStatus.Rank())
		}
	}
}

func TestCompute_MileageOnlyOverdueIffReached(t *testing.T) {
	next := 30000
	for current := 28000; current <= 32000; current += 250 {
		status := Compute(Due{NextDueMileage: intPtr(next)}, current, refToday)
		assert.Equal(t, current >= next, status.DueStatus == StatusOverdue, "current=%d", current)
	}
}

func TestCompute_DateOnlyOverdueIffReached(t *testing.T) {
	next := DateOf(refToday)
	for offset := -40; offset <= 40; offset += 5 {
		today := refToday.AddDate(0, 0, offset)
		status := Compute(Due{NextDueDate: &next}, 0, today)
		assert.Equal(t, !DateOf(today).Before(next), status.DueStatus == StatusOverdue, "offset=%d", offset)
	}
}

func TestCompute_ScenarioA_MileageOverdue(t *testing.T) {
	due := NextDue(Interval{Miles: intPtr(3000)}, Baseline{Mileage: 10000, Date: refToday})
	require.NotNil(t, due.NextDueMileage)
	assert.Equal(t, 13000, *due.NextDueMileage)

	status := Compute(due, 13500, refToday)
	assert.Equal(t, -500, *status.MilesUntilDue)
	assert.Equal(t, StatusOverdue, status.DueStatus)
}

func TestCompute_ScenarioB_DateOverdue(t *testing.T) {
	lastServiced := refToday.AddDate(0, 0, -200)
	due := NextDue(Interval{Months: intPtr(6)}, Baseline{Date: lastServiced})
	require.NotNil(t, due.NextDueDate)

	status := Compute(due, 0, refToday)
	require.NotNil(t, status.DaysUntilDue)
	assert.Equal(t, StatusOverdue, status.DueStatus)
	// six calendar months is 181-184 days depending on the months crossed
	assert.InDelta(t, -20, *status.DaysUntilDue, 4)
}

func TestCompute_ScenarioC_Upcoming(t *testing.T) {
	current := 61000
	status := Compute(Due{NextDueMileage: intPtr(current + 4000)}, current, refToday)

	assert.Equal(t, 4000, *status.MilesUntilDue)
	assert.Equal(t, StatusUpcoming, status.DueStatus)
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.June, 1, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2025, time.June, 1, 23, 55, 0, 0, time.UTC)
	next := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysBetween(morning, next))
	assert.Equal(t, 2, DaysBetween(evening, next))
	assert.Equal(t, 0, DaysBetween(evening, morning))
	assert.Equal(t, -2, DaysBetween(next, evening))
}

func TestDueStatus_Rank(t *testing.T) {
	assert.Equal(t, 0, StatusOverdue.Rank())
	assert.Equal(t, 1, StatusDueSoon.Rank())
	assert.Equal(t, 2, StatusUpcoming.Rank())
	assert.Equal(t, 3, StatusOK.Rank())
	assert.True(t, StatusOverdue.IsAlert())
	assert.True(t, StatusDueSoon.IsAlert())
	assert.False(t, StatusUpcoming.IsAlert())
}
