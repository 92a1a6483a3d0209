package maintenance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	title  string
	active bool
	status Status
}

func (r row) SortKey() SortKey {
	return SortKey{Title: r.title, IsActive: r.active, Status: r.status}
}

func titles(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.title
	}
	return out
}

func TestSort_ScenarioE(t *testing.T) {
	orders := [][]row{
		{
			{title: "ok", active: true, status: Status{DueStatus: StatusOK}},
			{title: "soon", active: true, status: Status{DueStatus: StatusDueSoon}},
			{title: "late", active: true, status: Status{DueStatus: StatusOverdue}},
		},
		{
			{title: "late", active: true, status: Status{DueStatus: StatusOverdue}},
			{title: "ok", active: true, status: Status{DueStatus: StatusOK}},
			{title: "soon", active: true, status: Status{DueStatus: StatusDueSoon}},
		},
		{
			{title: "soon", active: true, status: Status{DueStatus: StatusDueSoon}},
			{title: "late", active: true, status: Status{DueStatus: StatusOverdue}},
			{title: "ok", active: true, status: Status{DueStatus: StatusOK}},
		},
	}

	for _, input := range orders {
		all := append([]row(nil), input...)
		Sort(all)
		assert.Equal(t, []string{"late", "soon", "ok"}, titles(all))

		attention := NeedsAttention(input)
		assert.Equal(t, []string{"late", "soon"}, titles(attention))
	}
}

func TestSort_ActiveFirst(t *testing.T) {
	rows := []row{
		{title: "disabled overdue", active: false, status: Status{DueStatus: StatusOverdue}},
		{title: "enabled ok", active: true, status: Status{DueStatus: StatusOK}},
	}

	Sort(rows)
	assert.Equal(t, []string{"enabled ok", "disabled overdue"}, titles(rows))
	assert.Empty(t, NeedsAttention(rows[1:]))
}

func TestSort_TieBreakers(t *testing.T) {
	rows := []row{
		{title: "b-miles-far", active: true, status: Status{DueStatus: StatusUpcoming, MilesUntilDue: intPtr(4000)}},
		{title: "a-miles-near", active: true, status: Status{DueStatus: StatusUpcoming, MilesUntilDue: intPtr(2000)}},
		{title: "d-days-far", active: true, status: Status{DueStatus: StatusDueSoon, DaysUntilDue: intPtr(25)}},
		{title: "c-days-near", active: true, status: Status{DueStatus: StatusDueSoon, DaysUntilDue: intPtr(5)}},
		{title: "zeta", active: true, status: Status{DueStatus: StatusOK}},
		{title: "alpha", active: true, status: Status{DueStatus: StatusOK}},
	}

	Sort(rows)
	assert.Equal(t, []string{
		"c-days-near", "d-days-far",
		"a-miles-near", "b-miles-far",
		"alpha", "zeta",
	}, titles(rows))
}

func TestSort_EqualMilesFallThroughToDays(t *testing.T) {
	rows := []row{
		{title: "plugs", active: true, status: Status{DueStatus: StatusUpcoming, MilesUntilDue: intPtr(3000), DaysUntilDue: intPtr(80)}},
		{title: "belt", active: true, status: Status{DueStatus: StatusUpcoming, MilesUntilDue: intPtr(3000), DaysUntilDue: intPtr(80)}},
		{title: "coolant", active: true, status: Status{DueStatus: StatusUpcoming, MilesUntilDue: intPtr(3000), DaysUntilDue: intPtr(40)}},
	}

	Sort(rows)
	assert.Equal(t, []string{"coolant", "belt", "plugs"}, titles(rows))
}

func TestSort_Reproducible(t *testing.T) {
	build := func() []row {
		return []row{
			{title: "x", active: true, status: Status{DueStatus: StatusOverdue, MilesUntilDue: intPtr(-10)}},
			{title: "y", active: true, status: Status{DueStatus: StatusOverdue, DaysUntilDue: intPtr(-3)}},
			{title: "w", active: true, status: Status{DueStatus: StatusOverdue, MilesUntilDue: intPtr(-10)}},
			{title: "v", active: false, status: Status{DueStatus: StatusOK}},
		}
	}

	first := build()
	second := build()
	second[0], second[2] = second[2], second[0]

	Sort(first)
	Sort(second)
	assert.Equal(t, titles(first), titles(second))
}
