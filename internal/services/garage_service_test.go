package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/maintenance"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func TestGarageService_Stats(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	other := f.user(t, "owner-2")

	seeded := f.newVehicle(t, owner, 45000)
	quiet := f.bareVehicle(t, owner, 1000)
	_, err := f.schedule.AddItem(ctx, owner, quiet, dtos.AddScheduleItemRequest{
		Title: "Wheel Alignment", Category: "consumable", IntervalMiles: intPtr(10000),
	})
	require.NoError(t, err)

	_, err = f.records.AddServiceRecord(ctx, owner, seeded.ID, dtos.ServiceRecordRequest{
		Title: "Detailing", Category: "other", ServiceDate: "2025-02-01", Mileage: 45000, LaborCost: floatPtr(200),
	})
	require.NoError(t, err)
	_, err = f.records.AddServiceRecord(ctx, owner, quiet, dtos.ServiceRecordRequest{
		Title: "Battery", Category: "consumable", ServiceDate: "2025-02-03", Mileage: 1000,
		LaborCost: floatPtr(100), PartsCost: floatPtr(50),
	})
	require.NoError(t, err)

	foreign := f.bareVehicle(t, other, 500)
	_, err = f.records.AddServiceRecord(ctx, other, foreign, dtos.ServiceRecordRequest{
		Title: "Battery", Category: "consumable", ServiceDate: "2025-02-03", Mileage: 500, PartsCost: floatPtr(999),
	})
	require.NoError(t, err)

	stats, err := f.garage.AggregateGarageStats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.VehicleCount)
	assert.InDelta(t, 350.0, stats.TotalSpend, 0.001)
	assert.Equal(t, int64(2), stats.TotalServiceRecords)
	assert.Equal(t, len(maintenance.FactorySchedule), stats.OpenMaintenanceCount)

	empty, err := f.garage.AggregateGarageStats(ctx, f.user(t, "newcomer"))
	require.NoError(t, err)
	assert.Zero(t, empty.VehicleCount)
	assert.Zero(t, empty.TotalSpend)
	assert.Zero(t, empty.OpenMaintenanceCount)

	_, err = f.garage.AggregateGarageStats(ctx, "")
	assert.Equal(t, constants.ErrCodeUnauthenticated, errorCode(err))
}

func TestGarageService_StatsAreCachedUntilOwnerMutates(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	vehicleID := f.bareVehicle(t, owner, 1000)

	first, err := f.garage.AggregateGarageStats(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, first.TotalServiceRecords)

	// written behind the service's back, so nothing invalidates
	require.NoError(t, f.recordRepo.Create(ctx, &gormModels.ServiceRecord{
		VehicleID:   vehicleID,
		Title:       "Diagnostic Scan",
		Category:    "inspection",
		ServiceDate: gormModels.NewDate(clockz.NewFakeClock().Now()),
		Mileage:     1000,
	}))

	cached, err := f.garage.AggregateGarageStats(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, cached.TotalServiceRecords)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CacheHitsTotal.WithLabelValues("garage_stats")))

	_, err = f.vehicles.UpdateVehicle(ctx, owner, vehicleID, dtos.UpdateVehicleRequest{CurrentMileage: intPtr(1200)})
	require.NoError(t, err)

	fresh, err := f.garage.AggregateGarageStats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fresh.TotalServiceRecords)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.CacheMissesTotal.WithLabelValues("garage_stats")))
}

func TestGarageService_FleetAlerts(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")

	seeded := f.newVehicle(t, owner, 45000)
	quiet := f.bareVehicle(t, owner, 1000)
	_, err := f.schedule.AddItem(ctx, owner, quiet, dtos.AddScheduleItemRequest{
		Title: "Wheel Alignment", Category: "consumable", IntervalMiles: intPtr(4000),
	})
	require.NoError(t, err)

	fleet, err := f.garage.AggregateFleetAlerts(ctx, owner)
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, seeded.ID, fleet[0].Vehicle.ID)
	assert.Len(t, fleet[0].Alerts, len(maintenance.FactorySchedule))
	for _, alert := range fleet[0].Alerts {
		assert.True(t, alert.DueStatus.IsAlert(), alert.Title)
	}

	// cached copy decodes to the same shape
	again, err := f.garage.AggregateFleetAlerts(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, fleet, again)
}

func TestGarageService_RecentActivity(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	vehicleID := f.bareVehicle(t, owner, 90000)

	for day := 1; day <= 7; day++ {
		_, err := f.records.AddServiceRecord(ctx, owner, vehicleID, dtos.ServiceRecordRequest{
			Title:       fmt.Sprintf("Job %d", day),
			Category:    "other",
			ServiceDate: fmt.Sprintf("2025-01-%02d", day),
			Mileage:     90000,
		})
		require.NoError(t, err)
	}

	recent, err := f.garage.RecentActivity(ctx, owner, 0)
	require.NoError(t, err)
	require.Len(t, recent, constants.DefaultActivityLimit)
	assert.Equal(t, "Job 7", recent[0].Title)
	assert.Equal(t, "2025-01-07", recent[0].ServiceDate)
	assert.Equal(t, vehicleID, recent[0].Vehicle.ID)
	assert.Equal(t, "Subaru", recent[0].Vehicle.Make)

	all, err := f.garage.RecentActivity(ctx, owner, 500)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}
