package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline-garage/pitwall/internal/db/testdb"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func floatPtr(f float64) *float64 { return &f }

func newRecord(vehicleID uint, title string, date time.Time, cost float64) *gormModels.ServiceRecord {
	return &gormModels.ServiceRecord{
		VehicleID:   vehicleID,
		Title:       title,
		Category:    "fluid",
		ServiceDate: gormModels.NewDate(date),
		Mileage:     12000,
		TotalCost:   floatPtr(cost),
		CreatedByID: "owner-1",
		Steps: []gormModels.ServiceRecordStep{
			{StepNumber: 2, Title: "Refill", Photos: []gormModels.StepPhoto{{FileURL: "https://img/2", FileKey: "k2"}}},
			{StepNumber: 1, Title: "Drain"},
		},
		Documents: []gormModels.ServiceDocument{{FileURL: "https://doc/1", FileKey: "d1"}},
	}
}

func TestServiceRecordRepository_CreateAndGet(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 10000)
	repo := NewServiceRecordRepository(db)

	record := newRecord(vehicle.ID, "Engine Oil Change", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Create(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Len(t, got.Steps, 2)
	assert.Equal(t, "Drain", got.Steps[0].Title)
	assert.Equal(t, "Refill", got.Steps[1].Title)
	require.Len(t, got.Steps[1].Photos, 1)
	assert.Len(t, got.Documents, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), gormModels.DateTime(got.ServiceDate))

	missing, err := repo.GetByID(ctx, record.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestServiceRecordRepository_ListByVehicle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 10000)
	repo := NewServiceRecordRepository(db)

	older := newRecord(vehicle.ID, "Engine Oil Change", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 60)
	newer := newRecord(vehicle.ID, "Tire Rotation", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 40)
	newer.Category = "consumable"
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	all, err := repo.ListByVehicle(ctx, vehicle.ID, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)

	fluids, err := repo.ListByVehicle(ctx, vehicle.ID, "fluid")
	require.NoError(t, err)
	require.Len(t, fluids, 1)
	assert.Equal(t, older.ID, fluids[0].ID)
}

func TestServiceRecordRepository_Replace(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 10000)
	repo := NewServiceRecordRepository(db)

	record := newRecord(vehicle.ID, "Engine Oil Change", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 80)
	require.NoError(t, repo.Create(ctx, record))

	record.Title = "Engine Oil Change (synthetic)"
	record.Steps = []gormModels.ServiceRecordStep{{StepNumber: 1, Title: "Everything"}}
	record.Documents = nil
	require.NoError(t, repo.Replace(ctx, record))

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engine Oil Change (synthetic)", got.Title)
	require.Len(t, got.Steps, 1)
	assert.Equal(t, "Everything", got.Steps[0].Title)
	assert.Empty(t, got.Documents)

	var photoCount int64
	require.NoError(t, db.Model(&gormModels.StepPhoto{}).Count(&photoCount).Error)
	assert.Zero(t, photoCount)
}

func TestServiceRecordRepository_RecentByOwnerAndDelete(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	other := testdb.SeedUser(t, db, "owner-2")
	mine := testdb.SeedVehicle(t, db, owner, 10000)
	theirs := testdb.SeedVehicle(t, db, other, 10000)
	repo := NewServiceRecordRepository(db)

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.Create(ctx, newRecord(mine.ID, "Mine", time.Date(2025, time.Month(i), 1, 0, 0, 0, 0, time.UTC), 10)))
	}
	require.NoError(t, repo.Create(ctx, newRecord(theirs.ID, "Theirs", time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), 10)))

	recent, err := repo.RecentByOwner(ctx, owner, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, time.March, gormModels.DateTime(recent[0].ServiceDate).Month())
	require.NotNil(t, recent[0].Vehicle)
	assert.Equal(t, mine.ID, recent[0].Vehicle.ID)

	require.NoError(t, repo.DeleteByVehicle(ctx, mine.ID))
	remaining, err := repo.RecentByOwner(ctx, owner, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	var stepCount int64
	require.NoError(t, db.Model(&gormModels.ServiceRecordStep{}).Count(&stepCount).Error)
	assert.Equal(t, int64(2), stepCount, "only the other owner's steps remain")
}

func TestGarageStatsRepository_SpendTotals(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	other := testdb.SeedUser(t, db, "owner-2")
	first := testdb.SeedVehicle(t, db, owner, 10000)
	second := testdb.SeedVehicle(t, db, owner, 50000)
	theirs := testdb.SeedVehicle(t, db, other, 10000)
	records := NewServiceRecordRepository(db)
	stats := NewGarageStatsRepository(testdb.Sqlx(t, db))

	empty, err := stats.SpendTotals(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalSpend)
	assert.Zero(t, empty.TotalRecords)

	require.NoError(t, records.Create(ctx, newRecord(first.ID, "A", time.Now(), 100.5)))
	require.NoError(t, records.Create(ctx, newRecord(second.ID, "B", time.Now(), 49.5)))
	noCost := newRecord(second.ID, "C", time.Now(), 0)
	noCost.TotalCost = nil
	require.NoError(t, records.Create(ctx, noCost))
	require.NoError(t, records.Create(ctx, newRecord(theirs.ID, "D", time.Now(), 999)))

	totals, err := stats.SpendTotals(ctx, owner)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, totals.TotalSpend, 0.001)
	assert.Equal(t, int64(3), totals.TotalRecords)
}
