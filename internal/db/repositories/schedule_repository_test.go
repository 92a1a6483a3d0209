package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline-garage/pitwall/internal/db/testdb"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func intPtr(n int) *int { return &n }

func TestScheduleRepository_FindActiveByTitle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 10000)
	repo := NewScheduleRepository(db)

	items := []gormModels.MaintenanceScheduleItem{
		{VehicleID: vehicle.ID, Title: "Tire Rotation", Category: "consumable", IntervalMiles: intPtr(7500), IsActive: false},
		{VehicleID: vehicle.ID, Title: "Tire Rotation", Category: "consumable", IntervalMiles: intPtr(7500), IsActive: true},
		{VehicleID: vehicle.ID, Title: "Tire Rotation", Category: "consumable", IntervalMiles: intPtr(5000), IsActive: true},
	}
	require.NoError(t, repo.CreateBatch(ctx, items))

	found, err := repo.FindActiveByTitle(ctx, vehicle.ID, "Tire Rotation")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, items[1].ID, found.ID)

	missing, err := repo.FindActiveByTitle(ctx, vehicle.ID, "tire rotation")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestScheduleRepository_SaveKeepsNulls(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 10000)
	repo := NewScheduleRepository(db)

	item := &gormModels.MaintenanceScheduleItem{
		VehicleID: vehicle.ID, Title: "Engine Oil Change", Category: "fluid",
		IntervalMiles: intPtr(3750), NextDueMileage: intPtr(13750), IsActive: true,
	}
	require.NoError(t, repo.Create(ctx, item))

	item.IntervalMiles = nil
	item.NextDueMileage = nil
	require.NoError(t, repo.Save(ctx, item))

	reloaded, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.IntervalMiles)
	assert.Nil(t, reloaded.NextDueMileage)
	assert.True(t, reloaded.IsActive)
}

func TestScheduleRepository_ClearServiceRecordLink(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 10000)
	repo := NewScheduleRepository(db)

	recordID := uint(77)
	item := &gormModels.MaintenanceScheduleItem{
		VehicleID: vehicle.ID, Title: "Brake Fluid Flush", Category: "fluid",
		LastServicedMileage: intPtr(9000), LastServiceRecordID: &recordID, IsActive: true,
	}
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.ClearServiceRecordLink(ctx, recordID))

	reloaded, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.LastServiceRecordID)
	require.NotNil(t, reloaded.LastServicedMileage)
	assert.Equal(t, 9000, *reloaded.LastServicedMileage)
}

func TestScheduleRepository_DeleteByVehicle(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	first := testdb.SeedVehicle(t, db, owner, 10000)
	second := testdb.SeedVehicle(t, db, owner, 20000)
	repo := NewScheduleRepository(db)

	require.NoError(t, repo.CreateBatch(ctx, []gormModels.MaintenanceScheduleItem{
		{VehicleID: first.ID, Title: "A", Category: "other", IsActive: true},
		{VehicleID: first.ID, Title: "B", Category: "other", IsActive: true},
		{VehicleID: second.ID, Title: "C", Category: "other", IsActive: true},
	}))

	deleted, err := repo.DeleteByVehicle(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.ListByVehicle(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
