package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func TestVehicleService_CreateWithPhotos(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")

	v, err := f.vehicles.CreateVehicle(ctx, owner, dtos.CreateVehicleRequest{
		Year: 2006, Make: "Subaru", Model: "Impreza WRX STI", CurrentMileage: 88000,
		Photos: []dtos.PhotoInput{
			{FileURL: "https://cdn/side.jpg", FileKey: "side.jpg"},
			{FileURL: "https://cdn/front.jpg", FileKey: "front.jpg", IsPrimary: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, owner, v.OwnerID)
	require.Len(t, v.Photos, 2)
	assert.Equal(t, "front.jpg", v.Photos[0].FileKey)
	assert.True(t, v.Photos[0].IsPrimary)

	mine, err := f.vehicles.ListVehicles(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	public, err := f.vehicles.ListPublicVehicles(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	_, err = f.vehicles.CreateVehicle(ctx, "", dtos.CreateVehicleRequest{Year: 2006, Make: "Subaru", Model: "WRX"})
	assert.Equal(t, constants.ErrCodeUnauthenticated, errorCode(err))
}

func TestVehicleService_UpdateStampsMileage(t *testing.T) {
	clock := clockz.NewFakeClock()
	f := newFixture(t, clock)
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	stranger := f.user(t, "stranger-1")
	vehicleID := f.bareVehicle(t, owner, 1000)

	_, err := f.vehicles.UpdateVehicle(ctx, stranger, vehicleID, dtos.UpdateVehicleRequest{CurrentMileage: intPtr(5)})
	assert.Equal(t, constants.ErrCodeForbidden, errorCode(err))

	clock.Advance(48 * time.Hour)
	updated, err := f.vehicles.UpdateVehicle(ctx, owner, vehicleID, dtos.UpdateVehicleRequest{
		Make:           strPtr("Subaru"),
		CurrentMileage: intPtr(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, 1500, updated.CurrentMileage)
	assert.WithinDuration(t, clock.Now(), updated.LastMileageUpdate, time.Second)
}

func TestVehicleService_AddAndDeletePhotos(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	stranger := f.user(t, "stranger-1")
	v := f.newVehicle(t, owner, 1000)

	_, err := f.vehicles.AddPhotos(ctx, owner, v.ID, dtos.AddPhotosRequest{
		Photos: []dtos.PhotoInput{{FileURL: "https://cdn/a.jpg", FileKey: "a.jpg", IsPrimary: true}},
	})
	require.NoError(t, err)

	updated, err := f.vehicles.AddPhotos(ctx, owner, v.ID, dtos.AddPhotosRequest{
		Photos: []dtos.PhotoInput{
			{FileURL: "https://cdn/b.jpg", FileKey: "b.jpg"},
			{FileURL: "https://cdn/c.jpg", FileKey: "c.jpg", IsPrimary: true},
		},
		SetFirstAsPrimary: true,
	})
	require.NoError(t, err)
	require.Len(t, updated.Photos, 3)

	primaries := 0
	for _, p := range updated.Photos {
		if p.IsPrimary {
			primaries++
			assert.Equal(t, "b.jpg", p.FileKey)
		}
	}
	assert.Equal(t, 1, primaries)

	photoID := updated.Photos[0].ID
	err = f.vehicles.DeletePhoto(ctx, stranger, photoID)
	assert.Equal(t, constants.ErrCodeForbidden, errorCode(err))

	require.NoError(t, f.vehicles.DeletePhoto(ctx, owner, photoID))
	err = f.vehicles.DeletePhoto(ctx, owner, photoID)
	assert.Equal(t, constants.ErrCodePhotoNotFound, errorCode(err))
}

func TestVehicleService_DeleteRemovesEverything(t *testing.T) {
	clock := clockz.NewFakeClock()
	f := newFixture(t, clock)
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	fan := f.user(t, "fan-1")
	v := f.newVehicle(t, owner, 30000)

	_, err := f.records.AddServiceRecord(ctx, owner, v.ID, dtos.ServiceRecordRequest{
		Title: "Engine Oil Change", Category: "fluid", ServiceDate: "2025-01-10", Mileage: 30000,
		Steps: []dtos.StepInput{{Title: "Drain", Photos: []dtos.FileInput{{FileURL: "u", FileKey: "k"}}}},
	})
	require.NoError(t, err)
	_, err = f.interactions.ToggleLike(ctx, fan, v.ID)
	require.NoError(t, err)
	_, err = f.interactions.AddComment(ctx, fan, v.ID, "sweet")
	require.NoError(t, err)

	err = f.vehicles.DeleteVehicle(ctx, fan, v.ID)
	assert.Equal(t, constants.ErrCodeForbidden, errorCode(err))

	require.NoError(t, f.vehicles.DeleteVehicle(ctx, owner, v.ID))

	_, err = f.vehicles.GetVehicle(ctx, v.ID)
	assert.Equal(t, constants.ErrCodeVehicleNotFound, errorCode(err))

	for _, model := range []interface{}{
		&gormModels.MaintenanceScheduleItem{},
		&gormModels.ServiceRecord{},
		&gormModels.ServiceRecordStep{},
		&gormModels.StepPhoto{},
		&gormModels.VehicleLike{},
		&gormModels.VehicleComment{},
		&gormModels.Notification{},
		&gormModels.VehiclePhoto{},
	} {
		var n int64
		require.NoError(t, f.db.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%T", model)
	}
}
