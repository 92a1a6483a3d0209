package services

import (
	"context"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/repositories"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

// requireOwnedVehicle loads the vehicle and checks that userID owns it.
// Every mutation goes through here before writing.
func requireOwnedVehicle(ctx context.Context, vehicles *repositories.VehicleRepository, userID string, vehicleID uint) (*gormModels.Vehicle, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	vehicle, err := requireVehicle(ctx, vehicles, vehicleID)
	if err != nil {
		return nil, err
	}

	if vehicle.OwnerID != userID {
		return nil, newServiceError(constants.ErrCodeForbidden)
	}
	return vehicle, nil
}

func requireVehicle(ctx context.Context, vehicles *repositories.VehicleRepository, vehicleID uint) (*gormModels.Vehicle, error) {
	vehicle, err := vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, internalError("get_vehicle", err)
	}
	if vehicle == nil {
		return nil, newServiceError(constants.ErrCodeVehicleNotFound)
	}
	return vehicle, nil
}
