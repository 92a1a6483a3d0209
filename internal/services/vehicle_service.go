package services

import (
	"context"

	"github.com/zoobzio/clockz"
	"gorm.io/gorm"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type VehicleService struct {
	db            *gorm.DB
	vehicles      *repositories.VehicleRepository
	schedule      *repositories.ScheduleRepository
	records       *repositories.ServiceRecordRepository
	interactions  *repositories.InteractionRepository
	notifications *repositories.NotificationRepository
	cache         *GarageCache
	metrics       *metrics.MetricsRegistry
	clock         clockz.Clock
}

func NewVehicleService(
	db *gorm.DB,
	vehicles *repositories.VehicleRepository,
	schedule *repositories.ScheduleRepository,
	records *repositories.ServiceRecordRepository,
	interactions *repositories.InteractionRepository,
	notifications *repositories.NotificationRepository,
	cache *GarageCache,
	metricsReg *metrics.MetricsRegistry,
	clock clockz.Clock,
) *VehicleService {
	return &VehicleService{
		db:            db,
		vehicles:      vehicles,
		schedule:      schedule,
		records:       records,
		interactions:  interactions,
		notifications: notifications,
		cache:         cache,
		metrics:       metricsReg,
		clock:         clock,
	}
}

// CreateVehicle inserts the vehicle with its photos and seeds the factory
// schedule in one transaction.
func (s *VehicleService) CreateVehicle(ctx context.Context, userID string, req dtos.CreateVehicleRequest) (*dtos.VehicleResponse, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	now := s.clock.Now()
	vehicle := &gormModels.Vehicle{
		Year:              req.Year,
		Make:              req.Make,
		Model:             req.Model,
		CurrentMileage:    req.CurrentMileage,
		LastMileageUpdate: now,
		OwnerID:           userID,
		Photos:            toVehiclePhotos(0, req.Photos),
	}

	var seeded int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.vehicles.WithTx(tx).Create(ctx, vehicle); err != nil {
			return internalError("create_vehicle", err)
		}

		var err error
		seeded, err = seedSchedule(ctx, s.schedule.WithTx(tx), vehicle, userID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ScheduleItemsSeeded.Add(float64(seeded))
	s.cache.Invalidate(userID)
	logging.Info("Vehicle created", "vehicle_id", vehicle.ID, "owner_id", userID, "seeded", seeded)

	return s.GetVehicle(ctx, vehicle.ID)
}

// GetVehicle is public.
func (s *VehicleService) GetVehicle(ctx context.Context, vehicleID uint) (*dtos.VehicleResponse, error) {
	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}
	resp := toVehicleResponse(vehicle)
	return &resp, nil
}

func (s *VehicleService) ListVehicles(ctx context.Context, ownerID string) ([]dtos.VehicleResponse, error) {
	if ownerID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	vehicles, err := s.vehicles.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, internalError("list_vehicles", err)
	}
	return toVehicleResponses(vehicles), nil
}

func (s *VehicleService) ListPublicVehicles(ctx context.Context, limit int) ([]dtos.VehicleResponse, error) {
	if limit <= 0 || limit > constants.DefaultPublicVehicleList {
		limit = constants.DefaultPublicVehicleList
	}

	vehicles, err := s.vehicles.ListPublic(ctx, limit)
	if err != nil {
		return nil, internalError("list_public_vehicles", err)
	}
	return toVehicleResponses(vehicles), nil
}

// UpdateVehicle applies the fields present in req. A mileage change stamps
// lastMileageUpdate.
func (s *VehicleService) UpdateVehicle(ctx context.Context, userID string, vehicleID uint, req dtos.UpdateVehicleRequest) (*dtos.VehicleResponse, error) {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Make != nil {
		fields["make"] = *req.Make
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if req.CurrentMileage != nil {
		fields["current_mileage"] = *req.CurrentMileage
		fields["last_mileage_update"] = s.clock.Now()
	}

	if len(fields) > 0 {
		if err := s.vehicles.UpdateFields(ctx, vehicle.ID, fields); err != nil {
			return nil, internalError("update_vehicle", err)
		}
		s.cache.Invalidate(vehicle.OwnerID)
	}

	return s.GetVehicle(ctx, vehicle.ID)
}

// DeleteVehicle removes the vehicle and everything hanging off it.
func (s *VehicleService) DeleteVehicle(ctx context.Context, userID string, vehicleID uint) error {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.notifications.WithTx(tx).DeleteByVehicle(ctx, vehicle.ID); err != nil {
			return internalError("delete_vehicle", err)
		}
		if err := s.interactions.WithTx(tx).DeleteByVehicle(ctx, vehicle.ID); err != nil {
			return internalError("delete_vehicle", err)
		}
		if err := s.records.WithTx(tx).DeleteByVehicle(ctx, vehicle.ID); err != nil {
			return internalError("delete_vehicle", err)
		}
		if _, err := s.schedule.WithTx(tx).DeleteByVehicle(ctx, vehicle.ID); err != nil {
			return internalError("delete_vehicle", err)
		}
		if err := s.vehicles.WithTx(tx).Delete(ctx, vehicle.ID); err != nil {
			return internalError("delete_vehicle", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(vehicle.OwnerID)
	logging.Info("Vehicle deleted", "vehicle_id", vehicle.ID, "owner_id", vehicle.OwnerID)
	return nil
}

// AddPhotos appends photos. With setFirstAsPrimary the first new photo
// replaces the current primary.
func (s *VehicleService) AddPhotos(ctx context.Context, userID string, vehicleID uint, req dtos.AddPhotosRequest) (*dtos.VehicleResponse, error) {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	photos := toVehiclePhotos(vehicle.ID, req.Photos)
	if req.SetFirstAsPrimary && len(photos) > 0 {
		for i := range photos {
			photos[i].IsPrimary = i == 0
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicles := s.vehicles.WithTx(tx)
		if req.SetFirstAsPrimary {
			if err := vehicles.ClearPrimaryPhoto(ctx, vehicle.ID); err != nil {
				return internalError("add_photos", err)
			}
		}
		if err := vehicles.AddPhotos(ctx, photos); err != nil {
			return internalError("add_photos", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetVehicle(ctx, vehicle.ID)
}

func (s *VehicleService) DeletePhoto(ctx context.Context, userID string, photoID uint) error {
	if userID == "" {
		return newServiceError(constants.ErrCodeUnauthenticated)
	}

	photo, err := s.vehicles.GetPhoto(ctx, photoID)
	if err != nil {
		return internalError("get_photo", err)
	}
	if photo == nil {
		return newServiceError(constants.ErrCodePhotoNotFound)
	}

	if _, err := requireOwnedVehicle(ctx, s.vehicles, userID, photo.VehicleID); err != nil {
		return err
	}

	if err := s.vehicles.DeletePhoto(ctx, photo.ID); err != nil {
		return internalError("delete_photo", err)
	}
	return nil
}

func toVehiclePhotos(vehicleID uint, in []dtos.PhotoInput) []gormModels.VehiclePhoto {
	photos := make([]gormModels.VehiclePhoto, len(in))
	for i, p := range in {
		photos[i] = gormModels.VehiclePhoto{
			VehicleID:   vehicleID,
			FileURL:     p.FileURL,
			FileKey:     p.FileKey,
			Description: p.Description,
			IsPrimary:   p.IsPrimary,
		}
	}
	return photos
}

func toVehicleResponses(vehicles []gormModels.Vehicle) []dtos.VehicleResponse {
	out := make([]dtos.VehicleResponse, len(vehicles))
	for i := range vehicles {
		out[i] = toVehicleResponse(&vehicles[i])
	}
	return out
}
