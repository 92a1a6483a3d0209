package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *VehicleRepository) WithTx(tx *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: tx}
}

func preloadPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, id ASC")
}

// Create inserts the vehicle together with any photos attached to it.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *gormModels.Vehicle) error {
	if err := r.db.WithContext(ctx).Omit("Owner").Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByID returns nil when the vehicle does not exist.
func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*gormModels.Vehicle, error) {
	var vehicle gormModels.Vehicle

	err := r.db.WithContext(ctx).
		Preload("Photos", preloadPhotos).
		Where("id = ?", id).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle: %w", err)
	}
	return &vehicle, nil
}

func (r *VehicleRepository) ListByOwner(ctx context.Context, ownerID string) ([]gormModels.Vehicle, error) {
	var vehicles []gormModels.Vehicle

	err := r.db.WithContext(ctx).
		Preload("Photos", preloadPhotos).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles for owner: %w", err)
	}
	return vehicles, nil
}

// ListPublic returns the most recently updated vehicles across all owners.
func (r *VehicleRepository) ListPublic(ctx context.Context, limit int) ([]gormModels.Vehicle, error) {
	var vehicles []gormModels.Vehicle

	err := r.db.WithContext(ctx).
		Preload("Photos", preloadPhotos).
		Order("updated_at DESC, id DESC").
		Limit(limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Vehicle{}).
		Where("id = ?", id).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// RaiseMileage moves the odometer forward to mileage. Lower readings are ignored.
func (r *VehicleRepository) RaiseMileage(ctx context.Context, id uint, mileage int, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Vehicle{}).
		Where("id = ? AND current_mileage < ?", id, mileage).
		Updates(map[string]interface{}{
			"current_mileage":     mileage,
			"last_mileage_update": at,
		})
	if res.Error != nil {
		return false, fmt.Errorf("failed to raise vehicle mileage: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", id).Delete(&gormModels.VehiclePhoto{}).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle photos: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.Vehicle{}).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) AddPhotos(ctx context.Context, photos []gormModels.VehiclePhoto) error {
	if len(photos) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&photos).Error; err != nil {
		return fmt.Errorf("failed to add vehicle photos: %w", err)
	}
	return nil
}

func (r *VehicleRepository) ClearPrimaryPhoto(ctx context.Context, vehicleID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.VehiclePhoto{}).
		Where("vehicle_id = ? AND is_primary = ?", vehicleID, true).
		Update("is_primary", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear primary photo: %w", err)
	}
	return nil
}

// GetPhoto returns nil when the photo does not exist.
func (r *VehicleRepository) GetPhoto(ctx context.Context, id uint) (*gormModels.VehiclePhoto, error) {
	var photo gormModels.VehiclePhoto

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch photo: %w", err)
	}
	return &photo, nil
}

func (r *VehicleRepository) DeletePhoto(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.VehiclePhoto{}).Error; err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
