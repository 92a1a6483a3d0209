package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *ScheduleRepository) WithTx(tx *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: tx}
}

func (r *ScheduleRepository) ListByVehicle(ctx context.Context, vehicleID uint) ([]gormModels.MaintenanceScheduleItem, error) {
	var items []gormModels.MaintenanceScheduleItem

	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule items: %w", err)
	}
	return items, nil
}

// GetByID returns nil when the item does not exist.
func (r *ScheduleRepository) GetByID(ctx context.Context, id uint) (*gormModels.MaintenanceScheduleItem, error) {
	var item gormModels.MaintenanceScheduleItem

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch schedule item: %w", err)
	}
	return &item, nil
}

// FindActiveByTitle returns the oldest active item on the vehicle whose title
// matches exactly, or nil.
func (r *ScheduleRepository) FindActiveByTitle(ctx context.Context, vehicleID uint, title string) (*gormModels.MaintenanceScheduleItem, error) {
	var item gormModels.MaintenanceScheduleItem

	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND title = ? AND is_active = ?", vehicleID, title, true).
		Order("id ASC").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find schedule item by title: %w", err)
	}
	return &item, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, item *gormModels.MaintenanceScheduleItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create schedule item: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) CreateBatch(ctx context.Context, items []gormModels.MaintenanceScheduleItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("failed to create schedule items: %w", err)
	}
	return nil
}

// Save writes every column of item, including nil ones.
func (r *ScheduleRepository) Save(ctx context.Context, item *gormModels.MaintenanceScheduleItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to save schedule item: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.MaintenanceScheduleItem{}).Error; err != nil {
		return fmt.Errorf("failed to delete schedule item: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) DeleteByVehicle(ctx context.Context, vehicleID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Delete(&gormModels.MaintenanceScheduleItem{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete schedule items: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ClearServiceRecordLink nulls last_service_record_id wherever it points at recordID.
// The rest of the item is left as it is.
func (r *ScheduleRepository) ClearServiceRecordLink(ctx context.Context, recordID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.MaintenanceScheduleItem{}).
		Where("last_service_record_id = ?", recordID).
		Update("last_service_record_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear service record link: %w", err)
	}
	return nil
}
