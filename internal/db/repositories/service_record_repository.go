package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type ServiceRecordRepository struct {
	db *gorm.DB
}

func NewServiceRecordRepository(db *gorm.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *ServiceRecordRepository) WithTx(tx *gorm.DB) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: tx}
}

func (r *ServiceRecordRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_number ASC, id ASC") }).
		Preload("Steps.Photos", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") })
}

// Create inserts the record with its steps, step photos and documents.
func (r *ServiceRecordRepository) Create(ctx context.Context, record *gormModels.ServiceRecord) error {
	if err := r.db.WithContext(ctx).Omit("Vehicle").Create(record).Error; err != nil {
		return fmt.Errorf("failed to create service record: %w", err)
	}
	return nil
}

// GetByID returns nil when the record does not exist.
func (r *ServiceRecordRepository) GetByID(ctx context.Context, id uint) (*gormModels.ServiceRecord, error) {
	var record gormModels.ServiceRecord

	err := r.withDetails(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service record: %w", err)
	}
	return &record, nil
}

// ListByVehicle returns records newest service date first. An empty category
// matches all.
func (r *ServiceRecordRepository) ListByVehicle(ctx context.Context, vehicleID uint, category string) ([]gormModels.ServiceRecord, error) {
	var records []gormModels.ServiceRecord

	q := r.withDetails(ctx).Where("vehicle_id = ?", vehicleID)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	if err := q.Order("service_date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list service records: %w", err)
	}
	return records, nil
}

// RecentByOwner returns the latest records across every vehicle the owner has.
func (r *ServiceRecordRepository) RecentByOwner(ctx context.Context, ownerID string, limit int) ([]gormModels.ServiceRecord, error) {
	var records []gormModels.ServiceRecord

	err := r.db.WithContext(ctx).
		Joins("JOIN vehicles ON vehicles.id = service_records.vehicle_id").
		Where("vehicles.owner_id = ?", ownerID).
		Preload("Vehicle").
		Order("service_records.service_date DESC, service_records.id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent service records: %w", err)
	}
	return records, nil
}

// Replace overwrites the record's columns and swaps its steps and documents
// for the ones attached to record.
func (r *ServiceRecordRepository) Replace(ctx context.Context, record *gormModels.ServiceRecord) error {
	if err := r.deleteChildren(ctx, []uint{record.ID}); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error; err != nil {
		return fmt.Errorf("failed to update service record: %w", err)
	}

	for i := range record.Steps {
		record.Steps[i].ServiceRecordID = record.ID
	}
	for i := range record.Documents {
		record.Documents[i].ServiceRecordID = record.ID
	}

	if len(record.Steps) > 0 {
		if err := r.db.WithContext(ctx).Create(&record.Steps).Error; err != nil {
			return fmt.Errorf("failed to create service steps: %w", err)
		}
	}
	if len(record.Documents) > 0 {
		if err := r.db.WithContext(ctx).Create(&record.Documents).Error; err != nil {
			return fmt.Errorf("failed to create service documents: %w", err)
		}
	}
	return nil
}

func (r *ServiceRecordRepository) Delete(ctx context.Context, id uint) error {
	if err := r.deleteChildren(ctx, []uint{id}); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.ServiceRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete service record: %w", err)
	}
	return nil
}

func (r *ServiceRecordRepository) DeleteByVehicle(ctx context.Context, vehicleID uint) error {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&gormModels.ServiceRecord{}).
		Where("vehicle_id = ?", vehicleID).
		Pluck("id", &ids).Error
	if err != nil {
		return fmt.Errorf("failed to list service records for vehicle: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	if err := r.deleteChildren(ctx, ids); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&gormModels.ServiceRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete service records: %w", err)
	}
	return nil
}

func (r *ServiceRecordRepository) deleteChildren(ctx context.Context, recordIDs []uint) error {
	db := r.db.WithContext(ctx)

	stepIDs := db.Model(&gormModels.ServiceRecordStep{}).Select("id").Where("service_record_id IN ?", recordIDs)
	if err := db.Where("step_id IN (?)", stepIDs).Delete(&gormModels.StepPhoto{}).Error; err != nil {
		return fmt.Errorf("failed to delete step photos: %w", err)
	}
	if err := db.Where("service_record_id IN ?", recordIDs).Delete(&gormModels.ServiceRecordStep{}).Error; err != nil {
		return fmt.Errorf("failed to delete service steps: %w", err)
	}
	if err := db.Where("service_record_id IN ?", recordIDs).Delete(&gormModels.ServiceDocument{}).Error; err != nil {
		return fmt.Errorf("failed to delete service documents: %w", err)
	}
	return nil
}

// ClearScheduleItemLinks nulls schedule_item_id on records that named one of itemIDs.
func (r *ServiceRecordRepository) ClearScheduleItemLinks(ctx context.Context, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&gormModels.ServiceRecord{}).
		Where("schedule_item_id IN ?", itemIDs).
		Update("schedule_item_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear schedule item links: %w", err)
	}
	return nil
}

func (r *ServiceRecordRepository) ClearScheduleItemLinksForVehicle(ctx context.Context, vehicleID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.ServiceRecord{}).
		Where("vehicle_id = ? AND schedule_item_id IS NOT NULL", vehicleID).
		Update("schedule_item_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear schedule item links: %w", err)
	}
	return nil
}
