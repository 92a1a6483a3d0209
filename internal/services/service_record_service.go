package services

import (
	"context"
	"strings"
	"time"

	"github.com/zoobzio/clockz"
	"gorm.io/gorm"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/maintenance"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type ServiceRecordService struct {
	db       *gorm.DB
	vehicles *repositories.VehicleRepository
	schedule *repositories.ScheduleRepository
	records  *repositories.ServiceRecordRepository
	cache    *GarageCache
	metrics  *metrics.MetricsRegistry
	clock    clockz.Clock
}

func NewServiceRecordService(
	db *gorm.DB,
	vehicles *repositories.VehicleRepository,
	schedule *repositories.ScheduleRepository,
	records *repositories.ServiceRecordRepository,
	cache *GarageCache,
	metricsReg *metrics.MetricsRegistry,
	clock clockz.Clock,
) *ServiceRecordService {
	return &ServiceRecordService{
		db:       db,
		vehicles: vehicles,
		schedule: schedule,
		records:  records,
		cache:    cache,
		metrics:  metricsReg,
		clock:    clock,
	}
}

// AddServiceRecord stores the record, moves the odometer forward and applies
// the service to the matching schedule item, all in one transaction.
func (s *ServiceRecordService) AddServiceRecord(ctx context.Context, userID string, vehicleID uint, req dtos.ServiceRecordRequest) (*dtos.ServiceRecordResult, error) {
	serviceDate, err := validateRecordRequest(req)
	if err != nil {
		return nil, err
	}

	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := &gormModels.ServiceRecord{VehicleID: vehicle.ID, CreatedByID: userID}
	fillRecord(record, req, serviceDate)

	var applied *gormModels.MaintenanceScheduleItem
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.records.WithTx(tx).Create(ctx, record); err != nil {
			return internalError("create_service_record", err)
		}

		if _, err := s.vehicles.WithTx(tx).RaiseMileage(ctx, vehicle.ID, req.Mileage, now); err != nil {
			return internalError("raise_mileage", err)
		}

		var err error
		applied, err = applyServiceToSchedule(ctx, s.schedule.WithTx(tx), vehicle.ID, ServiceApplication{
			Title:          record.Title,
			Mileage:        record.Mileage,
			Date:           serviceDate,
			RecordID:       record.ID,
			ScheduleItemID: req.ScheduleItemID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ServiceRecordsLogged.Inc()
	s.cache.Invalidate(vehicle.OwnerID)
	logging.Info("Service record logged",
		"vehicle_id", vehicle.ID,
		"record_id", record.ID,
		"applied", applied != nil,
	)

	return s.result(ctx, record.ID, applied, max(vehicle.CurrentMileage, req.Mileage), now)
}

// UpdateServiceRecord overwrites the record and replaces its steps and
// documents. The schedule is not re-evaluated.
func (s *ServiceRecordService) UpdateServiceRecord(ctx context.Context, userID string, recordID uint, req dtos.ServiceRecordRequest) (*dtos.ServiceRecordResult, error) {
	serviceDate, err := validateRecordRequest(req)
	if err != nil {
		return nil, err
	}

	record, vehicle, err := s.requireOwnedRecord(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	fillRecord(record, req, serviceDate)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.records.WithTx(tx).Replace(ctx, record); err != nil {
			return internalError("update_service_record", err)
		}
		if _, err := s.vehicles.WithTx(tx).RaiseMileage(ctx, vehicle.ID, req.Mileage, now); err != nil {
			return internalError("raise_mileage", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(vehicle.OwnerID)
	return s.result(ctx, record.ID, nil, 0, now)
}

// DeleteServiceRecord removes the record. Schedule items that pointed at it
// lose the link but keep their due state.
func (s *ServiceRecordService) DeleteServiceRecord(ctx context.Context, userID string, recordID uint) error {
	record, vehicle, err := s.requireOwnedRecord(ctx, userID, recordID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.schedule.WithTx(tx).ClearServiceRecordLink(ctx, record.ID); err != nil {
			return internalError("delete_service_record", err)
		}
		if err := s.records.WithTx(tx).Delete(ctx, record.ID); err != nil {
			return internalError("delete_service_record", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(vehicle.OwnerID)
	logging.Info("Service record deleted", "vehicle_id", vehicle.ID, "record_id", record.ID)
	return nil
}

// ListServiceRecords is public. An empty category lists everything.
func (s *ServiceRecordService) ListServiceRecords(ctx context.Context, vehicleID uint, category string) ([]dtos.ServiceRecordResponse, error) {
	if category != "" && !maintenance.ValidCategory(category) {
		return nil, validationError("unknown category " + category)
	}

	if _, err := requireVehicle(ctx, s.vehicles, vehicleID); err != nil {
		return nil, err
	}

	records, err := s.records.ListByVehicle(ctx, vehicleID, category)
	if err != nil {
		return nil, internalError("list_service_records", err)
	}

	out := make([]dtos.ServiceRecordResponse, len(records))
	for i := range records {
		out[i] = toServiceRecordResponse(&records[i])
	}
	return out, nil
}

func (s *ServiceRecordService) GetServiceRecord(ctx context.Context, recordID uint) (*dtos.ServiceRecordResponse, error) {
	record, err := s.requireRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}
	resp := toServiceRecordResponse(record)
	return &resp, nil
}

func (s *ServiceRecordService) result(ctx context.Context, recordID uint, applied *gormModels.MaintenanceScheduleItem, mileage int, now time.Time) (*dtos.ServiceRecordResult, error) {
	record, err := s.requireRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	result := &dtos.ServiceRecordResult{Record: toServiceRecordResponse(record)}
	if applied != nil {
		item := toScheduleItemResponse(applied, maintenance.Compute(applied.Due(), mileage, now))
		result.AppliedItem = &item
	}
	return result, nil
}

func (s *ServiceRecordService) requireRecord(ctx context.Context, recordID uint) (*gormModels.ServiceRecord, error) {
	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, internalError("get_service_record", err)
	}
	if record == nil {
		return nil, newServiceError(constants.ErrCodeServiceRecordNotFound)
	}
	return record, nil
}

func (s *ServiceRecordService) requireOwnedRecord(ctx context.Context, userID string, recordID uint) (*gormModels.ServiceRecord, *gormModels.Vehicle, error) {
	if userID == "" {
		return nil, nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	record, err := s.requireRecord(ctx, recordID)
	if err != nil {
		return nil, nil, err
	}

	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, record.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	return record, vehicle, nil
}

func validateRecordRequest(req dtos.ServiceRecordRequest) (time.Time, error) {
	if strings.TrimSpace(req.Title) == "" {
		return time.Time{}, validationError("title is required")
	}
	if !maintenance.ValidCategory(req.Category) {
		return time.Time{}, validationError("unknown category " + req.Category)
	}
	if req.Mileage < 0 {
		return time.Time{}, validationError("mileage must not be negative")
	}

	date, err := parseDate(req.ServiceDate)
	if err != nil {
		return time.Time{}, validationError("service_date must be YYYY-MM-DD")
	}
	return date, nil
}

// fillRecord copies the request onto record, rebuilding steps and documents.
// Steps without a title are dropped and the rest are numbered from 1.
func fillRecord(record *gormModels.ServiceRecord, req dtos.ServiceRecordRequest, serviceDate time.Time) {
	record.Title = strings.TrimSpace(req.Title)
	record.Category = req.Category
	record.ServiceDate = gormModels.NewDate(serviceDate)
	record.Mileage = req.Mileage
	record.Location = req.Location
	record.Description = req.Description
	record.PartsBrand = req.PartsBrand
	record.PartNumber = req.PartNumber
	record.LaborCost = req.LaborCost
	record.PartsCost = req.PartsCost
	record.TotalCost = totalCost(req.LaborCost, req.PartsCost)
	record.Notes = req.Notes
	record.ScheduleItemID = req.ScheduleItemID

	record.Steps = record.Steps[:0]
	for _, step := range req.Steps {
		title := strings.TrimSpace(step.Title)
		if title == "" {
			continue
		}

		photos := make([]gormModels.StepPhoto, len(step.Photos))
		for i, p := range step.Photos {
			photos[i] = gormModels.StepPhoto{FileURL: p.FileURL, FileKey: p.FileKey}
		}

		record.Steps = append(record.Steps, gormModels.ServiceRecordStep{
			StepNumber:  len(record.Steps) + 1,
			Title:       title,
			Description: step.Description,
			Photos:      photos,
		})
	}

	record.Documents = make([]gormModels.ServiceDocument, len(req.Documents))
	for i, d := range req.Documents {
		record.Documents[i] = gormModels.ServiceDocument{
			FileURL:  d.FileURL,
			FileKey:  d.FileKey,
			FileType: d.FileType,
		}
	}
}

// totalCost is labor plus parts, or nil when that sum is not positive.
func totalCost(labor, parts *float64) *float64 {
	var sum float64
	if labor != nil {
		sum += *labor
	}
	if parts != nil {
		sum += *parts
	}
	if sum <= 0 {
		return nil
	}
	return &sum
}
