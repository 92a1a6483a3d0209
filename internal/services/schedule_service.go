package services

import (
	"context"
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

type ScheduleService struct {
	db       *gorm.DB
	vehicles *repositories.VehicleRepository
	schedule *repositories.ScheduleRepository
	records  *repositories.ServiceRecordRepository
	cache    *GarageCache
	metrics  *metrics.MetricsRegistry
	clock    clockz.Clock
}

func NewScheduleService(
	db *gorm.DB,
	vehicles *repositories.VehicleRepository,
	schedule *repositories.ScheduleRepository,
	records *repositories.ServiceRecordRepository,
	cache *GarageCache,
	metricsReg *metrics.MetricsRegistry,
	clock clockz.Clock,
) *ScheduleService {
	return &ScheduleService{
		db:       db,
		vehicles: vehicles,
		schedule: schedule,
		records:  records,
		cache:    cache,
		metrics:  metricsReg,
		clock:    clock,
	}
}

// ServiceApplication describes a logged service to apply to a schedule.
// ScheduleItemID, when set, names the intended item directly.
type ServiceApplication struct {
	Title          string
	Mileage        int
	Date           time.Time
	RecordID       uint
	ScheduleItemID *uint
}

// ComputeUpcomingMaintenance returns the vehicle's active items that are not
// ok, most urgent first.
func (s *ScheduleService) ComputeUpcomingMaintenance(ctx context.Context, vehicleID uint) ([]dtos.ScheduleItemResponse, error) {
	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}
	return s.upcomingFor(ctx, vehicle)
}

// ComputeFullSchedule returns every item, inactive and ok ones included.
func (s *ScheduleService) ComputeFullSchedule(ctx context.Context, vehicleID uint) ([]dtos.ScheduleItemResponse, error) {
	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}
	return s.fullScheduleFor(ctx, vehicle)
}

func (s *ScheduleService) upcomingFor(ctx context.Context, vehicle *gormModels.Vehicle) ([]dtos.ScheduleItemResponse, error) {
	items, err := s.schedule.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, internalError("list_schedule", err)
	}
	return maintenance.NeedsAttention(evaluate(vehicle, items, s.clock.Now())), nil
}

func (s *ScheduleService) fullScheduleFor(ctx context.Context, vehicle *gormModels.Vehicle) ([]dtos.ScheduleItemResponse, error) {
	items, err := s.schedule.ListByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, internalError("list_schedule", err)
	}

	all := evaluate(vehicle, items, s.clock.Now())
	maintenance.Sort(all)
	return all, nil
}

// SeedSchedule fills an empty schedule from the factory template.
func (s *ScheduleService) SeedSchedule(ctx context.Context, userID string, vehicleID uint) ([]dtos.ScheduleItemResponse, error) {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	var seeded int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule := s.schedule.WithTx(tx)

		existing, err := schedule.ListByVehicle(ctx, vehicle.ID)
		if err != nil {
			return internalError("list_schedule", err)
		}
		if len(existing) > 0 {
			return validationError("schedule already has items, use factory reset instead")
		}

		seeded, err = seedSchedule(ctx, schedule, vehicle, userID, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ScheduleItemsSeeded.Add(float64(seeded))
	s.cache.Invalidate(vehicle.OwnerID)
	logging.Info("Schedule seeded", "vehicle_id", vehicle.ID, "items", seeded)

	return s.fullScheduleFor(ctx, vehicle)
}

// seedSchedule inserts the factory template using the due-now policy.
func seedSchedule(ctx context.Context, schedule *repositories.ScheduleRepository, vehicle *gormModels.Vehicle, userID string, now time.Time) (int, error) {
	items := make([]gormModels.MaintenanceScheduleItem, len(maintenance.FactorySchedule))
	for i, tmpl := range maintenance.FactorySchedule {
		description := tmpl.Description
		items[i] = gormModels.MaintenanceScheduleItem{
			VehicleID:      vehicle.ID,
			Title:          tmpl.Title,
			Category:       string(tmpl.Category),
			Description:    &description,
			IntervalMiles:  copyInt(tmpl.IntervalMiles),
			IntervalMonths: copyInt(tmpl.IntervalMonths),
			IsActive:       true,
			CreatedByID:    userID,
		}
		items[i].SetDue(maintenance.DueNow(tmpl.Interval(), vehicle.CurrentMileage, now))
	}

	if err := schedule.CreateBatch(ctx, items); err != nil {
		return 0, internalError("seed_schedule", err)
	}
	return len(items), nil
}

// ApplyServiceToSchedule records a service against the vehicle's schedule
// and returns the item it landed on, or nil when nothing matched.
func (s *ScheduleService) ApplyServiceToSchedule(ctx context.Context, userID string, vehicleID uint, app ServiceApplication) (*dtos.ScheduleItemResponse, error) {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	item, err := applyServiceToSchedule(ctx, s.schedule, vehicle.ID, app)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	s.cache.Invalidate(vehicle.OwnerID)
	resp := toScheduleItemResponse(item, maintenance.Compute(item.Due(), vehicle.CurrentMileage, s.clock.Now()))
	return &resp, nil
}

func applyServiceToSchedule(ctx context.Context, schedule *repositories.ScheduleRepository, vehicleID uint, app ServiceApplication) (*gormModels.MaintenanceScheduleItem, error) {
	item, err := matchScheduleItem(ctx, schedule, vehicleID, app)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	serviced := maintenance.DateOf(app.Date)
	recordID := app.RecordID
	mileage := app.Mileage

	item.LastServicedMileage = &mileage
	item.LastServicedDate = gormModels.NewDatePtr(&serviced)
	item.LastServiceRecordID = &recordID
	item.SetDue(maintenance.NextDue(item.Interval(), maintenance.Baseline{Mileage: mileage, Date: serviced}))

	if err := schedule.Save(ctx, item); err != nil {
		return nil, internalError("apply_service", err)
	}
	return item, nil
}

// matchScheduleItem prefers the explicitly named item and falls back to the
// oldest active item with the same title.
func matchScheduleItem(ctx context.Context, schedule *repositories.ScheduleRepository, vehicleID uint, app ServiceApplication) (*gormModels.MaintenanceScheduleItem, error) {
	if app.ScheduleItemID != nil {
		item, err := schedule.GetByID(ctx, *app.ScheduleItemID)
		if err != nil {
			return nil, internalError("get_schedule_item", err)
		}
		if item != nil && item.VehicleID == vehicleID && item.IsActive {
			return item, nil
		}
	}

	item, err := schedule.FindActiveByTitle(ctx, vehicleID, app.Title)
	if err != nil {
		return nil, internalError("match_schedule_item", err)
	}
	return item, nil
}

// AddItem creates a custom item due one interval from the vehicle's current
// mileage and today.
func (s *ScheduleService) AddItem(ctx context.Context, userID string, vehicleID uint, req dtos.AddScheduleItemRequest) (*dtos.ScheduleItemResponse, error) {
	if !maintenance.ValidCategory(req.Category) {
		return nil, validationError("unknown category " + req.Category)
	}

	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	item := &gormModels.MaintenanceScheduleItem{
		VehicleID:      vehicle.ID,
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		IntervalMiles:  req.IntervalMiles,
		IntervalMonths: req.IntervalMonths,
		IsActive:       true,
		CreatedByID:    userID,
	}
	item.SetDue(maintenance.NextDue(item.Interval(), maintenance.Baseline{Mileage: vehicle.CurrentMileage, Date: now}))

	if err := s.schedule.Create(ctx, item); err != nil {
		return nil, internalError("add_schedule_item", err)
	}

	s.recordMutation("add", vehicle.OwnerID)
	resp := toScheduleItemResponse(item, maintenance.Compute(item.Due(), vehicle.CurrentMileage, now))
	return &resp, nil
}

// EditInterval replaces both intervals of one item. A nil interval clears
// that axis.
func (s *ScheduleService) EditInterval(ctx context.Context, userID string, itemID uint, req dtos.EditIntervalRequest) (*dtos.ScheduleItemResponse, error) {
	item, vehicle, err := s.requireOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	applyIntervalEdit(item, req, vehicle.CurrentMileage, now)

	if err := s.schedule.Save(ctx, item); err != nil {
		return nil, internalError("edit_interval", err)
	}

	s.recordMutation("edit_interval", vehicle.OwnerID)
	resp := toScheduleItemResponse(item, maintenance.Compute(item.Due(), vehicle.CurrentMileage, now))
	return &resp, nil
}

// UpdateSchedule applies several interval edits to one vehicle in a single
// transaction. Every id must name an item on that vehicle or nothing is saved.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, userID string, vehicleID uint, edits []dtos.ScheduleItemEdit) ([]dtos.ScheduleItemResponse, error) {
	if len(edits) == 0 {
		return nil, validationError("at least one item is required")
	}

	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule := s.schedule.WithTx(tx)

		for _, edit := range edits {
			item, err := schedule.GetByID(ctx, edit.ID)
			if err != nil {
				return internalError("get_schedule_item", err)
			}
			if item == nil || item.VehicleID != vehicle.ID {
				return newServiceError(constants.ErrCodeScheduleItemNotFound)
			}

			applyIntervalEdit(item, edit.EditIntervalRequest, vehicle.CurrentMileage, now)
			if err := schedule.Save(ctx, item); err != nil {
				return internalError("update_schedule", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordMutation("bulk_edit", vehicle.OwnerID)
	logging.Info("Schedule updated", "vehicle_id", vehicle.ID, "items", len(edits))

	return s.fullScheduleFor(ctx, vehicle)
}

// applyIntervalEdit re-derives next due from the last service, or from the
// vehicle's current state when the item was never serviced.
func applyIntervalEdit(item *gormModels.MaintenanceScheduleItem, req dtos.EditIntervalRequest, currentMileage int, now time.Time) {
	item.IntervalMiles = copyInt(req.IntervalMiles)
	item.IntervalMonths = copyInt(req.IntervalMonths)
	if req.Description != nil {
		description := *req.Description
		item.Description = &description
	}
	item.SetDue(maintenance.NextDue(item.Interval(), item.Baseline(currentMileage, now)))
}

// SaveCustomSchedule replaces the vehicle's schedule with a customized one.
// Unlike the factory seed, each item is due one interval from the current
// mileage and today.
func (s *ScheduleService) SaveCustomSchedule(ctx context.Context, userID string, vehicleID uint, items []dtos.AddScheduleItemRequest) ([]dtos.ScheduleItemResponse, error) {
	if len(items) == 0 {
		return nil, validationError("at least one item is required")
	}
	for _, item := range items {
		if !maintenance.ValidCategory(item.Category) {
			return nil, validationError("unknown category " + item.Category)
		}
	}

	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	base := maintenance.Baseline{Mileage: vehicle.CurrentMileage, Date: now}

	rows := make([]gormModels.MaintenanceScheduleItem, len(items))
	for i, item := range items {
		rows[i] = gormModels.MaintenanceScheduleItem{
			VehicleID:      vehicle.ID,
			Title:          item.Title,
			Category:       item.Category,
			Description:    item.Description,
			IntervalMiles:  copyInt(item.IntervalMiles),
			IntervalMonths: copyInt(item.IntervalMonths),
			IsActive:       true,
			CreatedByID:    userID,
		}
		rows[i].SetDue(maintenance.NextDue(rows[i].Interval(), base))
	}

	var removed int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule := s.schedule.WithTx(tx)

		if err := s.records.WithTx(tx).ClearScheduleItemLinksForVehicle(ctx, vehicle.ID); err != nil {
			return internalError("save_schedule", err)
		}

		var err error
		if removed, err = schedule.DeleteByVehicle(ctx, vehicle.ID); err != nil {
			return internalError("save_schedule", err)
		}

		if err := schedule.CreateBatch(ctx, rows); err != nil {
			return internalError("save_schedule", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordMutation("custom_setup", vehicle.OwnerID)
	logging.Info("Custom schedule saved", "vehicle_id", vehicle.ID, "removed", removed, "items", len(rows))

	return s.fullScheduleFor(ctx, vehicle)
}

func (s *ScheduleService) ToggleActive(ctx context.Context, userID string, itemID uint) (*dtos.ScheduleItemResponse, error) {
	item, vehicle, err := s.requireOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.IsActive = !item.IsActive
	if err := s.schedule.Save(ctx, item); err != nil {
		return nil, internalError("toggle_schedule_item", err)
	}

	s.recordMutation("toggle", vehicle.OwnerID)
	resp := toScheduleItemResponse(item, maintenance.Compute(item.Due(), vehicle.CurrentMileage, s.clock.Now()))
	return &resp, nil
}

func (s *ScheduleService) DeleteItem(ctx context.Context, userID string, itemID uint) error {
	item, vehicle, err := s.requireOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.records.WithTx(tx).ClearScheduleItemLinks(ctx, []uint{item.ID}); err != nil {
			return internalError("delete_schedule_item", err)
		}
		if err := s.schedule.WithTx(tx).Delete(ctx, item.ID); err != nil {
			return internalError("delete_schedule_item", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.recordMutation("delete", vehicle.OwnerID)
	return nil
}

// ApplyConservativePreset shortens every active mileage interval and
// re-derives the mileage checkpoint. Month intervals are left alone.
func (s *ScheduleService) ApplyConservativePreset(ctx context.Context, userID string, vehicleID uint) ([]dtos.ScheduleItemResponse, error) {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var changed int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule := s.schedule.WithTx(tx)

		items, err := schedule.ListByVehicle(ctx, vehicle.ID)
		if err != nil {
			return internalError("list_schedule", err)
		}

		for i := range items {
			item := &items[i]
			if !item.IsActive || item.IntervalMiles == nil {
				continue
			}

			miles := maintenance.Conservative(*item.IntervalMiles)
			item.IntervalMiles = &miles
			due := maintenance.NextDue(maintenance.Interval{Miles: &miles}, item.Baseline(vehicle.CurrentMileage, now))
			item.NextDueMileage = due.NextDueMileage

			if err := schedule.Save(ctx, item); err != nil {
				return internalError("conservative_preset", err)
			}
			changed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordMutation("conservative_preset", vehicle.OwnerID)
	logging.Info("Conservative preset applied", "vehicle_id", vehicle.ID, "items", changed)

	return s.fullScheduleFor(ctx, vehicle)
}

// ResetToFactory drops every item and reseeds the template as due now.
func (s *ScheduleService) ResetToFactory(ctx context.Context, userID string, vehicleID uint) ([]dtos.ScheduleItemResponse, error) {
	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	var removed int64
	var seeded int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule := s.schedule.WithTx(tx)

		if err := s.records.WithTx(tx).ClearScheduleItemLinksForVehicle(ctx, vehicle.ID); err != nil {
			return internalError("reset_schedule", err)
		}

		var err error
		if removed, err = schedule.DeleteByVehicle(ctx, vehicle.ID); err != nil {
			return internalError("reset_schedule", err)
		}

		seeded, err = seedSchedule(ctx, schedule, vehicle, userID, s.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.ScheduleItemsSeeded.Add(float64(seeded))
	s.recordMutation("factory_reset", vehicle.OwnerID)
	logging.Info("Schedule reset to factory", "vehicle_id", vehicle.ID, "removed", removed, "seeded", seeded)

	return s.fullScheduleFor(ctx, vehicle)
}

func (s *ScheduleService) requireOwnedItem(ctx context.Context, userID string, itemID uint) (*gormModels.MaintenanceScheduleItem, *gormModels.Vehicle, error) {
	if userID == "" {
		return nil, nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	item, err := s.schedule.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, internalError("get_schedule_item", err)
	}
	if item == nil {
		return nil, nil, newServiceError(constants.ErrCodeScheduleItemNotFound)
	}

	vehicle, err := requireOwnedVehicle(ctx, s.vehicles, userID, item.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	return item, vehicle, nil
}

func (s *ScheduleService) recordMutation(kind, ownerID string) {
	s.metrics.ScheduleMutations.WithLabelValues(kind).Inc()
	s.cache.Invalidate(ownerID)
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
