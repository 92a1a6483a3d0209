package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
	"gorm.io/gorm"

	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/db/testdb"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/models/dtos"
)

type fixture struct {
	db            *gorm.DB
	cache         *GarageCache
	metrics       *metrics.MetricsRegistry
	vehicleRepo   *repositories.VehicleRepository
	scheduleRepo  *repositories.ScheduleRepository
	recordRepo    *repositories.ServiceRecordRepository
	vehicles      *VehicleService
	schedule      *ScheduleService
	records       *ServiceRecordService
	garage        *GarageService
	interactions  *InteractionService
	notifications *NotificationService
}

func newFixture(t *testing.T, clock clockz.Clock) *fixture {
	t.Helper()

	db := testdb.New(t)
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	cache := NewGarageCache(common.NewCacheService(time.Minute, time.Minute), time.Minute, reg)

	vehicleRepo := repositories.NewVehicleRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	recordRepo := repositories.NewServiceRecordRepository(db)
	interactionRepo := repositories.NewInteractionRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	statsRepo := repositories.NewGarageStatsRepository(testdb.Sqlx(t, db))

	schedule := NewScheduleService(db, vehicleRepo, scheduleRepo, recordRepo, cache, reg, clock)

	return &fixture{
		db:            db,
		cache:         cache,
		metrics:       reg,
		vehicleRepo:   vehicleRepo,
		scheduleRepo:  scheduleRepo,
		recordRepo:    recordRepo,
		vehicles:      NewVehicleService(db, vehicleRepo, scheduleRepo, recordRepo, interactionRepo, notificationRepo, cache, reg, clock),
		schedule:      schedule,
		records:       NewServiceRecordService(db, vehicleRepo, scheduleRepo, recordRepo, cache, reg, clock),
		garage:        NewGarageService(vehicleRepo, recordRepo, statsRepo, schedule, cache, reg),
		interactions:  NewInteractionService(db, vehicleRepo, interactionRepo, notificationRepo, reg),
		notifications: NewNotificationService(notificationRepo),
	}
}

func (f *fixture) user(t *testing.T, id string) string {
	t.Helper()
	return testdb.SeedUser(t, f.db, id)
}

// newVehicle creates a vehicle through the service, factory schedule included.
func (f *fixture) newVehicle(t *testing.T, ownerID string, mileage int) *dtos.VehicleResponse {
	t.Helper()

	v, err := f.vehicles.CreateVehicle(context.Background(), ownerID, dtos.CreateVehicleRequest{
		Year:           2004,
		Make:           "Subaru",
		Model:          "Impreza WRX STI",
		CurrentMileage: mileage,
	})
	require.NoError(t, err)
	return v
}

// bareVehicle inserts a vehicle without any schedule.
func (f *fixture) bareVehicle(t *testing.T, ownerID string, mileage int) uint {
	t.Helper()
	return testdb.SeedVehicle(t, f.db, ownerID, mileage).ID
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func uintPtr(n uint) *uint { return &n }

func strPtr(s string) *string { return &s }

func errorCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func findItem(items []dtos.ScheduleItemResponse, title string) *dtos.ScheduleItemResponse {
	for i := range items {
		if items[i].Title == title {
			return &items[i]
		}
	}
	return nil
}
