package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/zoobzio/clockz"
	"gorm.io/gorm"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/config"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/services"
)

type Repositories struct {
	User          *repositories.UserRepository
	Vehicle       *repositories.VehicleRepository
	Schedule      *repositories.ScheduleRepository
	ServiceRecord *repositories.ServiceRecordRepository
	Interaction   *repositories.InteractionRepository
	Notification  *repositories.NotificationRepository
	GarageStats   *repositories.GarageStatsRepository
}

type Services struct {
	Cache         common.CacheInterface
	GarageCache   *services.GarageCache
	User          *services.UserService
	Vehicle       *services.VehicleService
	Schedule      *services.ScheduleService
	ServiceRecord *services.ServiceRecordService
	Garage        *services.GarageService
	Interaction   *services.InteractionService
	Notification  *services.NotificationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Validate *validator.Validate
	Tokens   *auth.TokenVerifier
	SqlxDB   *sqlx.DB
}

func InitDependencies(
	cfg *config.Config,
	gormDB *gorm.DB,
	sqlxDB *sqlx.DB,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	clock clockz.Clock,
) (*Dependencies, error) {

	repos := &Repositories{
		User:          repositories.NewUserRepository(gormDB),
		Vehicle:       repositories.NewVehicleRepository(gormDB),
		Schedule:      repositories.NewScheduleRepository(gormDB),
		ServiceRecord: repositories.NewServiceRecordRepository(gormDB),
		Interaction:   repositories.NewInteractionRepository(gormDB),
		Notification:  repositories.NewNotificationRepository(gormDB),
		GarageStats:   repositories.NewGarageStatsRepository(sqlxDB),
	}

	garageCache := services.NewGarageCache(cache, cfg.StatsCacheTTL, metricsReg)

	scheduleSvc := services.NewScheduleService(gormDB, repos.Vehicle, repos.Schedule, repos.ServiceRecord, garageCache, metricsReg, clock)

	svcs := &Services{
		Cache:       cache,
		GarageCache: garageCache,
		User:        services.NewUserService(repos.User),
		Vehicle: services.NewVehicleService(
			gormDB, repos.Vehicle, repos.Schedule, repos.ServiceRecord,
			repos.Interaction, repos.Notification, garageCache, metricsReg, clock,
		),
		Schedule:      scheduleSvc,
		ServiceRecord: services.NewServiceRecordService(gormDB, repos.Vehicle, repos.Schedule, repos.ServiceRecord, garageCache, metricsReg, clock),
		Garage:        services.NewGarageService(repos.Vehicle, repos.ServiceRecord, repos.GarageStats, scheduleSvc, garageCache, metricsReg),
		Interaction:   services.NewInteractionService(gormDB, repos.Vehicle, repos.Interaction, repos.Notification, metricsReg),
		Notification:  services.NewNotificationService(repos.Notification),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Tokens:   auth.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer, clock),
		SqlxDB:   sqlxDB,
	}, nil
}
