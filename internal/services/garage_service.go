package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

// GarageService builds the owner's dashboard across all of their vehicles.
type GarageService struct {
	vehicles *repositories.VehicleRepository
	records  *repositories.ServiceRecordRepository
	stats    *repositories.GarageStatsRepository
	schedule *ScheduleService
	cache    *GarageCache
	metrics  *metrics.MetricsRegistry
}

func NewGarageService(
	vehicles *repositories.VehicleRepository,
	records *repositories.ServiceRecordRepository,
	stats *repositories.GarageStatsRepository,
	schedule *ScheduleService,
	cache *GarageCache,
	metricsReg *metrics.MetricsRegistry,
) *GarageService {
	return &GarageService{
		vehicles: vehicles,
		records:  records,
		stats:    stats,
		schedule: schedule,
		cache:    cache,
		metrics:  metricsReg,
	}
}

func (s *GarageService) AggregateGarageStats(ctx context.Context, userID string) (*dtos.GarageStatsResponse, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	return loadCached(s.cache, statsKey(userID), "garage_stats", func() (*dtos.GarageStatsResponse, error) {
		defer s.observe("stats", time.Now())

		vehicles, err := s.vehicles.ListByOwner(ctx, userID)
		if err != nil {
			return nil, internalError("list_vehicles", err)
		}

		totals, err := s.stats.SpendTotals(ctx, userID)
		if err != nil {
			return nil, internalError("spend_totals", err)
		}

		alerts, err := s.alertsPerVehicle(ctx, vehicles)
		if err != nil {
			return nil, err
		}

		open := 0
		for _, a := range alerts {
			open += len(a)
		}

		return &dtos.GarageStatsResponse{
			VehicleCount:         len(vehicles),
			TotalSpend:           totals.TotalSpend,
			TotalServiceRecords:  totals.TotalRecords,
			OpenMaintenanceCount: open,
		}, nil
	})
}

// AggregateFleetAlerts lists the owner's vehicles that have at least one
// overdue or due-soon item, in garage order.
func (s *GarageService) AggregateFleetAlerts(ctx context.Context, userID string) ([]dtos.FleetAlert, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	return loadCached(s.cache, alertsKey(userID), "garage_alerts", func() ([]dtos.FleetAlert, error) {
		defer s.observe("alerts", time.Now())

		vehicles, err := s.vehicles.ListByOwner(ctx, userID)
		if err != nil {
			return nil, internalError("list_vehicles", err)
		}

		alerts, err := s.alertsPerVehicle(ctx, vehicles)
		if err != nil {
			return nil, err
		}

		fleet := make([]dtos.FleetAlert, 0, len(vehicles))
		for i := range vehicles {
			if len(alerts[i]) == 0 {
				continue
			}
			fleet = append(fleet, dtos.FleetAlert{
				Vehicle: toVehicleSummary(&vehicles[i]),
				Alerts:  alerts[i],
			})
		}
		return fleet, nil
	})
}

// RecentActivity returns the owner's latest service records across the fleet.
func (s *GarageService) RecentActivity(ctx context.Context, userID string, limit int) ([]dtos.ActivityEntry, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	switch {
	case limit <= 0:
		limit = constants.DefaultActivityLimit
	case limit > constants.MaxActivityLimit:
		limit = constants.MaxActivityLimit
	}

	records, err := s.records.RecentByOwner(ctx, userID, limit)
	if err != nil {
		return nil, internalError("recent_activity", err)
	}

	entries := make([]dtos.ActivityEntry, 0, len(records))
	for _, r := range records {
		entry := dtos.ActivityEntry{
			ID:          r.ID,
			Title:       r.Title,
			Category:    r.Category,
			ServiceDate: formatDate(r.ServiceDate),
			Mileage:     r.Mileage,
			TotalCost:   r.TotalCost,
		}
		if r.Vehicle != nil {
			entry.Vehicle = toVehicleSummary(r.Vehicle)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// alertsPerVehicle evaluates each vehicle's schedule concurrently. The result
// is indexed like vehicles and holds only overdue and due-soon items.
func (s *GarageService) alertsPerVehicle(ctx context.Context, vehicles []gormModels.Vehicle) ([][]dtos.ScheduleItemResponse, error) {
	results := make([][]dtos.ScheduleItemResponse, len(vehicles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.FleetFanOutLimit)

	for i := range vehicles {
		g.Go(func() error {
			upcoming, err := s.schedule.upcomingFor(gctx, &vehicles[i])
			if err != nil {
				return err
			}

			alerts := make([]dtos.ScheduleItemResponse, 0, len(upcoming))
			for _, item := range upcoming {
				if item.DueStatus.IsAlert() {
					alerts = append(alerts, item)
				}
			}
			results[i] = alerts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *GarageService) observe(view string, start time.Time) {
	s.metrics.FleetAggregation.WithLabelValues(view).Observe(time.Since(start).Seconds())
}
