package api

import (
	"net/http"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
)

// GarageStatsHandler handles GET /api/v1/me/garage/stats
func GarageStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, err := deps.Services.Garage.AggregateGarageStats(r.Context(), auth.UserIDFrom(r.Context()))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Garage stats fetched", stats)
	}
}

// FleetAlertsHandler handles GET /api/v1/me/garage/alerts
func FleetAlertsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		alerts, err := deps.Services.Garage.AggregateFleetAlerts(r.Context(), auth.UserIDFrom(r.Context()))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Fleet alerts fetched", alerts)
	}
}

// RecentActivityHandler handles GET /api/v1/me/garage/activity?limit=
func RecentActivityHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		activity, err := deps.Services.Garage.RecentActivity(r.Context(), auth.UserIDFrom(r.Context()), queryInt(r, "limit"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Recent activity fetched", activity)
	}
}
