package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/db"
	"redline-garage/pitwall/internal/models/dtos"
)

const healthCheckTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles GET /healthCheck. Postgres is always checked; the
// cache only when its backend can be pinged.
func HealthCheckHandler(sqlxDB *sqlx.DB, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := make(map[string]dtos.ComponentStatus)

		components["postgres"] = checkComponent("Postgres connected", func() error {
			return db.Ping(sqlxDB, healthCheckTimeout)
		})

		if p, ok := cache.(pinger); ok {
			components["redis"] = checkComponent("Redis connected", func() error {
				ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
				defer cancel()
				return p.Ping(ctx)
			})
		}

		overall := "ok"
		code := http.StatusOK
		for _, c := range components {
			if c.Status != "ok" {
				overall = "down"
				code = http.StatusServiceUnavailable
				break
			}
		}

		resp := dtos.HealthCheckResponse{
			Status:     overall,
			Components: components,
			UpSince:    upSince,
			Uptime:     time.Since(upSince).Round(time.Second).String(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func checkComponent(okDetails string, check func() error) dtos.ComponentStatus {
	if err := check(); err != nil {
		return dtos.ComponentStatus{Status: "down", Details: err.Error()}
	}
	return dtos.ComponentStatus{Status: "ok", Details: okDetails}
}
