package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"redline-garage/pitwall/internal/constants"
)

// SpendTotals is the service-record spend of one owner.
type SpendTotals struct {
	TotalSpend   float64 `db:"total_spend"`
	TotalRecords int64   `db:"total_records"`
}

// GarageStatsRepository runs the aggregate queries behind the garage dashboard.
type GarageStatsRepository struct {
	db *sqlx.DB
}

func NewGarageStatsRepository(db *sqlx.DB) *GarageStatsRepository {
	return &GarageStatsRepository{db: db}
}

func (r *GarageStatsRepository) SpendTotals(ctx context.Context, ownerID string) (*SpendTotals, error) {
	var totals SpendTotals

	query := r.db.Rebind(constants.GarageSpendTotalsQuery)
	if err := r.db.GetContext(ctx, &totals, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to aggregate service spend: %w", err)
	}
	return &totals, nil
}
