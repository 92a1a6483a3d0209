package constants

// GarageSpendTotalsQuery sums service spend across an owner's vehicles.
// Written with ? bindvars and rebound per driver.
const GarageSpendTotalsQuery = `
	SELECT
		COALESCE(SUM(sr.total_cost), 0) AS total_spend,
		COUNT(sr.id)                    AS total_records
	FROM service_records sr
	JOIN vehicles v ON v.id = sr.vehicle_id
	WHERE v.owner_id = ?
`
