package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/geoarea/internal/models"
)

// MaxMeasurementAttempts is the number of failed measurements after which a
// region is no longer picked up.
const MaxMeasurementAttempts = 5

// FetchRegionsForMeasurement retrieves regions whose area has not been measured yet.
// It returns regions that have a NULL area, fewer than MaxMeasurementAttempts failed
// attempts and a boundary document. The oldest regions come first.
func (r *Repository) FetchRegionsForMeasurement(ctx context.Context, limit int) ([]models.RegionTask, error) {
	var regions []models.RegionTask
	query := `
		SELECT code, name, boundary
		FROM public.regions
		WHERE
			area_km2 IS NULL
			AND measurement_attempts < $1
			AND boundary IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $2;
	`

	rows, err := r.db.Query(ctx, query, MaxMeasurementAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions without area: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var region models.RegionTask
		if errScan := rows.Scan(&region.Code, &region.Name, &region.Boundary); errScan != nil {
			return nil, fmt.Errorf("failed to scan region without area: %w", errScan)
		}
		r.log.DebugContext(ctx, "A region without area has been received.",
			"code", region.Code, "name", region.Name)
		regions = append(regions, region)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return regions, nil
}

// UpdateRegionArea stores the measured area of a region and clears its last error.
func (r *Repository) UpdateRegionArea(ctx context.Context, code string, km2 float64) error {
	query := `
		UPDATE public.regions
		SET
			area_km2 = $1,
			measurement_error = NULL,
			measured_at = NOW()
		WHERE
			code = $2;
	`

	_, err := r.db.Exec(ctx, query, km2, code)
	if err != nil {
		return fmt.Errorf("failed to update region area: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the measurement attempt count of a region
// and records the error that made the attempt fail.
func (r *Repository) IncrementFailureCount(ctx context.Context, code string, errMsg string) error {
	query := `
		UPDATE public.regions
		SET
			measurement_attempts = measurement_attempts + 1,
			measurement_error = $1
		WHERE code = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, code)
	if err != nil {
		return fmt.Errorf("failed to update measurement error and number of attempts: %w", err)
	}

	return nil
}
