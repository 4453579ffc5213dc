package repository_test

import (
	"log/slog"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/geoarea/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fetchRegionsQuery = `
		SELECT code, name, boundary
		FROM public.regions
		WHERE
			area_km2 IS NULL
			AND measurement_attempts < $1
			AND boundary IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $2;
	`

var boundary = []byte(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`)

func TestFetchRegionsForMeasurement(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	limit := 10

	t.Run("error - query regions", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchRegionsQuery)).
			WithArgs(repository.MaxMeasurementAttempts, limit).
			WillReturnError(assert.AnError)

		regions, err := repo.FetchRegionsForMeasurement(ctx, limit)

		require.Nil(t, regions)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query regions without area")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan regions", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchRegionsQuery)).
			WithArgs(repository.MaxMeasurementAttempts, limit).
			WillReturnRows(
				pgxmock.NewRows([]string{"code", "name"}).AddRow("UA-32", "Kyiv Oblast"),
			)

		regions, err := repo.FetchRegionsForMeasurement(ctx, limit)

		require.Nil(t, regions)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan region")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchRegionsQuery)).
			WithArgs(repository.MaxMeasurementAttempts, limit).
			WillReturnRows(
				pgxmock.NewRows([]string{"code", "name", "boundary"}).AddRow("UA-32", "Kyiv Oblast", boundary).
					RowError(1, assert.AnError),
			)

		regions, err := repo.FetchRegionsForMeasurement(ctx, limit)

		require.Nil(t, regions)
		require.Error(t, err)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - fetch regions", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchRegionsQuery)).
			WithArgs(repository.MaxMeasurementAttempts, limit).
			WillReturnRows(
				pgxmock.NewRows([]string{"code", "name", "boundary"}).
					AddRow("UA-32", "Kyiv Oblast", boundary).
					AddRow("UA-46", "Lviv Oblast", boundary),
			)

		regions, err := repo.FetchRegionsForMeasurement(ctx, limit)

		require.NoError(t, err)
		require.Len(t, regions, 2)
		assert.Equal(t, "UA-32", regions[0].Code)
		assert.Equal(t, "Kyiv Oblast", regions[0].Name)
		assert.JSONEq(t, string(boundary), string(regions[0].Boundary))
		assert.Equal(t, "UA-46", regions[1].Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - nothing to measure", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchRegionsQuery)).
			WithArgs(repository.MaxMeasurementAttempts, limit).
			WillReturnRows(pgxmock.NewRows([]string{"code", "name", "boundary"}))

		regions, err := repo.FetchRegionsForMeasurement(ctx, limit)

		require.NoError(t, err)
		assert.Empty(t, regions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRegionArea(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	code := "UA-32"
	km2 := 28131.0
	query := `
		UPDATE public.regions
		SET
			area_km2 = $1,
			measurement_error = NULL,
			measured_at = NOW()
		WHERE
			code = $2;
	`

	t.Run("error - update region area", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(km2, code).
			WillReturnError(assert.AnError)

		err = repo.UpdateRegionArea(ctx, code, km2)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to update region area")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - update region area", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(km2, code).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err = repo.UpdateRegionArea(ctx, code, km2)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncrementFailureCount(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	code := "UA-32"
	query := `
		UPDATE public.regions
		SET
			measurement_attempts = measurement_attempts + 1,
			measurement_error = $1
		WHERE code = $2;
	`

	t.Run("error - increment failure count", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("error", code).
			WillReturnError(assert.AnError)

		err = repo.IncrementFailureCount(ctx, code, "error")

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to update measurement error and number of attempts")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - increment failure count", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("error", code).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err = repo.IncrementFailureCount(ctx, code, "error")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
