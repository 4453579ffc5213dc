package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/geoarea/internal/area"
	"github.com/UnknownOlympus/geoarea/internal/boundary"
	"github.com/UnknownOlympus/geoarea/internal/metrics"
	"github.com/UnknownOlympus/geoarea/internal/models"
	"github.com/UnknownOlympus/geoarea/internal/repository"
	"github.com/google/uuid"
)

// batchLimit is the maximum number of regions fetched per polling tick.
const batchLimit = 100

// MeasurementService periodically measures the area of catalogued regions
// that do not have one yet.
type MeasurementService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	engine       *area.Engine         // Area engine bound to the configured ellipsoid
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling pending regions
}

// NewMeasurementService creates a new instance of MeasurementService.
// A nil engine measures on WGS84.
func NewMeasurementService(
	log *slog.Logger,
	repo repository.Interface,
	engine *area.Engine,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *MeasurementService {
	if engine == nil {
		engine = area.Default()
	}

	return &MeasurementService{
		log:          log,
		repo:         repo,
		engine:       engine,
		metrics:      metrics,
		numWorkers:   max(numWorkers, 1),
		pollInterval: pollInterval,
	}
}

// Run starts the measurement service, which periodically polls for regions to measure.
// It listens for a cancellation signal from the context to gracefully stop the service.
func (ms *MeasurementService) Run(ctx context.Context) {
	ticker := time.NewTicker(ms.pollInterval)
	defer ticker.Stop()

	ms.log.InfoContext(ctx, "Measurement service started...", "ellipsoid", ms.engine.Ellipsoid().Name())

	for {
		select {
		case <-ctx.Done():
			ms.log.InfoContext(ctx, "Measurement service stopped.")
			return
		case <-ticker.C:
			ms.log.InfoContext(ctx, "Polling for regions to measure...")
			ms.processBatch(ctx)
		}
	}
}

// processBatch fetches pending regions, fans them out to the worker pool and
// waits for every worker to finish.
func (ms *MeasurementService) processBatch(ctx context.Context) {
	regions, err := ms.repo.FetchRegionsForMeasurement(ctx, batchLimit)
	if err != nil {
		ms.log.ErrorContext(ctx, "Failed to fetch regions", "error", err)
		return
	}
	if len(regions) == 0 {
		ms.log.InfoContext(ctx, "No regions to process.")
		return
	}

	log := ms.log.With("batch", uuid.NewString())
	log.InfoContext(ctx, "Found regions to process. Starting worker pool.",
		"jobs", len(regions),
		"num_workers", ms.numWorkers,
	)

	jobs := make(chan models.RegionTask, len(regions))
	var wgr sync.WaitGroup

	for i := 1; i <= ms.numWorkers; i++ {
		wgr.Add(1)
		go ms.worker(ctx, log, i, &wgr, jobs)
	}

	for _, region := range regions {
		jobs <- region
	}
	close(jobs)

	wgr.Wait()
	log.InfoContext(ctx, "Processing batch finished")
}

// worker measures regions from the jobs channel. A failed measurement bumps the
// region's failure count; a successful one stores the area.
func (ms *MeasurementService) worker(
	ctx context.Context,
	log *slog.Logger,
	idx int,
	wg *sync.WaitGroup,
	jobs <-chan models.RegionTask,
) {
	defer wg.Done()
	for region := range jobs {
		ms.metrics.ActiveWorkers.Inc()
		ms.measure(ctx, log.With("worker", idx, "region", region.Code), region)
		ms.metrics.ActiveWorkers.Dec()
	}
}

func (ms *MeasurementService) measure(ctx context.Context, log *slog.Logger, region models.RegionTask) {
	log.DebugContext(ctx, "Processing region", "name", region.Name)

	startTime := time.Now()
	km2, _, err := boundary.Measure(ms.engine, region.Boundary)
	ms.metrics.MeasureSeconds.WithLabelValues(ms.engine.Ellipsoid().Name()).Observe(time.Since(startTime).Seconds())

	if err != nil {
		log.ErrorContext(ctx, "Failed to measure region", "error", err)
		ms.metrics.RegionsProcessed.WithLabelValues("failure").Inc()
		ms.metrics.MeasurementErrors.WithLabelValues(ErrorKind(err)).Inc()

		if err = ms.repo.IncrementFailureCount(ctx, region.Code, err.Error()); err != nil {
			log.ErrorContext(ctx, "Could not update failure count for region", "error", err)
		}
		return
	}

	ms.metrics.RegionsProcessed.WithLabelValues("success").Inc()
	ms.metrics.LastAreaKm2.Set(km2)

	if err = ms.repo.UpdateRegionArea(ctx, region.Code, km2); err != nil {
		log.ErrorContext(ctx, "Failed to update area for region", "error", err)
		return
	}

	log.DebugContext(ctx, "Worker successfully measured the region", "area_km2", km2)
}

// ErrorKind maps a measurement error to the label used in metrics.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, area.ErrMissingInput):
		return "missing_input"
	case errors.Is(err, area.ErrUnsupportedGeometry):
		return "unsupported_geometry"
	case errors.Is(err, area.ErrDegenerateRing):
		return "degenerate_ring"
	case errors.Is(err, area.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, boundary.ErrInvalidDocument):
		return "invalid_document"
	default:
		return "other"
	}
}
