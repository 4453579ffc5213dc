package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RegionsProcessed  *prometheus.CounterVec
	MeasurementErrors *prometheus.CounterVec
	MeasureSeconds    *prometheus.HistogramVec
	ActiveWorkers     prometheus.Gauge
	LastAreaKm2       prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RegionsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geoarea_regions_processed_total",
			Help: "Total number of processed region measurements.",
		}, []string{"status"}),
		MeasurementErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geoarea_measurement_errors_total",
			Help: "Total number of failed region measurements by error kind.",
		}, []string{"kind"}),
		MeasureSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geoarea_measurement_duration_seconds",
			Help:    "Duration of a single region area measurement.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"ellipsoid"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "geoarea_active_workers",
			Help: "Current number of active workers measuring regions.",
		}),
		LastAreaKm2: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "geoarea_last_area_km2",
			Help: "Area in square kilometers of the most recently measured region.",
		}),
	}
}
