package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors shared by the coordinate factory
// and the survey service.
type Metrics struct {
	CacheLookups       *prometheus.CounterVec
	CacheInstances     *prometheus.GaugeVec
	ContractFailures   *prometheus.CounterVec
	ConversionFailures *prometheus.CounterVec
	RequestSeconds     *prometheus.HistogramVec
	ProviderErrors     *prometheus.CounterVec
	ActiveWorkers      prometheus.Gauge
	AddressesProcessed *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoord_cache_lookups_total",
			Help: "Total number of canonical coordinate lookups by representation and result.",
		}, []string{"kind", "result"}),
		CacheInstances: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "geocoord_cache_instances",
			Help: "Current number of canonical coordinate instances held by the cache.",
		}, []string{"kind"}),
		ContractFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoord_contract_failures_total",
			Help: "Total number of violated invariants and postconditions.",
		}, []string{"check"}),
		ConversionFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoord_conversion_failures_total",
			Help: "Total number of representation changes rejected by the target constructor.",
		}, []string{"target"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geocoord_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ProviderErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoord_provider_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "geocoord_survey_active_workers",
			Help: "Current number of workers resolving addresses.",
		}),
		AddressesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoord_survey_addresses_processed_total",
			Help: "Total number of surveyed addresses by status.",
		}, []string{"status"}),
	}
}
