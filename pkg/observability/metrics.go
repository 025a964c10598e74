package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	ServiceName string
}

// InitMetrics initializes the Prometheus metrics exporter.
// Returns the MeterProvider and an HTTP handler for the /metrics endpoint.
func InitMetrics(_ MetricsConfig) (*sdkmetric.MeterProvider, http.Handler, error) {
	exporter, err := promexporter.New()
	if err != nil {
		return nil, nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)

	return provider, promhttp.Handler(), nil
}

// BureauMetrics groups the Prometheus collectors for the reporting core.
type BureauMetrics struct {
	ReportsAssembled  prometheus.Counter
	ReportNotFound    prometheus.Counter
	ScoringFallbacks  prometheus.Counter
	ScoringRemoteOK   prometheus.Counter
	IngestedRecords   prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// NewBureauMetrics registers and returns the service collectors.
func NewBureauMetrics() *BureauMetrics {
	return &BureauMetrics{
		ReportsAssembled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "miriesgo_reports_assembled_total",
			Help: "Credit reports assembled for consultation.",
		}),
		ReportNotFound: promauto.NewCounter(prometheus.CounterOpts{
			Name: "miriesgo_reports_not_found_total",
			Help: "Report lookups that matched no client.",
		}),
		ScoringFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "miriesgo_scoring_fallbacks_total",
			Help: "Risk scores computed locally after a remote scoring failure.",
		}),
		ScoringRemoteOK: promauto.NewCounter(prometheus.CounterOpts{
			Name: "miriesgo_scoring_remote_total",
			Help: "Risk scores served by the remote scoring collaborator.",
		}),
		IngestedRecords: promauto.NewCounter(prometheus.CounterOpts{
			Name: "miriesgo_ingested_records_total",
			Help: "Flat-file records processed by the ingestion use case.",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "miriesgo_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
