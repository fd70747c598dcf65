package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_external_sync_duration_seconds",
			Help:    "Duration of each external jobs sync in seconds.",
			Buckets: []float64{1, 5, 15, 60, 300},
		},
	)
	SyncedJobsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_external_jobs_synced_total",
			Help: "Total number of jobs inserted from the external feed.",
		},
	)
	SkippedListingsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_external_listings_skipped_total",
			Help: "Total number of feed listings skipped as duplicates.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(SyncDuration)
	prometheus.MustRegister(SyncedJobsCounter)
	prometheus.MustRegister(SkippedListingsCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
