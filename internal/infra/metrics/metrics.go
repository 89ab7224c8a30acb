// Package metrics exposes the prometheus collectors of the activity sync.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"bpaml/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bpaml"

// NewRegistry creates the process registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Handler serves the prometheus exposition format for the registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// Recorder implements service.SyncMetrics and also observes outbound Strava requests.
type Recorder struct {
	tokenRefreshes  *prometheus.CounterVec
	fetchedTotal    prometheus.Counter
	truncatedTotal  prometheus.Counter
	importedTotal   prometheus.Counter
	deletedTotal    prometheus.Counter
	apiRequests     *prometheus.CounterVec
	apiRequestTimes *prometheus.HistogramVec
}

var _ service.SyncMetrics = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with registerer.
func NewRecorder(registerer prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		tokenRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strava",
			Name:      "token_refreshes_total",
			Help:      "Strava token refresh attempts by outcome.",
		}, []string{"outcome"}),
		fetchedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "remote_activities_fetched_total",
			Help:      "Remote activities returned by activity listings.",
		}),
		truncatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "listings_possibly_truncated_total",
			Help:      "Activity listings that filled the whole first page.",
		}),
		importedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "activities_imported_total",
			Help:      "Activities saved from Strava.",
		}),
		deletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "activities_deleted_total",
			Help:      "Activities deleted locally.",
		}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strava",
			Name:      "api_requests_total",
			Help:      "Outbound Strava requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		apiRequestTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "strava",
			Name:      "api_request_duration_seconds",
			Help:      "Latency of outbound Strava requests.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 9),
		}, []string{"endpoint"}),
	}

	for _, c := range []prometheus.Collector{
		r.tokenRefreshes, r.fetchedTotal, r.truncatedTotal, r.importedTotal,
		r.deletedTotal, r.apiRequests, r.apiRequestTimes,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, errors.Wrap(err, "register metrics collector")
		}
	}

	return r, nil
}

func (r *Recorder) ObserveTokenRefresh(outcome string) {
	r.tokenRefreshes.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveFetch(activities int, truncated bool) {
	r.fetchedTotal.Add(float64(activities))
	if truncated {
		r.truncatedTotal.Inc()
	}
}

func (r *Recorder) ObserveImport() {
	r.importedTotal.Inc()
}

func (r *Recorder) ObserveDelete() {
	r.deletedTotal.Inc()
}

// ObserveRequest records one outbound call. A status of 0 means no response was received.
func (r *Recorder) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	r.apiRequests.WithLabelValues(endpoint, label).Inc()
	r.apiRequestTimes.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
