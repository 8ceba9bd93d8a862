package utils

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "dairy_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	overviewBuildTotal   *prometheus.CounterVec
	overviewBuildLatency *prometheus.HistogramVec
	cellAdjustTotal      *prometheus.CounterVec
	cellAdjustLatency    *prometheus.HistogramVec

	reminderTasksTotal *prometheus.CounterVec
)

// InitMetrics registers collectors with the default registry. Safe to call more than once.
func InitMetrics() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_latency_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
		overviewBuildTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "overview_build_total",
				Help: "Total overview builds by result",
			},
			[]string{"result"},
		)
		overviewBuildLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "overview_build_latency_seconds",
				Help:    "Overview build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		cellAdjustTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cell_adjust_total",
				Help: "Total quick-entry cell adjustments by kind and result",
			},
			[]string{"kind", "result"},
		)
		cellAdjustLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "cell_adjust_latency_seconds",
				Help:    "Cell adjustment latency in seconds, lock wait included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		)
		reminderTasksTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reminder_tasks_total",
				Help: "Reminder tasks by stage and result",
			},
			[]string{"stage", "result"},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			overviewBuildTotal,
			overviewBuildLatency,
			cellAdjustTotal,
			cellAdjustLatency,
			reminderTasksTotal,
		)
	})
}

func ObserveHTTP(method, route, status string, duration time.Duration) {
	InitMetrics()
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func ObserveOverviewBuild(result string, duration time.Duration) {
	InitMetrics()
	overviewBuildTotal.WithLabelValues(result).Inc()
	overviewBuildLatency.WithLabelValues(result).Observe(duration.Seconds())
}

func ObserveCellAdjust(kind, result string, duration time.Duration) {
	InitMetrics()
	cellAdjustTotal.WithLabelValues(kind, result).Inc()
	cellAdjustLatency.WithLabelValues(kind).Observe(duration.Seconds())
}

func IncReminderTask(stage, result string) {
	InitMetrics()
	reminderTasksTotal.WithLabelValues(stage, result).Inc()
}

// ResultOf returns the metric result label for err.
func ResultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
