package metrics

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	assignments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Name:      "schedule_assignments_total",
			Help:      "Count of schedule assignment attempts by result.",
		},
		[]string{"result"},
	)

	removals = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resto",
			Name:      "schedule_removals_total",
			Help:      "Count of schedule removals.",
		},
	)

	weekCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Name:      "schedule_week_cache_total",
			Help:      "Schedule week cache lookups by outcome.",
		},
		[]string{"outcome"},
	)

	httpErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resto",
			Name:      "http_errors_total",
			Help:      "Error responses by status and code.",
		},
		[]string{"status", "code"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(assignments, removals, weekCache, httpErrors)
	})
}

func IncAssignment(result string) {
	assignments.WithLabelValues(result).Inc()
}

func IncRemoval() {
	removals.Inc()
}

func IncWeekCache(outcome string) {
	weekCache.WithLabelValues(outcome).Inc()
}

func IncHTTPError(status, code string) {
	httpErrors.WithLabelValues(status, code).Inc()
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
