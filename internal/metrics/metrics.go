// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeExact   = "exact"
	OutcomeFuzzy   = "fuzzy"
	OutcomeRandom  = "random"
	OutcomeMiss    = "miss"
	OutcomeInvalid = "invalid"
	OutcomeEmpty   = "empty"
)

var (
	// Catalog
	CatalogMoods = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mood_catalog_moods",
			Help: "Number of moods in the loaded catalog",
		},
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mood_catalog_movies",
			Help: "Number of movie records in the loaded catalog",
		},
	)

	CatalogSkippedRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mood_catalog_skipped_records",
			Help: "Movie records dropped by validation at load time",
		},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_catalog_load_errors_total",
			Help: "Catalog loads that fell back to an empty index",
		},
		[]string{"source"},
	)

	// Lookups
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_lookups_total",
			Help: "Mood index lookups by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_search_results",
			Help:    "Number of movies returned per search",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)
)

func RecordLookup(operation, outcome string) {
	LookupsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordCatalog(moods, movies, skipped int) {
	CatalogMoods.Set(float64(moods))
	CatalogMovies.Set(float64(movies))
	CatalogSkippedRecords.Set(float64(skipped))
}

// Middleware records request count and latency per route pattern.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		endpoint := c.Route().Path
		APIRequestsTotal.WithLabelValues(c.Method(), endpoint, strconv.Itoa(status)).Inc()
		APIRequestDuration.WithLabelValues(c.Method(), endpoint).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
