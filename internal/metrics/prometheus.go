package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the feature precompute service

var (
	// Pipeline run metrics
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precompute_pipeline_runs_total",
			Help: "Total number of feature pipeline runs",
		},
		[]string{"sport", "status"},
	)

	PipelineRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "precompute_pipeline_run_duration_seconds",
			Help:    "Duration of feature pipeline runs in seconds",
			Buckets: []float64{.1, .5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"sport"},
	)

	// Data quality metrics
	IncompleteGamesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precompute_incomplete_games_skipped_total",
			Help: "Games excluded from feature computation for missing scores",
		},
		[]string{"sport"},
	)

	UnresolvedRecordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precompute_unresolved_records_dropped_total",
			Help: "Records dropped because a team name failed to resolve",
		},
		[]string{"sport"},
	)

	SnapshotRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "precompute_snapshot_rows",
			Help: "Number of team rows in the latest feature snapshot",
		},
		[]string{"sport"},
	)

	GamesUsed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "precompute_games_used",
			Help: "Number of completed, resolvable games used in the latest run",
		},
		[]string{"sport"},
	)

	// Database metrics
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precompute_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "table", "status"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "precompute_db_connections_active",
			Help: "Number of active database connections",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "precompute_db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Cache metrics
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "precompute_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "precompute_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	CacheOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "precompute_cache_operation_duration_seconds",
			Help:    "Duration of cache operations in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "precompute_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// System metrics
	SystemUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "precompute_system_uptime_seconds",
			Help: "System uptime in seconds",
		},
	)

	LastSuccessfulRun = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "precompute_last_successful_run_timestamp",
			Help: "Timestamp of the last successful pipeline run",
		},
		[]string{"sport"},
	)
)

// RecordPipelineRun records a pipeline run outcome
func RecordPipelineRun(sport, status string, duration float64) {
	PipelineRunsTotal.WithLabelValues(sport, status).Inc()
	PipelineRunDuration.WithLabelValues(sport).Observe(duration)

	if status == "success" {
		LastSuccessfulRun.WithLabelValues(sport).SetToCurrentTime()
	}
}

// RecordRunReport records the data quality counters of a completed run
func RecordRunReport(sport string, gamesUsed, skippedIncomplete, droppedUnresolved, snapshotRows int) {
	GamesUsed.WithLabelValues(sport).Set(float64(gamesUsed))
	IncompleteGamesSkipped.WithLabelValues(sport).Add(float64(skippedIncomplete))
	UnresolvedRecordsDropped.WithLabelValues(sport).Add(float64(droppedUnresolved))
	SnapshotRows.WithLabelValues(sport).Set(float64(snapshotRows))
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table, status string) {
	DBQueriesTotal.WithLabelValues(operation, table, status).Inc()
}

// RecordCacheHit records a cache hit
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a cache miss
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordCacheOperation records a cache operation duration
func RecordCacheOperation(operation string, duration float64) {
	CacheOperationDuration.WithLabelValues(operation).Observe(duration)
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}

// UpdateDBConnectionStats updates database connection pool statistics
func UpdateDBConnectionStats(active, idle int32) {
	DBConnectionsActive.Set(float64(active))
	DBConnectionsIdle.Set(float64(idle))
}
