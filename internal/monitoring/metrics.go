package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Command metrics, labelled by tool ID
	CommandCalls    *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	CommandErrors   *prometheus.CounterVec

	// Workload metrics
	ArchiveBytes    *prometheus.CounterVec
	TransferEntries *prometheus.CounterVec
	IconCacheHits   prometheus.Counter

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values for the JSON stats endpoint
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalCommands int64   `json:"total_commands"`
	TotalDuration float64 `json:"-"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fspro_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fspro_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		CommandCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fspro_command_calls_total",
				Help: "Total number of filesystem command calls",
			},
			[]string{"tool", "status"},
		),
		CommandDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fspro_command_duration_seconds",
				Help:    "Filesystem command duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 30},
			},
			[]string{"tool"},
		),
		CommandErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fspro_command_errors_total",
				Help: "Total number of filesystem command errors",
			},
			[]string{"tool", "kind"},
		),

		ArchiveBytes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fspro_archive_bytes_total",
				Help: "Bytes written by archive operations",
			},
			[]string{"direction"},
		),
		TransferEntries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fspro_transfer_entries_total",
				Help: "Top-level entries processed by transfers",
			},
			[]string{"outcome"},
		),
		IconCacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "fspro_icon_cache_hits_total",
				Help: "Icon lookups served from the on-disk cache",
			},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "fspro_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

	// Update snapshot
	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordCommand records one filesystem command execution
func (m *Metrics) RecordCommand(tool, status string, duration time.Duration) {
	m.CommandCalls.WithLabelValues(tool, status).Inc()
	m.CommandDuration.WithLabelValues(tool).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalCommands++
	m.mu.Unlock()
}

// RecordCommandError records a failed command with its error kind
func (m *Metrics) RecordCommandError(tool, kind string) {
	m.CommandErrors.WithLabelValues(tool, kind).Inc()
}

// AddArchiveBytes records bytes flowing through compress or decompress
func (m *Metrics) AddArchiveBytes(direction string, n int64) {
	if n < 0 {
		return
	}
	m.ArchiveBytes.WithLabelValues(direction).Add(float64(n))
}

// AddTransferEntries records transfer outcomes ("moved" or "skipped")
func (m *Metrics) AddTransferEntries(outcome string, n int) {
	if n < 0 {
		return
	}
	m.TransferEntries.WithLabelValues(outcome).Add(float64(n))
}

// GetSnapshot returns the current headline values
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := m.snapshot
	snap.UptimeSeconds = time.Since(m.startTime).Seconds()
	if snap.TotalRequests > 0 {
		snap.AvgDurationMs = snap.TotalDuration / float64(snap.TotalRequests) * 1000
	}
	return snap
}
