// Package monitoring provides Prometheus instrumentation for the backend.
//
// Metrics cover the HTTP surface and every filesystem command, plus byte
// counters for archive and transfer workloads. A JSON snapshot of the
// headline numbers backs the /stats endpoint.
//
// Exposed Metrics:
//   - fspro_http_requests_total, fspro_http_request_duration_seconds
//   - fspro_command_calls_total, fspro_command_duration_seconds
//   - fspro_archive_bytes_total, fspro_transfer_entries_total
//   - fspro_icon_cache_hits_total, fspro_uptime_seconds
package monitoring
