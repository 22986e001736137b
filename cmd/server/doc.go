// Package main is the entry point for the FSPro backend server.
//
// The server exposes path inspection, metadata, icon, archive, and
// transfer commands over a REST API backed by a worker pool.
//
// The server provides:
//   - REST API for filesystem commands
//   - Service provider registry
//   - Prometheus metrics
//   - Rate limiting and request validation
//
// Configuration:
//   - Environment variables (12-factor)
//   - Defaults for development
//
// Usage:
//
//	PORT=8090 LOG_LEVEL=info ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
