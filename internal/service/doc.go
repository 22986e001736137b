// Package service provides the registry that maps command identifiers to
// their providers.
//
// The registry maintains a catalog of registered providers and routes tool
// execution to them by the service prefix of the tool ID.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//
// Features:
//   - Thread-safe service registration
//   - Category-based listing
//   - Tool execution with context passing
//   - Service statistics
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(fsproProvider)
//	result, err := registry.Execute(ctx, "fspro.metadata", params, appCtx)
package service
