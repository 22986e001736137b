// Package utils provides request validation helpers for the HTTP surface.
//
// Validators bound field lengths, reject null bytes, and keep tool IDs to
// the service.tool character set before anything reaches a provider.
package utils
