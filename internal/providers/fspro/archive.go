package fspro

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// ArchiveOps handles compress and decompress
type ArchiveOps struct {
	*Ops
}

// GetTools returns archive tool definitions
func (o *ArchiveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fspro.compress",
			Name:        "Compress",
			Description: "Pack a file or directory into a gzip-compressed tar archive",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Source file or directory", Required: true},
				{Name: "target", Type: "string", Description: "Archive destination path", Required: true},
				{Name: "filter", Type: "object", Description: "Top-level name filter with includes and excludes", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "fspro.decompress",
			Name:        "Decompress",
			Description: "Unpack an archive under a destination directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Archive path", Required: true},
				{Name: "target", Type: "string", Description: "Destination directory", Required: true},
			},
			Returns: "object",
		},
	}
}

// Compress archives a path
func (o *ArchiveOps) Compress(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	target, ok := params["target"].(string)
	if !ok || target == "" {
		return Failure("target parameter required")
	}

	var filter fs.Filter
	if err := decodeParam(params, "filter", &filter); err != nil {
		return Failure(fmt.Sprintf("invalid filter: %v", err))
	}

	stats, err := fs.Compress(path, target, filter)
	if err != nil {
		return FailureErr(err)
	}
	if o.Metrics != nil {
		o.Metrics.AddArchiveBytes("compress", stats.Bytes)
	}
	return Success(map[string]interface{}{
		"path":    path,
		"target":  target,
		"entries": stats.Entries,
		"bytes":   stats.Bytes,
	})
}

// Decompress unpacks an archive
func (o *ArchiveOps) Decompress(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	target, ok := params["target"].(string)
	if !ok || target == "" {
		return Failure("target parameter required")
	}

	stats, err := fs.Decompress(path, target)
	if err != nil {
		return FailureErr(err)
	}
	if o.Metrics != nil {
		o.Metrics.AddArchiveBytes("decompress", stats.Bytes)
	}
	return Success(map[string]interface{}{
		"path":    path,
		"target":  target,
		"entries": stats.Entries,
		"bytes":   stats.Bytes,
	})
}
