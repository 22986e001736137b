package fspro

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// MetadataOps handles sizes, MIME detection, and the full metadata record
type MetadataOps struct {
	*Ops
}

// GetTools returns metadata tool definitions
func (o *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fspro.size",
			Name:        "Path Size",
			Description: "Size in bytes; directories are summed recursively",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "fspro.size_human",
			Name:        "Human Size",
			Description: "Size formatted with binary units",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "fspro.mime_type",
			Name:        "MIME Type",
			Description: "Detect the MIME type from file content",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "fspro.metadata",
			Name:        "Path Metadata",
			Description: "Full metadata record: size, names, flags, timestamps",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				{Name: "options", Type: "object", Description: "Record options, omitSize skips the recursive walk", Required: false},
			},
			Returns: "object",
		},
	}
}

// Size returns the byte size of the path
func (o *MetadataOps) Size(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "size": fs.Size(path)})
}

// SizeHuman returns the byte size formatted with binary units
func (o *MetadataOps) SizeHuman(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	size := fs.Size(path)
	return Success(map[string]interface{}{"path": path, "size": size, "size_human": formatBytes(size)})
}

// MimeType detects the content type of a file
func (o *MetadataOps) MimeType(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	if fs.IsDir(path) {
		return Success(map[string]interface{}{"path": path, "mime_type": "inode/directory"})
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return FailureErr(fs.NewError(fs.KindNotFound, "mime_type", path, err))
	}
	return Success(map[string]interface{}{"path": path, "mime_type": mt.String()})
}

// Metadata returns the full metadata record
func (o *MetadataOps) Metadata(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	var opts fs.MetadataOptions
	if err := decodeParam(params, "options", &opts); err != nil {
		return Failure(fmt.Sprintf("invalid options: %v", err))
	}

	record, err := toMap(fs.Stat(path, opts))
	if err != nil {
		return Failure(fmt.Sprintf("metadata encoding failed: %v", err))
	}
	return Success(record)
}

// formatBytes renders a size with binary units and two decimals.
func formatBytes(size uint64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	units := []string{"KB", "MB", "GB", "TB", "PB"}
	value := float64(size)
	idx := -1
	for value >= unit && idx < len(units)-1 {
		value /= unit
		idx++
	}
	return fmt.Sprintf("%.2f %s", value, units[idx])
}
