package fspro

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// TransferOps handles filtered directory moves
type TransferOps struct {
	*Ops
}

// GetTools returns transfer tool definitions
func (o *TransferOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fspro.transfer",
			Name:        "Transfer",
			Description: "Move the filtered top-level entries of a directory into another",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Source directory", Required: true},
				{Name: "target", Type: "string", Description: "Destination directory, created if missing", Required: true},
				{Name: "filter", Type: "object", Description: "Top-level name filter with includes and excludes", Required: false},
				{Name: "on_conflict", Type: "string", Description: "overwrite, skip, or error; defaults to overwrite", Required: false},
			},
			Returns: "object",
		},
	}
}

// Transfer moves filtered entries between directories
func (o *TransferOps) Transfer(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
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

	policy := fs.ConflictPolicy("")
	if raw, ok := params["on_conflict"].(string); ok && raw != "" {
		switch fs.ConflictPolicy(raw) {
		case fs.ConflictOverwrite, fs.ConflictSkip, fs.ConflictError:
			policy = fs.ConflictPolicy(raw)
		default:
			return Failure(fmt.Sprintf("unknown conflict policy: %s", raw))
		}
	}

	stats, err := fs.Transfer(path, target, filter, policy)
	if err != nil {
		return FailureErr(err)
	}
	if o.Metrics != nil {
		o.Metrics.AddTransferEntries("moved", stats.Moved)
		o.Metrics.AddTransferEntries("skipped", stats.Skipped)
	}
	return Success(map[string]interface{}{
		"path":    path,
		"target":  target,
		"moved":   stats.Moved,
		"skipped": stats.Skipped,
	})
}
