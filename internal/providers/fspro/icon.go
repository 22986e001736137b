package fspro

import (
	"context"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs/icon"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// IconOps handles icon extraction
type IconOps struct {
	*Ops
}

// GetTools returns icon tool definitions
func (o *IconOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "fspro.icon",
			Name:        "Path Icon",
			Description: "Extract a square PNG icon for the path",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				{Name: "size", Type: "number", Description: "Edge length in pixels, defaults to 32", Required: false},
				{Name: "save_path", Type: "string", Description: "Write the icon to this file instead of the cache", Required: false},
			},
			Returns: "string",
		},
		{
			ID:          "fspro.get_default_save_icon_path",
			Name:        "Icon Cache Location",
			Description: "Directory where extracted icons are cached",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
	}
}

// Icon extracts and caches an icon for the path
func (o *IconOps) Icon(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	size, ok := intParam(params, "size")
	if !ok {
		size = icon.DefaultSize
	}
	savePath, _ := params["save_path"].(string)

	out, err := o.Icons.Icon(path, size, savePath)
	if err != nil {
		return FailureErr(err)
	}
	return Success(map[string]interface{}{"path": path, "size": size, "icon_path": out})
}

// DefaultSaveIconPath reports the icon cache directory
func (o *IconOps) DefaultSaveIconPath(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return Success(map[string]interface{}{"icon_path": icon.DefaultCachePath()})
}
