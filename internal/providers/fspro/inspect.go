package fspro

import (
	"context"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// InspectOps handles existence checks and name decomposition
type InspectOps struct {
	*Ops
}

// GetTools returns inspection tool definitions
func (o *InspectOps) GetTools() []types.Tool {
	pathOnly := []types.Parameter{
		{Name: "path", Type: "string", Description: "File or directory path", Required: true},
	}
	return []types.Tool{
		{
			ID:          "fspro.is_exist",
			Name:        "Check Existence",
			Description: "Check whether the path resolves to an existing file or directory",
			Parameters:  pathOnly,
			Returns:     "boolean",
		},
		{
			ID:          "fspro.is_file",
			Name:        "Check File",
			Description: "Check whether the path is an existing regular file",
			Parameters:  pathOnly,
			Returns:     "boolean",
		},
		{
			ID:          "fspro.is_dir",
			Name:        "Check Directory",
			Description: "Check whether the path is an existing directory",
			Parameters:  pathOnly,
			Returns:     "boolean",
		},
		{
			ID:          "fspro.is_symlink",
			Name:        "Check Symlink",
			Description: "Check whether the path itself is a symbolic link",
			Parameters:  pathOnly,
			Returns:     "boolean",
		},
		{
			ID:          "fspro.is_absolute",
			Name:        "Check Absolute",
			Description: "Check whether the path string is absolute, without touching the filesystem",
			Parameters:  pathOnly,
			Returns:     "boolean",
		},
		{
			ID:          "fspro.is_relative",
			Name:        "Check Relative",
			Description: "Check whether the path string is relative, without touching the filesystem",
			Parameters:  pathOnly,
			Returns:     "boolean",
		},
		{
			ID:          "fspro.name",
			Name:        "Base Name",
			Description: "Base component of the path without its extension",
			Parameters:  pathOnly,
			Returns:     "string",
		},
		{
			ID:          "fspro.full_name",
			Name:        "Full Name",
			Description: "Base component of the path, extension included",
			Parameters:  pathOnly,
			Returns:     "string",
		},
		{
			ID:          "fspro.extname",
			Name:        "Extension",
			Description: "Extension of the path without the leading dot",
			Parameters:  pathOnly,
			Returns:     "string",
		},
		{
			ID:          "fspro.parent_name",
			Name:        "Parent Name",
			Description: "Name of the ancestor directory at the given level",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				{Name: "level", Type: "number", Description: "Ancestor level, 1 is the immediate parent", Required: false},
			},
			Returns: "string",
		},
	}
}

// IsExist checks path existence
func (o *InspectOps) IsExist(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "exists": fs.Exists(path)})
}

// IsFile checks for a regular file
func (o *InspectOps) IsFile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "is_file": fs.IsFile(path)})
}

// IsDir checks for a directory
func (o *InspectOps) IsDir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "is_dir": fs.IsDir(path)})
}

// IsSymlink checks for a symbolic link without following it
func (o *InspectOps) IsSymlink(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "is_symlink": fs.IsSymlink(path)})
}

// IsAbsolute reports lexical absoluteness of the path string
func (o *InspectOps) IsAbsolute(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "is_absolute": fs.IsAbsolute(path)})
}

// IsRelative is the complement of IsAbsolute
func (o *InspectOps) IsRelative(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "is_relative": fs.IsRelative(path)})
}

// Name returns the base name without extension
func (o *InspectOps) Name(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "name": fs.Name(path)})
}

// FullName returns the base name with extension
func (o *InspectOps) FullName(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "full_name": fs.FullName(path)})
}

// Extname returns the extension without its dot
func (o *InspectOps) Extname(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	return Success(map[string]interface{}{"path": path, "extname": fs.Extname(path)})
}

// ParentName returns the name of the selected ancestor directory
func (o *InspectOps) ParentName(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := pathParam(params)
	if !ok {
		return Failure("path parameter required")
	}
	level, ok := intParam(params, "level")
	if !ok {
		level = 1
	}

	name, err := fs.ParentName(path, level)
	if err != nil {
		return FailureErr(err)
	}
	return Success(map[string]interface{}{"path": path, "level": level, "parent_name": name})
}
