package fspro

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/fs/icon"
	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
	"github.com/GriffinCanCode/FSPro/backend/internal/monitoring"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

// Provider exposes the fspro command surface
type Provider struct {
	ops      *Ops
	inspect  *InspectOps
	metadata *MetadataOps
	icons    *IconOps
	archive  *ArchiveOps
	transfer *TransferOps

	handlers map[string]handler
}

type handler func(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)

// New creates the provider. A nil metrics collector disables recording.
func New(icons *icon.Extractor, metrics *monitoring.Metrics, log *logging.Logger) *Provider {
	if icons == nil {
		icons = icon.New("")
	}
	if log == nil {
		log = logging.NewDefault()
	}

	ops := &Ops{Icons: icons, Metrics: metrics, Log: log}
	p := &Provider{
		ops:      ops,
		inspect:  &InspectOps{ops},
		metadata: &MetadataOps{ops},
		icons:    &IconOps{ops},
		archive:  &ArchiveOps{ops},
		transfer: &TransferOps{ops},
	}

	p.handlers = map[string]handler{
		"fspro.is_exist":                   p.inspect.IsExist,
		"fspro.is_file":                    p.inspect.IsFile,
		"fspro.is_dir":                     p.inspect.IsDir,
		"fspro.is_symlink":                 p.inspect.IsSymlink,
		"fspro.is_absolute":                p.inspect.IsAbsolute,
		"fspro.is_relative":                p.inspect.IsRelative,
		"fspro.name":                       p.inspect.Name,
		"fspro.full_name":                  p.inspect.FullName,
		"fspro.extname":                    p.inspect.Extname,
		"fspro.parent_name":                p.inspect.ParentName,
		"fspro.size":                       p.metadata.Size,
		"fspro.size_human":                 p.metadata.SizeHuman,
		"fspro.mime_type":                  p.metadata.MimeType,
		"fspro.metadata":                   p.metadata.Metadata,
		"fspro.icon":                       p.icons.Icon,
		"fspro.get_default_save_icon_path": p.icons.DefaultSaveIconPath,
		"fspro.compress":                   p.archive.Compress,
		"fspro.decompress":                 p.archive.Decompress,
		"fspro.transfer":                   p.transfer.Transfer,
	}

	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	tools := p.inspect.GetTools()
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.icons.GetTools()...)
	tools = append(tools, p.archive.GetTools()...)
	tools = append(tools, p.transfer.GetTools()...)

	return types.Service{
		ID:          "fspro",
		Name:        "Path Inspection Service",
		Description: "Path inspection, metadata, icons, archiving, and transfers",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"inspect",
			"metadata",
			"icons",
			"compress",
			"decompress",
			"transfer",
		},
		Tools: tools,
	}
}

// Execute runs a fspro command
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	h, ok := p.handlers[toolID]
	if !ok {
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}

	var timer *monitoring.Timer
	if p.ops.Metrics != nil {
		timer = monitoring.NewTimer(p.ops.Metrics, toolID)
	}

	result, err := h(ctx, params, appCtx)

	status := "success"
	if err != nil || (result != nil && !result.Success) {
		status = "error"
		if p.ops.Metrics != nil {
			kind := string(fs.KindIO)
			if result != nil {
				if k, ok := result.Data["kind"].(string); ok {
					kind = k
				}
			}
			p.ops.Metrics.RecordCommandError(toolID, kind)
		}
		p.ops.Log.Debug("command failed",
			zap.String("tool", toolID),
			zap.Any("error", resultError(result, err)))
	}
	if timer != nil {
		timer.Stop(status)
	}

	return result, err
}

func resultError(result *types.Result, err error) interface{} {
	if err != nil {
		return err.Error()
	}
	if result != nil && result.Error != nil {
		return *result.Error
	}
	return nil
}
