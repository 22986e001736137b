// Package http contains the HTTP handlers for the backend API.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
	"github.com/GriffinCanCode/FSPro/backend/internal/monitoring"
	"github.com/GriffinCanCode/FSPro/backend/internal/service"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
	"github.com/GriffinCanCode/FSPro/backend/internal/utils"
	"github.com/GriffinCanCode/FSPro/backend/internal/workers"
	"go.uber.org/zap"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	pool     *workers.Pool
	metrics  *monitoring.Metrics
	log      *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, pool *workers.Pool, metrics *monitoring.Metrics, log *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		pool:     pool,
		metrics:  metrics,
		log:      log,
	}
}

// Root handles the banner endpoint
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "FSPro Service (Go)",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"workers":          gin.H{"running": h.pool.IsRunning()},
	})
}

// Stats reports headline metrics as JSON
func (h *Handlers) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetSnapshot())
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// ExecuteService executes a service tool on the worker pool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateJSONDepth(req.Params, utils.MaxJSONDepth); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := req.RequestID
	if requestID == nil {
		id := uuid.NewString()
		requestID = &id
	}
	appCtx := &types.Context{RequestID: requestID}

	var (
		result *types.Result
		err    error
	)
	submitErr := h.pool.Submit(c.Request.Context(), func(ctx context.Context) {
		result, err = h.registry.Execute(ctx, req.ToolID, req.Params, appCtx)
	})
	if submitErr != nil {
		h.log.Warn("execution cancelled",
			zap.String("tool", req.ToolID),
			zap.Error(submitErr))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": submitErr.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
