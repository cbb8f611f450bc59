package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trek-backend-go/internal/service"
	"github.com/jengzang/trek-backend-go/pkg/response"
)

// EnrichmentHandler handles HTTP requests for enrichment tasks
type EnrichmentHandler struct {
	enrichmentService *service.EnrichmentService
}

// NewEnrichmentHandler creates a new enrichment handler
func NewEnrichmentHandler(enrichmentService *service.EnrichmentService) *EnrichmentHandler {
	return &EnrichmentHandler{
		enrichmentService: enrichmentService,
	}
}

// CreateTask handles POST /api/v1/admin/enrichment/tasks
func (h *EnrichmentHandler) CreateTask(c *gin.Context) {
	createdBy := c.GetString("username")
	if createdBy == "" {
		createdBy = "admin"
	}

	task, err := h.enrichmentService.CreateTask(createdBy)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, task)
}

// GetTask handles GET /api/v1/admin/enrichment/tasks/:id
func (h *EnrichmentHandler) GetTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task id")
		return
	}

	task, err := h.enrichmentService.GetTask(id)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}

	response.Success(c, task)
}

// ListTasks handles GET /api/v1/admin/enrichment/tasks
func (h *EnrichmentHandler) ListTasks(c *gin.Context) {
	status := c.Query("status")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tasks, err := h.enrichmentService.ListTasks(status, limit, offset)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, tasks)
}

// CancelTask handles POST /api/v1/admin/enrichment/tasks/:id/cancel
func (h *EnrichmentHandler) CancelTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task id")
		return
	}

	if err := h.enrichmentService.CancelTask(id); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"cancelled": id})
}
