package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/domain"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/dto"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/plan"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/service"
)

type Handler struct {
	planService service.PlanServicer
	router      *gin.Engine
	log         *zap.Logger
}

func NewHandler(planService service.PlanServicer, log *zap.Logger) *Handler {
	h := &Handler{
		planService: planService,
		router:      gin.Default(),
		log:         log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/plans", h.generatePlan)
	h.router.POST("/plans/bulk", h.generateBulkPlans)
	h.router.POST("/plans/schema", h.renderSchema)
	h.router.POST("/plans/samples", h.generateSamples)
	h.router.POST("/plans/markdown", h.renderMarkdown)
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// bindRequest decodes a plan request body, writing the error response on
// failure.
func (h *Handler) bindRequest(c *gin.Context) (*dto.GeneratePlanRequest, bool) {
	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request body",
		})
		return nil, false
	}
	return &req, true
}

// respondError maps domain validation failures to 400 with the offending
// field named; anything else is a 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
			Field:   verr.Field,
		})
		return
	}

	h.log.Error("Plan request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "internal_error",
	})
}

// generatePlan handles POST /plans: the full tracking plan with its
// taxonomy warnings.
func (h *Handler) generatePlan(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	resp, err := h.planService.GeneratePlan(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// generateBulkPlans handles POST /plans/bulk.
func (h *Handler) generateBulkPlans(c *gin.Context) {
	var req dto.GenerateBulkPlansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "invalid request body",
		})
		return
	}

	resp, err := h.planService.GenerateBulkPlans(req.Requests)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// renderSchema handles POST /plans/schema: the dbt-style schema YAML.
func (h *Handler) renderSchema(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	data, err := h.planService.RenderSchema(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/yaml", data)
}

// renderMarkdown handles POST /plans/markdown: the plan as a document.
func (h *Handler) renderMarkdown(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	data, err := h.planService.RenderMarkdown(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", data)
}

// generateSamples handles POST /plans/samples?count=N&format=json|csv and
// returns the payload as a download.
func (h *Handler) generateSamples(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	count := 0
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: "count must be a non-negative integer",
			})
			return
		}
		count = parsed
	}

	format := service.SampleFormatJSON
	switch c.DefaultQuery("format", "json") {
	case "json":
	case "csv":
		format = service.SampleFormatCSV
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "format must be json or csv",
		})
		return
	}

	data, contentType, err := h.planService.GenerateSamples(req, count, format)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filename := fmt.Sprintf("%s_sample_events.%s", plan.Slug(req.FeatureName), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
