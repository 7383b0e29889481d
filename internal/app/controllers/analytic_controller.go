package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/middleware"
)

// AnalyticController handles per-job hiring analytics
type AnalyticController struct {
	analyticService services.AnalyticService
}

// NewAnalyticController creates a new AnalyticController
func NewAnalyticController(analyticService services.AnalyticService) *AnalyticController {
	return &AnalyticController{analyticService: analyticService}
}

// CreateAnalytic records hiring counters for a job
// @Summary Create job analytics
// @Description Records hiring counters for a job. One record per job
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnalyticRequest true "Analytics data"
// @Success 201 {object} dto.APIResponse{data=models.Analytic} "Analytics created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Analytics already exist for this job"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics [post]
func (c *AnalyticController) CreateAnalytic(ctx *gin.Context) {
	var req dto.CreateAnalyticRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	a, err := c.analyticService.CreateAnalytic(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, a, "Analytics created successfully")
}

// ListAnalytics lists analytics for every job
// @Summary List analytics
// @Description Retrieves analytics for every job
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Analytic} "Analytics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics [get]
func (c *AnalyticController) ListAnalytics(ctx *gin.Context) {
	list, err := c.analyticService.ListAnalytics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, list, "")
}

// GetAnalytic looks analytics up by job, not by their own id
// @Summary Get job analytics
// @Description Retrieves the analytics of a job
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Analytic} "Analytics retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Analytics not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/{jobId} [get]
func (c *AnalyticController) GetAnalytic(ctx *gin.Context) {
	jobID, ok := uuidParam(ctx, "jobId")
	if !ok {
		return
	}

	a, err := c.analyticService.GetAnalytic(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, a, "")
}

// UpdateAnalytic updates the counters of a job
// @Summary Update job analytics
// @Description Updates the hiring counters of a job
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID" Format(uuid)
// @Param request body dto.UpdateAnalyticRequest true "Counters to update"
// @Success 200 {object} dto.APIResponse{data=models.Analytic} "Analytics updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Analytics not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/{jobId} [put]
func (c *AnalyticController) UpdateAnalytic(ctx *gin.Context) {
	jobID, ok := uuidParam(ctx, "jobId")
	if !ok {
		return
	}
	var req dto.UpdateAnalyticRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	a, err := c.analyticService.UpdateAnalytic(ctx.Request.Context(), jobID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, a, "Analytics updated successfully")
}

// DeleteAnalytic removes the analytics of a job
// @Summary Delete job analytics
// @Description Deletes the analytics of a job
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Analytics deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Analytics not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/{jobId} [delete]
func (c *AnalyticController) DeleteAnalytic(ctx *gin.Context) {
	jobID, ok := uuidParam(ctx, "jobId")
	if !ok {
		return
	}

	if err := c.analyticService.DeleteAnalytic(ctx.Request.Context(), jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, nil, "Analytics deleted successfully")
}
