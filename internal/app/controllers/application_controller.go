package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/domain"
	"github.com/yigit/tnp/internal/middleware"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/helpers"
)

// ApplicationController handles job applications
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Apply submits an application for the calling student
// @Summary Apply to a job
// @Description Submits an application for the calling student to an open job they are eligible for
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Not eligible or applying for another student"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied or job closed"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.applicationService.Apply(ctx.Request.Context(), p, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, app, "Application submitted successfully")
}

// ListMine returns the calling student's applications with job summaries
// @Summary List own applications
// @Description Returns the calling student's applications with job summaries
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/me [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	apps, err := c.applicationService.ListMine(ctx.Request.Context(), p.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, apps, "")
}

// ListByJob returns the applicants of one job
// @Summary List applicants of a job
// @Description Returns every application filed for a job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/job/{jobId} [get]
func (c *ApplicationController) ListByJob(ctx *gin.Context) {
	jobID, ok := uuidParam(ctx, "jobId")
	if !ok {
		return
	}

	apps, err := c.applicationService.ListByJob(ctx.Request.Context(), jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, apps, "")
}

// List is the paginated admin view, filterable by ?status= and ?jobId=
// @Summary List applications
// @Description Paginated list of all applications, filterable by status and job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Application status" Enums(APPLIED, SHORTLISTED, TEST, INTERVIEW, ACCEPTED, REJECTED)
// @Param jobId query string false "Job ID" Format(uuid)
// @Param page query int false "Page number" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]models.Application}} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) List(ctx *gin.Context) {
	var filter repositories.ApplicationFilter
	if s := ctx.Query("status"); s != "" {
		status, err := domain.ParseApplicationStatus(s)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		filter.Status = status
	}
	if s := ctx.Query("jobId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("jobId", "jobId must be a valid UUID"))
			return
		}
		filter.JobID = id
	}

	page := helpers.ParsePaginationParams(ctx)
	apps, total, err := c.applicationService.List(ctx.Request.Context(), filter, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, dto.PaginatedResponse{
		Items:      apps,
		Pagination: helpers.NewPaginationInfo(total, page),
	}, "")
}

// Create files an application on behalf of a student
// @Summary Create an application
// @Description Files an application on behalf of a student without the eligibility check
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Application data"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 409 {object} dto.ErrorResponse "Already applied"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.applicationService.CreateApplication(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, app, "Application created successfully")
}

// UpdateStatus moves an application through the hiring pipeline. Served on
// both PUT and PATCH.
// @Summary Update application status
// @Description Moves an application through the hiring pipeline. Also served on PATCH
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID" Format(uuid)
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Illegal transition or concurrent update"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/status [put]
// @Router /applications/{id}/status [patch]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	app, err := c.applicationService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, app, "Application status updated to "+string(app.Status))
}
