package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/middleware"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// JobController handles job listings
type JobController struct {
	jobService services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// CreateJob creates a listing together with its eligibility criteria
// @Summary Create a job
// @Description Creates a job listing together with its eligibility criteria
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job information"
// @Success 201 {object} dto.APIResponse{data=models.JobListing} "Job created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, job, "Job created successfully")
}

// GetJob retrieves a job by ID
// @Summary Get job details
// @Description Retrieves a job listing with its eligibility criteria
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.JobListing} "Job retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobService.GetJob(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, job, "")
}

// ListJobs returns listings, optionally narrowed by ?status= and ?companyId=
// @Summary List jobs
// @Description Retrieves job listings, optionally filtered by status and company
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Job status" Enums(OPEN, CLOSED)
// @Param companyId query string false "Company ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=[]models.JobListing} "Jobs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	var filter repositories.JobFilter

	if s := ctx.Query("status"); s != "" {
		filter.Status = models.JobStatus(s)
		if !filter.Status.Valid() {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("status", "invalid job status"))
			return
		}
	}
	if s := ctx.Query("companyId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("companyId", "companyId must be a valid UUID"))
			return
		}
		filter.CompanyID = id
	}

	jobs, err := c.jobService.ListJobs(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, jobs, "")
}

// FilterJobs returns the open jobs the calling student is eligible for
// @Summary Eligible jobs
// @Description Returns open jobs the calling student is eligible for. Query values override the stored profile
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param branch query string false "Branch" Enums(CSE, IT, ECE, EEE, ME, CE)
// @Param cgpa query number false "CGPA" minimum(0) maximum(10)
// @Param graduationYear query int false "Graduation year"
// @Success 200 {object} dto.APIResponse{data=[]models.JobListing} "Eligible jobs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/filter [get]
func (c *JobController) FilterJobs(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var query dto.JobFilterQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	jobs, err := c.jobService.FilterJobs(ctx.Request.Context(), p.ID, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, jobs, "")
}

// UpdateJob applies a partial update
// @Summary Update a job
// @Description Applies a partial update; a new eligibility replaces the old one
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID" Format(uuid)
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.JobListing} "Job updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, job, "Job updated successfully")
}

// DeleteJob deletes a listing
// @Summary Delete a job
// @Description Deletes a job listing that has no applications or analytics
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Job deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Failure 409 {object} dto.ErrorResponse "Job still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, nil, "Job deleted successfully")
}
