package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/middleware"
)

// CompanyController handles company-related operations
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{companyService: companyService}
}

// CreateCompany handles company creation
// @Summary Create a company
// @Description Creates a recruiting company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company information"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 409 {object} dto.ErrorResponse "Company already exists"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	company, err := c.companyService.CreateCompany(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, company, "Company created successfully")
}

// GetCompany retrieves a company by ID
// @Summary Get company details
// @Description Retrieves a company by its ID
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetCompany(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, company, "")
}

// ListCompanies retrieves all companies
// @Summary List companies
// @Description Retrieves all companies
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) ListCompanies(ctx *gin.Context) {
	companies, err := c.companyService.ListCompanies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, companies, "")
}

// UpdateCompany updates an existing company
// @Summary Update a company
// @Description Applies a partial update to a company
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID" Format(uuid)
// @Param request body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Company name already taken"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	company, err := c.companyService.UpdateCompany(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, company, "Company updated successfully")
}

// DeleteCompany deletes a company that no job references any more
// @Summary Delete a company
// @Description Deletes a company that no job references
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Company ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Company deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Company still referenced by jobs"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.DeleteCompany(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, nil, "Company deleted successfully")
}
