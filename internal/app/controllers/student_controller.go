package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/middleware"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// profileImageField is the multipart field carrying the picture
const profileImageField = "image"

// StudentController serves the caller's own student profile
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetMe returns the calling student's profile
// @Summary Get own profile
// @Description Returns the profile of the calling student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me [get]
func (c *StudentController) GetMe(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetProfile(ctx.Request.Context(), p.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, dto.FromStudent(student), "")
}

// UpdateMe fills in cgpa, activeBacklog and phone
// @Summary Update own profile
// @Description Updates cgpa, active backlog and phone of the calling student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateStudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Profile updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me [put]
func (c *StudentController) UpdateMe(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.UpdateStudentProfileRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), p.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, dto.FromStudent(student), "Profile updated successfully")
}

// UploadProfileImage stores a multipart picture as the profile image
// @Summary Upload profile image
// @Description Stores an image as the calling student's profile picture
// @Tags students
// @Produce json
// @Accept multipart/form-data
// @Security BearerAuth
// @Param image formData file true "Profile image (jpg, jpeg, png, webp)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Profile image updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/me/profile-image [post]
func (c *StudentController) UploadProfileImage(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile(profileImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError(profileImageField, "image file is required"))
			return
		}
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid multipart form"))
		return
	}

	student, err := c.studentService.UpdateProfileImage(ctx.Request.Context(), p.ID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, dto.FromStudent(student), "Profile image updated successfully")
}
