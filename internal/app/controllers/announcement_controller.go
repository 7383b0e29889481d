package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/middleware"
)

// AnnouncementController handles announcements
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService}
}

// CreateAnnouncement posts an announcement authored by the calling admin
// @Summary Create an announcement
// @Description Posts an announcement for all students, a branch list or a batch list
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.CreateAnnouncementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	a, err := c.announcementService.CreateAnnouncement(ctx.Request.Context(), p.ID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusCreated, a, "Announcement created successfully")
}

// ListAnnouncements returns everything to admins and the targeted subset to students
// @Summary List announcements
// @Description Admins get every announcement; students get the ones targeting them. Newest first
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement} "Announcements retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [get]
func (c *AnnouncementController) ListAnnouncements(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	list, err := c.announcementService.ListAnnouncements(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, list, "")
}

// GetAnnouncement returns one announcement if the caller may see it
// @Summary Get an announcement
// @Description Retrieves an announcement visible to the caller
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=models.Announcement} "Announcement retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{id} [get]
func (c *AnnouncementController) GetAnnouncement(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	a, err := c.announcementService.GetAnnouncement(ctx.Request.Context(), p, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, a, "")
}

// UpdateAnnouncement applies a partial update
// @Summary Update an announcement
// @Description Applies a partial update to an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID" Format(uuid)
// @Param request body dto.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Announcement} "Announcement updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{id} [patch]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateAnnouncementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	a, err := c.announcementService.UpdateAnnouncement(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, a, "Announcement updated successfully")
}

// DeleteAnnouncement deletes an announcement
// @Summary Delete an announcement
// @Description Deletes an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Announcement deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Action not allowed for this role"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, nil, "Announcement deleted successfully")
}
