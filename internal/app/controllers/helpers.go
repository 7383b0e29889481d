package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/middleware"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// uuidParam parses a path parameter as a UUID, answering 400 when it is not one.
func uuidParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		middleware.RespondError(ctx, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid "+name).
				WithField(name).
				WithDetails(name+" must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// principal returns the authenticated caller or answers 401
func principal(ctx *gin.Context) (*auth.Principal, bool) {
	p, ok := middleware.CurrentPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("authentication required"))
		return nil, false
	}
	return p, true
}
