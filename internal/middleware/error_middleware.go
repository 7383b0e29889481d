package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/logger"
)

var timeNow = time.Now

// errorMapping is one row of the error to HTTP status table
type errorMapping struct {
	target   error
	status   int
	code     dto.ErrorCode
	fallback string
}

// errorTable is checked top to bottom; specific errors come before the
// sentinels they wrap.
var errorTable = []errorMapping{
	{apperrors.ErrInvalidStatus, http.StatusBadRequest, dto.ErrorCodeInvalidStatus, "Invalid status"},
	{apperrors.ErrIllegalTransition, http.StatusConflict, dto.ErrorCodeIllegalTransition, "Illegal status transition"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := ErrorResponseFor(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
	}
	RespondError(c, status, detail)
}

// ErrorResponseFor maps err onto a status code and error detail
func ErrorResponseFor(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorTable {
		if !errors.Is(err, m.target) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, apperrors.Message(err, m.fallback))
		var ce *apperrors.CustomError
		if errors.As(err, &ce) {
			if field, ok := ce.Details["field"].(string); ok {
				detail.WithField(field)
			}
		}
		return m.status, detail
	}
	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
		WithSeverity(dto.ErrorSeverityCritical)
}

// RespondError writes the failure envelope
func RespondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Success:   false,
		Error:     detail,
		Timestamp: timeNow(),
	})
}

// RespondSuccess writes the success envelope
func RespondSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, dto.NewSuccessResponse(data, message))
}
