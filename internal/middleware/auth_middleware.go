package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/tnp/internal/pkg/auth"
)

// principalKey is the gin context key holding the *auth.Principal
const principalKey = "principal"

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *pkgAuth.JWTService
	policy     *auth.AccessPolicy
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *pkgAuth.JWTService, policy *auth.AccessPolicy) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		policy:     policy,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: timeNow(),
	})
}

// JWTAuth validates the bearer token and stores the caller as a Principal
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeTokenNotFound, "Authorization header missing")
			return
		}

		tokenString, err := pkgAuth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTokenExpired):
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
			case errors.Is(err, pkgAuth.ErrInvalidFormat):
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token format")
			default:
				abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			}
			return
		}

		identity, err := claims.Identity()
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token subject")
			return
		}

		role := models.RoleType(identity.Role)
		if role != models.RoleAdmin && role != models.RoleStudent {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Unknown role")
			return
		}

		SetPrincipal(c, &auth.Principal{
			ID:             identity.ID,
			Role:           role,
			Email:          identity.Email,
			Branch:         models.Branch(identity.Branch),
			GraduationYear: identity.GraduationYear,
		})
		c.Next()
	}
}

// Require lets the request through when the principal may perform any of the
// given actions. It must run after JWTAuth.
func (m *AuthMiddleware) Require(actions ...auth.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, _ := CurrentPrincipal(c)

		var lastErr error = apperrors.NewForbiddenError("action is not permitted")
		for _, action := range actions {
			if lastErr = m.policy.Authorize(principal, action); lastErr == nil {
				c.Next()
				return
			}
		}

		HandleAPIError(c, lastErr)
		c.Abort()
	}
}

// CurrentPrincipal returns the principal stored by JWTAuth
func CurrentPrincipal(c *gin.Context) (*auth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*auth.Principal)
	return p, ok && p != nil
}

// SetPrincipal stores p on the context; used by JWTAuth and handler tests.
func SetPrincipal(c *gin.Context, p *auth.Principal) {
	c.Set(principalKey, p)
}
