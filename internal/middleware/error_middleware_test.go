package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

func TestErrorResponseFor(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
		msg    string
	}{
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest, dto.ErrorCodeInvalidStatus, "invalid status"},
		{"illegal transition wrapped", apperrors.NewCustomError(apperrors.ErrIllegalTransition, "cannot move application from ACCEPTED to TEST"),
			http.StatusConflict, dto.ErrorCodeIllegalTransition, "cannot move application from ACCEPTED to TEST"},
		{"validation", apperrors.NewValidationError("phone", "bad phone"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "bad phone"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"unauthorized", apperrors.NewUnauthorizedError("authentication required"), http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "authentication required"},
		{"forbidden", apperrors.ErrNotEligible, http.StatusForbidden, dto.ErrorCodeForbidden, "student does not meet the eligibility criteria for this job"},
		{"not found wrapped", fmt.Errorf("get: %w", apperrors.ErrJobNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "job not found"},
		{"duplicate", fmt.Errorf("create: %w", apperrors.ErrDuplicateApplication), http.StatusConflict, dto.ErrorCodeConflict, "already applied to this job"},
		{"closed job", apperrors.ErrJobClosed, http.StatusConflict, dto.ErrorCodeConflict, "job is not accepting applications"},
		{"unknown", errors.New("pool exhausted"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, detail := ErrorResponseFor(c.err)
			if status != c.status || detail.Code != c.code || detail.Message != c.msg {
				t.Fatalf("want %d/%s/%q got %d/%s/%q", c.status, c.code, c.msg, status, detail.Code, detail.Message)
			}
		})
	}

	_, detail := ErrorResponseFor(apperrors.NewValidationError("phone", "bad phone"))
	if detail.Field != "phone" {
		t.Fatalf("expected field to be carried, got %q", detail.Field)
	}
}
