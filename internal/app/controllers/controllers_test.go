package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/middleware"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
}

// stubApplicationService answers from canned values
type stubApplicationService struct {
	services.ApplicationService

	applyErr     error
	statusErr    error
	gotStatus    string
	gotPrincipal *auth.Principal
	list         []*models.Application
	total        int
	gotPage      helpers.Page
}

func (s *stubApplicationService) Apply(_ context.Context, p *auth.Principal, req *dto.ApplyRequest) (*models.Application, error) {
	s.gotPrincipal = p
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	return &models.Application{ID: uuid.New(), StudentID: p.ID, JobID: uuid.MustParse(req.JobID), Status: models.StatusApplied}, nil
}

func (s *stubApplicationService) UpdateStatus(_ context.Context, id uuid.UUID, status string) (*models.Application, error) {
	s.gotStatus = status
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &models.Application{ID: id, Status: models.ApplicationStatus(status)}, nil
}

func (s *stubApplicationService) List(_ context.Context, _ repositories.ApplicationFilter, page helpers.Page) ([]*models.Application, int, error) {
	s.gotPage = page
	return s.list, s.total, nil
}

func withPrincipal(p *auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p != nil {
			middleware.SetPrincipal(c, p)
		}
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, dto.APIResponse) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestApplyHandler(t *testing.T) {
	student := &auth.Principal{ID: uuid.New(), Role: models.RoleStudent}
	jobID := uuid.NewString()

	cases := []struct {
		name      string
		principal *auth.Principal
		body      interface{}
		svcErr    error
		status    int
		code      dto.ErrorCode
	}{
		{"created", student, map[string]string{"jobId": jobID}, nil, http.StatusCreated, ""},
		{"missing job id", student, map[string]string{}, nil, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"duplicate", student, map[string]string{"jobId": jobID}, apperrors.ErrDuplicateApplication, http.StatusConflict, dto.ErrorCodeConflict},
		{"not eligible", student, map[string]string{"jobId": jobID}, apperrors.ErrNotEligible, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"no principal", nil, map[string]string{"jobId": jobID}, nil, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &stubApplicationService{applyErr: c.svcErr}
			r := gin.New()
			r.POST("/applications/apply", withPrincipal(c.principal), NewApplicationController(svc).Apply)

			w, resp := doJSON(r, http.MethodPost, "/applications/apply", c.body)
			if w.Code != c.status {
				t.Fatalf("want %d got %d: %s", c.status, w.Code, w.Body.String())
			}
			if c.code == "" {
				if !resp.Success || svc.gotPrincipal != c.principal {
					t.Fatalf("expected success with caller principal: %s", w.Body.String())
				}
				return
			}
			if resp.Error == nil || resp.Error.Code != c.code {
				t.Fatalf("want code %s: %s", c.code, w.Body.String())
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name   string
		path   string
		body   interface{}
		svcErr error
		status int
		code   dto.ErrorCode
	}{
		{"ok", "/applications/" + id.String() + "/status", map[string]string{"status": "SHORTLISTED"}, nil, http.StatusOK, ""},
		{"bad id", "/applications/42/status", map[string]string{"status": "SHORTLISTED"}, nil, http.StatusBadRequest, dto.ErrorCodeBadRequest},
		{"missing status", "/applications/" + id.String() + "/status", map[string]string{}, nil, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"invalid status", "/applications/" + id.String() + "/status", map[string]string{"status": "HIRED"}, apperrors.ErrInvalidStatus, http.StatusBadRequest, dto.ErrorCodeInvalidStatus},
		{"illegal", "/applications/" + id.String() + "/status", map[string]string{"status": "APPLIED"}, apperrors.ErrIllegalTransition, http.StatusConflict, dto.ErrorCodeIllegalTransition},
		{"not found", "/applications/" + id.String() + "/status", map[string]string{"status": "TEST"}, apperrors.ErrApplicationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"store failure", "/applications/" + id.String() + "/status", map[string]string{"status": "TEST"}, errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, c := range cases {
		for _, method := range []string{http.MethodPut, http.MethodPatch} {
			t.Run(c.name+"/"+method, func(t *testing.T) {
				svc := &stubApplicationService{statusErr: c.svcErr}
				ctrl := NewApplicationController(svc)
				r := gin.New()
				r.PUT("/applications/:id/status", ctrl.UpdateStatus)
				r.PATCH("/applications/:id/status", ctrl.UpdateStatus)

				w, resp := doJSON(r, method, c.path, c.body)
				if w.Code != c.status {
					t.Fatalf("want %d got %d: %s", c.status, w.Code, w.Body.String())
				}
				if c.code != "" && (resp.Error == nil || resp.Error.Code != c.code) {
					t.Fatalf("want code %s: %s", c.code, w.Body.String())
				}
			})
		}
	}
}

func TestListApplicationsPaginates(t *testing.T) {
	svc := &stubApplicationService{list: []*models.Application{{ID: uuid.New()}}, total: 45}
	r := gin.New()
	r.GET("/applications", NewApplicationController(svc).List)

	w, resp := doJSON(r, http.MethodGet, "/applications?page=2&size=20&status=APPLIED", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d: %s", w.Code, w.Body.String())
	}
	data, _ := json.Marshal(resp.Data)
	var page dto.PaginatedResponse
	if err := json.Unmarshal(data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Pagination.TotalPages != 3 || page.Pagination.CurrentPage != 2 || page.Pagination.TotalItems != 45 {
		t.Fatalf("unexpected pagination: %+v", page.Pagination)
	}

	w, resp = doJSON(r, http.MethodGet, "/applications?status=hired", nil)
	if w.Code != http.StatusBadRequest || resp.Error.Code != dto.ErrorCodeInvalidStatus {
		t.Fatalf("expected invalid status filter to be rejected: %s", w.Body.String())
	}
}
