package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/controllers"
	"github.com/yigit/tnp/internal/middleware"
	pkgAuth "github.com/yigit/tnp/internal/pkg/auth"
)

// newGuardRouter mounts every route over controllers without services, so
// only requests stopped by the auth layer may be sent through it.
func newGuardRouter(t *testing.T) (*gin.Engine, *pkgAuth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := pkgAuth.NewJWTService(pkgAuth.JWTConfig{SecretKey: "s", AccessTokenExp: time.Hour, TokenIssuer: "tnp.test"})
	r := gin.New()
	SetupRouter(r, Controllers{
		Auth:         controllers.NewAuthController(nil),
		Student:      controllers.NewStudentController(nil),
		Company:      controllers.NewCompanyController(nil),
		Job:          controllers.NewJobController(nil),
		Application:  controllers.NewApplicationController(nil),
		Announcement: controllers.NewAnnouncementController(nil),
		Analytic:     controllers.NewAnalyticController(nil),
	}, middleware.NewAuthMiddleware(jwtSvc, auth.NewAccessPolicy()), nil)
	return r, jwtSvc
}

func TestRouteGuards(t *testing.T) {
	r, jwtSvc := newGuardRouter(t)

	token := func(role string) string {
		tok, _, err := jwtSvc.GenerateAccessToken(pkgAuth.Identity{ID: uuid.New(), Role: role, Email: "x@tnp.com"})
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return "Bearer " + tok
	}
	admin, student := token("ADMIN"), token("STUDENT")
	id := uuid.NewString()

	cases := []struct {
		method string
		path   string
		auth   string
		want   int
	}{
		{http.MethodGet, "/api/v1/jobs", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/announcements", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/jobs", student, http.StatusForbidden},
		{http.MethodPut, "/api/v1/jobs/" + id, student, http.StatusForbidden},
		{http.MethodGet, "/api/v1/jobs/filter", admin, http.StatusForbidden},
		{http.MethodPost, "/api/v1/companies", student, http.StatusForbidden},
		{http.MethodDelete, "/api/v1/companies/" + id, student, http.StatusForbidden},
		{http.MethodPost, "/api/v1/applications/apply", admin, http.StatusForbidden},
		{http.MethodGet, "/api/v1/applications/me", admin, http.StatusForbidden},
		{http.MethodGet, "/api/v1/applications", student, http.StatusForbidden},
		{http.MethodPatch, "/api/v1/applications/" + id + "/status", student, http.StatusForbidden},
		{http.MethodPut, "/api/v1/applications/" + id + "/status", student, http.StatusForbidden},
		{http.MethodGet, "/api/v1/applications/job/" + id, student, http.StatusForbidden},
		{http.MethodPost, "/api/v1/announcements", student, http.StatusForbidden},
		{http.MethodDelete, "/api/v1/announcements/" + id, student, http.StatusForbidden},
		{http.MethodGet, "/api/v1/analytics", student, http.StatusForbidden},
		{http.MethodGet, "/api/v1/students/me", admin, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.method+" "+c.path, func(t *testing.T) {
			req := httptest.NewRequest(c.method, c.path, nil)
			if c.auth != "" {
				req.Header.Set("Authorization", c.auth)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != c.want {
				t.Fatalf("want %d got %d: %s", c.want, w.Code, w.Body.String())
			}
		})
	}
}
