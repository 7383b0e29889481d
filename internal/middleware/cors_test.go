package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func corsRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	mw, err := CORS(origins, time.Hour)
	if err != nil {
		t.Fatalf("cors: %v", err)
	}
	r := gin.New()
	r.Use(mw)
	r.GET("/api/v1/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	r := corsRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://portal.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

func TestCORSExplicitOrigins(t *testing.T) {
	r := corsRouter(t, []string{"http://portal.example"})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://portal.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://portal.example" {
		t.Fatalf("expected echoed origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("expected credentials allowed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown origin, got %d", w.Code)
	}
}

func TestCORSRejectsMalformedOrigin(t *testing.T) {
	if _, err := CORS([]string{"portal.example"}, time.Hour); err == nil {
		t.Fatal("expected an error for an origin without scheme")
	}
}
