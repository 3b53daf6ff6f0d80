package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(accessKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Auth(accessKey))
	r.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/decks/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	r := newAuthRouter("")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/decks/x", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthRejectsMissingKey(t *testing.T) {
	r := newAuthRouter("sekret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/decks/x", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsHeaderAndQueryKey(t *testing.T) {
	r := newAuthRouter("sekret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/decks/x", nil)
	req.Header.Set("X-Access-Key", "sekret")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for header key, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/decks/x?key=sekret", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for query key, got %d", resp.Code)
	}
}

func TestAuthSkipsHealth(t *testing.T) {
	r := newAuthRouter("sekret")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}
