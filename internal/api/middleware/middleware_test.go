package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RPS: 0.001, Burst: 2})
	r := newRouter(rl.Middleware())

	reqFrom := func(ip string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		return req
	}

	assert.Equal(t, http.StatusOK, serve(r, reqFrom("203.0.113.1")).Code)
	assert.Equal(t, http.StatusOK, serve(r, reqFrom("203.0.113.1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, reqFrom("203.0.113.1")).Code)

	// Another client has its own bucket
	assert.Equal(t, http.StatusOK, serve(r, reqFrom("203.0.113.2")).Code)
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{RPS: 1, Burst: 1, TTL: time.Minute})
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.Len(t, rl.clients, 1)

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.Allow("b"))
	assert.Len(t, rl.clients, 1)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		production bool
		origin     string
		method     string
		wantStatus int
		wantOrigin string
	}{
		{"development echoes origin", nil, false, "http://localhost:5173", http.MethodGet, http.StatusOK, "http://localhost:5173"},
		{"production allowed", []string{"https://kauhan.dev"}, true, "https://kauhan.dev", http.MethodGet, http.StatusOK, "https://kauhan.dev"},
		{"production refused", []string{"https://kauhan.dev"}, true, "https://evil.example", http.MethodGet, http.StatusForbidden, ""},
		{"wildcard", []string{"*"}, true, "https://any.example", http.MethodGet, http.StatusOK, "https://any.example"},
		{"preflight", []string{"https://kauhan.dev"}, true, "https://kauhan.dev", http.MethodOptions, http.StatusNoContent, "https://kauhan.dev"},
		{"no origin header", []string{"https://kauhan.dev"}, true, "", http.MethodGet, http.StatusOK, ""},
		{"production same origin", []string{"https://kauhan.dev"}, true, "http://example.com", http.MethodGet, http.StatusOK, ""},
		{"production same origin without list", nil, true, "http://example.com", http.MethodGet, http.StatusOK, ""},
		{"production without list echoes origin", nil, true, "https://other.example", http.MethodGet, http.StatusOK, "https://other.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(CORS(tt.allowed, tt.production))
			r.OPTIONS("/", func(c *gin.Context) {})

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := serve(r, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORSSameOriginBehindProxy(t *testing.T) {
	r := newRouter(CORS([]string{"https://cdn.kauhan.dev"}, true))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Host = "10.0.0.5:8080"
	req.Header.Set("X-Forwarded-Host", "kauhan.dev")
	req.Header.Set("Origin", "https://kauhan.dev")

	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestLimitRequestBody(t *testing.T) {
	r := newRouter(LimitRequestBody(8))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.ContentLength = 1024
	assert.Equal(t, http.StatusRequestEntityTooLarge, serve(r, req).Code)
}
