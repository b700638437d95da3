package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitBurstThenRefill(t *testing.T) {
	gin.SetMode(gin.TestMode)

	current := time.Unix(1700000000, 0)
	limiter := NewRateLimiter(func() time.Time { return current })

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Rules:        map[string]RateLimitRule{"AI": {Rate: 1, Burst: 2}},
		DefaultGroup: "AI",
		Limiter:      limiter,
	}))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("third request: expected 429, got %d", code)
	}

	current = current.Add(2 * time.Second)
	if code := do(); code != http.StatusOK {
		t.Fatalf("after refill: expected 200, got %d", code)
	}
}

func TestRateLimitUnknownGroupPasses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Rules:        map[string]RateLimitRule{"AI": {Rate: 0.001, Burst: 1}},
		DefaultGroup: "OTHER",
	}))
	r.GET("/y", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/y", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.Code)
		}
	}
}
