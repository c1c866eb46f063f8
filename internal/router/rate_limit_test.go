package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimitMiddlewareNoopWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	rule := RateLimitRule{Prefix: "test:rate", WindowSeconds: 60, MaxRequests: 1}
	engine.Use(RateLimitMiddleware(nil, rule, KeyByIP))
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// 无 Redis 客户端时直接放行，连续请求不受窗口限制
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: want 200 got %d", i, w.Code)
		}
	}
}

func TestRateLimitMiddlewareNoopWithZeroRule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimitMiddleware(nil, RateLimitRule{}, nil))
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  int64
		ok    bool
	}{
		{"int64", int64(7), 7, true},
		{"int", 3, 3, true},
		{"float64", float64(12), 12, true},
		{"string", "5", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.value)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("toInt64(%v) = (%d, %v), want (%d, %v)", tc.value, got, ok, tc.want, tc.ok)
			}
		})
	}
}
