package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quickscan/config"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded chain uses first hop",
			xff:        "203.0.113.7, 10.0.0.2, 10.0.0.3",
			remoteAddr: "10.0.0.3:4567",
			want:       "203.0.113.7",
		},
		{
			name:       "real ip header",
			realIP:     " 198.51.100.4 ",
			remoteAddr: "10.0.0.3:4567",
			want:       "198.51.100.4",
		},
		{
			name:       "remote addr strips port",
			remoteAddr: "192.0.2.1:8080",
			want:       "192.0.2.1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.1",
			want:       "192.0.2.1",
		},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				c.Request.Header.Set("X-Real-IP", tt.realIP)
			}

			if got := clientIP(c); got != tt.want {
				t.Fatalf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimitMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Real-IP", ip)
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("203.0.113.50"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := do("203.0.113.50"); code != http.StatusTooManyRequests {
		t.Fatalf("over-limit request: status = %d, want 429", code)
	}

	// A different client gets its own bucket.
	if code := do("203.0.113.51"); code != http.StatusOK {
		t.Fatalf("other client: status = %d, want 200", code)
	}
}
