package middlewares

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newLimitedEngine(m *Middlewares, requests int, per time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", m.RateLimit(requests, per), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_PerClient(t *testing.T) {
	r := newLimitedEngine(New(), 2, time.Hour)

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1:1002"))

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2:1000"))
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newLimitedEngine(New(), 0, 0)
	for range 10 {
		assert.Equal(t, http.StatusOK, get(r, "10.0.0.1:1000"))
	}
}

func TestRateLimit_TrackedClientsBounded(t *testing.T) {
	m := New()
	r := newLimitedEngine(m, 1, time.Hour)

	for i := range 3 * maxTrackedClients / 2 {
		get(r, fmt.Sprintf("10.%d.%d.%d:1000", i>>16&0xff, i>>8&0xff, i&0xff))
	}

	assert.Equal(t, maxTrackedClients, m.limiters.GetCapacity())
	assert.Eventually(t, func() bool {
		return m.limiters.Len() <= maxTrackedClients
	}, 5*time.Second, 50*time.Millisecond)
}

func TestAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name     string
		expected string
		header   string
		want     int
	}{
		{name: "valid", expected: "secret", header: "Bearer secret", want: http.StatusOK},
		{name: "wrong_token", expected: "secret", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "missing_scheme", expected: "secret", header: "secret", want: http.StatusUnauthorized},
		{name: "no_token_configured", expected: "", header: "Bearer ", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", New().Auth(tt.expected), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
