package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestLoggerMiddleware_EchoesRequestID(t *testing.T) {
	router := newLoggedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "11111111-2222-3333-4444-555555555555")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", w.Header().Get("X-Request-ID"))
}

func TestLoggerMiddleware_GeneratesRequestIDWhenMissing(t *testing.T) {
	router := newLoggedRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestLoggerMiddleware_ShortClientRequestID(t *testing.T) {
	router := newLoggedRouter()

	for _, id := range []string{"a", "abc", "1234567", "12345678"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", id)

		require.NotPanics(t, func() {
			router.ServeHTTP(w, req)
		}, "request id %q", id)
		assert.Equal(t, http.StatusOK, w.Code, "request id %q", id)
		assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	}
}
