package logging_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/merge_request_service/internal/logging"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewWithWriter(&buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, logging.NewWithWriter(&buf, "chatty").GetLevel())
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(logging.Middleware(logging.NewWithWriter(&buf, "debug")))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusTeapot, logging.RequestID(c))
	})

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(logging.RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "warn", line["level"])
		assert.Equal(t, "/ping", line["path"])
		assert.Equal(t, float64(http.StatusTeapot), line["status"])
		assert.Equal(t, id, line["request_id"])
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(logging.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(logging.RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})
}
