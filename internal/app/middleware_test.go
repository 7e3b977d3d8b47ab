package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garyellow/badgerchat-fulfillment/internal/logger"
)

func accessLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		if _, ok := line["http_status"]; ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestLoggingMiddleware_LogsEveryRequestAtInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		status    int
		wantLevel string
	}{
		{"root ok", http.MethodGet, http.StatusOK, "info"},
		{"unknown intent", http.MethodPost, http.StatusNotFound, "warning"},
		{"bad body", http.MethodPost, http.StatusBadRequest, "warning"},
		{"server error", http.MethodPost, http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			router := gin.New()
			router.Use(loggingMiddleware(logger.NewWithWriter("info", &buf)))
			router.Handle(tt.method, "/", func(c *gin.Context) {
				c.JSON(tt.status, gin.H{"msg": "ok"})
			})

			req := httptest.NewRequest(tt.method, "/", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, tt.status, w.Code)

			lines := accessLogLines(t, &buf)
			require.Len(t, lines, 1)
			line := lines[0]
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.method, line["http_method"])
			assert.Equal(t, "/", line["http_path"])
			assert.InDelta(t, tt.status, line["http_status"], 0)
			assert.Contains(t, line, "duration_ms")
			assert.Contains(t, line, "timestamp")
		})
	}
}

func TestRequestIDMiddleware_RejectsOversizedID(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(requestIDMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, string(bytes.Repeat([]byte("x"), 200)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Len(t, w.Header().Get(requestIDHeader), 36)
}
