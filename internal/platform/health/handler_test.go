package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := chi.NewRouter()
	h.Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestLiveness(t *testing.T) {
	w, body := serve(t, New("test"), "/health/live")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alive", body["status"])
}

func TestReadiness(t *testing.T) {
	t.Run("ready when all checks pass", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("checksum", func() error { return nil })

		w, body := serve(t, h, "/health/ready")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ready", body["status"])
		assert.Equal(t, map[string]any{"checksum": "up"}, body["checks"])
	})

	t.Run("not ready when a check fails", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("checksum", func() error { return errors.New("self test failed") })

		w, body := serve(t, h, "/health/ready")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "not_ready", body["status"])
		assert.Equal(t, map[string]any{"checksum": "down: self test failed"}, body["checks"])
	})
}

func TestStatus(t *testing.T) {
	t.Run("system clock omits reference date", func(t *testing.T) {
		w, body := serve(t, New("development"), "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "development", body["environment"])
		assert.Equal(t, Version, body["version"])
		assert.NotContains(t, body, "reference_date")
	})

	t.Run("pinned reference date is reported", func(t *testing.T) {
		h := New("test", WithReferenceDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))
		_, body := serve(t, h, "/health")
		assert.Equal(t, "2020-01-01", body["reference_date"])
	})
}
