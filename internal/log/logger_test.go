// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logBuf bytes.Buffer

func TestMain(m *testing.M) {
	Configure(Config{Level: "debug", Output: &logBuf, Service: "strata-test", Version: "v0.0.0-test"})
	os.Exit(m.Run())
}

func lastLine(t *testing.T) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(logBuf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestWithComponent(t *testing.T) {
	logBuf.Reset()
	logger := WithComponent("core")
	logger.Info().Msg("hello")

	entry := lastLine(t)
	assert.Equal(t, "core", entry[FieldComponent])
	assert.Equal(t, "strata-test", entry["service"])
	assert.Equal(t, "v0.0.0-test", entry["version"])
}

func TestConfigureReapplies(t *testing.T) {
	defer Configure(Config{Level: "debug", Output: &logBuf, Service: "strata-test", Version: "v0.0.0-test"})

	// A later Configure must rebind level, output and identity so the loaded
	// configuration actually takes effect.
	var buf bytes.Buffer
	Configure(Config{Level: "error", Output: &buf, Service: "custom", Version: "v9.9.9"})

	logger := WithComponent("core")
	logger.Debug().Msg("suppressed")
	logger.Error().Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "custom", entry["service"])
	assert.Equal(t, "v9.9.9", entry["version"])
}

func TestDerive(t *testing.T) {
	logBuf.Reset()
	l := Derive(nil)
	l.Info().Msg("derived")
	assert.Equal(t, "strata-test", lastLine(t)["service"])
}

func TestWithComponentFromContext(t *testing.T) {
	logBuf.Reset()
	ctx := ContextWithRequestID(context.Background(), "req-42")
	ctx = ContextWithCorrelationID(ctx, "corr-7")

	logger := WithComponentFromContext(ctx, "health")
	logger.Info().Msg("checked")

	entry := lastLine(t)
	assert.Equal(t, "health", entry[FieldComponent])
	assert.Equal(t, "req-42", entry[FieldRequestID])
	assert.Equal(t, "corr-7", entry[FieldCorrelationID])
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, RequestIDFromContext(nil)) //nolint:staticcheck // nil context tolerated on purpose
}

func TestMiddleware(t *testing.T) {
	logBuf.Reset()

	handler := Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)

	entry := lastLine(t)
	assert.Equal(t, "http.request", entry[FieldEvent])
	assert.Equal(t, "/api/v1/status", entry[FieldPath])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(len("short and stout")), entry["bytes"])
}
