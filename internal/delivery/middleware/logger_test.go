package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bpaml/config"
	deliverycontext "bpaml/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggerFixture(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg), &buf
}

func TestLoggerMiddleware_LogsFailedRequestWithFinalStatus(t *testing.T) {
	m, buf := newLoggerFixture(false)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/athletes/555/activities", nil), rec)
	deliverycontext.SetStravaID(c, 555)

	err := m.Handle(func(c echo.Context) error {
		return echo.ErrForbidden
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, buf.String(), `"status":403`)
	assert.Contains(t, buf.String(), `"strava_id":555`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_SkipsSuccessWithoutDebug(t *testing.T) {
	m, buf := newLoggerFixture(false)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	require.NoError(t, m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c))

	assert.Empty(t, buf.String())
}

func TestLoggerMiddleware_DebugLogsEveryRequest(t *testing.T) {
	m, buf := newLoggerFixture(true)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health?verbose=1", nil), httptest.NewRecorder())

	require.NoError(t, m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"query":"verbose=1"`)
}
