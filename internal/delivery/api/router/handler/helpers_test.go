package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"bpaml/internal/delivery/api/response"
	"bpaml/internal/delivery/api/validator"
	"bpaml/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Data  T                   `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context for target with the given path params.
func newTestContext(method, target string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newTestAthlete() *entity.Athlete {
	return &entity.Athlete{
		ID:        uuid.MustParse("7d1d2f9e-8f5c-4c55-9d0a-6d3f0c2b1a11"),
		StravaID:  555,
		FirstName: "Jo",
		LastName:  "Runner",
		City:      "Brisbane",
		Country:   "Australia",
	}
}

func newTestActivity() *entity.Activity {
	remoteID := int64(42)
	start := time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)

	return &entity.Activity{
		ID:               uuid.MustParse("0b3c0d52-2f8e-4b7b-9a55-1c9fb1d7e6a2"),
		AthleteID:        newTestAthlete().ID,
		StravaActivityID: &remoteID,
		Date:             time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		StartTime:        start,
		StartTimeLocal:   time.Date(2024, 2, 2, 6, 0, 0, 0, time.UTC),
		Timezone:         "Australia/Brisbane",
		Title:            "Parkrun",
		Distance:         5000,
		Duration:         25 * time.Minute,
		Polyline:         "_p~iF~ps|U_ulLnnqC",
	}
}
