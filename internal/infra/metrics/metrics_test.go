package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bpaml/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	recorder, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	recorder.ObserveTokenRefresh(service.RefreshOutcomeSuccess)
	recorder.ObserveTokenRefresh(service.RefreshOutcomeSuccess)
	recorder.ObserveTokenRefresh(service.RefreshOutcomeRejected)
	recorder.ObserveFetch(200, true)
	recorder.ObserveFetch(3, false)
	recorder.ObserveImport()
	recorder.ObserveDelete()
	recorder.ObserveRequest("list_activities", http.StatusOK, 120*time.Millisecond)
	recorder.ObserveRequest("list_activities", 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.tokenRefreshes.WithLabelValues(service.RefreshOutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.tokenRefreshes.WithLabelValues(service.RefreshOutcomeRejected)))
	assert.Equal(t, 203.0, testutil.ToFloat64(recorder.fetchedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.truncatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.importedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.deletedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.apiRequests.WithLabelValues("list_activities", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.apiRequests.WithLabelValues("list_activities", "error")))
}

func TestNewRecorder_DuplicateRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()

	_, err := NewRecorder(registry)
	require.NoError(t, err)

	_, err = NewRecorder(registry)
	assert.Error(t, err)
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	registry := NewRegistry()
	recorder, err := NewRecorder(registry)
	require.NoError(t, err)
	recorder.ObserveImport()

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bpaml_sync_activities_imported_total 1")
}
