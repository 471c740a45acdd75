package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(LoginCallbacks.WithLabelValues("success"))
	LoginCallbacks.WithLabelValues("success").Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(LoginCallbacks.WithLabelValues("success")), 0.0001)

	before = testutil.ToFloat64(CredentialsStored)
	CredentialsStored.Add(2)
	assert.InDelta(t, before+2, testutil.ToFloat64(CredentialsStored), 0.0001)
}

func TestHandlerExposesCollectors(t *testing.T) {
	DashboardViews.WithLabelValues("shown").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tokenview_dashboard_views_total")
}
