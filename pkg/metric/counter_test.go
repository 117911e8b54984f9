package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewRowCounter(reg)

	c.Increment(ResultAccepted, "")
	c.Increment(ResultAccepted, "")
	c.Increment(ResultRejected, "id")

	assert.InDelta(t, 2, testutil.ToFloat64(c.Vec().WithLabelValues(ResultAccepted, "")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Vec().WithLabelValues(ResultRejected, "id")), 0)

	rec := httptest.NewRecorder()
	GetHandlerForRegistry(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `navaug_rows_total{field="id",result="rejected"} 1`)
}

func TestRowCounterDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRowCounter(reg)
	assert.Panics(t, func() { NewRowCounter(reg) })
}
