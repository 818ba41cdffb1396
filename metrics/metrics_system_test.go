package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsManager(t *testing.T) {
	tests := []struct {
		name              string
		customNamespace   []string
		expectedNamespace string
	}{
		{
			name:              "default namespace",
			customNamespace:   nil,
			expectedNamespace: DefaultNamespace,
		},
		{
			name:              "custom namespace",
			customNamespace:   []string{"custom_test"},
			expectedNamespace: "custom_test",
		},
		{
			name:              "empty custom namespace",
			customNamespace:   []string{""},
			expectedNamespace: DefaultNamespace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mm *MetricsManager
			if tt.customNamespace != nil {
				mm = NewMetricsManager(tt.customNamespace...)
			} else {
				mm = NewMetricsManager()
			}

			assert.Equal(t, tt.expectedNamespace, mm.namespace)
			assert.True(t, mm.IsEnabled())
		})
	}
}

func TestMetricsManager_ObservePerform(t *testing.T) {
	mm := NewMetricsManager()

	before := testutil.ToFloat64(PerformsTotal.WithLabelValues("test_op", "success"))
	mm.ObservePerform("test_op", true, 10*time.Millisecond)
	after := testutil.ToFloat64(PerformsTotal.WithLabelValues("test_op", "success"))
	assert.Equal(t, before+1, after)

	beforeFail := testutil.ToFloat64(PerformsTotal.WithLabelValues("test_op", "failure"))
	mm.ObservePerform("test_op", false, time.Millisecond)
	afterFail := testutil.ToFloat64(PerformsTotal.WithLabelValues("test_op", "failure"))
	assert.Equal(t, beforeFail+1, afterFail)
}

func TestMetricsManager_BatchCounters(t *testing.T) {
	mm := NewMetricsManager()

	before := testutil.ToFloat64(BatchesProcessedTotal.WithLabelValues("counter_op"))
	mm.IncBatchesProcessed("counter_op")
	mm.IncBatchesProcessed("counter_op")
	after := testutil.ToFloat64(BatchesProcessedTotal.WithLabelValues("counter_op"))
	assert.Equal(t, before+2, after)

	beforeFail := testutil.ToFloat64(BatchFailuresTotal.WithLabelValues("counter_op"))
	mm.IncBatchFailures("counter_op")
	afterFail := testutil.ToFloat64(BatchFailuresTotal.WithLabelValues("counter_op"))
	assert.Equal(t, beforeFail+1, afterFail)
}

func TestMetricsManager_SetHeapOccupancy(t *testing.T) {
	mm := NewMetricsManager()

	mm.SetHeapOccupancy("proc-1", 25, 100)
	assert.Equal(t, float64(25), testutil.ToFloat64(HeapSize.WithLabelValues("proc-1")))
	assert.Equal(t, 0.25, testutil.ToFloat64(HeapUtilization.WithLabelValues("proc-1")))
}

func TestMetricsManager_DisabledSkipsRecording(t *testing.T) {
	mm := NewMetricsManager()
	mm.SetEnabled(false)
	assert.False(t, mm.IsEnabled())

	before := testutil.ToFloat64(BatchesProcessedTotal.WithLabelValues("disabled_op"))
	mm.IncBatchesProcessed("disabled_op")
	after := testutil.ToFloat64(BatchesProcessedTotal.WithLabelValues("disabled_op"))
	assert.Equal(t, before, after)
}

func TestMetricsManager_GetMetricsHandler(t *testing.T) {
	mm := NewMetricsManager()
	mm.IncBatchesProcessed("handler_op")

	srv := httptest.NewServer(mm.GetMetricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "batch_heap_batches_processed_total")
}

func TestMetricsManager_DisabledHandlerReturns503(t *testing.T) {
	mm := NewMetricsManager()
	mm.SetEnabled(false)

	srv := httptest.NewServer(mm.GetMetricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
