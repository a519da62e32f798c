package metric

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Register(t *testing.T) {
	m := NewMetrics()
	reg := prometheus.NewRegistry()

	require.NoError(t, m.Register(reg))

	// duplicate registration must surface the prometheus error
	require.Error(t, m.Register(reg))
}

func TestMetrics_ObserveResolution(t *testing.T) {
	m := NewMetrics()

	m.ObserveResolution("GetModuleInput", nil)
	m.ObserveResolution("GetModuleInput", errors.New("miss"))
	m.ObserveResolution("GetModuleInput", nil)

	ok := testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("GetModuleInput", StatusOK))
	failed := testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("GetModuleInput", StatusError))

	assert.Equal(t, 2.0, ok)
	assert.Equal(t, 1.0, failed)
}
