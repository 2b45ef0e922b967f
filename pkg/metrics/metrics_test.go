package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RequestsTotal.WithLabelValues("/notes", "GET", "200").Inc()
	m.SetStoreUp(true)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.StoreUp))
	m.SetStoreUp(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.StoreUp))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "notes_http_requests_total")
	assert.Contains(t, names, "notes_store_up")

	// a second set of collectors on the same registry is rejected
	assert.Panics(t, func() { New(reg) })
}
