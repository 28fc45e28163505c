package obs_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/workspace_storefront/internal/obs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPricingMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := obs.NewPricingMetrics("storefront", reg)

	m.ObserveConversion("converted")
	m.ObserveConversion("converted")
	m.ObserveConversion("fallback")
	m.ObserveBreakdown("customer", "estimate", nil)
	m.ObserveBreakdown("customer", "estimate", errors.New("boom"))
	m.ObserveRateRefresh(nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Conversions.WithLabelValues("converted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Conversions.WithLabelValues("fallback")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Breakdowns.WithLabelValues("customer", "estimate", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RateCacheRefreshes.WithLabelValues("ok")))
}

func TestPricingMetrics_RegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := obs.NewPricingMetrics("storefront", reg)
	second := obs.NewPricingMetrics("storefront", reg)

	second.ObservePreference("device")
	assert.Equal(t, float64(1), testutil.ToFloat64(first.PreferenceResolutions.WithLabelValues("device")))
}

func TestPricingMetrics_NilSafe(t *testing.T) {
	var m *obs.PricingMetrics
	assert.NotPanics(t, func() {
		m.ObserveConversion("error")
		m.ObserveBreakdown("provider", "transaction", nil)
		m.ObservePreference("none")
		m.ObserveRateRefresh(nil)
	})
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := obs.NewHTTPMetrics("storefront", reg)
	m.ReqTotal.WithLabelValues("GET", "/health", "200").Inc()
	assert.Equal(t, 1, testutil.CollectAndCount(m.ReqTotal))
}
