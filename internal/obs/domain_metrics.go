package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics counts pricing computations.
type PricingMetrics struct {
	// Conversions counts formatted amounts by outcome (converted, fallback, error).
	Conversions *prometheus.CounterVec
	// Breakdowns counts assembled breakdowns by role and kind (transaction, estimate).
	Breakdowns *prometheus.CounterVec
	// PreferenceResolutions counts where viewer preferences were found.
	PreferenceResolutions *prometheus.CounterVec
	// RateCacheRefreshes counts scheduled rate cache refreshes by result.
	RateCacheRefreshes *prometheus.CounterVec
}

// NewPricingMetrics registers and returns the pricing collectors.
func NewPricingMetrics(namespace string, reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PricingMetrics{
		Conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "currency_conversions_total",
			Help:      "Count of amounts formatted for display by conversion outcome.",
		}, []string{"outcome"}),
		Breakdowns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breakdowns_total",
			Help:      "Count of assembled booking breakdowns.",
		}, []string{"role", "kind", "result"}),
		PreferenceResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preference_resolutions_total",
			Help:      "Count of resolved viewer currency preferences by source.",
		}, []string{"source"}),
		RateCacheRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_cache_refreshes_total",
			Help:      "Count of rate table cache refreshes by result.",
		}, []string{"result"}),
	}
	m.Conversions = registerOrExisting(reg, m.Conversions)
	m.Breakdowns = registerOrExisting(reg, m.Breakdowns)
	m.PreferenceResolutions = registerOrExisting(reg, m.PreferenceResolutions)
	m.RateCacheRefreshes = registerOrExisting(reg, m.RateCacheRefreshes)
	return m
}

// ObserveConversion increments the conversion counter. It is safe on a nil receiver.
func (m *PricingMetrics) ObserveConversion(outcome string) {
	if m == nil {
		return
	}
	m.Conversions.WithLabelValues(outcome).Inc()
}

// ObserveBreakdown increments the breakdown counter. It is safe on a nil receiver.
func (m *PricingMetrics) ObserveBreakdown(role, kind string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Breakdowns.WithLabelValues(role, kind, result).Inc()
}

// ObservePreference increments the preference counter. It is safe on a nil receiver.
func (m *PricingMetrics) ObservePreference(source string) {
	if m == nil {
		return
	}
	m.PreferenceResolutions.WithLabelValues(source).Inc()
}

// ObserveRateRefresh increments the refresh counter. It is safe on a nil receiver.
func (m *PricingMetrics) ObserveRateRefresh(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RateCacheRefreshes.WithLabelValues(result).Inc()
}
