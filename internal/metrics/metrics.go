// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LoginCallbacks counts sign-in callbacks by outcome
	// ("success", "rejected", "store_error").
	LoginCallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tokenview_login_callbacks_total",
		Help: "Total number of sign-in callbacks received, by outcome",
	}, []string{"outcome"})
	// LoginRejections counts failed callbacks by reason.
	LoginRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tokenview_login_rejections_total",
		Help: "Total number of sign-in callbacks rejected, by reason",
	}, []string{"reason"})
	// DashboardViews counts dashboard requests by result ("shown", "redirected").
	DashboardViews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tokenview_dashboard_views_total",
		Help: "Total number of dashboard requests, by result",
	}, []string{"result"})
	CredentialsStored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tokenview_credentials_stored_total",
		Help: "Total number of credentials written to the store",
	})
	RateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tokenview_rate_limited_total",
		Help: "Total number of requests rejected by the per-IP rate limiter",
	})
)

func init() {
	prometheus.MustRegister(
		LoginCallbacks,
		LoginRejections,
		DashboardViews,
		CredentialsStored,
		RateLimited,
	)
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
