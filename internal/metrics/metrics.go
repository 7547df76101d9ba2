// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts finished requests by method, route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boolbnb_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boolbnb_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LikesToggled counts like toggles by resulting action ("like" or "unlike").
	LikesToggled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boolbnb_likes_toggled_total",
		Help: "Total number of like toggles by action",
	}, []string{"action"})

	// ImagesStored counts listing images written to the image store.
	ImagesStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boolbnb_images_stored_total",
		Help: "Total number of listing images stored",
	})

	// ContactEmails counts owner contact emails by result ("sent" or "failed").
	ContactEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boolbnb_contact_emails_total",
		Help: "Total number of owner contact emails by result",
	}, []string{"result"})
)

// RegisterDBStats exports connection pool statistics of db.
func RegisterDBStats(db *sql.DB) error {
	return prometheus.Register(collectors.NewDBStatsCollector(db, "boolbnb"))
}

// Handler serves the default registry in the text exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
