// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors used by the service.
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	LoginsTotal        *prometheus.CounterVec
	RequestsTotal      *prometheus.CounterVec
}

// New creates the collectors and registers them with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RegistrationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "estudeai_registrations_total",
			Help: "Number of successful user registrations.",
		}),
		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estudeai_logins_total",
			Help: "Number of login attempts by result.",
		}, []string{"result"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estudeai_http_requests_total",
			Help: "Number of HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.RegistrationsTotal, m.LoginsTotal, m.RequestsTotal)
	return m
}

// Middleware counts every handled request after completion.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
