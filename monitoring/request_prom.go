// Copyright 2025 worknest.
// SPDX-License-Identifier: AGPL-3.0-or-later
package monitoring

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "worknest",
	Name:      "http_requests_total",
	Help:      "Total number of handled HTTP requests.",
}, []string{"method", "path", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "worknest",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "path"})

// RequestMiddleware records a counter and a latency histogram per route.
// The route template is used as the path label, not the raw URL, so ids do
// not explode the cardinality.
func RequestMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}

			status := ctx.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			requestsTotal.WithLabelValues(ctx.Request().Method, path, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(ctx.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
