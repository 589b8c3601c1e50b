// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus collectors for the HTTP layer and the
// offer lifecycle. All collectors live in a private registry served by
// Handler. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	offersPublished prometheus.Counter
	offersModified  prometheus.Counter
	offersDeleted   prometheus.Counter
	usersSignedUp   prometheus.Counter

	cleanupsAbandoned prometheus.Counter
}

// New registers every collector under namespace, together with the Go
// runtime and process collectors.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		offersPublished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_published_total",
			Help:      "Total number of published offers",
		}),
		offersModified: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_modified_total",
			Help:      "Total number of modified offers",
		}),
		offersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_deleted_total",
			Help:      "Total number of deleted offers",
		}),
		usersSignedUp: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_signed_up_total",
			Help:      "Total number of created users",
		}),
		cleanupsAbandoned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_cleanups_abandoned_total",
			Help:      "Image folders left behind after every cleanup attempt failed",
		}),
	}
}

// ObserveRequest records one served request. route is the matched route
// pattern, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) OfferPublished() {
	if m != nil {
		m.offersPublished.Inc()
	}
}

func (m *Metrics) OfferModified() {
	if m != nil {
		m.offersModified.Inc()
	}
}

func (m *Metrics) OfferDeleted() {
	if m != nil {
		m.offersDeleted.Inc()
	}
}

func (m *Metrics) UserSignedUp() {
	if m != nil {
		m.usersSignedUp.Inc()
	}
}

func (m *Metrics) CleanupAbandoned() {
	if m != nil {
		m.cleanupsAbandoned.Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
