// Package metrics holds the prometheus collectors for the landing page.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "landing_live_sessions",
		Help: "Number of mounted live landing page sessions",
	})

	LiveSessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_live_sessions_total",
		Help: "Total number of live landing page sessions mounted",
	})

	CarouselTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_carousel_transitions_total",
		Help: "Total number of testimonial carousel transitions",
	}, []string{"kind"})

	Reveals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_scroll_reveals_total",
		Help: "Total number of page elements revealed on scroll",
	})

	CounterAnimations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_counter_animations_total",
		Help: "Hero counter animations by outcome",
	}, []string{"outcome"})
)
