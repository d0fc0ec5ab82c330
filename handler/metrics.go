package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recommendationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "recommendation_requests_total",
	Help: "Recommendation searches handled by the gateway, by outcome.",
}, []string{"outcome"})
