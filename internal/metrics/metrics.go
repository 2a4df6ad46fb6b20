package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	BetsPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBetsPlaced,
			Help: HelpTextBetsPlaced,
		},
	)

	Spins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpins,
			Help: HelpTextSpins,
		},
		[]string{LabelOutcome},
	)

	Payouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePayouts,
			Help: HelpTextPayouts,
		},
	)

	NotificationsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
	)

	MoneyWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyWagered,
			Help: HelpTextMoneyWagered,
		},
	)

	MoneyPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyPaidOut,
			Help: HelpTextMoneyPaidOut,
		},
	)
)
