package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameBetsPlaced        = "bets_placed_total"
	MetricNameSpins             = "spins_total"
	MetricNamePayouts           = "payouts_total"
	MetricNameNotificationsSent = "notifications_sent_total"
	MetricNameMoneyWagered      = "money_wagered_total"
	MetricNameMoneyPaidOut      = "money_paid_out_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextBetsPlaced        = "Total number of bets placed"
	HelpTextSpins             = "Total number of slot spins by outcome"
	HelpTextPayouts           = "Total number of payouts settled"
	HelpTextNotificationsSent = "Total number of notifications dispatched"
	HelpTextMoneyWagered      = "Total money debited by bet placement"
	HelpTextMoneyPaidOut      = "Total money credited by payouts"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets are the histogram buckets for request duration, in seconds
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
