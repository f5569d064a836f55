package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	OrdersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_submitted_total",
			Help: "Number of order forms stored successfully",
		},
	)
	OrdersRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Number of order forms rejected by validation",
		},
		[]string{"rule"}, // required|name|email|phone
	)
	OrdersSaveFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_save_failed_total",
			Help: "Number of order forms that failed to persist",
		},
	)
)

var (
	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Notification emails delivered",
		},
		[]string{"kind"}, // admin|customer
	)
	EmailsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_failed_total",
			Help: "Notification emails that failed to send",
		},
		[]string{"kind"},
	)
)

func MustRegister() {
	prometheus.MustRegister(OrdersSubmitted, OrdersRejected, OrdersSaveFailed, EmailsSent, EmailsFailed)
}
