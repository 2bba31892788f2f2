package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the course service
type Metrics struct {
	// Subscription metrics
	SubscriptionsTotal   prometheus.Counter
	UnsubscriptionsTotal prometheus.Counter

	// Notification metrics
	NotificationsEnqueued   prometheus.Counter
	NotificationErrors      prometheus.Counter
	EmailsSent              prometheus.Counter
	EmailSendErrors         prometheus.Counter
	NotificationsSuppressed prometheus.Counter

	// Payment metrics
	PaymentIntentsCreated  prometheus.Counter
	PaymentGatewayErrors   prometheus.Counter
	PaymentRequestDuration prometheus.Histogram

	// Account metrics
	AccountsDeactivated prometheus.Counter
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance with all counters and histograms
func NewMetrics() *Metrics {
	return &Metrics{
		SubscriptionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_subscriptions_total",
			Help: "Total number of course subscriptions created",
		}),
		UnsubscriptionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_unsubscriptions_total",
			Help: "Total number of course subscriptions removed",
		}),
		NotificationsEnqueued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_notifications_enqueued_total",
			Help: "Total number of update notification jobs enqueued",
		}),
		NotificationErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_notification_errors_total",
			Help: "Total number of notification enqueue failures",
		}),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_notification_emails_sent_total",
			Help: "Total number of update notification emails sent",
		}),
		EmailSendErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_notification_email_errors_total",
			Help: "Total number of failed notification email sends",
		}),
		NotificationsSuppressed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "course_notifications_suppressed_total",
			Help: "Total number of notification cycles suppressed by the debounce window",
		}),
		PaymentIntentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payment_intents_created_total",
			Help: "Total number of payment intents opened with the gateway",
		}),
		PaymentGatewayErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "payment_gateway_errors_total",
			Help: "Total number of payment gateway failures",
		}),
		PaymentRequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "payment_gateway_request_duration_seconds",
			Help:    "Duration of payment gateway HTTP calls",
			Buckets: prometheus.DefBuckets,
		}),
		AccountsDeactivated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_deactivated_total",
			Help: "Total number of accounts disabled for inactivity",
		}),
	}
}
