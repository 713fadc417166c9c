package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
	DBOpenConns     *prometheus.GaugeVec
	DBInUseConns    *prometheus.GaugeVec
	DBIdleConns     *prometheus.GaugeVec
	DBWaitCount     *prometheus.GaugeVec

	BookingAttempts   *prometheus.CounterVec
	ExpiredFinalized  *prometheus.CounterVec
	NotificationsSent *prometheus.CounterVec
}

// New создает и регистрирует метрики в переданном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_attempts_total",
			Help:        "Booking commit attempts by source and outcome",
			ConstLabels: constLabels,
		}, []string{"source", "outcome"}),
		ExpiredFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_expired_finalized_total",
			Help:        "Pending appointments finalized after their end time",
			ConstLabels: constLabels,
		}, []string{"trigger"}),
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_sent_total",
			Help:        "Confirmation emails by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBOpenConns,
		m.DBInUseConns,
		m.DBIdleConns,
		m.DBWaitCount,
		m.BookingAttempts,
		m.ExpiredFinalized,
		m.NotificationsSent,
	)

	return m
}

// RecordBooking учитывает попытку бронирования. Безопасен для nil.
func (m *Metrics) RecordBooking(source, outcome string) {
	if m == nil {
		return
	}
	m.BookingAttempts.WithLabelValues(source, outcome).Inc()
}

// RecordExpired учитывает автоматически завершенные записи. Безопасен для nil.
func (m *Metrics) RecordExpired(trigger string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ExpiredFinalized.WithLabelValues(trigger).Add(float64(n))
}

// RecordNotification учитывает результат отправки письма. Безопасен для nil.
func (m *Metrics) RecordNotification(outcome string) {
	if m == nil {
		return
	}
	m.NotificationsSent.WithLabelValues(outcome).Inc()
}
