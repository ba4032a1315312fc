package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueries     *prometheus.CounterVec
	dbDuration    *prometheus.HistogramVec
	dbOpenConns   *prometheus.GaugeVec
	dbInUseConns  *prometheus.GaugeVec
	dbIdleConns   *prometheus.GaugeVec
	dbWaitCount   *prometheus.GaugeVec
	dbWaitSeconds *prometheus.GaugeVec

	bookingOutcomes *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	sweepNoShows    *prometheus.CounterVec
	notifications   *prometheus.CounterVec

	serviceName string
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),
		dbWaitSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_duration_seconds",
			Help: "Total time blocked waiting for a new connection",
		}, []string{"service"}),

		bookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_requests_total",
			Help: "Booking requests by outcome (pending, confirmed, waitlisted)",
		}, []string{"service", "outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking status transitions by target status",
		}, []string{"service", "status"}),
		sweepNoShows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_sweep_no_shows_total",
			Help: "Bookings moved to NO_SHOW by the overdue sweep",
		}, []string{"service"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification deliveries by channel and result",
		}, []string{"service", "channel", "result"}),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.dbQueries, m.dbDuration, m.dbOpenConns, m.dbInUseConns, m.dbIdleConns, m.dbWaitCount, m.dbWaitSeconds,
		m.bookingOutcomes, m.transitions, m.sweepNoShows, m.notifications,
	)

	return m
}

// ObserveHTTP фиксирует HTTP запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(m.serviceName, method, route).Observe(d.Seconds())
}

// ObserveQuery фиксирует запрос к БД
func (m *Metrics) ObserveQuery(operation string, d time.Duration, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueries.WithLabelValues(m.serviceName, operation, status).Inc()
	m.dbDuration.WithLabelValues(m.serviceName, operation).Observe(d.Seconds())
}

// SetPoolStats обновляет метрики connection pool
func (m *Metrics) SetPoolStats(stats sql.DBStats) {
	m.dbOpenConns.WithLabelValues(m.serviceName).Set(float64(stats.OpenConnections))
	m.dbInUseConns.WithLabelValues(m.serviceName).Set(float64(stats.InUse))
	m.dbIdleConns.WithLabelValues(m.serviceName).Set(float64(stats.Idle))
	m.dbWaitCount.WithLabelValues(m.serviceName).Set(float64(stats.WaitCount))
	m.dbWaitSeconds.WithLabelValues(m.serviceName).Set(stats.WaitDuration.Seconds())
}

// IncBookingOutcome фиксирует результат запроса на бронирование
func (m *Metrics) IncBookingOutcome(outcome string) {
	m.bookingOutcomes.WithLabelValues(m.serviceName, outcome).Inc()
}

// IncTransition фиксирует переход бронирования в статус
func (m *Metrics) IncTransition(status string) {
	m.transitions.WithLabelValues(m.serviceName, status).Inc()
}

// AddSweepNoShows фиксирует количество бронирований, переведённых в NO_SHOW фоновой задачей
func (m *Metrics) AddSweepNoShows(n int) {
	m.sweepNoShows.WithLabelValues(m.serviceName).Add(float64(n))
}

// IncNotification фиксирует отправку уведомления
func (m *Metrics) IncNotification(channel, result string) {
	m.notifications.WithLabelValues(m.serviceName, channel, result).Inc()
}

// Collector общий набор методов Metrics и Noop
type Collector interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
	ObserveQuery(operation string, duration time.Duration, err error)
	SetPoolStats(stats sql.DBStats)
	IncBookingOutcome(outcome string)
	IncTransition(status string)
	AddSweepNoShows(n int)
	IncNotification(channel, result string)
}

var (
	_ Collector = (*Metrics)(nil)
	_ Collector = Noop{}
)

// Noop пустая реализация для отключенных метрик
type Noop struct{}

func (Noop) ObserveHTTP(string, string, int, time.Duration) {}
func (Noop) ObserveQuery(string, time.Duration, error) {}
func (Noop) SetPoolStats(sql.DBStats) {}
func (Noop) IncBookingOutcome(string) {}
func (Noop) IncTransition(string) {}
func (Noop) AddSweepNoShows(int) {}
func (Noop) IncNotification(string, string) {}
