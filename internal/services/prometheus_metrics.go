package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	commandsTotal       *prometheus.CounterVec
	commandDuration     prometheus.Histogram
	transactionsCreated *prometheus.CounterVec
	recurringRunsTotal  prometheus.Counter
	recurringBooked     prometheus.Counter
	budgetWarningsTotal *prometheus.CounterVec
	advisorRequests     *prometheus.CounterVec
	advisorDuration     prometheus.Histogram
	ledgerBalance       prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors on the given registerer.
// Taking the registerer explicitly keeps test suites from tripping over
// duplicate registration on the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commands_total",
				Help: "Total number of interpreted commands by intent",
			},
			[]string{"intent", "outcome"},
		),
		commandDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "command_duration_milliseconds",
				Help:    "Command interpretation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions created by source",
			},
			[]string{"source"},
		),
		recurringRunsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recurring_runs_total",
				Help: "Total number of recurring rule passes",
			},
		),
		recurringBooked: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recurring_transactions_booked_total",
				Help: "Total number of transactions booked from recurring rules",
			},
		),
		budgetWarningsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_warnings_total",
				Help: "Total number of budget warnings issued by level",
			},
			[]string{"level"},
		),
		advisorRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_requests_total",
				Help: "Total number of advisor questions by status",
			},
			[]string{"status"},
		),
		advisorDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advisor_request_duration_seconds",
				Help:    "Advisor request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		ledgerBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_balance",
				Help: "All-time ledger balance at the last summary computation",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "command.interpreted":
		m.commandsTotal.WithLabelValues(tags["intent"], tags["outcome"]).Inc()
	case "transaction.created":
		m.transactionsCreated.WithLabelValues(tags["source"]).Inc()
	case "recurring.run":
		m.recurringRunsTotal.Inc()
	case "recurring.booked":
		m.recurringBooked.Inc()
	case "budget.warning":
		if level := tags["level"]; level != "" {
			m.budgetWarningsTotal.WithLabelValues(level).Inc()
		}
	case "advisor.request":
		if status := tags["status"]; status != "" {
			m.advisorRequests.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "command.interpretation":
		m.commandDuration.Observe(float64(duration.Milliseconds()))
	case "advisor.request":
		m.advisorDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "ledger.balance" {
		m.ledgerBalance.Set(value)
	}
}
