// Package metrics defines the payroll API's domain metrics. Metrics are bound
// to a caller-supplied registry so tests can build routers repeatedly.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payroll"

// Metrics holds every custom collector of the API.
type Metrics struct {
	// HiresTotal counts completed hires.
	// Labels:
	//   - type: "FULL_TIME_SALARIED" or "PART_TIME_HOURLY"
	HiresTotal *prometheus.CounterVec

	// HireReplaysTotal counts hires answered from an idempotency key.
	HireReplaysTotal prometheus.Counter

	// HoursUpdatesTotal counts hour updates.
	// Labels:
	//   - scope: "single" or "batch"
	//   - result: "ok", "cancelled" or "error"
	HoursUpdatesTotal *prometheus.CounterVec

	// ReportsGeneratedTotal counts reports served.
	// Labels:
	//   - kind: "payroll", "department_payroll" or "end_of_year"
	//   - format: "json" or "text"
	ReportsGeneratedTotal *prometheus.CounterVec

	// PayrollTotal is the company-wide weekly payroll of the latest report.
	PayrollTotal prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HiresTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hires_total",
			Help:      "Total number of employees hired, by employee type.",
		}, []string{"type"}),

		HireReplaysTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hire_replays_total",
			Help:      "Total number of hire requests answered from an idempotency key.",
		}),

		HoursUpdatesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hours_updates_total",
			Help:      "Total number of part-time hour updates, by scope and result.",
		}, []string{"scope", "result"}),

		ReportsGeneratedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Total number of payroll reports served, by kind and format.",
		}, []string{"kind", "format"}),

		PayrollTotal: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "weekly_payroll_dollars",
			Help:      "Company-wide weekly payroll as of the latest payroll report.",
		}),
	}
}

// RegisterQueueDepth exposes the number of service calls waiting for the
// serializer.
func RegisterQueueDepth(reg prometheus.Registerer, depth func() int) {
	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "serializer_queue_depth",
		Help:      "Number of service calls waiting for the single company worker.",
	}, func() float64 { return float64(depth()) })
}
