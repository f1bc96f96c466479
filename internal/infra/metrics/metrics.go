package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики прогонов расчёта зарплаты.
var (
	RunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payroll_runs_total",
		Help: "Completed payroll recalculations.",
	})

	RunErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payroll_run_errors_total",
		Help: "Payroll recalculations that failed.",
	})

	RowsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payroll_rows_skipped_total",
		Help: "Sales rows excluded from payroll (unknown product, no price).",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "payroll_run_duration_seconds",
		Help:    "Duration of a full payroll recalculation.",
		Buckets: prometheus.DefBuckets,
	})
)
