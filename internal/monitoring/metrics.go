package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Simulation metrics
	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_sim_runs_total",
			Help: "Total number of simulation runs",
		},
		[]string{"trigger"},
	)

	simulationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "strategy_sim_run_duration_seconds",
			Help:    "Simulation run duration",
			Buckets: prometheus.DefBuckets,
		},
	)

	batchTrials = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "strategy_sim_batch_trials",
			Help:    "Distribution of Monte Carlo batch sizes",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000},
		},
	)

	// Preset metrics
	presetOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_sim_preset_ops_total",
			Help: "Total number of preset store operations",
		},
		[]string{"op"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_sim_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(simulationDuration)
	prometheus.MustRegister(batchTrials)
	prometheus.MustRegister(presetOpsTotal)
	prometheus.MustRegister(errorsTotal)
}

// RecordSimulation records a completed simulation run.
func RecordSimulation(trigger string, duration time.Duration) {
	simulationsTotal.WithLabelValues(trigger).Inc()
	simulationDuration.Observe(duration.Seconds())
}

// RecordBatch records a completed Monte Carlo batch.
func RecordBatch(trials int, duration time.Duration) {
	simulationsTotal.WithLabelValues("montecarlo").Inc()
	simulationDuration.Observe(duration.Seconds())
	batchTrials.Observe(float64(trials))
}

// RecordPresetOp records a preset store operation.
func RecordPresetOp(op string) {
	presetOpsTotal.WithLabelValues(op).Inc()
}

// RecordError records an error metric.
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}

// StartMetricsServer serves the Prometheus endpoint on its own port.
func StartMetricsServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	}()
}
