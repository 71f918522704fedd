// Package production provides production integrations for fsmx machines: metrics,
// event forwarding and visualization.
package production

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/comalice/fsmx"
)

// Run results used as the "result" label.
const (
	ResultAccepted   = "accepted"
	ResultRejected   = "rejected"
	ResultSymbol     = "symbol"
	ResultTransition = "transition"
	ResultError      = "error"
)

// Metrics is an fsmx.Observer that records runs in Prometheus.
type Metrics struct {
	runs    *prometheus.CounterVec
	steps   *prometheus.CounterVec
	symbols *prometheus.HistogramVec
}

// NewMetrics registers the fsmx collectors with reg. A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		// runs counts finished runs by machine and result
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fsmx_runs_total",
			Help: "Total finished runs by machine and result",
		}, []string{"machine", "result"}),

		// steps counts successful transitions
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fsmx_steps_total",
			Help: "Total successful transitions by machine",
		}, []string{"machine"}),

		// symbols tracks how many symbols a run consumed before finishing
		symbols: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fsmx_run_symbols",
			Help:    "Symbols consumed per finished run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 to ~16k
		}, []string{"machine"}),
	}
}

func (m *Metrics) Observe(e fsmx.Event) {
	switch e.Kind {
	case fsmx.Stepped:
		m.steps.WithLabelValues(e.Machine).Inc()
	case fsmx.Accepted, fsmx.Failed:
		m.runs.WithLabelValues(e.Machine, Result(e.Err)).Inc()
		m.symbols.WithLabelValues(e.Machine).Observe(float64(e.Position))
	}
}

// Result classifies a run error into one of the Result* labels.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultAccepted
	case errors.Is(err, fsmx.ErrRejectedFinalState):
		return ResultRejected
	case errors.Is(err, fsmx.ErrSymbolNotInAlphabet):
		return ResultSymbol
	case errors.Is(err, fsmx.ErrTransition):
		return ResultTransition
	default:
		return ResultError
	}
}
