package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/slok/asg-deployer/types"
)

// Deployment results
const (
	ResultSuccess         = "success"
	ResultAborted         = "aborted"
	ResultDiscoveryFailed = "discovery_failed"
	ResultRetireFailed    = "retire_failed"
)

// Recorder turns deployment progress into counters and phase timings
type Recorder struct {
	sync.Mutex

	deploys   *prometheus.CounterVec
	rollbacks prometheus.Counter
	durations *prometheus.HistogramVec

	phase      types.Phase
	phaseStart time.Time
}

// NewRecorder returns a recorder registered on reg
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		deploys: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deploys_total",
				Help:      "Total number of finished deployments by result",
			},
			[]string{"result"},
		),
		rollbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rollbacks_total",
				Help:      "Total number of new ASGs deactivated after a failed deployment",
			},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "phase_duration_seconds",
				Help:      "Time spent in each deployment phase in seconds",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
			},
			[]string{"phase"},
		),
	}

	for _, c := range []prometheus.Collector{r.deploys, r.rollbacks, r.durations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Report implements deploy.Reporter
func (r *Recorder) Report(p types.Progress) {
	r.Lock()
	defer r.Unlock()

	if p.Rollback {
		r.rollbacks.Inc()
		return
	}
	if p.Cluster != "" {
		return
	}

	if p.Phase != r.phase {
		r.observe(p.Time)
		r.phase, r.phaseStart = p.Phase, p.Time
		if p.Phase == types.PhaseDone {
			r.deploys.WithLabelValues(ResultSuccess).Inc()
		}
	}
	if p.Err == nil {
		return
	}

	switch p.Phase {
	case types.PhaseAbort:
		r.deploys.WithLabelValues(ResultAborted).Inc()
	case types.PhaseDiscover:
		r.observe(p.Time)
		r.deploys.WithLabelValues(ResultDiscoveryFailed).Inc()
	case types.PhaseRetireOld:
		r.observe(p.Time)
		r.deploys.WithLabelValues(ResultRetireFailed).Inc()
	}
	r.phase = ""
}

// observe records the time spent in the current phase until now
func (r *Recorder) observe(now time.Time) {
	switch r.phase {
	case "", types.PhaseDone, types.PhaseAbort:
		return
	}
	r.durations.WithLabelValues(string(r.phase)).Observe(now.Sub(r.phaseStart).Seconds())
}
