// Package metrics exposes the assessment counters. Increments are
// fire-and-forget from the conversation service's point of view: the
// Recorder interface has no error returns and implementations must never
// block a conversational turn.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives counter increment requests from the state machine.
type Recorder interface {
	TestStarted()
	TestCompleted(mbtiType string)
	CrisisIntervention()
}

// Prometheus implements Recorder with prometheus counters.
type Prometheus struct {
	started   prometheus.Counter
	completed *prometheus.CounterVec
	crisis    prometheus.Counter
}

// NewPrometheus registers the counters on a fresh registry and returns the
// recorder together with the /metrics handler.
func NewPrometheus() (*Prometheus, http.Handler) {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	p := &Prometheus{
		started: factory.NewCounter(prometheus.CounterOpts{
			Name: "snti_assessments_started_total",
			Help: "Assessments that entered the question phase.",
		}),
		completed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "snti_assessments_completed_total",
			Help: "Assessments scored to a 4-letter type.",
		}, []string{"mbti_type"}),
		crisis: factory.NewCounter(prometheus.CounterOpts{
			Name: "snti_crisis_interventions_total",
			Help: "Messages answered with the safety response.",
		}),
	}

	return p, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) TestStarted() { p.started.Inc() }

func (p *Prometheus) TestCompleted(mbtiType string) {
	p.completed.WithLabelValues(mbtiType).Inc()
}

func (p *Prometheus) CrisisIntervention() { p.crisis.Inc() }

// Noop discards all increments. Used in tests and when metrics are disabled.
type Noop struct{}

func (Noop) TestStarted()         {}
func (Noop) TestCompleted(string) {}
func (Noop) CrisisIntervention()  {}
