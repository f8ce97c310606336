// Package metrics counts goprops diagnostics with Prometheus.
//
// Wrap the Sink a Store logs to:
//
//	s, err := metrics.NewSink(goprops.DefaultSink(), prometheus.DefaultRegisterer)
//	goprops.SetSink(s)
//
// Only diagnostics that reach a Sink are counted, i.e. failures under the
// warn and error log levels.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	goprops "github.com/reoring/goprops"
)

// MetricName is the name of the diagnostics counter.
const MetricName = "goprops_diagnostics_total"

// NewDiagnosticsCounter returns an unregistered counter partitioned by issue
// code and log level.
func NewDiagnosticsCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricName,
			Help: "Cumulative number of validation diagnostics by issue code and log level.",
		},
		[]string{"code", "level"},
	)
}

// Sink counts each Diagnostic, then forwards it to the wrapped Sink.
type Sink struct {
	next    goprops.Sink
	counter *prometheus.CounterVec
}

var _ goprops.Sink = (*Sink)(nil)

// NewSink registers the diagnostics counter with reg (DefaultRegisterer when
// nil) and wraps next. A counter already registered under the same name is
// reused. A nil next only counts.
func NewSink(next goprops.Sink, reg prometheus.Registerer) (*Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := NewDiagnosticsCounter()
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		c = existing
	}
	return &Sink{next: next, counter: c}, nil
}

// Log implements goprops.Sink.
func (s *Sink) Log(d goprops.Diagnostic) {
	s.counter.WithLabelValues(d.Issue.Code, d.Level.String()).Inc()
	if s.next != nil {
		s.next.Log(d)
	}
}

// Counter exposes the underlying collector.
func (s *Sink) Counter() *prometheus.CounterVec { return s.counter }
