package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// ResultAccepted labels a links row that became a menu node.
	ResultAccepted = "accepted"

	// ResultRejected labels a links row that failed validation.
	ResultRejected = "rejected"
)

type IncrementalCounter interface {
	Increment(val ...string)
}

type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Vec exposes the underlying collector, mostly for tests.
func (c *Counter) Vec() *prometheus.CounterVec {
	return c.vec
}

func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// NewRowCounter registers the links row counter on reg.
// It takes two label values: the result and the field that failed (empty when accepted).
func NewRowCounter(reg prometheus.Registerer) *Counter {
	return NewCounterWithRegistry(reg, "navaug_rows_total",
		"Number of custom navigation rows processed, by result and failing field.",
		"result", "field")
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
