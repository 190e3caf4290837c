package prometheus

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Azure/azmon-diag/pkg/metrics"
)

const namespace = "azmondiag"

var _ metrics.Emitter = (*Emitter)(nil)

// Emitter records every emitted metric as a gauge in a private registry. The
// registry is written out once at the end of a run with WriteToTextfile, for
// pickup by the node exporter textfile collector.
type Emitter struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	gauges   map[string]*prometheus.GaugeVec
	err      error
}

// New returns an Emitter with an empty registry.
func New() *Emitter {
	return &Emitter{
		registry: prometheus.NewRegistry(),
		gauges:   map[string]*prometheus.GaugeVec{},
	}
}

// EmitFloat records float information
func (e *Emitter) EmitFloat(m string, value float64, dims map[string]string) {
	e.set(m, value, dims)
}

// EmitGauge records gauge information
func (e *Emitter) EmitGauge(m string, value int64, dims map[string]string) {
	e.set(m, float64(value), dims)
}

func (e *Emitter) set(m string, value float64, dims map[string]string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name := metricName(m)

	gv, found := e.gauges[name]
	if !found {
		gv = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      m,
		}, labelNames(dims))

		err := e.registry.Register(gv)
		if err != nil {
			e.recordError(fmt.Errorf("registering metric %s: %w", m, err))
			return
		}
		e.gauges[name] = gv
	}

	g, err := gv.GetMetricWith(labels(dims))
	if err != nil {
		e.recordError(fmt.Errorf("emitting metric %s: %w", m, err))
		return
	}
	g.Set(value)
}

func (e *Emitter) recordError(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (e *Emitter) Registry() prometheus.Gatherer {
	return e.registry
}

// WriteToTextfile writes the registry in the Prometheus text format. The
// first error hit while emitting, if any, is returned instead.
func (e *Emitter) WriteToTextfile(path string) error {
	e.mu.Lock()
	err := e.err
	e.mu.Unlock()
	if err != nil {
		return err
	}

	return prometheus.WriteToTextfile(path, e.registry)
}

// metricName turns a dotted metric name such as "onboarding.step.duration"
// into a valid Prometheus name.
func metricName(m string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, m)
}

func labelNames(dims map[string]string) []string {
	names := make([]string, 0, len(dims))
	for k := range dims {
		names = append(names, metricName(k))
	}
	sort.Strings(names)
	return names
}

func labels(dims map[string]string) prometheus.Labels {
	l := make(prometheus.Labels, len(dims))
	for k, v := range dims {
		l[metricName(k)] = v
	}
	return l
}
