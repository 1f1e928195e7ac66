// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parallel

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for task dispatch.
type Metrics struct {
	Runs         *prometheus.CounterVec   // labels: type, result={ok,error}
	Tasks        *prometheus.CounterVec   // labels: type, outcome={ok,error}
	TaskDuration *prometheus.HistogramVec // labels: type
	Workers      *prometheus.GaugeVec     // labels: type
}

func newMetrics(buckets []float64) *Metrics {
	return &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metgraphics",
			Subsystem: "parallel",
			Name:      "runs_total",
			Help:      "Dispatcher runs by strategy and result.",
		}, []string{"type", "result"}),
		Tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metgraphics",
			Subsystem: "parallel",
			Name:      "tasks_total",
			Help:      "Tasks run by strategy and outcome.",
		}, []string{"type", "outcome"}),
		TaskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "metgraphics",
			Subsystem: "parallel",
			Name:      "task_duration_seconds",
			Help:      "Duration of a single task.",
			Buckets:   buckets,
		}, []string{"type"}),
		Workers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "metgraphics",
			Subsystem: "parallel",
			Name:      "workers",
			Help:      "Workers used by the most recent run of each strategy.",
		}, []string{"type"}),
	}
}

// NewMetrics creates the dispatcher metrics and registers them with
// reg. If reg is nil, the default registerer is used.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := newMetrics([]float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60})
	for _, c := range []prometheus.Collector{m.Runs, m.Tasks, m.TaskDuration, m.Workers} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NewMetricsForTesting creates unregistered Metrics, so tests can
// create as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics(prometheus.DefBuckets)
}
