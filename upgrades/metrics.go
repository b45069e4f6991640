// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/juju/stakeledger/core/weight"
)

const metricsNamespace = "stakeledger_upgrade"

const (
	outcomeMigrated = "migrated"
	outcomeFailed   = "failed"
	outcomeSkipped  = "skipped"
)

// MetricsCollector is a prometheus.Collector that collects metrics about
// the proxy delegator migration.
type MetricsCollector struct {
	agents    *prometheus.CounterVec
	refTime   prometheus.Counter
	proofSize prometheus.Counter
}

var _ Metrics = (*MetricsCollector)(nil)

// NewMetricsCollector returns a new MetricsCollector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		agents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "proxy_delegator_agents_total",
				Help:      "The number of agents visited by the proxy delegator migration, by outcome.",
			}, []string{"outcome"},
		),
		refTime: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "weight_ref_time_total",
				Help:      "The ref time consumed by upgrade steps.",
			},
		),
		proofSize: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "weight_proof_size_total",
				Help:      "The proof size consumed by upgrade steps.",
			},
		),
	}
}

// Migrated is part of the Metrics interface.
func (c *MetricsCollector) Migrated() {
	c.agents.WithLabelValues(outcomeMigrated).Inc()
}

// Failed is part of the Metrics interface.
func (c *MetricsCollector) Failed() {
	c.agents.WithLabelValues(outcomeFailed).Inc()
}

// Skipped is part of the Metrics interface.
func (c *MetricsCollector) Skipped() {
	c.agents.WithLabelValues(outcomeSkipped).Inc()
}

// Consumed is part of the Metrics interface.
func (c *MetricsCollector) Consumed(w weight.Weight) {
	c.refTime.Add(float64(w.RefTime))
	c.proofSize.Add(float64(w.ProofSize))
}

// Describe is part of the prometheus.Collector interface.
func (c *MetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	c.agents.Describe(ch)
	c.refTime.Describe(ch)
	c.proofSize.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *MetricsCollector) Collect(ch chan<- prometheus.Metric) {
	c.agents.Collect(ch)
	c.refTime.Collect(ch)
	c.proofSize.Collect(ch)
}
