// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

// Context provides the dependencies used when executing upgrade steps.
type Context interface {
	// Registry enumerates the pallet's registered agents.
	Registry() AgentRegistry

	// Ledger is the delegation ledger being upgraded.
	Ledger() AuditLedger

	// Config holds the settings of the upgrade.
	Config() Config

	// Logger receives the diagnostics of each step.
	Logger() Logger

	// Metrics receives the outcomes of each step.
	Metrics() Metrics
}

// ContextArgs holds the values returned by a Context made by NewContext.
type ContextArgs struct {
	Registry AgentRegistry
	Ledger   AuditLedger
	Config   Config
	Logger   Logger
	Metrics  Metrics
}

// NewContext returns a new upgrade context. A nil Logger falls back to
// the package logger and nil Metrics discards outcomes.
func NewContext(args ContextArgs) Context {
	if args.Logger == nil {
		args.Logger = logger
	}
	if args.Metrics == nil {
		args.Metrics = noopMetrics{}
	}
	return &upgradeContext{args: args}
}

type upgradeContext struct {
	args ContextArgs
}

// Registry is defined on the Context interface.
func (c *upgradeContext) Registry() AgentRegistry {
	return c.args.Registry
}

// Ledger is defined on the Context interface.
func (c *upgradeContext) Ledger() AuditLedger {
	return c.args.Ledger
}

// Config is defined on the Context interface.
func (c *upgradeContext) Config() Config {
	return c.args.Config
}

// Logger is defined on the Context interface.
func (c *upgradeContext) Logger() Logger {
	return c.args.Logger
}

// Metrics is defined on the Context interface.
func (c *upgradeContext) Metrics() Metrics {
	return c.args.Metrics
}
