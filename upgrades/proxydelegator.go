// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"context"
	"iter"

	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/core/weight"
	"github.com/juju/stakeledger/domain/delegation"
	delegationerrors "github.com/juju/stakeledger/domain/delegation/errors"
)

// ErrForeignProxyDelegation is recorded for an agent whose old proxy
// delegator delegates to another agent.
const ErrForeignProxyDelegation = errors.ConstError("old proxy delegator delegates to another agent")

const (
	// moveReads is the number of storage reads made by one delegation
	// move: both delegations, the destination's agent entry and the hold.
	moveReads = 4

	// moveWrites is the number of storage writes made by one successful
	// delegation move: both delegations and both holds.
	moveWrites = 4

	// agentReads is the number of storage reads made for every agent
	// visited: its registry key and its old proxy's delegation.
	agentReads = 2
)

// Logger receives the diagnostics of the migration.
type Logger interface {
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
}

// Metrics receives the outcome of every agent visited by the migration.
type Metrics interface {
	Migrated()
	Failed()
	Skipped()
	Consumed(weight.Weight)
}

// AgentRegistry enumerates the agents of the delegated staking pallet.
type AgentRegistry interface {
	// AgentKeys returns a lazy sequence over every registered agent. The
	// sequence yields an error, and ends, if the registry cannot be read.
	AgentKeys(ctx context.Context) iter.Seq2[account.ID, error]
}

// DelegationLedger is the part of the delegation ledger the migration
// reads and mutates.
type DelegationLedger interface {
	// Delegation returns the delegation held by the delegator account id.
	// It returns an error satisfying [delegationerrors.NotFound] if there
	// is none.
	Delegation(ctx context.Context, id account.ID) (delegation.Delegation, error)

	// MoveDelegation atomically moves amount of from's delegation to the
	// fresh delegator to.
	MoveDelegation(ctx context.Context, from, to account.Delegator, amount delegation.Balance) error

	// GenerateProxyDelegator returns the current proxy delegator of agent.
	GenerateProxyDelegator(agent account.Agent) account.Delegator

	// LegacyProxyDelegator returns the proxy delegator of agent under the
	// truncating derivation.
	LegacyProxyDelegator(agent account.Agent) account.Delegator
}

// ProxyDelegatorMigrationConfig holds the dependencies and settings of a
// ProxyDelegatorMigration.
type ProxyDelegatorMigrationConfig struct {
	Registry AgentRegistry
	Ledger   DelegationLedger

	// MaxAgents caps the number of agents visited by one run. Zero visits
	// none.
	MaxAgents int

	// DBWeight prices the storage reads and writes of the run.
	DBWeight weight.DBWeight

	Logger  Logger
	Metrics Metrics
}

// Validate checks that the config is usable.
func (c ProxyDelegatorMigrationConfig) Validate() error {
	if c.Registry == nil {
		return errors.NotValidf("nil Registry")
	}
	if c.Ledger == nil {
		return errors.NotValidf("nil Ledger")
	}
	if c.MaxAgents < 0 {
		return errors.NotValidf("negative MaxAgents %d", c.MaxAgents)
	}
	if c.Logger == nil {
		return errors.NotValidf("nil Logger")
	}
	return nil
}

// MigrationFailure records an agent whose delegation could not be moved.
type MigrationFailure struct {
	Agent    account.Agent
	OldProxy account.Delegator
	Err      error
}

// ProxyDelegatorOutcome tallies a run of the migration.
type ProxyDelegatorOutcome struct {
	// Visited is the number of agents read from the registry.
	Visited int
	// Success is the number of agents whose delegation was moved.
	Success int
	// Fails is the number of agents whose delegation could not be moved.
	Fails int
	// Skipped is the number of agents whose old proxy held nothing.
	Skipped int
	// Failures details every failed agent, in registry order.
	Failures []MigrationFailure
}

// ProxyDelegatorMigration moves the delegation held by every agent's
// proxy delegator derived with the truncating derivation to the proxy
// delegator of the current derivation.
type ProxyDelegatorMigration struct {
	cfg ProxyDelegatorMigrationConfig
}

// NewProxyDelegatorMigration returns a migration using the given config.
func NewProxyDelegatorMigration(cfg ProxyDelegatorMigrationConfig) (*ProxyDelegatorMigration, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = noopMetrics{}
	}
	return &ProxyDelegatorMigration{cfg: cfg}, nil
}

// Run migrates at most MaxAgents agents and returns the work consumed.
func (m *ProxyDelegatorMigration) Run(ctx context.Context) (weight.Weight, error) {
	_, w, err := m.Migrate(ctx)
	return w, err
}

// Migrate migrates at most MaxAgents agents, taken from the start of the
// registry. A failure to move one agent's delegation is logged and
// counted but never stops the run. Only a failure to read the registry
// itself, or the context being done, is returned as an error.
func (m *ProxyDelegatorMigration) Migrate(ctx context.Context) (ProxyDelegatorOutcome, weight.Weight, error) {
	var (
		out           ProxyDelegatorOutcome
		reads, writes uint64
	)

	for id, err := range take(m.cfg.Registry.AgentKeys(ctx), m.cfg.MaxAgents) {
		if err != nil {
			m.cfg.Logger.Errorf("reading agents after %d visited: %v", out.Visited, err)
			return out, m.consumed(reads, writes), errors.Annotate(err, "reading agents")
		}
		if err := ctx.Err(); err != nil {
			return out, m.consumed(reads, writes), errors.Trace(err)
		}

		out.Visited++
		reads += agentReads

		agent := account.Agent(id)
		oldProxy := m.cfg.Ledger.LegacyProxyDelegator(agent)

		d, err := m.cfg.Ledger.Delegation(ctx, oldProxy.ID())
		if errors.Is(err, delegationerrors.NotFound) {
			out.Skipped++
			m.cfg.Metrics.Skipped()
			continue
		} else if err != nil {
			m.fail(&out, agent, oldProxy, err)
			continue
		}
		if d.Agent != agent {
			// Truncation maps agents sharing a prefix to one old proxy.
			m.fail(&out, agent, oldProxy, errors.Annotatef(ErrForeignProxyDelegation, "delegates to %s", d.Agent))
			continue
		}

		newProxy := m.cfg.Ledger.GenerateProxyDelegator(agent)
		reads += moveReads
		if err := m.cfg.Ledger.MoveDelegation(ctx, oldProxy, newProxy, d.Amount); err != nil {
			m.fail(&out, agent, oldProxy, err)
			continue
		}
		writes += moveWrites

		m.cfg.Logger.Debugf("moved %d delegated to %s from %s to %s", d.Amount, agent, oldProxy, newProxy)
		out.Success++
		m.cfg.Metrics.Migrated()
	}

	m.cfg.Logger.Infof(
		"migration to new proxy delegator account success for %d agents, failed for %d agents",
		out.Success, out.Fails,
	)
	return out, m.consumed(reads, writes), nil
}

func (m *ProxyDelegatorMigration) fail(out *ProxyDelegatorOutcome, agent account.Agent, oldProxy account.Delegator, err error) {
	m.cfg.Logger.Infof(
		"failed to migrate proxy delegator for agent %s, old proxy delegator: %s: %v",
		agent, oldProxy, err,
	)
	out.Fails++
	out.Failures = append(out.Failures, MigrationFailure{
		Agent:    agent,
		OldProxy: oldProxy,
		Err:      err,
	})
	m.cfg.Metrics.Failed()
}

func (m *ProxyDelegatorMigration) consumed(reads, writes uint64) weight.Weight {
	w := m.cfg.DBWeight.ReadsWrites(reads, writes)
	m.cfg.Metrics.Consumed(w)
	return w
}

// take returns a sequence yielding at most the first n pairs of seq. The
// underlying sequence is not started when n is zero, and is not pulled
// past the nth pair.
func take[K, V any](seq iter.Seq2[K, V], n int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if n <= 0 {
			return
		}
		var taken int
		for k, v := range seq {
			if !yield(k, v) {
				return
			}
			if taken++; taken >= n {
				return
			}
		}
	}
}

type noopMetrics struct{}

func (noopMetrics) Migrated()              {}
func (noopMetrics) Failed()                {}
func (noopMetrics) Skipped()               {}
func (noopMetrics) Consumed(weight.Weight) {}
