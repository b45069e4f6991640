// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"context"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/domain/delegation"
	delegationerrors "github.com/juju/stakeledger/domain/delegation/errors"
)

const (
	// ErrDelegationNotConserved is returned by the post-upgrade check when
	// the total delegated to an agent changed.
	ErrDelegationNotConserved = errors.ConstError("total delegation not conserved")

	// ErrProxyAmountMismatch is returned by the post-upgrade check when a
	// migrated agent's new proxy does not hold the amount its old proxy
	// held.
	ErrProxyAmountMismatch = errors.ConstError("proxy delegator amount mismatch")

	// ErrPartialMigration is returned by the post-upgrade check when an
	// agent's old proxy still delegates but either proxy changed.
	ErrPartialMigration = errors.ConstError("partial proxy delegator migration")
)

// AuditLedger is a DelegationLedger that can also total an agent's
// delegations.
type AuditLedger interface {
	DelegationLedger

	// TotalDelegatedTo sums every delegation to agent.
	TotalDelegatedTo(ctx context.Context, agent account.Agent) (delegation.Balance, error)
}

// ProxyDelegatorCheckConfig holds the dependencies of a
// ProxyDelegatorCheck. It must select the same agents as the migration
// being checked.
type ProxyDelegatorCheckConfig struct {
	Registry  AgentRegistry
	Ledger    AuditLedger
	MaxAgents int
}

// Validate checks that the config is usable.
func (c ProxyDelegatorCheckConfig) Validate() error {
	if c.Registry == nil {
		return errors.NotValidf("nil Registry")
	}
	if c.Ledger == nil {
		return errors.NotValidf("nil Ledger")
	}
	if c.MaxAgents < 0 {
		return errors.NotValidf("negative MaxAgents %d", c.MaxAgents)
	}
	return nil
}

// ProxyDelegatorCheck verifies a ProxyDelegatorMigration by comparing the
// ledger before and after it ran. It only reads the ledger.
type ProxyDelegatorCheck struct {
	cfg ProxyDelegatorCheckConfig
}

// NewProxyDelegatorCheck returns a check using the given config.
func NewProxyDelegatorCheck(cfg ProxyDelegatorCheckConfig) (*ProxyDelegatorCheck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &ProxyDelegatorCheck{cfg: cfg}, nil
}

type proxySnapshot struct {
	Agents []agentSnapshot `yaml:"agents"`
}

type agentSnapshot struct {
	Agent     string `yaml:"agent"`
	HasOld    bool   `yaml:"has-old"`
	OldAmount uint64 `yaml:"old-amount"`
	NewAmount uint64 `yaml:"new-amount"`
	Total     uint64 `yaml:"total"`
}

// proxyAmounts is what the ledger records for one agent's proxies.
type proxyAmounts struct {
	hasOld    bool
	oldAmount delegation.Balance
	newAgent  account.Agent
	newAmount delegation.Balance
	total     delegation.Balance
}

// PreUpgrade snapshots, for every agent the migration will visit, what
// both of its proxies hold and its total delegation. An old proxy that
// delegates to another agent belongs to that agent.
func (p *ProxyDelegatorCheck) PreUpgrade(ctx context.Context) ([]byte, error) {
	var snapshot proxySnapshot
	for id, err := range take(p.cfg.Registry.AgentKeys(ctx), p.cfg.MaxAgents) {
		if err != nil {
			return nil, errors.Annotate(err, "reading agents")
		}
		agent := account.Agent(id)
		amounts, err := p.read(ctx, agent)
		if err != nil {
			return nil, errors.Trace(err)
		}
		snapshot.Agents = append(snapshot.Agents, agentSnapshot{
			Agent:     agent.String(),
			HasOld:    amounts.hasOld,
			OldAmount: uint64(amounts.oldAmount),
			NewAmount: uint64(amounts.newAmount),
			Total:     uint64(amounts.total),
		})
	}

	data, err := yaml.Marshal(snapshot)
	return data, errors.Annotate(err, "encoding proxy delegator snapshot")
}

// PostUpgrade verifies the ledger against a snapshot made by PreUpgrade.
// For every snapshotted agent the total delegated must be unchanged. If
// the old proxy no longer delegates, the new proxy must hold what it did
// plus what the old proxy did. If the old proxy still delegates, neither
// proxy may have changed.
func (p *ProxyDelegatorCheck) PostUpgrade(ctx context.Context, data []byte) error {
	var snapshot proxySnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return errors.Annotate(err, "decoding proxy delegator snapshot")
	}

	for _, before := range snapshot.Agents {
		id, err := account.ParseID(before.Agent)
		if err != nil {
			return errors.Annotate(err, "decoding proxy delegator snapshot")
		}
		agent := account.Agent(id)
		after, err := p.read(ctx, agent)
		if err != nil {
			return errors.Trace(err)
		}
		if err := verifyAgent(agent, before, after); err != nil {
			return errors.Annotatef(err, "agent %s", agent)
		}
	}
	return nil
}

func verifyAgent(agent account.Agent, before agentSnapshot, after proxyAmounts) error {
	if uint64(after.total) != before.Total {
		return errors.Annotatef(ErrDelegationNotConserved, "was %d, now %d", before.Total, after.total)
	}

	if after.hasOld {
		if !before.HasOld || uint64(after.oldAmount) != before.OldAmount {
			return errors.Annotatef(ErrPartialMigration, "old proxy was %d, now %d", before.OldAmount, after.oldAmount)
		}
		if uint64(after.newAmount) != before.NewAmount {
			return errors.Annotatef(ErrPartialMigration, "new proxy was %d, now %d", before.NewAmount, after.newAmount)
		}
		return nil
	}

	expected := before.NewAmount
	if before.HasOld {
		expected += before.OldAmount
	}
	if uint64(after.newAmount) != expected {
		return errors.Annotatef(ErrProxyAmountMismatch, "new proxy holds %d, expected %d", after.newAmount, expected)
	}
	if expected > 0 && after.newAgent != agent {
		return errors.Annotatef(ErrProxyAmountMismatch, "new proxy delegates to %s", after.newAgent)
	}
	return nil
}

func (p *ProxyDelegatorCheck) read(ctx context.Context, agent account.Agent) (proxyAmounts, error) {
	var amounts proxyAmounts

	oldProxy := p.cfg.Ledger.LegacyProxyDelegator(agent)
	d, err := p.cfg.Ledger.Delegation(ctx, oldProxy.ID())
	if err == nil && d.Agent == agent {
		amounts.hasOld = true
		amounts.oldAmount = d.Amount
	} else if !errors.Is(err, delegationerrors.NotFound) {
		return amounts, errors.Annotatef(err, "reading old proxy of %s", agent)
	}

	newProxy := p.cfg.Ledger.GenerateProxyDelegator(agent)
	d, err = p.cfg.Ledger.Delegation(ctx, newProxy.ID())
	if err == nil {
		amounts.newAgent = d.Agent
		amounts.newAmount = d.Amount
	} else if !errors.Is(err, delegationerrors.NotFound) {
		return amounts, errors.Annotatef(err, "reading new proxy of %s", agent)
	}

	amounts.total, err = p.cfg.Ledger.TotalDelegatedTo(ctx, agent)
	if err != nil {
		return amounts, errors.Annotatef(err, "reading total delegated to %s", agent)
	}
	return amounts, nil
}
