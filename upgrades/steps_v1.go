// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"context"

	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/weight"
)

func stateStepsForV1() []Step {
	return []Step{
		&proxyDelegatorStep{},
	}
}

// proxyDelegatorStep moves delegations held by proxy delegators derived
// with the truncating derivation to their current derivation.
type proxyDelegatorStep struct{}

var _ CheckedStep = (*proxyDelegatorStep)(nil)

// Description is defined on the Step interface.
func (*proxyDelegatorStep) Description() string {
	return "migrate proxy delegator accounts to the agent derivation"
}

// Run is defined on the Step interface.
func (*proxyDelegatorStep) Run(ctx context.Context, uctx Context) (weight.Weight, error) {
	migration, err := NewProxyDelegatorMigration(migrationConfig(uctx))
	if err != nil {
		return weight.Zero, errors.Trace(err)
	}
	return migration.Run(ctx)
}

// PreUpgrade is defined on the CheckedStep interface.
func (*proxyDelegatorStep) PreUpgrade(ctx context.Context, uctx Context) ([]byte, error) {
	check, err := NewProxyDelegatorCheck(checkConfig(uctx))
	if err != nil {
		return nil, errors.Trace(err)
	}
	return check.PreUpgrade(ctx)
}

// PostUpgrade is defined on the CheckedStep interface.
func (*proxyDelegatorStep) PostUpgrade(ctx context.Context, uctx Context, snapshot []byte) error {
	check, err := NewProxyDelegatorCheck(checkConfig(uctx))
	if err != nil {
		return errors.Trace(err)
	}
	return check.PostUpgrade(ctx, snapshot)
}

func migrationConfig(uctx Context) ProxyDelegatorMigrationConfig {
	cfg := uctx.Config()
	return ProxyDelegatorMigrationConfig{
		Registry:  uctx.Registry(),
		Ledger:    uctx.Ledger(),
		MaxAgents: cfg.MaxAgents,
		DBWeight:  cfg.DBWeight,
		Logger:    uctx.Logger(),
		Metrics:   uctx.Metrics(),
	}
}

func checkConfig(uctx Context) ProxyDelegatorCheckConfig {
	cfg := uctx.Config()
	return ProxyDelegatorCheckConfig{
		Registry:  uctx.Registry(),
		Ledger:    uctx.Ledger(),
		MaxAgents: cfg.MaxAgents,
	}
}
