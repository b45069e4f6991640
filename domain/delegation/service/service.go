// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"
	"iter"

	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/domain/delegation"
)

// DefaultPageSize is the number of agents read from state per page when
// enumerating the registry.
const DefaultPageSize = 64

// State describes retrieval and persistence methods for the delegation
// ledger.
type State interface {
	// RegisterAgent records agent as a registered agent paying rewards
	// to payee.
	RegisterAgent(ctx context.Context, agent account.Agent, payee account.ID) error

	// AgentKeys returns at most limit agents sorting after the given id.
	AgentKeys(ctx context.Context, after account.ID, limit int) ([]account.ID, error)

	// AgentLedger returns the book keeping of agent.
	AgentLedger(ctx context.Context, agent account.Agent) (delegation.AgentLedger, error)

	// Delegate creates or increases the delegation of delegator to agent.
	Delegate(ctx context.Context, delegator account.Delegator, agent account.Agent, amount delegation.Balance) error

	// Delegation returns the delegation held by delegator.
	Delegation(ctx context.Context, delegator account.ID) (delegation.Delegation, error)


	// TotalDelegatedTo sums the delegations recorded against agent.
	TotalDelegatedTo(ctx context.Context, agent account.Agent) (delegation.Balance, error)

	// HeldBalance returns the funds held for delegation from id.
	HeldBalance(ctx context.Context, id account.ID) (delegation.Balance, error)

	// MoveDelegation moves amount of from's delegation to the fresh
	// delegator to in one transaction.
	MoveDelegation(ctx context.Context, from, to account.Delegator, amount delegation.Balance) error
}

// Service provides the API for working with the delegation ledger.
type Service struct {
	st       State
	pallet   account.PalletID
	pageSize int
}

// NewService returns a new service reference wrapping the input state.
// Proxy delegators are derived from pallet. A pageSize of zero or less
// selects DefaultPageSize.
func NewService(st State, pallet account.PalletID, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		st:       st,
		pallet:   pallet,
		pageSize: pageSize,
	}
}

// RegisterAgent registers agent, with its rewards paid to payee.
func (s *Service) RegisterAgent(ctx context.Context, agent account.Agent, payee account.ID) error {
	if agent.ID().IsZero() {
		return errors.NotValidf("zero agent id")
	}
	if payee.IsZero() {
		return errors.NotValidf("zero payee id")
	}
	if payee == agent.ID() {
		return errors.NotValidf("agent %q paying itself", agent)
	}
	return errors.Trace(s.st.RegisterAgent(ctx, agent, payee))
}

// AgentKeys returns a lazy sequence over every registered agent in
// ascending id order. Pages are read from state as the sequence is
// consumed, so a caller that stops early reads no further. An error
// reading a page is yielded once and ends the sequence.
func (s *Service) AgentKeys(ctx context.Context) iter.Seq2[account.ID, error] {
	return func(yield func(account.ID, error) bool) {
		var after account.ID
		for {
			page, err := s.st.AgentKeys(ctx, after, s.pageSize)
			if err != nil {
				yield(account.ID{}, errors.Trace(err))
				return
			}
			for _, id := range page {
				if !yield(id, nil) {
					return
				}
			}
			if len(page) < s.pageSize {
				return
			}
			after = page[len(page)-1]
		}
	}
}

// AgentLedger returns the book keeping kept for agent.
func (s *Service) AgentLedger(ctx context.Context, agent account.Agent) (delegation.AgentLedger, error) {
	ledger, err := s.st.AgentLedger(ctx, agent)
	return ledger, errors.Trace(err)
}

// Delegate delegates amount of stake from delegator to agent.
func (s *Service) Delegate(ctx context.Context, delegator account.Delegator, agent account.Agent, amount delegation.Balance) error {
	if delegator.ID().IsZero() {
		return errors.NotValidf("zero delegator id")
	}
	if amount == 0 {
		return errors.NotValidf("zero delegation amount")
	}
	if delegator.ID() == agent.ID() {
		return errors.NotValidf("agent %q delegating to itself", agent)
	}
	return errors.Trace(s.st.Delegate(ctx, delegator, agent, amount))
}

// Delegation returns the delegation held by the delegator account id.
// The returned error satisfies [delegationerrors.NotFound] when there is
// none.
func (s *Service) Delegation(ctx context.Context, id account.ID) (delegation.Delegation, error) {
	d, err := s.st.Delegation(ctx, id)
	return d, errors.Trace(err)
}

// TotalDelegatedTo returns the sum of every delegation to agent.
func (s *Service) TotalDelegatedTo(ctx context.Context, agent account.Agent) (delegation.Balance, error) {
	amount, err := s.st.TotalDelegatedTo(ctx, agent)
	return amount, errors.Trace(err)
}

// HeldBalance returns the funds held for delegation from id.
func (s *Service) HeldBalance(ctx context.Context, id account.ID) (delegation.Balance, error) {
	amount, err := s.st.HeldBalance(ctx, id)
	return amount, errors.Trace(err)
}

// MoveDelegation moves amount of the delegation held by from, along with
// its held funds, to the fresh delegator to.
func (s *Service) MoveDelegation(ctx context.Context, from, to account.Delegator, amount delegation.Balance) error {
	if amount == 0 {
		return errors.NotValidf("zero move amount")
	}
	if from == to {
		return errors.NotValidf("moving delegation of %q to itself", from)
	}
	if to.ID().IsZero() {
		return errors.NotValidf("zero destination id")
	}
	return errors.Trace(s.st.MoveDelegation(ctx, from, to, amount))
}

// GenerateProxyDelegator returns the proxy delegator account of agent
// under the current derivation.
func (s *Service) GenerateProxyDelegator(agent account.Agent) account.Delegator {
	return account.ProxyDelegatorV2(s.pallet, agent)
}

// LegacyProxyDelegator returns the proxy delegator account of agent under
// the truncating derivation used before storage version 1.
func (s *Service) LegacyProxyDelegator(agent account.Agent) account.Delegator {
	return account.ProxyDelegatorV1(s.pallet, agent)
}
