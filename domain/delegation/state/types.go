// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"math"

	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/domain/delegation"
	delegationerrors "github.com/juju/stakeledger/domain/delegation/errors"
)

// stakingDelegationHold is the hold_reason id for delegated funds.
const stakingDelegationHold = 0

type dbAgent struct {
	AccountID            string `db:"account_id"`
	Payee                string `db:"payee"`
	TotalDelegated       int64  `db:"total_delegated"`
	UnclaimedWithdrawals int64  `db:"unclaimed_withdrawals"`
	PendingSlash         int64  `db:"pending_slash"`
}

func (a dbAgent) toAgentLedger() (delegation.AgentLedger, error) {
	payee, err := account.ParseID(a.Payee)
	if err != nil {
		return delegation.AgentLedger{}, errors.Annotatef(err, "agent %q payee", a.AccountID)
	}
	return delegation.AgentLedger{
		Payee:                payee,
		TotalDelegated:       delegation.Balance(a.TotalDelegated),
		UnclaimedWithdrawals: delegation.Balance(a.UnclaimedWithdrawals),
		PendingSlash:         delegation.Balance(a.PendingSlash),
	}, nil
}

type dbDelegation struct {
	Delegator string `db:"delegator"`
	Agent     string `db:"agent"`
	Amount    int64  `db:"amount"`
}

func (d dbDelegation) toDelegation() (delegation.Delegation, error) {
	agent, err := account.ParseID(d.Agent)
	if err != nil {
		return delegation.Delegation{}, errors.Annotatef(err, "delegation %q agent", d.Delegator)
	}
	return delegation.Delegation{
		Agent:  account.Agent(agent),
		Amount: delegation.Balance(d.Amount),
	}, nil
}

type dbHold struct {
	AccountID string `db:"account_id"`
	ReasonID  int    `db:"reason_id"`
	Amount    int64  `db:"amount"`
}

type accountID struct {
	ID string `db:"account_id"`
}

type agentPage struct {
	After string `db:"after"`
	Size  int    `db:"size"`
}

type total struct {
	Amount int64 `db:"amount"`
}

// toDBAmount converts a balance to its column representation.
func toDBAmount(b delegation.Balance) (int64, error) {
	if b > math.MaxInt64 {
		return 0, errors.Annotatef(delegationerrors.BalanceOverflow, "balance %d", b)
	}
	return int64(b), nil
}

// addDBAmount adds two column amounts, failing if the sum does not fit.
func addDBAmount(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, errors.Annotatef(delegationerrors.BalanceOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}
