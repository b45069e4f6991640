// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package delegation

import "github.com/juju/stakeledger/core/account"

// Balance is a quantity of stake.
type Balance uint64

// Delegation is the stake a delegator account has delegated to an agent.
type Delegation struct {
	// Agent is the beneficiary of the delegated stake.
	Agent account.Agent
	// Amount is the delegated stake.
	Amount Balance
}

// AgentLedger is the book keeping kept for each registered agent.
type AgentLedger struct {
	// Payee receives the agent's rewards.
	Payee account.ID
	// TotalDelegated is the sum of every delegation to the agent.
	TotalDelegated Balance
	// UnclaimedWithdrawals is stake released by the agent that delegators
	// have not yet claimed.
	UnclaimedWithdrawals Balance
	// PendingSlash is slashing applied to the agent that has not yet been
	// taken from its delegators.
	PendingSlash Balance
}
