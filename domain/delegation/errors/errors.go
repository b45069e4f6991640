// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package errors

import "github.com/juju/errors"

const (
	// NotFound describes an error that occurs when a delegator account has
	// no delegation.
	NotFound = errors.ConstError("delegation not found")

	// AgentNotFound describes an error that occurs when an account is not a
	// registered agent.
	AgentNotFound = errors.ConstError("agent not found")

	// AgentAlreadyExists describes an error that occurs when registering an
	// account that is already an agent.
	AgentAlreadyExists = errors.ConstError("agent already exists")

	// AlreadyDelegator describes an error that occurs when an account that
	// already delegates is used where a fresh delegator is required.
	AlreadyDelegator = errors.ConstError("account is already a delegator")

	// DelegatorIsAgent describes an error that occurs when an agent account
	// is used as a delegator.
	DelegatorIsAgent = errors.ConstError("delegator is an agent")

	// NotEnoughFunds describes an error that occurs when a delegation is
	// smaller than the amount requested from it.
	NotEnoughFunds = errors.ConstError("not enough funds")

	// InsufficientHold describes an error that occurs when the funds held
	// for a delegator do not cover its delegation.
	InsufficientHold = errors.ConstError("insufficient held balance")

	// BalanceOverflow describes an error that occurs when a balance cannot
	// be represented by the ledger.
	BalanceOverflow = errors.ConstError("balance overflow")
)
