// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package state

import (
	"context"

	"github.com/canonical/sqlair"
	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/core/database"
	"github.com/juju/stakeledger/domain"
	"github.com/juju/stakeledger/domain/delegation"
	delegationerrors "github.com/juju/stakeledger/domain/delegation/errors"
	databaseutils "github.com/juju/stakeledger/internal/database"
)

// State represents a type for interacting with the underlying delegation
// ledger.
type State struct {
	*domain.StateBase
}

// NewState returns a new State for interacting with the underlying state.
func NewState(factory database.TxnRunnerFactory) *State {
	return &State{
		StateBase: domain.NewStateBase(factory),
	}
}

// RegisterAgent records agent as a registered agent paying rewards to
// payee. If the agent already exists an error satisfying
// [delegationerrors.AgentAlreadyExists] is returned; if the account already
// delegates, [delegationerrors.AlreadyDelegator].
func (st *State) RegisterAgent(ctx context.Context, agent account.Agent, payee account.ID) error {
	db, err := st.DB()
	if err != nil {
		return errors.Trace(err)
	}

	insertStmt, err := st.Prepare(`
INSERT INTO agent (account_id, payee)
VALUES ($dbAgent.account_id, $dbAgent.payee)`, dbAgent{})
	if err != nil {
		return errors.Annotate(err, "preparing insert agent statement")
	}

	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		_, err := st.getDelegation(ctx, tx, agent.ID())
		if err == nil {
			return errors.Annotatef(delegationerrors.AlreadyDelegator, "%q", agent)
		} else if !errors.Is(err, delegationerrors.NotFound) {
			return errors.Trace(err)
		}

		row := dbAgent{AccountID: agent.String(), Payee: payee.String()}
		if err := tx.Query(ctx, insertStmt, row).Run(); databaseutils.IsErrConstraintPrimaryKey(err) {
			return errors.Annotatef(delegationerrors.AgentAlreadyExists, "%q", agent)
		} else if err != nil {
			return errors.Trace(err)
		}
		return nil
	})
	return errors.Annotatef(err, "registering agent %q", agent)
}

// AgentKeys returns at most limit registered agents whose ids sort after
// after, in ascending id order. The zero id starts from the beginning.
func (st *State) AgentKeys(ctx context.Context, after account.ID, limit int) ([]account.ID, error) {
	db, err := st.DB()
	if err != nil {
		return nil, errors.Trace(err)
	}

	stmt, err := st.Prepare(`
SELECT &accountID.account_id
FROM agent
WHERE account_id > $agentPage.after
ORDER BY account_id
LIMIT $agentPage.size`, accountID{}, agentPage{})
	if err != nil {
		return nil, errors.Annotate(err, "preparing select agent keys statement")
	}

	var rows []accountID
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		err := tx.Query(ctx, stmt, agentPage{After: after.String(), Size: limit}).GetAll(&rows)
		if errors.Is(err, sqlair.ErrNoRows) {
			return nil
		}
		return errors.Trace(err)
	})
	if err != nil {
		return nil, errors.Annotate(err, "reading agent keys")
	}

	ids := make([]account.ID, 0, len(rows))
	for _, row := range rows {
		id, err := account.ParseID(row.ID)
		if err != nil {
			return nil, errors.Annotate(err, "reading agent keys")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AgentLedger returns the book keeping for agent. If the agent is not
// registered an error satisfying [delegationerrors.AgentNotFound] is
// returned.
func (st *State) AgentLedger(ctx context.Context, agent account.Agent) (delegation.AgentLedger, error) {
	db, err := st.DB()
	if err != nil {
		return delegation.AgentLedger{}, errors.Trace(err)
	}

	var row dbAgent
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		var err error
		row, err = st.getAgent(ctx, tx, agent.ID())
		return errors.Trace(err)
	})
	if err != nil {
		return delegation.AgentLedger{}, errors.Annotatef(err, "reading agent %q", agent)
	}
	return row.toAgentLedger()
}

// Delegation returns the delegation held by delegator. If there is none
// an error satisfying [delegationerrors.NotFound] is returned.
func (st *State) Delegation(ctx context.Context, delegator account.ID) (delegation.Delegation, error) {
	db, err := st.DB()
	if err != nil {
		return delegation.Delegation{}, errors.Trace(err)
	}

	var row dbDelegation
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		var err error
		row, err = st.getDelegation(ctx, tx, delegator)
		return errors.Trace(err)
	})
	if err != nil {
		return delegation.Delegation{}, errors.Annotatef(err, "reading delegation of %q", delegator)
	}
	return row.toDelegation()
}

// TotalDelegatedTo sums the delegations recorded against agent.
func (st *State) TotalDelegatedTo(ctx context.Context, agent account.Agent) (delegation.Balance, error) {
	db, err := st.DB()
	if err != nil {
		return 0, errors.Trace(err)
	}

	stmt, err := st.Prepare(`
SELECT COALESCE(SUM(amount), 0) AS &total.amount
FROM delegation
WHERE agent = $accountID.account_id`, total{}, accountID{})
	if err != nil {
		return 0, errors.Annotate(err, "preparing sum delegations statement")
	}

	var result total
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		return tx.Query(ctx, stmt, accountID{ID: agent.String()}).Get(&result)
	})
	if err != nil {
		return 0, errors.Annotatef(err, "summing delegations to %q", agent)
	}
	return delegation.Balance(result.Amount), nil
}

// HeldBalance returns the funds held for delegation from id. An account
// with nothing held has a zero balance.
func (st *State) HeldBalance(ctx context.Context, id account.ID) (delegation.Balance, error) {
	db, err := st.DB()
	if err != nil {
		return 0, errors.Trace(err)
	}

	var held int64
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		var err error
		held, err = st.getHold(ctx, tx, id)
		return errors.Trace(err)
	})
	if err != nil {
		return 0, errors.Annotatef(err, "reading held balance of %q", id)
	}
	return delegation.Balance(held), nil
}

// Delegate delegates amount from delegator to agent, holding the funds
// and increasing the agent's total. A delegator that already delegates to
// the same agent has its delegation increased.
func (st *State) Delegate(ctx context.Context, delegator account.Delegator, agent account.Agent, amount delegation.Balance) error {
	db, err := st.DB()
	if err != nil {
		return errors.Trace(err)
	}

	dbAmount, err := toDBAmount(amount)
	if err != nil {
		return errors.Trace(err)
	}

	updateTotalStmt, err := st.Prepare(`
UPDATE agent
SET    total_delegated = $dbAgent.total_delegated
WHERE  account_id = $dbAgent.account_id`, dbAgent{})
	if err != nil {
		return errors.Annotate(err, "preparing update agent total statement")
	}

	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		agentRow, err := st.getAgent(ctx, tx, agent.ID())
		if err != nil {
			return errors.Trace(err)
		}
		if _, err := st.getAgent(ctx, tx, delegator.ID()); err == nil {
			return errors.Annotatef(delegationerrors.DelegatorIsAgent, "%q", delegator)
		} else if !errors.Is(err, delegationerrors.AgentNotFound) {
			return errors.Trace(err)
		}

		row := dbDelegation{Delegator: delegator.String(), Agent: agent.String(), Amount: dbAmount}
		existing, err := st.getDelegation(ctx, tx, delegator.ID())
		switch {
		case errors.Is(err, delegationerrors.NotFound):
			if err := st.insertDelegation(ctx, tx, row); err != nil {
				return errors.Trace(err)
			}
		case err != nil:
			return errors.Trace(err)
		case existing.Agent != row.Agent:
			return errors.Annotatef(delegationerrors.AlreadyDelegator, "%q delegates to %q", delegator, existing.Agent)
		default:
			if row.Amount, err = addDBAmount(existing.Amount, dbAmount); err != nil {
				return errors.Trace(err)
			}
			if err := st.setDelegationAmount(ctx, tx, row); err != nil {
				return errors.Trace(err)
			}
		}

		held, err := st.getHold(ctx, tx, delegator.ID())
		if err != nil {
			return errors.Trace(err)
		}
		if held, err = addDBAmount(held, dbAmount); err != nil {
			return errors.Trace(err)
		}
		if err := st.setHold(ctx, tx, delegator.ID(), held); err != nil {
			return errors.Trace(err)
		}

		if agentRow.TotalDelegated, err = addDBAmount(agentRow.TotalDelegated, dbAmount); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(tx.Query(ctx, updateTotalStmt, agentRow).Run())
	})
	return errors.Annotatef(err, "delegating %d from %q to %q", amount, delegator, agent)
}

// MoveDelegation moves amount of the delegation held by from to the fresh
// delegator to, along with the funds held for it. The move either happens
// completely or not at all.
//
// The following errors may be returned:
//   - [delegationerrors.NotFound] when from has no delegation.
//   - [delegationerrors.NotEnoughFunds] when the delegation is smaller
//     than amount.
//   - [delegationerrors.AlreadyDelegator] when to already delegates.
//   - [delegationerrors.DelegatorIsAgent] when to is a registered agent.
//   - [delegationerrors.InsufficientHold] when the funds held for from do
//     not cover amount.
//   - [delegationerrors.BalanceOverflow] when a balance does not fit.
func (st *State) MoveDelegation(ctx context.Context, from, to account.Delegator, amount delegation.Balance) error {
	db, err := st.DB()
	if err != nil {
		return errors.Trace(err)
	}

	dbAmount, err := toDBAmount(amount)
	if err != nil {
		return errors.Trace(err)
	}

	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		source, err := st.getDelegation(ctx, tx, from.ID())
		if err != nil {
			return errors.Annotatef(err, "source %q", from)
		}
		if source.Amount < dbAmount {
			return errors.Annotatef(delegationerrors.NotEnoughFunds, "%q delegates %d", from, source.Amount)
		}

		if _, err := st.getDelegation(ctx, tx, to.ID()); err == nil {
			return errors.Annotatef(delegationerrors.AlreadyDelegator, "destination %q", to)
		} else if !errors.Is(err, delegationerrors.NotFound) {
			return errors.Trace(err)
		}
		if _, err := st.getAgent(ctx, tx, to.ID()); err == nil {
			return errors.Annotatef(delegationerrors.DelegatorIsAgent, "destination %q", to)
		} else if !errors.Is(err, delegationerrors.AgentNotFound) {
			return errors.Trace(err)
		}

		if err := st.insertDelegation(ctx, tx, dbDelegation{
			Delegator: to.String(),
			Agent:     source.Agent,
			Amount:    dbAmount,
		}); err != nil {
			return errors.Trace(err)
		}

		source.Amount -= dbAmount
		if source.Amount == 0 {
			err = st.deleteDelegation(ctx, tx, source)
		} else {
			err = st.setDelegationAmount(ctx, tx, source)
		}
		if err != nil {
			return errors.Trace(err)
		}

		return errors.Trace(st.transferHold(ctx, tx, from.ID(), to.ID(), dbAmount))
	})
	return errors.Annotatef(err, "moving %d from %q to %q", amount, from, to)
}

func (st *State) getAgent(ctx context.Context, tx *sqlair.TX, id account.ID) (dbAgent, error) {
	stmt, err := st.Prepare(`
SELECT &dbAgent.*
FROM agent
WHERE account_id = $dbAgent.account_id`, dbAgent{})
	if err != nil {
		return dbAgent{}, errors.Annotate(err, "preparing select agent statement")
	}

	row := dbAgent{AccountID: id.String()}
	err = tx.Query(ctx, stmt, row).Get(&row)
	if errors.Is(err, sqlair.ErrNoRows) {
		return dbAgent{}, errors.Annotatef(delegationerrors.AgentNotFound, "%q", id)
	}
	return row, errors.Trace(err)
}

func (st *State) getDelegation(ctx context.Context, tx *sqlair.TX, delegator account.ID) (dbDelegation, error) {
	stmt, err := st.Prepare(`
SELECT &dbDelegation.*
FROM delegation
WHERE delegator = $dbDelegation.delegator`, dbDelegation{})
	if err != nil {
		return dbDelegation{}, errors.Annotate(err, "preparing select delegation statement")
	}

	row := dbDelegation{Delegator: delegator.String()}
	err = tx.Query(ctx, stmt, row).Get(&row)
	if errors.Is(err, sqlair.ErrNoRows) {
		return dbDelegation{}, errors.Annotatef(delegationerrors.NotFound, "%q", delegator)
	}
	return row, errors.Trace(err)
}

func (st *State) insertDelegation(ctx context.Context, tx *sqlair.TX, row dbDelegation) error {
	stmt, err := st.Prepare(`
INSERT INTO delegation (delegator, agent, amount)
VALUES ($dbDelegation.delegator, $dbDelegation.agent, $dbDelegation.amount)`, dbDelegation{})
	if err != nil {
		return errors.Annotate(err, "preparing insert delegation statement")
	}
	err = tx.Query(ctx, stmt, row).Run()
	if databaseutils.IsErrConstraintPrimaryKey(err) {
		return errors.Annotatef(delegationerrors.AlreadyDelegator, "%q", row.Delegator)
	} else if databaseutils.IsErrConstraintForeignKey(err) {
		return errors.Annotatef(delegationerrors.AgentNotFound, "%q", row.Agent)
	}
	return errors.Trace(err)
}

func (st *State) setDelegationAmount(ctx context.Context, tx *sqlair.TX, row dbDelegation) error {
	stmt, err := st.Prepare(`
UPDATE delegation
SET    amount = $dbDelegation.amount
WHERE  delegator = $dbDelegation.delegator`, dbDelegation{})
	if err != nil {
		return errors.Annotate(err, "preparing update delegation statement")
	}
	return errors.Trace(tx.Query(ctx, stmt, row).Run())
}

func (st *State) deleteDelegation(ctx context.Context, tx *sqlair.TX, row dbDelegation) error {
	stmt, err := st.Prepare(`
DELETE FROM delegation
WHERE delegator = $dbDelegation.delegator`, dbDelegation{})
	if err != nil {
		return errors.Annotate(err, "preparing delete delegation statement")
	}
	return errors.Trace(tx.Query(ctx, stmt, row).Run())
}

func (st *State) getHold(ctx context.Context, tx *sqlair.TX, id account.ID) (int64, error) {
	stmt, err := st.Prepare(`
SELECT &dbHold.*
FROM balance_hold
WHERE account_id = $dbHold.account_id
AND   reason_id = $dbHold.reason_id`, dbHold{})
	if err != nil {
		return 0, errors.Annotate(err, "preparing select hold statement")
	}

	row := dbHold{AccountID: id.String(), ReasonID: stakingDelegationHold}
	err = tx.Query(ctx, stmt, row).Get(&row)
	if errors.Is(err, sqlair.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, errors.Trace(err)
	}
	return row.Amount, nil
}

// setHold records amount as held for id, removing the hold when amount is
// zero.
func (st *State) setHold(ctx context.Context, tx *sqlair.TX, id account.ID, amount int64) error {
	upsertStmt, err := st.Prepare(`
INSERT INTO balance_hold (account_id, reason_id, amount)
VALUES ($dbHold.account_id, $dbHold.reason_id, $dbHold.amount)
ON CONFLICT (account_id, reason_id) DO UPDATE SET amount = excluded.amount`, dbHold{})
	if err != nil {
		return errors.Annotate(err, "preparing upsert hold statement")
	}
	deleteStmt, err := st.Prepare(`
DELETE FROM balance_hold
WHERE account_id = $dbHold.account_id
AND   reason_id = $dbHold.reason_id`, dbHold{})
	if err != nil {
		return errors.Annotate(err, "preparing delete hold statement")
	}

	row := dbHold{AccountID: id.String(), ReasonID: stakingDelegationHold, Amount: amount}
	if amount == 0 {
		return errors.Trace(tx.Query(ctx, deleteStmt, row).Run())
	}
	return errors.Trace(tx.Query(ctx, upsertStmt, row).Run())
}

func (st *State) transferHold(ctx context.Context, tx *sqlair.TX, from, to account.ID, amount int64) error {
	source, err := st.getHold(ctx, tx, from)
	if err != nil {
		return errors.Trace(err)
	}
	if source < amount {
		return errors.Annotatef(delegationerrors.InsufficientHold, "%q holds %d", from, source)
	}
	destination, err := st.getHold(ctx, tx, to)
	if err != nil {
		return errors.Trace(err)
	}
	if destination, err = addDBAmount(destination, amount); err != nil {
		return errors.Trace(err)
	}

	if err := st.setHold(ctx, tx, from, source-amount); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(st.setHold(ctx, tx, to, destination))
}
