// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package schema

import "github.com/juju/stakeledger/internal/database"

// LedgerDDL is used to create the ledger database schema.
func LedgerDDL() *database.Schema {
	schemas := []func() database.Delta{
		agentSchema,
		delegationSchema,
		balanceHoldSchema,
		storageVersionSchema,
	}

	var deltas []database.Delta
	for _, fn := range schemas {
		deltas = append(deltas, fn())
	}
	return database.NewSchema(deltas...)
}

func agentSchema() database.Delta {
	return database.MakeDelta(`
-- An agent is the beneficiary of delegated stake. Ids are the 0x prefixed
-- hex form of the account id.
CREATE TABLE agent (
    account_id            TEXT PRIMARY KEY,
    payee                 TEXT NOT NULL,
    total_delegated       INT NOT NULL DEFAULT 0 CHECK (total_delegated >= 0),
    unclaimed_withdrawals INT NOT NULL DEFAULT 0 CHECK (unclaimed_withdrawals >= 0),
    pending_slash         INT NOT NULL DEFAULT 0 CHECK (pending_slash >= 0)
);
`)
}

func delegationSchema() database.Delta {
	return database.MakeDelta(`
-- A delegator account holds at most one delegation.
CREATE TABLE delegation (
    delegator TEXT PRIMARY KEY,
    agent     TEXT NOT NULL,
    amount    INT NOT NULL CHECK (amount > 0),
    CONSTRAINT fk_delegation_agent
        FOREIGN KEY (agent)
        REFERENCES agent(account_id)
);

CREATE INDEX idx_delegation_agent
ON delegation (agent);
`)
}

func balanceHoldSchema() database.Delta {
	return database.MakeDelta(`
CREATE TABLE hold_reason (
    id     INT PRIMARY KEY,
    reason TEXT NOT NULL
);

CREATE UNIQUE INDEX idx_hold_reason_reason
ON hold_reason (reason);

INSERT INTO hold_reason VALUES
    (0, 'staking-delegation'); -- Funds delegated to an agent.

CREATE TABLE balance_hold (
    account_id TEXT NOT NULL,
    reason_id  INT NOT NULL,
    amount     INT NOT NULL CHECK (amount > 0),
    PRIMARY KEY (account_id, reason_id),
    CONSTRAINT fk_balance_hold_reason
        FOREIGN KEY (reason_id)
        REFERENCES hold_reason(id)
);
`)
}

func storageVersionSchema() database.Delta {
	return database.MakeDelta(`
CREATE TABLE pallet_storage_version (
    pallet  TEXT PRIMARY KEY,
    version INT NOT NULL CHECK (version >= 0)
);
`)
}
