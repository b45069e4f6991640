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
	"github.com/juju/stakeledger/domain/upgrade"
)

// State is used to access the pallet storage versions.
type State struct {
	*domain.StateBase
}

// NewState returns a new State for interacting with the underlying state.
func NewState(factory database.TxnRunnerFactory) *State {
	return &State{
		StateBase: domain.NewStateBase(factory),
	}
}

type storageVersion struct {
	Pallet  string `db:"pallet"`
	Version int    `db:"version"`
}

// StorageVersion returns the storage version recorded for pallet, or 0 if
// none has been recorded.
func (st *State) StorageVersion(ctx context.Context, pallet account.PalletID) (upgrade.StorageVersion, error) {
	db, err := st.DB()
	if err != nil {
		return 0, errors.Trace(err)
	}

	stmt, err := st.Prepare(`
SELECT &storageVersion.*
FROM pallet_storage_version
WHERE pallet = $storageVersion.pallet`, storageVersion{})
	if err != nil {
		return 0, errors.Annotate(err, "preparing select storage version statement")
	}

	row := storageVersion{Pallet: pallet.String()}
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		err := tx.Query(ctx, stmt, row).Get(&row)
		if errors.Is(err, sqlair.ErrNoRows) {
			row.Version = 0
			return nil
		}
		return errors.Trace(err)
	})
	if err != nil {
		return 0, errors.Annotatef(err, "reading storage version of %q", pallet)
	}
	return upgrade.StorageVersion(row.Version), nil
}

// SetStorageVersion records version as the storage version of pallet.
func (st *State) SetStorageVersion(ctx context.Context, pallet account.PalletID, version upgrade.StorageVersion) error {
	db, err := st.DB()
	if err != nil {
		return errors.Trace(err)
	}

	stmt, err := st.Prepare(`
INSERT INTO pallet_storage_version (pallet, version)
VALUES ($storageVersion.pallet, $storageVersion.version)
ON CONFLICT (pallet) DO UPDATE SET version = excluded.version`, storageVersion{})
	if err != nil {
		return errors.Annotate(err, "preparing upsert storage version statement")
	}

	row := storageVersion{Pallet: pallet.String(), Version: int(version)}
	err = db.Txn(ctx, func(ctx context.Context, tx *sqlair.TX) error {
		return errors.Trace(tx.Query(ctx, stmt, row).Run())
	})
	return errors.Annotatef(err, "setting storage version of %q to %s", pallet, version)
}
