// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package service

import (
	"context"

	"github.com/juju/errors"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/domain/upgrade"
	upgradeerrors "github.com/juju/stakeledger/domain/upgrade/errors"
)

// State describes retrieval and persistence methods for storage versions.
type State interface {
	StorageVersion(ctx context.Context, pallet account.PalletID) (upgrade.StorageVersion, error)
	SetStorageVersion(ctx context.Context, pallet account.PalletID, version upgrade.StorageVersion) error
}

// Service provides the API for tracking pallet storage versions.
type Service struct {
	st State
}

// NewService returns a new Service for interacting with the underlying
// state.
func NewService(st State) *Service {
	return &Service{st: st}
}

// StorageVersion returns the on-ledger storage version of pallet.
func (s *Service) StorageVersion(ctx context.Context, pallet account.PalletID) (upgrade.StorageVersion, error) {
	v, err := s.st.StorageVersion(ctx, pallet)
	return v, errors.Trace(err)
}

// SetStorageVersion records version as the on-ledger storage version of
// pallet. Recording a lower version than the current one returns an
// error satisfying [upgradeerrors.DowngradeNotSupported].
func (s *Service) SetStorageVersion(ctx context.Context, pallet account.PalletID, version upgrade.StorageVersion) error {
	current, err := s.st.StorageVersion(ctx, pallet)
	if err != nil {
		return errors.Trace(err)
	}
	if version < current {
		return errors.Annotatef(upgradeerrors.DowngradeNotSupported, "from %s to %s", current, version)
	}
	if version == current {
		return nil
	}
	return errors.Trace(s.st.SetStorageVersion(ctx, pallet, version))
}
