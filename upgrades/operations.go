// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import "github.com/juju/stakeledger/domain/upgrade"

// CurrentStorageVersion is the storage version the running code expects
// the delegated staking pallet to be at.
const CurrentStorageVersion upgrade.StorageVersion = 1

// stateUpgradeOperations returns an ordered slice of sets of operations
// needed to upgrade the pallet's storage. Modules should not use this
// directly, rather call PerformUpgrade.
var stateUpgradeOperations = func() []Operation {
	steps := []Operation{
		upgradeToVersion{
			targetVersion: 1,
			steps:         stateStepsForV1(),
		},
	}
	return steps
}
