// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"context"
	"fmt"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"github.com/juju/stakeledger/core/account"
	"github.com/juju/stakeledger/core/weight"
	"github.com/juju/stakeledger/domain/upgrade"
)

var logger = loggo.GetLogger("stakeledger.upgrade")

// Step defines an idempotent operation that is run to perform
// a specific upgrade step.
type Step interface {
	// Description is a human readable description of what the upgrade step does.
	Description() string

	// Run executes the upgrade business logic, returning the work it
	// consumed.
	Run(ctx context.Context, uctx Context) (weight.Weight, error)
}

// CheckedStep is a Step that can verify its own effect. PreUpgrade is run
// before the step and the state it returns is handed to PostUpgrade once
// the step has completed.
type CheckedStep interface {
	Step

	// PreUpgrade captures the state needed to verify the step.
	PreUpgrade(ctx context.Context, uctx Context) ([]byte, error)

	// PostUpgrade verifies the step against the state captured before it
	// ran. It must not modify the ledger.
	PostUpgrade(ctx context.Context, uctx Context, snapshot []byte) error
}

// Operation defines what steps to perform to upgrade to a target version.
type Operation interface {
	// The storage version for which this operation is applicable.
	// Operations targeting versions at or below the on-ledger version are
	// not run, since they have already been used to get the ledger to the
	// version it is at now.
	TargetVersion() upgrade.StorageVersion

	// Steps to perform during an upgrade.
	Steps() []Step
}

// VersionStore records the on-ledger storage version of a pallet.
type VersionStore interface {
	StorageVersion(ctx context.Context, pallet account.PalletID) (upgrade.StorageVersion, error)
	SetStorageVersion(ctx context.Context, pallet account.PalletID, version upgrade.StorageVersion) error
}

// upgradeToVersion encapsulates the steps which need to be run to
// upgrade any prior storage version to targetVersion.
type upgradeToVersion struct {
	targetVersion upgrade.StorageVersion
	steps         []Step
}

// Steps is defined on the Operation interface.
func (u upgradeToVersion) Steps() []Step {
	return u.steps
}

// TargetVersion is defined on the Operation interface.
func (u upgradeToVersion) TargetVersion() upgrade.StorageVersion {
	return u.targetVersion
}

// upgradeError records a description of the step being performed and the error.
type upgradeError struct {
	description string
	err         error
}

func (e *upgradeError) Error() string {
	return fmt.Sprintf("%s: %v", e.description, e.err)
}

// Unwrap returns the error the step failed with.
func (e *upgradeError) Unwrap() error {
	return e.err
}

// UpgradeArgs holds what is needed to upgrade a pallet's storage.
type UpgradeArgs struct {
	// Pallet is the pallet whose storage is upgraded.
	Pallet account.PalletID

	// Versions reads and records the pallet's storage version.
	Versions VersionStore

	// Context is handed to every step.
	Context Context

	// Clock times the upgrade.
	Clock clock.Clock

	// Checks runs the pre and post upgrade checks of every CheckedStep.
	Checks bool

	// DBWeight prices the storage version read and write.
	DBWeight weight.DBWeight

	// Operations overrides the registered upgrade operations.
	Operations []Operation
}

// Validate checks that the args are usable.
func (a UpgradeArgs) Validate() error {
	if a.Versions == nil {
		return errors.NotValidf("nil Versions")
	}
	if a.Context == nil {
		return errors.NotValidf("nil Context")
	}
	if a.Clock == nil {
		return errors.NotValidf("nil Clock")
	}
	return nil
}

// AreUpgradesDefined returns true if there are upgrade operations
// defined between the storage version supplied and the version of the
// running code.
func AreUpgradesDefined(from upgrade.StorageVersion) bool {
	return newUpgradeOpsIterator(from, CurrentStorageVersion, stateUpgradeOperations()).Next()
}

// PerformUpgrade runs every upgrade operation between the on-ledger
// storage version of the pallet and the version of the running code, then
// records the new version. It returns the total work consumed, including
// reading and writing the version itself.
//
// As soon as any step fails the upgrade is aborted, since subsequent
// steps may require successful completion of earlier ones, and the
// version is left as it was. The steps must be idempotent so that the
// entire upgrade can be retried.
func PerformUpgrade(ctx context.Context, args UpgradeArgs) (weight.Weight, error) {
	if err := args.Validate(); err != nil {
		return weight.Zero, errors.Trace(err)
	}
	ops := args.Operations
	if ops == nil {
		ops = stateUpgradeOperations()
	}

	start := args.Clock.Now()
	consumed := args.DBWeight.Reads(1)

	from, err := args.Versions.StorageVersion(ctx, args.Pallet)
	if err != nil {
		return consumed, errors.Annotatef(err, "reading storage version of %q", args.Pallet)
	}
	to := latestVersion(from, ops)
	if to == from {
		logger.Infof("storage of %q is at %s, no upgrade steps to run", args.Pallet, from)
		return consumed, nil
	}

	logger.Infof("upgrading storage of %q from %s to %s", args.Pallet, from, to)
	w, err := runUpgradeSteps(ctx, newUpgradeOpsIterator(from, to, ops), args.Context, args.Checks)
	consumed = consumed.Add(w)
	if err != nil {
		return consumed, err
	}

	if err := args.Versions.SetStorageVersion(ctx, args.Pallet, to); err != nil {
		return consumed, errors.Annotatef(err, "recording storage version %s of %q", to, args.Pallet)
	}
	consumed = consumed.Add(args.DBWeight.Writes(1))

	logger.Infof("all upgrade steps completed successfully in %v, consumed %s",
		args.Clock.Now().Sub(start), consumed)
	return consumed, nil
}

// latestVersion returns the highest target version of ops that lies above
// from and at or below the version of the running code.
func latestVersion(from upgrade.StorageVersion, ops []Operation) upgrade.StorageVersion {
	to := from
	it := newUpgradeOpsIterator(from, CurrentStorageVersion, ops)
	for it.Next() {
		if v := it.Get().TargetVersion(); v > to {
			to = v
		}
	}
	return to
}

// runUpgradeSteps runs the steps of every operation yielded by ops in
// order. With checks set, each CheckedStep is verified around its run.
func runUpgradeSteps(ctx context.Context, ops *upgradeOpsIterator, uctx Context, checks bool) (weight.Weight, error) {
	consumed := weight.Zero
	for ops.Next() {
		for _, step := range ops.Get().Steps() {
			logger.Infof("running upgrade step for %s: %v", ops.Get().TargetVersion(), step.Description())
			w, err := runStep(ctx, step, uctx, checks)
			consumed = consumed.Add(w)
			if err != nil {
				logger.Errorf("upgrade step %q failed: %v", step.Description(), err)
				return consumed, &upgradeError{
					description: step.Description(),
					err:         err,
				}
			}
		}
	}
	return consumed, nil
}

func runStep(ctx context.Context, step Step, uctx Context, checks bool) (weight.Weight, error) {
	checked, ok := step.(CheckedStep)
	if !checks || !ok {
		return step.Run(ctx, uctx)
	}

	snapshot, err := checked.PreUpgrade(ctx, uctx)
	if err != nil {
		return weight.Zero, errors.Annotate(err, "pre-upgrade check")
	}
	w, err := step.Run(ctx, uctx)
	if err != nil {
		return w, errors.Trace(err)
	}
	if err := checked.PostUpgrade(ctx, uctx, snapshot); err != nil {
		return w, errors.Annotate(err, "post-upgrade check")
	}
	return w, nil
}

type upgradeOpsIterator struct {
	from    upgrade.StorageVersion
	to      upgrade.StorageVersion
	allOps  []Operation
	current int
}

func newUpgradeOpsIterator(from, to upgrade.StorageVersion, ops []Operation) *upgradeOpsIterator {
	return &upgradeOpsIterator{
		from:    from,
		to:      to,
		allOps:  ops,
		current: -1,
	}
}

func (it *upgradeOpsIterator) Next() bool {
	for {
		it.current++
		if it.current >= len(it.allOps) {
			return false
		}
		targetVersion := it.allOps[it.current].TargetVersion()

		// Do not run steps for versions earlier or same as we are upgrading from.
		if targetVersion <= it.from {
			continue
		}
		// Do not run steps for versions later than we are upgrading to.
		if targetVersion > it.to {
			continue
		}
		return true
	}
}

func (it *upgradeOpsIterator) Get() Operation {
	return it.allOps[it.current]
}
