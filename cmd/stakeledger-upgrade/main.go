// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// stakeledger-upgrade upgrades the storage of a delegated staking ledger
// to the version expected by this release.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"
	"github.com/prometheus/client_golang/prometheus"

	delegationservice "github.com/juju/stakeledger/domain/delegation/service"
	delegationstate "github.com/juju/stakeledger/domain/delegation/state"
	"github.com/juju/stakeledger/domain/schema"
	upgradeservice "github.com/juju/stakeledger/domain/upgrade/service"
	upgradestate "github.com/juju/stakeledger/domain/upgrade/state"
	"github.com/juju/stakeledger/internal/database"
	"github.com/juju/stakeledger/internal/database/txn"
	"github.com/juju/stakeledger/upgrades"
)

var logger = loggo.GetLogger("stakeledger.cmd.upgrade")

const usage = `usage: stakeledger-upgrade --db <path> [options]

Upgrades the storage of the delegated staking ledger at <path>, running
every upgrade step between its recorded storage version and the version
expected by this release.
`

type options struct {
	dbPath        string
	configPath    string
	loggingConfig string
	metricsFile   string
	checks        bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(Main(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// Main runs the upgrade with args and returns the exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, gnuflag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "ERROR %v\n", err)
		return 2
	}
	if err := run(ctx, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "ERROR %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options

	f := gnuflag.NewFlagSet("stakeledger-upgrade", gnuflag.ContinueOnError)
	f.SetOutput(stderr)
	f.Usage = func() {
		fmt.Fprint(stderr, usage)
		f.PrintDefaults()
	}
	f.StringVar(&opts.dbPath, "db", "", "path to the ledger database")
	f.StringVar(&opts.configPath, "config", "", "path to a YAML upgrade config")
	f.StringVar(&opts.loggingConfig, "logging-config", "<root>=INFO", "logging levels, e.g. <root>=INFO;stakeledger.upgrade=DEBUG")
	f.StringVar(&opts.metricsFile, "metrics-file", "", "write upgrade metrics to this Prometheus textfile")
	f.BoolVar(&opts.checks, "checks", false, "verify each upgrade step against the ledger before and after it runs")

	if err := f.Parse(true, args); err != nil {
		return opts, err
	}
	if len(f.Args()) > 0 {
		return opts, errors.Errorf("unrecognized args: %q", f.Args())
	}
	if opts.dbPath == "" {
		return opts, errors.New("--db is required")
	}
	return opts, nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	if err := loggo.ConfigureLoggers(opts.loggingConfig); err != nil {
		return errors.Annotate(err, "configuring logging")
	}

	cfg := upgrades.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = upgrades.ReadConfigFile(opts.configPath); err != nil {
			return errors.Trace(err)
		}
	}

	db, err := database.OpenSQLite(opts.dbPath)
	if err != nil {
		return errors.Trace(err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warningf("closing ledger database: %v", err)
		}
	}()

	runner := database.NewTxnRunner(db,
		txn.WithLogger(logger.Child("txn")),
		txn.WithRetryStrategy(txn.DefaultRetryStrategy(clock.WallClock, logger.Child("txn"))),
	)
	changes, err := schema.LedgerDDL().Ensure(ctx, runner)
	if err != nil {
		return errors.Annotate(err, "applying ledger schema")
	}
	if changes.Post > changes.Current {
		logger.Infof("applied %d ledger schema patches over %d existing", changes.Post-changes.Current, changes.Current)
	}

	factory := database.TxnRunnerFactory(runner)
	ledger := delegationservice.NewService(delegationstate.NewState(factory), cfg.PalletID, cfg.PageSize)
	versions := upgradeservice.NewService(upgradestate.NewState(factory))

	from, err := versions.StorageVersion(ctx, cfg.PalletID)
	if err != nil {
		return errors.Trace(err)
	}
	if !upgrades.AreUpgradesDefined(from) {
		fmt.Fprintf(stdout, "storage of %q at %s, no upgrades to run\n", cfg.PalletID, from)
		return nil
	}

	metrics := upgrades.NewMetricsCollector()
	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics)

	w, upgradeErr := upgrades.PerformUpgrade(ctx, upgrades.UpgradeArgs{
		Pallet:   cfg.PalletID,
		Versions: versions,
		Context: upgrades.NewContext(upgrades.ContextArgs{
			Registry: ledger,
			Ledger:   ledger,
			Config:   cfg,
			Logger:   loggo.GetLogger("stakeledger.upgrade.proxydelegator"),
			Metrics:  metrics,
		}),
		Clock:    clock.WallClock,
		Checks:   opts.checks,
		DBWeight: cfg.DBWeight,
	})

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, registry); err != nil {
			logger.Errorf("writing metrics to %q: %v", opts.metricsFile, err)
		}
	}
	if upgradeErr != nil {
		return errors.Annotate(upgradeErr, "upgrading ledger storage")
	}

	current, err := versions.StorageVersion(ctx, cfg.PalletID)
	if err != nil {
		return errors.Trace(err)
	}
	fmt.Fprintf(stdout, "storage of %q at %s, consumed %s\n", cfg.PalletID, current, w)
	return nil
}
