// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package upgrades

import (
	"os"

	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/schema"
	"gopkg.in/juju/environschema.v1"
	"gopkg.in/yaml.v3"

	"github.com/juju/stakeledger/core/account"
	coreconfig "github.com/juju/stakeledger/core/config"
	"github.com/juju/stakeledger/core/weight"
	delegationservice "github.com/juju/stakeledger/domain/delegation/service"
)

const (
	palletIDKey      = "pallet-id"
	maxAgentsKey     = "max-agents"
	pageSizeKey      = "page-size"
	dbReadWeightKey  = "db-read-weight"
	dbWriteWeightKey = "db-write-weight"
)

// DefaultMaxAgents is the number of agents migrated by one run unless
// configured otherwise.
const DefaultMaxAgents = 100

var configSchema = environschema.Fields{
	palletIDKey: {
		Description: "The eight byte identity of the pallet proxy delegators are derived from.",
		Type:        environschema.Tstring,
		Immutable:   true,
	},
	maxAgentsKey: {
		Description: "The maximum number of agents migrated by one run.",
		Type:        environschema.Tint,
	},
	pageSizeKey: {
		Description: "The number of agents read from the registry at a time.",
		Type:        environschema.Tint,
	},
	dbReadWeightKey: {
		Description: "The ref time cost of one storage read.",
		Type:        environschema.Tint,
	},
	dbWriteWeightKey: {
		Description: "The ref time cost of one storage write.",
		Type:        environschema.Tint,
	},
}

var configDefaults = schema.Defaults{
	palletIDKey:      account.DelegatedStakingPalletID.String(),
	maxAgentsKey:     DefaultMaxAgents,
	pageSizeKey:      delegationservice.DefaultPageSize,
	dbReadWeightKey:  int(weight.DefaultDBWeight.Read),
	dbWriteWeightKey: int(weight.DefaultDBWeight.Write),
}

// Config holds the settings of the storage upgrade.
type Config struct {
	// PalletID is the pallet proxy delegators are derived from.
	PalletID account.PalletID
	// MaxAgents caps the agents migrated by one run.
	MaxAgents int
	// PageSize is the number of agents read from the registry at a time.
	PageSize int
	// DBWeight prices storage reads and writes.
	DBWeight weight.DBWeight
}

// DefaultConfig returns the config used when nothing is configured.
func DefaultConfig() Config {
	cfg, err := NewConfig(nil)
	if err != nil {
		panic(err)
	}
	return cfg
}

// NewConfig validates attrs and returns the config they describe. Absent
// attributes take their default value.
func NewConfig(attrs map[string]interface{}) (Config, error) {
	given := set.NewStrings()
	for k := range attrs {
		given.Add(k)
	}
	if unknown := given.Difference(coreconfig.KnownConfigKeys(configSchema)); !unknown.IsEmpty() {
		return Config{}, errors.NotValidf("upgrade config keys %q", unknown.SortedValues())
	}

	cfg, err := coreconfig.NewConfig(attrs, configSchema, configDefaults)
	if err != nil {
		return Config{}, errors.Annotate(err, "validating upgrade config")
	}
	a := cfg.Attributes()

	pallet, err := account.NewPalletID(a.GetString(palletIDKey, ""))
	if err != nil {
		return Config{}, errors.Trace(err)
	}

	result := Config{
		PalletID:  pallet,
		MaxAgents: a.GetInt(maxAgentsKey, DefaultMaxAgents),
		PageSize:  a.GetInt(pageSizeKey, delegationservice.DefaultPageSize),
	}
	if result.MaxAgents < 0 {
		return Config{}, errors.NotValidf("%s %d", maxAgentsKey, result.MaxAgents)
	}
	if result.PageSize <= 0 {
		return Config{}, errors.NotValidf("%s %d", pageSizeKey, result.PageSize)
	}

	read, write := a.GetInt(dbReadWeightKey, -1), a.GetInt(dbWriteWeightKey, -1)
	if read < 0 {
		return Config{}, errors.NotValidf("%s %d", dbReadWeightKey, read)
	}
	if write < 0 {
		return Config{}, errors.NotValidf("%s %d", dbWriteWeightKey, write)
	}
	result.DBWeight = weight.DBWeight{Read: uint64(read), Write: uint64(write)}
	return result, nil
}

// ParseConfig reads a config from its YAML form.
func ParseConfig(data []byte) (Config, error) {
	var attrs map[string]interface{}
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return Config{}, errors.Annotate(err, "parsing upgrade config")
	}
	return NewConfig(attrs)
}

// ReadConfigFile reads a config from the YAML file at path.
func ReadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Annotatef(err, "reading upgrade config %q", path)
	}
	cfg, err := ParseConfig(data)
	return cfg, errors.Annotatef(err, "%q", path)
}
