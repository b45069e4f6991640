// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package config

import (
	"github.com/juju/collections/set"
	"github.com/juju/errors"
	"github.com/juju/schema"
	"gopkg.in/juju/environschema.v1"
)

// ConfigAttributes is the coerced form of a configuration.
type ConfigAttributes map[string]interface{}

// GetString returns the string value of key, or defaultValue if it is not
// set or not a string.
func (c ConfigAttributes) GetString(key string, defaultValue string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return defaultValue
}

// GetInt returns the int value of key, or defaultValue if it is not set
// or not an int.
func (c ConfigAttributes) GetInt(key string, defaultValue int) int {
	switch v := c[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return defaultValue
}

// Config holds attributes validated against a schema.
type Config struct {
	fields     environschema.Fields
	defaults   schema.Defaults
	attributes ConfigAttributes
}

// NewConfig returns a new config from attrs, checked and coerced against
// fields. Absent attributes take their value from defaults, and keys not
// named by fields are rejected.
func NewConfig(attrs map[string]interface{}, fields environschema.Fields, defaults schema.Defaults) (*Config, error) {
	cfg := &Config{
		fields:   fields,
		defaults: defaults,
	}
	if err := cfg.setAttributes(attrs); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

func (c *Config) setAttributes(attrs map[string]interface{}) error {
	checker, err := c.schemaChecker()
	if err != nil {
		return errors.Trace(err)
	}
	m := make(map[string]interface{}, len(attrs))
	for k, v := range attrs {
		m[k] = v
	}
	result, err := checker.Coerce(m, nil)
	if err != nil {
		return errors.Trace(err)
	}
	c.attributes = result.(map[string]interface{})
	return nil
}

func (c *Config) schemaChecker() (schema.Checker, error) {
	fields, _, err := c.fields.ValidationSchema()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return schema.StrictFieldMap(fields, c.defaults), nil
}

// Attributes returns the coerced attributes of the config.
func (c *Config) Attributes() ConfigAttributes {
	if c == nil {
		return nil
	}
	result := make(ConfigAttributes, len(c.attributes))
	for k, v := range c.attributes {
		result[k] = v
	}
	return result
}

// KnownConfigKeys returns the keys named by fields.
func KnownConfigKeys(fields environschema.Fields) set.Strings {
	keys := set.NewStrings()
	for key := range fields {
		keys.Add(key)
	}
	return keys
}
