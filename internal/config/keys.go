package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnknownKey is returned by Get and Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown configuration key")

// field binds a dotted key to a Config field.
type field struct {
	get func(*Config) string
	set func(*Config, string) error
}

//nolint:gochecknoglobals // Static lookup table.
var fields = map[string]field{
	"batch.size": {
		get: func(c *Config) string { return strconv.Itoa(c.Batch.Size) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("batch.size must be an integer: %w", err)
			}
			c.Batch.Size = n
			return nil
		},
	},
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error {
			c.Output.DefaultFormat = v
			return nil
		},
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error {
			c.Logging.Level = v
			return nil
		},
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error {
			c.Logging.Format = v
			return nil
		},
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error {
			c.Logging.File = v
			return nil
		},
	},
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "batch.size".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key and validates the result. On validation failure
// the previous value is restored.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	old := f.get(c)
	if err := f.set(c, value); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		_ = f.set(c, old)
		return err
	}
	return nil
}

// List returns all keys with their current values.
func (c *Config) List() map[string]string {
	out := make(map[string]string, len(fields))
	for k, f := range fields {
		out[k] = f.get(c)
	}
	return out
}
