package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentSchemaVersion is written by Save and Default.
const CurrentSchemaVersion = "1.0.0"

// supportedSchema is the range of config schema versions this build reads.
const supportedSchema = "^1.0.0"

// ErrUnsupportedSchema is returned for config files written by an
// incompatible version of batchview.
var ErrUnsupportedSchema = errors.New("unsupported config schema version")

// CheckSchemaVersion accepts an empty version (pre-versioned files) or any
// version within supportedSchema.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedSchema, version)
	}

	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, supportedSchema)
	}
	return nil
}
