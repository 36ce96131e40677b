package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

// CheckConfigCompatibility reports whether a run config written for
// configVersion can be executed by engineVersion.
//
//   - "main" on either side skips the check
//   - major versions must match
//   - the config minor must not be newer than the engine minor, since newer
//     minors may name indicators or parameters this engine does not know
//   - patch versions are ignored
func CheckConfigCompatibility(engineVersion, configVersion string) error {
	engineVersion = strings.TrimPrefix(engineVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if engineVersion == "main" || configVersion == "main" {
		return nil
	}

	engine, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid engine version '%s'", engineVersion)
	}

	config, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if engine.Major() != config.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"major version mismatch: engine is %d.x.x but config requires %d.x.x",
			engine.Major(), config.Major())
	}

	if config.Minor() > engine.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch,
			"config requires %d.%d.x but engine is only %d.%d.x",
			config.Major(), config.Minor(), engine.Major(), engine.Minor())
	}

	return nil
}
