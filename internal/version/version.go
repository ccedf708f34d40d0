package version

import (
	"github.com/Masterminds/semver/v3"

	"github.com/dyeshell/dye/pkg/errors"
)

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/dyeshell/dye/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/dyeshell/dye/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/dyeshell/dye/internal/version.Date={{.Date}}
)

// Satisfies checks the running version against a semver constraint, as
// written in a theme or pattern file's requires_dye key. Development
// builds ("dev") satisfy every constraint so that working from source
// never trips version pins.
func Satisfies(constraint string) error {
	if Version == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(err, errors.ErrVersionCheck,
			"invalid version requirement '%s'", constraint)
	}

	v, err := semver.NewVersion(Version)
	if err != nil {
		return errors.Wrapf(err, errors.ErrVersionCheck,
			"running version '%s' is not a semantic version", Version)
	}

	if !c.Check(v) {
		return errors.Newf(errors.ErrVersionCheck,
			"version %s does not satisfy requirement '%s'", Version, constraint)
	}
	return nil
}
