package compat

import (
	"errors"
	"fmt"

	semver "github.com/blang/semver/v4"
)

// MdbookVersion is the mdBook release this preprocessor was built and
// tested against.
const MdbookVersion = "0.4.21"

// ErrIncompatible is returned when the calling mdBook falls outside the
// range accepted by the build-time version.
var ErrIncompatible = errors.New("incompatible mdbook version")

// Requirement returns the caret range for built: every release from built
// up to, but excluding, the next one allowed to break compatibility.
//
//	1.2.3 -> >=1.2.3 <2.0.0
//	0.4.21 -> >=0.4.21 <0.5.0
//	0.0.7 -> >=0.0.7 <0.0.8
func Requirement(built string) (semver.Range, error) {
	v, err := semver.ParseTolerant(built)
	if err != nil {
		return nil, fmt.Errorf("parse build version %q: %w", built, err)
	}
	var upper semver.Version
	switch {
	case v.Major > 0:
		upper = semver.Version{Major: v.Major + 1}
	case v.Minor > 0:
		upper = semver.Version{Minor: v.Minor + 1}
	default:
		upper = semver.Version{Patch: v.Patch + 1}
	}
	lower := semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
	return semver.ParseRange(fmt.Sprintf(">=%s <%s", lower, upper))
}

// Check reports whether caller satisfies the caret range of built. A
// mismatch wraps ErrIncompatible; an unparsable version is a plain error.
func Check(built, caller string) error {
	req, err := Requirement(built)
	if err != nil {
		return err
	}
	v, err := semver.ParseTolerant(caller)
	if err != nil {
		return fmt.Errorf("parse mdbook version %q: %w", caller, err)
	}
	if !req(v) {
		return fmt.Errorf("%w: built against %s, called from %s", ErrIncompatible, built, caller)
	}
	return nil
}
