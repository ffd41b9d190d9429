package protocol

import (
	"fmt"

	"golang.org/x/mod/semver"
)

const Version = "v0.3.0"

// IsCompatibleVersion reports whether a run record written by recordVersion
// can be read by engineVersion. Major versions must match; minor and patch
// versions can differ.
func IsCompatibleVersion(recordVersion, engineVersion string) (bool, error) {
	if !semver.IsValid(recordVersion) {
		return false, fmt.Errorf("invalid record version: %s", recordVersion)
	}
	if !semver.IsValid(engineVersion) {
		return false, fmt.Errorf("invalid engine version: %s", engineVersion)
	}

	return semver.Major(recordVersion) == semver.Major(engineVersion), nil
}

// GetCompatibilityError returns a user-friendly message for incompatible versions.
func GetCompatibilityError(recordVersion, engineVersion string) string {
	return fmt.Sprintf(
		"Run history written by %s is incompatible with engine %s. Required version: %s.x.x",
		recordVersion, engineVersion, semver.Major(engineVersion),
	)
}
