// Package version holds the build version reported by the service.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is overridden at build time:
//
//	go build -ldflags "-X helpdesk/internal/shared/version.Current=1.2.0"
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns Current in canonical semver form, or unchanged for
// non-release builds such as "dev".
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return Current
	}
	return semver.Canonical(v)
}
