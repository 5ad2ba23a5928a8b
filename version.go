// Package codefield reports the library version. The binding itself lives
// in the codefield/codefield package.
package codefield

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag for Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
