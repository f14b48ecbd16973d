// Package caret carries the module version. The editing engine lives in the
// buffer package and the Bubble Tea component in editor.
package caret

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version.
type Semver struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v Semver) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseSemver parses v. A leading "v" is not accepted.
func ParseSemver(v string) (Semver, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, false
	}
	var out Semver
	var err error
	if out.Major, err = strconv.Atoi(m[1]); err != nil {
		return Semver{}, false
	}
	if out.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Semver{}, false
	}
	if out.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Semver{}, false
	}
	out.Pre, out.Build = m[4], m[5]
	return out, true
}

// Version returns the library version string in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, ok := ParseSemver(v)
	return ok
}
