package bumpversion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Phase identifies a pre-release phase. The zero value means a final release.
type Phase int

const (
	PhaseFinal Phase = iota
	PhaseAlpha
	PhaseBeta
	PhaseRC
)

var phaseNames = map[Phase]string{
	PhaseAlpha: "a",
	PhaseBeta:  "b",
	PhaseRC:    "rc",
}

// Version is a parsed release number in the major.minor.micro form with
// optional pre-release and development markers, e.g. 1.2.3, 1.2.3rc1,
// 1.2.3.dev0 or 1.2.3b2.dev1.
//
// Version is a comparable value, so it can be used as a map key. Missing
// release components default to zero: "1.3" and "1.3.0" are the same Version.
type Version struct {
	Major int
	Minor int
	Micro int

	Phase    Phase // pre-release phase, PhaseFinal if none
	PhaseNum int   // number following the phase, e.g. 1 in "rc1"

	Dev    bool // development release marker (".devN")
	DevNum int
}

var versionRe = regexp.MustCompile(`(?i)^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?` +
	`(?:[-_.]?(a|alpha|b|beta|c|rc|pre|preview)[-_.]?(\d+)?)?` +
	`(?:[-_.]?(dev)[-_.]?(\d+)?)?$`)

// ParseVersion parses a version string. Pre-release spellings are
// normalized ("alpha" → "a", "beta" → "b", "c"/"pre"/"preview" → "rc").
func ParseVersion(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	var v Version
	var err error
	if v.Major, err = atoiDefault(m[1]); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	if v.Minor, err = atoiDefault(m[2]); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	if v.Micro, err = atoiDefault(m[3]); err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}

	switch strings.ToLower(m[4]) {
	case "":
	case "a", "alpha":
		v.Phase = PhaseAlpha
	case "b", "beta":
		v.Phase = PhaseBeta
	default:
		v.Phase = PhaseRC
	}
	if v.Phase != PhaseFinal {
		if v.PhaseNum, err = atoiDefault(m[5]); err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
	}

	if m[6] != "" {
		v.Dev = true
		if v.DevNum, err = atoiDefault(m[7]); err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
		}
	}
	return v, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func atoiDefault(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// String returns the normalized form of the version.
func (v Version) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Micro)
	if v.Phase != PhaseFinal {
		fmt.Fprintf(&sb, "%s%d", phaseNames[v.Phase], v.PhaseNum)
	}
	if v.Dev {
		fmt.Fprintf(&sb, ".dev%d", v.DevNum)
	}
	return sb.String()
}

// IsPrerelease reports whether v is an alpha, beta or release candidate.
func (v Version) IsPrerelease() bool {
	return v.Phase != PhaseFinal
}

// IsDevRelease reports whether v carries a development marker.
func (v Version) IsDevRelease() bool {
	return v.Dev
}

// semver maps v onto a canonical semver string with the same precedence.
//
// Final releases have no prerelease part. Otherwise the prerelease consists
// of numeric identifiers only: phase, phase number, then 1 for a plain
// pre-release or 0 followed by the dev number for a dev release. A dev
// release without a phase uses phase 0, which sorts before alpha.
func (v Version) semver() string {
	base := fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Micro)
	switch {
	case v.Phase == PhaseFinal && !v.Dev:
		return base
	case v.Dev:
		return fmt.Sprintf("%s-%d.%d.0.%d", base, v.Phase, v.PhaseNum, v.DevNum)
	default:
		return fmt.Sprintf("%s-%d.%d.1", base, v.Phase, v.PhaseNum)
	}
}

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal
// to, or after w.
func (v Version) Compare(w Version) int {
	return semver.Compare(v.semver(), w.semver())
}

// Less reports whether v sorts before w.
func (v Version) Less(w Version) bool {
	return v.Compare(w) < 0
}

// BumpType names the increment rule NextVersion applies for the flags.
// Major wins over minor when both are set.
func BumpType(incrementMajor, incrementMinor bool) string {
	switch {
	case incrementMajor:
		return "major"
	case incrementMinor:
		return "minor"
	default:
		return "patch"
	}
}

// NextVersion returns the version that follows current.
//
// With incrementMajor the result is (major+1).0.0, with incrementMinor it is
// major.(minor+1).0. Otherwise a pre-release or dev release is returned
// unchanged, as it has not been released yet, and a final release gets its
// micro number incremented.
func NextVersion(current Version, incrementMajor, incrementMinor bool) Version {
	switch {
	case incrementMajor:
		return Version{Major: current.Major + 1}
	case incrementMinor:
		return Version{Major: current.Major, Minor: current.Minor + 1}
	case current.IsPrerelease() || current.IsDevRelease():
		return current
	default:
		return Version{Major: current.Major, Minor: current.Minor, Micro: current.Micro + 1}
	}
}
