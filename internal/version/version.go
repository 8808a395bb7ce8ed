// Package version implements the vbump version model: a three-part numeric
// version extended with a lowercase bijective base-26 build suffix.
// It provides parsing, canonical rendering, ordering, and increment logic.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedVersion is returned when a version string does not split
	// into 3 or 4 dot-separated components with non-negative numeric parts
	// and a lowercase suffix.
	ErrMalformedVersion = errors.New("malformed version")

	// ErrEmptyInput is returned by Latest when no versions are supplied.
	ErrEmptyInput = errors.New("no versions supplied")

	// ErrNoDirective is returned by Bump when none of the four increment
	// directives is set.
	ErrNoDirective = errors.New("no increment directive set")
)

// Version is an immutable four-component version value. An empty Suffix
// means the implicit suffix "a": it renders without a suffix but compares
// as ordinal 1.
type Version struct {
	Major  int
	Minor  int
	Patch  int
	Suffix string
}

// Parse parses a version string of the form "major.minor.patch" or
// "major.minor.patch.suffix". The numeric components must be non-negative
// integers and the suffix, when present, must be non-empty lowercase letters.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 && len(parts) != 4 {
		return Version{}, fmt.Errorf("%w: %q must have 3 or 4 dot-separated components", ErrMalformedVersion, s)
	}

	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		// Atoi alone would also accept a sign prefix.
		if !isDigits(parts[i]) {
			return Version{}, fmt.Errorf("%w: %q has non-numeric component %q", ErrMalformedVersion, s, parts[i])
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q has non-numeric component %q", ErrMalformedVersion, s, parts[i])
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}
	if len(parts) == 4 {
		if _, err := DecodeAlpha(parts[3]); err != nil {
			return Version{}, err
		}
		v.Suffix = parts[3]
	}
	return v, nil
}

// String renders the canonical textual form. The suffix is included only
// when it is explicit.
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.Suffix != "" {
		sb.WriteByte('.')
		sb.WriteString(v.Suffix)
	}
	return sb.String()
}

// ordinal returns the comparison value of the suffix. A missing suffix is
// the implicit "a" (ordinal 1). The suffix was validated at parse time, so
// decoding cannot fail here.
func (v Version) ordinal() int {
	if v.Suffix == "" {
		return 1
	}
	n, _ := DecodeAlpha(v.Suffix)
	return n
}

// Compare compares two versions lexicographically on the tuple
// (major, minor, patch, suffix ordinal). It returns -1 if v < other,
// 0 if equal, and +1 if v > other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return compareInt(v.ordinal(), other.ordinal())
}

// Latest returns the maximum of the supplied version strings under Compare.
// Returns ErrEmptyInput for an empty set; parse failures propagate.
func Latest(versions []string) (string, error) {
	if len(versions) == 0 {
		return "", ErrEmptyInput
	}

	best, err := Parse(versions[0])
	if err != nil {
		return "", err
	}
	bestStr := versions[0]

	for _, s := range versions[1:] {
		v, err := Parse(s)
		if err != nil {
			return "", err
		}
		if v.Compare(best) > 0 {
			best = v
			bestStr = s
		}
	}
	return bestStr, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
