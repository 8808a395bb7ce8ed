package version

// Directives selects which components of a version to advance.
// The numeric directives are mutually exclusive by precedence
// (major > minor > patch); Commit applies independently to the suffix.
type Directives struct {
	Major  bool
	Minor  bool
	Patch  bool
	Commit bool
}

// None reports whether no directive is set.
func (d Directives) None() bool {
	return !d.Major && !d.Minor && !d.Patch && !d.Commit
}

// Bump produces the next version from current according to the directives.
// The transition runs in two independent steps: the numeric step first
// (highest-precedence directive wins), then the suffix step.
//
// A numeric bump without Commit carries the suffix forward unchanged; the
// suffix never resets.
//
// The result always carries an explicit suffix: an implicit suffix
// normalizes to "a" before the suffix step.
func Bump(current Version, d Directives) (Version, error) {
	if d.None() {
		return Version{}, ErrNoDirective
	}

	next := current
	if next.Suffix == "" {
		next.Suffix = "a"
	}

	switch {
	case d.Major:
		next.Major++
		next.Minor = 0
		next.Patch = 0
	case d.Minor:
		next.Minor++
		next.Patch = 0
	case d.Patch:
		next.Patch++
	}

	if d.Commit {
		next.Suffix = IncrementAlpha(next.Suffix)
	}

	return next, nil
}
