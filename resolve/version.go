package resolve

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// Version is a semantic version with a total order that ignores build
// metadata and orders pre-release versions below their release counterpart.
type Version struct {
	v *semver.Version
}

// ParseVersion parses a semantic version string such as "1.2.3-rc.1+build".
func ParseVersion(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}

	return Version{v: sv}, nil
}

// MustParseVersion is like ParseVersion but panics on error; intended for
// literals in tests and reference data, not for untrusted input.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}

	return v
}

// String renders the version canonically, e.g. "1.2.3-rc.1".
func (v Version) String() string {
	if v.v == nil {
		return ""
	}

	return v.v.String()
}

// Compare reports whether v is less than, equal to or greater than other,
// returning -1, 0 or 1 respectively. Build metadata is ignored.
func (v Version) Compare(other Version) int {
	return v.v.Compare(other.v)
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// Equal reports whether v and other denote the same version.
func (v Version) Equal(other Version) bool { return v.Compare(other) == 0 }

// IsZero reports whether v is the unparsed zero value.
func (v Version) IsZero() bool { return v.v == nil }

// VersionRange is a conjunction of comparator clauses over Version. The
// zero value is an empty range that matches every version.
type VersionRange struct {
	c *semver.Constraints
}

// ParseRange parses a version range expression, e.g. "^1.2.0" or
// ">1.1,<1.3". An empty string parses to a range matching every version.
func ParseRange(s string) (VersionRange, error) {
	if s == "" {
		c, err := semver.NewConstraint("*")
		if err != nil {
			return VersionRange{}, err
		}

		return VersionRange{c: c}, nil
	}

	c, err := semver.NewConstraint(s)
	if err != nil {
		return VersionRange{}, fmt.Errorf("invalid version range %q: %w", s, err)
	}

	return VersionRange{c: c}, nil
}

// MustParseRange is like ParseRange but panics on error.
func MustParseRange(s string) VersionRange {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}

	return r
}

// Satisfies reports whether v satisfies r. An empty (zero-value) range
// matches every version.
func (r VersionRange) Satisfies(v Version) bool {
	if r.c == nil {
		return true
	}

	return r.c.Check(v.v)
}

// String renders the range as declared.
func (r VersionRange) String() string {
	if r.c == nil {
		return "*"
	}

	return r.c.String()
}

// PackageID identifies a specific version of a named package. Two ids are
// equal iff both the name and the version are equal.
type PackageID struct {
	Name    string
	Version Version
}

// String renders the id canonically as "name@version".
func (id PackageID) String() string {
	return fmt.Sprintf("%s@%s", id.Name, id.Version)
}

// Equal reports whether id and other name the same package version.
func (id PackageID) Equal(other PackageID) bool {
	return id.Name == other.Name && id.Version.Equal(other.Version)
}
