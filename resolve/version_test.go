package resolve

import "testing"

func TestVersion_CompareIgnoresBuildOrdersPrereleaseBelowRelease(t *testing.T) {
	a := MustParseVersion("1.2.3+build.1")
	b := MustParseVersion("1.2.3+build.2")

	if !a.Equal(b) {
		t.Fatalf("expected build metadata to be ignored: %s vs %s", a, b)
	}

	pre := MustParseVersion("1.2.3-rc.1")
	rel := MustParseVersion("1.2.3")

	if !pre.Less(rel) {
		t.Fatalf("expected pre-release to sort below release: %s vs %s", pre, rel)
	}
}

func TestVersionRange_EmptyMatchesEverything(t *testing.T) {
	r := MustParseRange("")

	if !r.Satisfies(MustParseVersion("0.0.1")) {
		t.Fatalf("expected empty range to match any version")
	}

	if !r.Satisfies(MustParseVersion("99.9.9")) {
		t.Fatalf("expected empty range to match any version")
	}
}

func TestVersionRange_Satisfies(t *testing.T) {
	cases := []struct {
		rng     string
		version string
		want    bool
	}{
		{"^1.0.0", "1.0.0", true},
		{"^1.0.0", "1.9.9", true},
		{"^1.0.0", "2.0.0", false},
		{">1.1,<1.3", "1.2.0", true},
		{">1.1,<1.3", "1.3.0", false},
		{"1.0.0", "1.0.0", true},
		{"1.0.0", "1.0.1", false},
	}

	for _, c := range cases {
		got := MustParseRange(c.rng).Satisfies(MustParseVersion(c.version))
		if got != c.want {
			t.Errorf("Satisfies(%s, %s) = %v, want %v", c.version, c.rng, got, c.want)
		}
	}
}

func TestPackageID_String(t *testing.T) {
	id := PackageID{Name: "dep", Version: MustParseVersion("1.0.2")}
	if got, want := id.String(), "dep@1.0.2"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
