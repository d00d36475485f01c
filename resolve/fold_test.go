package resolve

import (
	"context"
	"testing"
)

// Invariant 8: if two nodes declare the same command, the one closer to
// the root in topological order wins — in particular the root always
// wins against its own direct dependencies.
func TestFold_RootWinsCommandsAgainstDirectDependency(t *testing.T) {
	root := pkg("root", "1.0.0")
	root.Commands = []string{"build"}
	root.Dependencies = []Dependency{{Alias: "dep", Spec: reg("dep", "1.0.0")}}

	dep := pkg("dep", "1.0.0")
	dep.Commands = []string{"build"}

	oracle := NewInMemoryOracle()
	oracle.AddRegistryVersion(dep)

	res, err := Resolve(context.Background(), root.ID(), root, oracle, ResolveOptions{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	got := res.Package.Commands["build"]
	if !got.Package.Equal(root.ID()) {
		t.Fatalf("want root to win, got %+v", got)
	}
}

// Invariant 7: for any two mappings A (ancestor) and B (descendant), A
// appears at a strictly higher index than B in the folded filesystem list.
func TestFold_FilesystemLayeringLaw(t *testing.T) {
	root := pkg("root", "1.0.0")
	root.Dependencies = []Dependency{{Alias: "mid", Spec: reg("mid", "1.0.0")}}
	root.Filesystem = []FileSystemMapping{{VolumeName: "v", OriginalPath: "/r", MountPath: "/r"}}

	mid := pkg("mid", "1.0.0")
	mid.Dependencies = []Dependency{{Alias: "leaf", Spec: reg("leaf", "1.0.0")}}
	mid.Filesystem = []FileSystemMapping{{VolumeName: "v", OriginalPath: "/m", MountPath: "/m"}}

	leaf := pkg("leaf", "1.0.0")
	leaf.Filesystem = []FileSystemMapping{{VolumeName: "v", OriginalPath: "/l", MountPath: "/l"}}

	oracle := NewInMemoryOracle()
	oracle.AddRegistryVersion(mid)
	oracle.AddRegistryVersion(leaf)

	res, err := Resolve(context.Background(), root.ID(), root, oracle, ResolveOptions{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	indexOf := func(mount string) int {
		for i, m := range res.Package.Filesystem {
			if m.MountPath == mount {
				return i
			}
		}

		t.Fatalf("mount %s not found in %v", mount, res.Package.Filesystem)

		return -1
	}

	leafIdx, midIdx, rootIdx := indexOf("/l"), indexOf("/m"), indexOf("/r")

	if !(leafIdx < midIdx && midIdx < rootIdx) {
		t.Fatalf("expected leaf < mid < root, got leaf=%d mid=%d root=%d", leafIdx, midIdx, rootIdx)
	}
}

// Filesystem mappings sourced from a dependency_name alias resolve to the
// aliased edge's target, not the declaring package.
func TestFold_FilesystemMappingViaDependencyAlias(t *testing.T) {
	root := pkg("root", "1.0.0")
	root.Dependencies = []Dependency{{Alias: "vendored", Spec: reg("vendored-lib", "1.0.0")}}
	root.Filesystem = []FileSystemMapping{
		{VolumeName: "v", OriginalPath: "/lib", MountPath: "/lib", DependencyName: "vendored"},
	}

	vendored := pkg("vendored-lib", "1.0.0")

	oracle := NewInMemoryOracle()
	oracle.AddRegistryVersion(vendored)

	res, err := Resolve(context.Background(), root.ID(), root, oracle, ResolveOptions{})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if len(res.Package.Filesystem) != 1 {
		t.Fatalf("want 1 mapping, got %v", res.Package.Filesystem)
	}

	if !res.Package.Filesystem[0].Package.Equal(vendored.ID()) {
		t.Fatalf("want mapping sourced from vendored-lib, got %+v", res.Package.Filesystem[0])
	}
}
