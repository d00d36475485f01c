// Command resolve-demo builds a small in-memory package universe and runs
// the dependency resolver against it, printing the resulting commands,
// entrypoint and filesystem overlays as JSON. It is a demonstration of
// the resolve package's public API, not a package-manager CLI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/orizon-lang/orizon-resolve/resolve"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "trace discovery progress to stderr")
	flag.Parse()

	if err := run(verbose); err != nil {
		fmt.Fprintf(os.Stderr, "resolve-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(verbose bool) error {
	oracle := resolve.NewInMemoryOracle()

	webCommon := resolve.PackageInfo{
		Name:    "web-common",
		Version: resolve.MustParseVersion("2.1.0"),
		Commands: []string{
			"serve",
		},
		Filesystem: []resolve.FileSystemMapping{
			{VolumeName: "assets", OriginalPath: "/dist", MountPath: "/usr/local/lib/web-common"},
		},
	}
	oracle.AddRegistryVersion(webCommon)

	runtimeShim := resolve.PackageInfo{
		Name:       "runtime-shim",
		Version:    resolve.MustParseVersion("0.4.2"),
		Entrypoint: "boot",
		Commands:   []string{"boot"},
	}
	oracle.AddRegistryVersion(runtimeShim)

	root := resolve.PackageInfo{
		Name:    "example-app",
		Version: resolve.MustParseVersion("1.0.0"),
		Dependencies: []resolve.Dependency{
			{Alias: "web", Spec: resolve.RegistrySpecifier("web-common", resolve.MustParseRange("^2.0.0"))},
			{Alias: "rt", Spec: resolve.RegistrySpecifier("runtime-shim", resolve.MustParseRange("^0.4.0"))},
		},
		Commands: []string{"start"},
		Filesystem: []resolve.FileSystemMapping{
			{VolumeName: "assets", OriginalPath: "./static", MountPath: "/static"},
		},
	}

	opts := resolve.ResolveOptions{}
	if verbose {
		opts.Logger = resolve.DefaultLogger()
	}

	res, err := resolve.Resolve(context.Background(), root.ID(), root, oracle, opts)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	return printResolution(res)
}

func printResolution(res *resolve.Resolution) error {
	type commandOut struct {
		Package string `json:"package"`
	}

	type mappingOut struct {
		Volume    string `json:"volume"`
		Original  string `json:"original_path"`
		MountPath string `json:"mount_path"`
		Package   string `json:"package"`
	}

	out := struct {
		Root       string                `json:"root"`
		Commands   map[string]commandOut `json:"commands"`
		Entrypoint string                `json:"entrypoint,omitempty"`
		Filesystem []mappingOut          `json:"filesystem"`
	}{
		Root:       res.Package.RootPackage.String(),
		Commands:   make(map[string]commandOut, len(res.Package.Commands)),
		Entrypoint: res.Package.Entrypoint,
	}

	for name, loc := range res.Package.Commands {
		out.Commands[name] = commandOut{Package: loc.Package.String()}
	}

	for _, m := range res.Package.Filesystem {
		out.Filesystem = append(out.Filesystem, mappingOut{
			Volume:    m.VolumeName,
			Original:  m.OriginalPath,
			MountPath: m.MountPath,
			Package:   m.Package.String(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resolution: %w", err)
	}

	fmt.Println(string(data))

	return nil
}
