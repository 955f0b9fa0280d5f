package version

import "runtime/debug"

var (
	// Version is set via ldflags during build
	Version = "dev"
)

// Short returns the version string. Without ldflags it falls back to the
// module version recorded by `go install`.
func Short() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
