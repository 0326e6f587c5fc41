package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags by GoReleaser
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns the release version, or the module version recorded by
// `go install` when no ldflags were given.
func Short() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// Info returns the version line printed by `artmetrics version`
func Info() string {
	return fmt.Sprintf("artmetrics %s (%s) built on %s with %s",
		Short(), Commit, Date, runtime.Version())
}
