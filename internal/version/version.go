package version

import (
	"fmt"
	"runtime"
)

// Build metadata set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

const name = "tempo"

func isDev() bool { return Version == "" || Version == "dev" }

// Short returns "tempo <version>".
func Short() string {
	if isDev() {
		return name + " dev"
	}
	return fmt.Sprintf("%s %s", name, Version)
}

// Info returns the version line printed by `tempo version`.
func Info() string {
	if isDev() {
		return fmt.Sprintf("%s dev (%s/%s)", name, runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s/%s)",
		name, Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
