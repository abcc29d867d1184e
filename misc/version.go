// Package misc provides program identification helpers shared by logging,
// reporting and the command line surface.
package misc

import (
	"path"
	"runtime/debug"
)

const defaultAppName = "cssv"

// GetAppName returns short program name to be used in logs and reports.
func GetAppName() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Path != "" {
		return path.Base(bi.Main.Path)
	}
	return defaultAppName
}

// GetVersion returns module version recorded at build time.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns vcs revision recorded at build time.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
