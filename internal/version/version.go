// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version, set at build time via ldflags. When
// unset it falls back to module build info, which covers binaries built
// with "go install module@version".
var Version = "dev"

func init() {
	if Version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}

// Info returns the one-line version report.
func Info() string {
	return fmt.Sprintf("devo version %s (go: %s)", Version, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}
