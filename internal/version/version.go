// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Leaf package: must not import other fieldmask packages.

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the binary name used in help and version output.
const Name = "fieldmask"

// Version is the module version stamped by the go tool, or "dev" for local
// builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// String returns the line printed by --version.
func String() string {
	return fmt.Sprintf("%s %s (%s/%s)", Name, Version, runtime.GOOS, runtime.GOARCH)
}
