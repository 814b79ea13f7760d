// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package version exposes build information. The variables are overridden
// at build time via -ldflags.
package version

import "runtime"

var (
	Version   = "0.1.0"           // ex: 0.2.0
	Commit    = "none"            // ex: abcd123
	GoVersion = runtime.Version() // toolchain used for the build
)
