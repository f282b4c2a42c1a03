// SPDX-License-Identifier: MIT
package version

var (
	// Version is the framework version. Release builds override it via
	// ldflags with the content of the VERSION file.
	Version = "v0.3.1"

	// Commit is the git short hash of the build.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
