// Package version provides build version information embedding for
// charkit.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/charkit/charkit/version.Version=1.0.0"
package version
