// Package version holds the application version string.
package version

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/fireflyapp/firefly-server/internal/version.Version=...".
var Version = "1.0.0"
