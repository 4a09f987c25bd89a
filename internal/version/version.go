// Package version holds the build version. Override with
// -ldflags "-X parsefasta/internal/version.Version=...".
package version

var Version = "0.3.0"
