// Package version holds the build version, set with
// -ldflags "-X github.com/pocketarcade/arcade/version.Version=...".
package version

// Version of the arcade binary.
var Version = "dev"
