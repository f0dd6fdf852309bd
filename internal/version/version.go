// Package version holds the build version, overridable with
// -ldflags "-X vpcr/internal/version.Version=v1.2.3".
package version

var Version = "dev"
