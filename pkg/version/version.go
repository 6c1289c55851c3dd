// Package version carries build metadata injected at link time.
package version

import "fmt"

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

// Short returns the one-line version string.
func Short() string {
	return fmt.Sprintf("domainscout v%s-%s-%s", Version, CommitHash, BuildTime)
}
