package laika

import "fmt"

var (
	// version is set via ldflags during build by GoReleaser.
	// For development builds, this will show "dev".
	version = "dev"
)

// Version returns the compiled version or "dev" if run from source.
func Version() string {
	return version
}

// UserAgent returns the User-Agent string laika uses for any outbound HTTP
// requests (HOCON url(...) includes, HTTP $ref-style fetches performed by
// external collaborators that embed this module).
func UserAgent() string {
	return fmt.Sprintf("laika/%s", version)
}
