package build

// Set at build time via ldflags.
// nolint: gochecknoglobals
var (
	Version = "development"
	Commit  = "uncommitted"
	Time    = "unknown"
)
