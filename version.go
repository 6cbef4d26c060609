package ebbe

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the module version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo renders the version line printed by the ebbe command.
func BuildInfo() string {
	return "ebbe " + Version + " (compiled " + CompiledAt + ")"
}
