package env

const AppName = "imgsniff"

// Set at build time with -ldflags "-X github.com/ostafen/imgsniff/internal/env.Version=...".
var (
	Version    = "dev"
	CommitHash = "none"
	BuildTime  = "unknown"
)
