package config

// Version is the wikipath binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/wikipath/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
