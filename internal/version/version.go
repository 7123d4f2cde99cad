package version

// Version is overridden at release build time via -ldflags.
var Version = "dev"
