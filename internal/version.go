package internal

// Version is the application version, set at build time via -ldflags
var Version = "0.1.0"
