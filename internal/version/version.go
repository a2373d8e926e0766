// internal/version/version.go
package version

// Version is overridden at release time via -ldflags "-X"; keep a sane
// default for source builds.
var Version = "1.1.0"
