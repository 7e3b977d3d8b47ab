// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/garyellow/badgerchat-fulfillment/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/garyellow/badgerchat-fulfillment/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/garyellow/badgerchat-fulfillment/internal/buildinfo.BuildDate=...
var BuildDate = ""

// UserAgent returns the User-Agent sent to the message service.
func UserAgent() string {
	if Version == "" {
		return "badgerchat-fulfillment/dev"
	}
	return "badgerchat-fulfillment/" + Version
}

// Release returns the release name reported to error tracking, or "" when unknown.
func Release() string {
	switch {
	case Version != "" && Commit != "":
		return Version + "+" + Commit
	case Version != "":
		return Version
	default:
		return Commit
	}
}
