// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Codeit is the canonical application identifier used for filesystem paths and CLI branding.
	Codeit = "codeit"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string sent with marketplace API requests.
	UserAgent = "codeit-cli/" + Version
)

// Build metadata, overridden at link time.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
   ___ ___  ___  ___ ___ _____
  / __/ _ \|   \| __|_ _|_   _|
 | (_| (_) | |) | _| | |  | |
  \___\___/|___/|___|___| |_|
`
