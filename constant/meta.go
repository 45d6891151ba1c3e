// Package constant holds build metadata and application-wide identifiers.
package constant

// App is the application name used for paths, env prefixes and the keyring service.
const App = "kipdayo"

// Build metadata, overridden with -ldflags "-X".
var (
	Version  = "0.3.0"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Repository is the upstream source location, used by the version check.
const Repository = "kipdayo/kipdayo"
