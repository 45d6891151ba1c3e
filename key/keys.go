// Package key lists every configuration key understood by kipdayo.
package key

// Resolution
const (
	ResolveMode    = "resolve.mode"
	ResolveQuality = "resolve.quality"
	ResolveTimeout = "resolve.timeout"
)

// Upstream endpoints
const (
	APIBaseURL  = "api.base_url"
	APISiteURL  = "api.site_url"
	MirrorHost  = "cdn.mirror_host"
	MirrorLabel = "cdn.mirror_label"
)

const NetworkFingerprint = "network.fingerprint"

// Credentials
const (
	AuthKeyring = "auth.keyring"
	// AuthSessdata is only ever read from the environment, never from the config file.
	AuthSessdata = "sessdata"
)

const HistoryRemember = "history.remember"

// Logging
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const IconsVariant = "icons.variant"

// CLI
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

const ServerPort = "server.port"
