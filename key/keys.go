// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Selection & Credentials - these keys manage the registration and authentication of stock-footage providers.
const (
	DefaultProviders = "providers.default"
	PexelsKey        = "providers.pexels.key"
	PixabayKey       = "providers.pixabay.key"
)

// Fetch Parameters - these keys define the default search behavior.
const (
	FetchLimit    = "fetch.limit"
	FetchMinWidth = "fetch.min_width"
)

// Search Interaction - these keys define the UX parameters for keyword discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Download Behavior - these keys configure the binary transfer layer.
const (
	DownloadDir     = "download.dir"
	DownloadRetries = "download.retries"
)

// Iconography - these keys manage the visual rendering of CLI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application's console behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
