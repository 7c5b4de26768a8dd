// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Remote API - these keys configure the connection to the marketplace backend.
const (
	APIBaseURL = "api.base_url"
	APITimeout = "api.timeout"
)

// Catalog Browsing - these keys define the UI/UX parameters for course discovery.
const (
	CatalogPageSize            = "catalog.page_size"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Cart Behavior - these keys govern the client-side cart mirror.
const (
	CartUndoWindow = "cart.undo_window"
)

// Checkout - these keys configure the hosted payment page collaborator.
const (
	CheckoutCurrency = "checkout.currency"
	CheckoutPageURL  = "checkout.page_url"
)

// Media Playback - these keys maintain the state and configuration for the embedded player surface.
const (
	PlayerBackend              = "player.backend"
	PlayerSeekStep             = "player.seek_step"
	PlayerVolumeStep           = "player.volume_step"
	PlayerCompletionPercentage = "player.completion_percentage"
)

// History Tracking - these keys configure the persistence of playback progress.
const (
	HistorySaveOnWatch = "history.save_on_watch"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowPrices         = "tui.show_prices"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
