package theme

// Theme defines the colors of everything drawn on top of the fill.
// The fill itself is always the color being inspected.
var (
	// Help overlay
	HelpBackground = "#282a36" // dark panel behind the key help
	HelpBorder     = "#9d87ae" // purple border
	HelpKey        = "#ffffff" // key names
	HelpDesc       = "#c9c9c9" // descriptions
	HelpSeparator  = "#4a4a4a" // between help columns
)
