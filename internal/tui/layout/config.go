package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List  ListConfig
	Input InputConfig
	Text  TextConfig
}

// ListConfig holds result list dimension configuration.
type ListConfig struct {
	// HeightReduction is subtracted from terminal height for list rows.
	// Accounts for: app padding (1) + query input (1) + separator (1) + help bar (3) = 6
	HeightReduction int

	// MinHeight is the minimum number of visible rows.
	MinHeight int

	// ContentPadding is subtracted from terminal width for row rendering.
	ContentPadding int

	// NameWidthPercent is the share of the row width given to the display name.
	NameWidthPercent int
}

// InputConfig holds query input configuration.
type InputConfig struct {
	QueryCharLimit int
	QueryWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			HeightReduction:  6,
			MinHeight:        3,
			ContentPadding:   4,
			NameWidthPercent: 45,
		},
		Input: InputConfig{
			QueryCharLimit: 64,
			QueryWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
