package theme

import "github.com/yourusername/freshstars/internal/domain"

// Available theme presets for the TUI.
var (
	// ClaudeWarm is the default theme with warm orange-rust tones.
	ClaudeWarm = domain.Theme{
		Name:        "claude-warm",
		Description: "Professional warm theme with orange-rust accents (default)",
		Colors: domain.ThemeColors{
			Primary:   "#C15F3C",
			Secondary: "#A14A2F",
			Success:   "#7A9A6E",
			Warning:   "#D4945A",
			Error:     "#C16B6B",
			Muted:     "#B1ADA1",
			Border:    "#3A3631",
			Selected:  "#C15F3C",
			Text:      "#E8E6E3",
			Star:      "#E0B44C",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#1A1A1A",
			Badge:      "#3A2F1F",
			Avatar:     "#4A4640",
			ErrorModal: "#1A1A1A",
		},
	}

	// OceanBlue is a calm blue theme.
	OceanBlue = domain.Theme{
		Name:        "ocean-blue",
		Description: "Cool blue theme for focus and reduced eye strain",
		Colors: domain.ThemeColors{
			Primary:   "#4A90E2",
			Secondary: "#357ABD",
			Success:   "#6EA06E",
			Warning:   "#E2A04A",
			Error:     "#E24A4A",
			Muted:     "#A1B1C1",
			Border:    "#2A3641",
			Selected:  "#4A90E2",
			Text:      "#E3E8ED",
			Star:      "#E2C04A",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#151F2A",
			Badge:      "#1F2A37",
			Avatar:     "#3A4651",
			ErrorModal: "#1A2532",
		},
	}

	// ForestGreen is a natural green theme.
	ForestGreen = domain.Theme{
		Name:        "forest-green",
		Description: "Natural green theme for balanced, calming browsing",
		Colors: domain.ThemeColors{
			Primary:   "#6B9A6B",
			Secondary: "#557A55",
			Success:   "#7AAA7A",
			Warning:   "#D4A45A",
			Error:     "#C17B6B",
			Muted:     "#A1B1A1",
			Border:    "#2A3A2A",
			Selected:  "#6B9A6B",
			Text:      "#E3EDE3",
			Star:      "#D4B45A",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#15201A",
			Badge:      "#1F2A1F",
			Avatar:     "#3A4A3A",
			ErrorModal: "#1A251A",
		},
	}

	// Monochrome is a minimalist grayscale theme.
	Monochrome = domain.Theme{
		Name:        "monochrome",
		Description: "Minimalist grayscale theme",
		Colors: domain.ThemeColors{
			Primary:   "#888888",
			Secondary: "#666666",
			Success:   "#999999",
			Warning:   "#AAAAAA",
			Error:     "#777777",
			Muted:     "#666666",
			Border:    "#333333",
			Selected:  "#888888",
			Text:      "#EEEEEE",
			Star:      "#CCCCCC",
		},
		Backgrounds: domain.ThemeBackgrounds{
			Card:       "#111111",
			Badge:      "#2A2A2A",
			Avatar:     "#444444",
			ErrorModal: "#1A1A1A",
		},
	}
)

// All returns all available themes in display order.
func All() []domain.Theme {
	return []domain.Theme{
		ClaudeWarm,
		OceanBlue,
		ForestGreen,
		Monochrome,
	}
}

// ByName returns the theme with the given name, or ClaudeWarm if none matches.
func ByName(name string) domain.Theme {
	for _, t := range All() {
		if t.Name == name {
			return t
		}
	}
	return ClaudeWarm
}

// Names returns the names of all available themes.
func Names() []string {
	themes := All()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Exists reports whether a theme with the given name is available.
func Exists(name string) bool {
	for _, t := range All() {
		if t.Name == name {
			return true
		}
	}
	return false
}
