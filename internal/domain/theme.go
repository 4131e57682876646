package domain

import (
	"fmt"
	"regexp"
)

// Theme represents a visual theme for the TUI.
type Theme struct {
	Name        string
	Description string
	Colors      ThemeColors
	Backgrounds ThemeBackgrounds
}

// ThemeColors defines the primary color palette for a theme.
type ThemeColors struct {
	// Primary accent color (titles, selected card border, links)
	Primary string

	// Secondary accent color (darker shade of primary)
	Secondary string

	// Success indicator color
	Success string

	// Warning indicator color
	Warning string

	// Error indicator color
	Error string

	// Muted text color (owner line, dates, hints)
	Muted string

	// Border color for unselected cards
	Border string

	// Selected element color (usually same as Primary)
	Selected string

	// Main text color
	Text string

	// Star count color
	Star string
}

// ThemeBackgrounds defines background colors for various UI elements.
type ThemeBackgrounds struct {
	// Repository card background
	Card string

	// Language tag background
	Badge string

	// Avatar fallback background (neutral)
	Avatar string

	// Error view background
	ErrorModal string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	colors := []struct {
		name  string
		value string
	}{
		{"Primary", t.Colors.Primary},
		{"Secondary", t.Colors.Secondary},
		{"Success", t.Colors.Success},
		{"Warning", t.Colors.Warning},
		{"Error", t.Colors.Error},
		{"Muted", t.Colors.Muted},
		{"Border", t.Colors.Border},
		{"Selected", t.Colors.Selected},
		{"Text", t.Colors.Text},
		{"Star", t.Colors.Star},
		{"Card", t.Backgrounds.Card},
		{"Badge", t.Backgrounds.Badge},
		{"Avatar", t.Backgrounds.Avatar},
		{"ErrorModal", t.Backgrounds.ErrorModal},
	}

	for _, c := range colors {
		if !hexColorRegex.MatchString(c.value) {
			return fmt.Errorf("invalid hex color for %s: %s", c.name, c.value)
		}
	}

	return nil
}
