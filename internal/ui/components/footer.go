package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/freshstars/internal/ui/theme"
)

// Shortcut represents a keyboard shortcut
type Shortcut struct {
	Key         string
	Description string
}

// Footer represents a footer component
type Footer struct {
	Shortcuts []Shortcut
	Metadata  string // Optional metadata to display on the right
	Width     int
}

// NewFooter creates a new footer
func NewFooter(shortcuts []Shortcut) *Footer {
	return &Footer{
		Shortcuts: shortcuts,
	}
}

// WithMetadata adds metadata to the footer
func (f *Footer) WithMetadata(metadata string) *Footer {
	f.Metadata = metadata
	return f
}

// WithWidth sets the footer width
func (f *Footer) WithWidth(width int) *Footer {
	f.Width = width
	return f
}

// Render renders the footer
func (f *Footer) Render() string {
	styles := theme.Global().Styles()

	var parts []string
	for _, shortcut := range f.Shortcuts {
		key := styles.ShortcutKey.Render(shortcut.Key)
		desc := styles.ShortcutDesc.Render(shortcut.Description)
		parts = append(parts, key+" "+desc)
	}

	line := strings.Join(parts, " • ")

	if f.Metadata != "" {
		meta := styles.ShortcutDesc.Italic(true).Render(f.Metadata)
		spacing := 1
		if f.Width > 0 {
			if gap := f.Width - lipgloss.Width(line) - lipgloss.Width(meta); gap > 0 {
				spacing = gap
			}
		}
		line += strings.Repeat(" ", spacing) + meta
	}

	footerStyle := styles.Footer
	if f.Width > 0 {
		footerStyle = footerStyle.Width(f.Width)
	}
	return footerStyle.Render(line)
}

// Common footer shortcuts for reuse
var (
	ShortcutQuit = Shortcut{
		Key:         "q",
		Description: "quit",
	}
	ShortcutNavigate = Shortcut{
		Key:         "↑↓/jk",
		Description: "navigate",
	}
	ShortcutPage = Shortcut{
		Key:         "pgup/pgdn",
		Description: "scroll",
	}
	ShortcutOpenRepo = Shortcut{
		Key:         "o",
		Description: "open repo",
	}
	ShortcutOpenOwner = Shortcut{
		Key:         "O",
		Description: "open owner",
	}
	ShortcutRetry = Shortcut{
		Key:         "r",
		Description: "try again",
	}
)

// ListFooter creates the footer for the repository list.
func ListFooter(metadata string, width int) string {
	return NewFooter([]Shortcut{
		ShortcutNavigate,
		ShortcutPage,
		ShortcutOpenRepo,
		ShortcutOpenOwner,
		ShortcutQuit,
	}).WithMetadata(metadata).WithWidth(width).Render()
}

// ErrorFooter creates the footer shown while the error view is active.
func ErrorFooter(width int) string {
	return NewFooter([]Shortcut{
		ShortcutRetry,
		ShortcutQuit,
	}).WithWidth(width).Render()
}
