package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/freshstars/internal/domain"
)

// defaultManager is the global theme manager instance.
// It starts with the Claude Warm theme and is replaced when the
// application loads the user's theme preference.
var defaultManager = NewManager(ClaudeWarm)

// SetGlobal updates the global theme manager with the named theme.
// Unknown names fall back to the default theme.
func SetGlobal(name string) {
	defaultManager.SetTheme(ByName(name))
}

// Global returns the global theme manager instance.
// Components call Global().Styles() so they pick up theme changes.
func Global() *Manager {
	return defaultManager
}

// Manager manages the current theme and provides styled components.
type Manager struct {
	current domain.Theme
	styles  *Styles
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorSelected  lipgloss.Color
	ColorText      lipgloss.Color
	ColorStar      lipgloss.Color

	// Page header
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Counter  lipgloss.Style

	// Repository card
	RepoCard       lipgloss.Style
	RepoCardActive lipgloss.Style
	RepoTitle      lipgloss.Style
	RepoOwner      lipgloss.Style
	RepoOwnerLink  lipgloss.Style
	RepoStars      lipgloss.Style
	RepoForks      lipgloss.Style
	Description    lipgloss.Style
	LanguageBadge  lipgloss.Style
	CreatedAt      lipgloss.Style
	AvatarImage    lipgloss.Style
	AvatarFallback lipgloss.Style

	// List status
	Loading   lipgloss.Style
	EndMarker lipgloss.Style
	Notice    lipgloss.Style

	// Footer
	Footer       lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// Status indicators
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style

	// Error view
	ErrorModal lipgloss.Style

	Separator lipgloss.Style
}

// NewManager creates a new theme manager with the specified theme.
func NewManager(t domain.Theme) *Manager {
	m := &Manager{
		current: t,
		styles:  &Styles{},
	}
	m.regenerateStyles()
	return m
}

// Current returns the current theme.
func (m *Manager) Current() domain.Theme {
	return m.current
}

// SetTheme changes the current theme and regenerates all styles.
func (m *Manager) SetTheme(t domain.Theme) {
	m.current = t
	m.regenerateStyles()
}

// Styles returns the current theme styles.
func (m *Manager) Styles() *Styles {
	return m.styles
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (m *Manager) regenerateStyles() {
	c := m.current.Colors
	bg := m.current.Backgrounds

	colorPrimary := lipgloss.Color(c.Primary)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorSuccess := lipgloss.Color(c.Success)
	colorWarning := lipgloss.Color(c.Warning)
	colorError := lipgloss.Color(c.Error)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)
	colorSelected := lipgloss.Color(c.Selected)
	colorText := lipgloss.Color(c.Text)
	colorStar := lipgloss.Color(c.Star)

	s := m.styles
	s.ColorPrimary = colorPrimary
	s.ColorSecondary = colorSecondary
	s.ColorSuccess = colorSuccess
	s.ColorWarning = colorWarning
	s.ColorError = colorError
	s.ColorMuted = colorMuted
	s.ColorBorder = colorBorder
	s.ColorSelected = colorSelected
	s.ColorText = colorText
	s.ColorStar = colorStar

	// Header styles
	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.Counter = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	// Card styles
	s.RepoCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	s.RepoCardActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelected).
		Padding(0, 1)

	s.RepoTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary)

	s.RepoOwner = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.RepoOwnerLink = lipgloss.NewStyle().
		Foreground(colorSecondary)

	s.RepoStars = lipgloss.NewStyle().
		Foreground(colorStar).
		Bold(true)

	s.RepoForks = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.Description = lipgloss.NewStyle().
		Foreground(colorText)

	s.LanguageBadge = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.Badge)).
		Padding(0, 1).
		Bold(true)

	s.CreatedAt = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.AvatarImage = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Width(3).
		Align(lipgloss.Center)

	s.AvatarFallback = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.Avatar)).
		Bold(true).
		Width(3).
		Align(lipgloss.Center)

	// List status styles
	s.Loading = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.EndMarker = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	s.Notice = lipgloss.NewStyle().
		Foreground(colorWarning)

	// Footer styles
	s.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder)

	s.ShortcutKey = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.ShortcutDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	// Status indicator styles
	s.StatusWarning = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	s.StatusError = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	s.ErrorModal = lipgloss.NewStyle().
		Background(lipgloss.Color(bg.ErrorModal))

	s.Separator = lipgloss.NewStyle().
		Foreground(colorBorder)
}

// RenderSeparator returns a styled horizontal separator.
func (m *Manager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return m.styles.Separator.Render(strings.Repeat("─", width))
}
