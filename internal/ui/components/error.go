package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/freshstars/internal/ui/layout"
	"github.com/yourusername/freshstars/internal/ui/theme"
)

// ErrorBanner represents an error banner component
type ErrorBanner struct {
	Title   string
	Message string
	Actions []Shortcut // Keys that resolve the error
	Width   int
}

// NewErrorBanner creates a new error banner
func NewErrorBanner(message string) *ErrorBanner {
	return &ErrorBanner{
		Title:   "Error",
		Message: message,
	}
}

// WithActions adds the keys that resolve the error
func (eb *ErrorBanner) WithActions(actions ...Shortcut) *ErrorBanner {
	eb.Actions = actions
	return eb
}

// WithWidth sets the width
func (eb *ErrorBanner) WithWidth(width int) *ErrorBanner {
	eb.Width = width
	return eb
}

// Render renders the error banner
func (eb *ErrorBanner) Render() string {
	styles := theme.Global().Styles()

	bannerStyle := styles.ErrorModal.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorError).
		Padding(layout.SpacingXS, layout.SpacingMD).
		Align(lipgloss.Center)

	if eb.Width > 0 {
		bannerStyle = bannerStyle.Width(eb.Width - bannerStyle.GetHorizontalBorderSize())
	}

	var content strings.Builder
	content.WriteString(styles.StatusError.Render("✗ " + eb.Title))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Foreground(styles.ColorText).Render(eb.Message))

	if len(eb.Actions) > 0 {
		content.WriteString("\n\n")
		var actions []string
		for _, a := range eb.Actions {
			actions = append(actions, styles.ShortcutKey.Render("["+a.Key+"]")+" "+styles.ShortcutDesc.Render(a.Description))
		}
		content.WriteString(strings.Join(actions, "   "))
	}

	return bannerStyle.Render(content.String())
}
