package components

import (
	"github.com/yourusername/freshstars/internal/ui/theme"
)

// Card is a bordered frame around pre-rendered content.
type Card struct {
	Content string
	Width   int // Outer width including border; 0 means auto
	Active  bool
}

// NewCard creates a new card with default settings
func NewCard(content string) *Card {
	return &Card{Content: content}
}

// SetActive sets the active state of the card
func (c *Card) SetActive(active bool) *Card {
	c.Active = active
	return c
}

// SetWidth sets the outer card width
func (c *Card) SetWidth(width int) *Card {
	c.Width = width
	return c
}

// InnerWidth returns the width available to content inside the frame.
func (c *Card) InnerWidth() int {
	if c.Width <= 0 {
		return 0
	}
	styles := theme.Global().Styles()
	w := c.Width - styles.RepoCard.GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// Render renders the card. The active card gets the selection border.
func (c *Card) Render() string {
	styles := theme.Global().Styles()

	cardStyle := styles.RepoCard
	if c.Active {
		cardStyle = styles.RepoCardActive
	}

	if c.Width > 0 {
		// lipgloss Width includes padding but not the border.
		cardStyle = cardStyle.Width(c.Width - cardStyle.GetHorizontalBorderSize())
	}

	return cardStyle.Render(c.Content)
}
