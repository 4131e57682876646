package layout

// Spacing constants for consistent padding and margins
const (
	SpacingXS = 1
	SpacingSM = 2
	SpacingMD = 3
	SpacingLG = 4
)

// Standard UI element heights
const (
	HeaderHeight    = 3 // title, subtitle, separator
	StatusBarHeight = 2 // spinner / end marker / notices
	FooterHeight    = 2 // border + shortcuts
)

// Card dimensions
const (
	CardMinWidth         = 40
	CardMaxWidth         = 110
	CardDescriptionLines = 2
	ErrorBannerWidth     = 60
)

// AnchorLookahead is how many lines below the visible region the last card
// may start and still count as visible.
const AnchorLookahead = 4

// MinViewportHeight is the smallest list viewport we render.
const MinViewportHeight = 5

// CalculateViewportHeight calculates the list viewport height after the
// header, status bar and footer have been reserved.
func CalculateViewportHeight(windowHeight int) int {
	h := windowHeight - HeaderHeight - StatusBarHeight - FooterHeight
	if h < MinViewportHeight {
		return MinViewportHeight
	}
	return h
}

// CalculateCardWidth clamps the card width to the window.
func CalculateCardWidth(windowWidth int) int {
	w := windowWidth - SpacingXS*2
	if w > CardMaxWidth {
		w = CardMaxWidth
	}
	if w < CardMinWidth {
		w = CardMinWidth
	}
	return w
}

// CenterHorizontal calculates x position to center content
func CenterHorizontal(windowWidth, contentWidth int) int {
	if windowWidth <= contentWidth {
		return 0
	}
	return (windowWidth - contentWidth) / 2
}
