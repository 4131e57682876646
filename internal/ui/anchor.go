package ui

// Anchor is the line range a rendered element occupies in the viewport
// content. Bottom is inclusive.
type Anchor struct {
	Top    int
	Bottom int
}

// Viewport is the visible window over the content.
type Viewport struct {
	YOffset int
	Height  int
}

// AnchorWatcher reports when a watched anchor comes within Lookahead lines
// of the visible region. Syncing repeatedly with the same inputs gives the
// same answer, so callers may sync after every change.
type AnchorWatcher struct {
	Lookahead int

	anchor    Anchor
	observing bool
}

// NewAnchorWatcher creates a watcher with the given lookahead.
func NewAnchorWatcher(lookahead int) *AnchorWatcher {
	if lookahead < 0 {
		lookahead = 0
	}
	return &AnchorWatcher{Lookahead: lookahead}
}

// Observe replaces the watched anchor.
func (w *AnchorWatcher) Observe(a Anchor) {
	w.anchor = a
	w.observing = true
}

// Disconnect stops watching. Intersecting reports false until the next
// Observe.
func (w *AnchorWatcher) Disconnect() {
	w.anchor = Anchor{}
	w.observing = false
}

// Intersecting reports whether the watched anchor overlaps the visible
// region extended downward by Lookahead lines.
func (w *AnchorWatcher) Intersecting(view Viewport) bool {
	if !w.observing || view.Height <= 0 {
		return false
	}
	top := view.YOffset
	bottom := view.YOffset + view.Height + w.Lookahead // exclusive
	return w.anchor.Top < bottom && w.anchor.Bottom >= top
}

// Sync watches a and reports whether it is within reach of view.
func (w *AnchorWatcher) Sync(a Anchor, view Viewport) bool {
	w.Observe(a)
	return w.Intersecting(view)
}
