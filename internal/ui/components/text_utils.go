package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// WrapText wraps text to a specified width while preserving words.
// Words longer than width are broken.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// ClampLines wraps text to width and keeps at most maxLines lines, ending
// the last kept line with an ellipsis when text was cut.
func ClampLines(text string, width, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}

	flat := strings.Join(strings.Fields(text), " ")
	lines := strings.Split(WrapText(flat, width), "\n")
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}

	kept := lines[:maxLines]
	last := kept[maxLines-1]
	if width > 0 && ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	kept[maxLines-1] = last + "…"
	return strings.Join(kept, "\n")
}

// TruncateText truncates text to a maximum display width with an ellipsis.
func TruncateText(text string, maxWidth int) string {
	if ansi.StringWidth(text) <= maxWidth {
		return text
	}
	if maxWidth < 1 {
		return ""
	}
	return ansi.Truncate(text, maxWidth, "…")
}

// Hyperlink wraps text in an OSC 8 hyperlink to url. Terminals without
// hyperlink support show the plain text.
func Hyperlink(text, url string) string {
	if url == "" {
		return text
	}
	return ansi.SetHyperlink(url) + text + ansi.ResetHyperlink()
}

// Pluralize returns singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
