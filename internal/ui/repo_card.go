package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yourusername/freshstars/internal/domain"
	"github.com/yourusername/freshstars/internal/ui/components"
	"github.com/yourusername/freshstars/internal/ui/layout"
	"github.com/yourusername/freshstars/internal/ui/theme"
)

const (
	externalLinkGlyph = "↗"
	avatarGlyph       = "◉"
	avatarColumnWidth = 3
)

// CardOptions controls how a repository card is laid out.
type CardOptions struct {
	Width    int // Outer width; values below CardMinWidth are raised to it
	Selected bool
}

// RenderRepoCard renders one repository as a bordered card.
func RenderRepoCard(repo domain.Repository, opts CardOptions) string {
	width := opts.Width
	if width < layout.CardMinWidth {
		width = layout.CardMinWidth
	}

	card := components.NewCard("").SetWidth(width).SetActive(opts.Selected)
	bodyWidth := card.InnerWidth() - avatarColumnWidth - layout.SpacingXS

	body := lipgloss.JoinVertical(lipgloss.Left,
		renderTitleLine(repo, bodyWidth),
		renderOwnerLine(repo),
		renderDescription(repo, bodyWidth),
		renderMetaLine(repo),
	)

	card.Content = lipgloss.JoinHorizontal(lipgloss.Top,
		renderAvatar(repo),
		strings.Repeat(" ", layout.SpacingXS),
		body,
	)
	return card.Render()
}

// renderTitleLine renders the linked full name with the counters pushed to
// the right edge.
func renderTitleLine(repo domain.Repository, width int) string {
	styles := theme.Global().Styles()

	stats := styles.RepoStars.Render("★ "+domain.FormatCount(repo.Stars)) +
		"  " +
		styles.RepoForks.Render("⑂ "+domain.FormatCount(repo.Forks))
	statsWidth := lipgloss.Width(stats)

	maxName := width - statsWidth - 1 - ansi.StringWidth(" "+externalLinkGlyph)
	name := components.TruncateText(repo.DisplayName(), maxName)
	title := components.Hyperlink(styles.RepoTitle.Render(name+" "+externalLinkGlyph), repo.HTMLURL)

	gap := width - lipgloss.Width(title) - statsWidth
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + stats
}

func renderOwnerLine(repo domain.Repository) string {
	styles := theme.Global().Styles()
	login := components.Hyperlink(styles.RepoOwnerLink.Render(repo.Owner.Login), repo.Owner.HTMLURL)
	return styles.RepoOwner.Render("by ") + login
}

func renderDescription(repo domain.Repository, width int) string {
	styles := theme.Global().Styles()
	text := components.ClampLines(repo.DescriptionText(), width, layout.CardDescriptionLines)

	if repo.Description == "" {
		return styles.Description.Foreground(styles.ColorMuted).Italic(true).Render(text)
	}
	return styles.Description.Render(text)
}

// renderMetaLine renders the optional language tag followed by the
// creation date.
func renderMetaLine(repo domain.Repository) string {
	styles := theme.Global().Styles()
	created := styles.CreatedAt.Render(fmt.Sprintf("Created %s", domain.FormatDate(repo.CreatedAt.Local())))

	if tag := renderLanguageTag(repo); tag != "" {
		return tag + " " + created
	}
	return created
}

func renderLanguageTag(repo domain.Repository) string {
	if !repo.HasLanguage() {
		return ""
	}
	return theme.Global().Styles().LanguageBadge.Render(repo.Language)
}

// renderAvatar renders the owner avatar. Terminals cannot show the image,
// so a linked glyph points at it; owners without one get their initial.
func renderAvatar(repo domain.Repository) string {
	styles := theme.Global().Styles()
	if repo.HasAvatar() {
		return components.Hyperlink(styles.AvatarImage.Render(avatarGlyph), repo.Owner.AvatarURL)
	}
	return styles.AvatarFallback.Render(repo.AvatarInitial())
}
