package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/freshstars/internal/domain"
	"github.com/yourusername/freshstars/internal/ui/components"
	"github.com/yourusername/freshstars/internal/ui/layout"
	"github.com/yourusername/freshstars/internal/ui/theme"
	"github.com/yourusername/freshstars/internal/usecase"
)

const (
	headerTitle    = "Most Starred GitHub Repos"
	headerSubtitle = "Repositories created in the last 10 days"
	endOfListText  = "No more repositories to load."
	loadingText    = "Loading repositories..."
	emptyListText  = "No repositories found"
	incompleteText = "Some results may be missing"
)

// PageFetcher loads one page of the trending list.
type PageFetcher interface {
	Execute(ctx context.Context, req usecase.FetchPageRequest) (*usecase.FetchPageResponse, error)
}

// LinkOpener hands a URL to something outside the terminal.
type LinkOpener interface {
	Open(url string) error
}

// pageFetchedMsg carries the result of one fetch back to the UI loop.
type pageFetchedMsg struct {
	ticket domain.FetchTicket
	resp   *usecase.FetchPageResponse
	err    error
}

type linkOpenedMsg struct {
	url string
	err error
}

// TrendingViewModel is the scrolling list of recently created repositories.
type TrendingViewModel struct {
	feed          *domain.Feed
	fetcher       PageFetcher
	opener        LinkOpener
	logger        *slog.Logger
	watcher       *AnchorWatcher
	viewport      viewport.Model
	spinner       spinner.Model
	anchors       []Anchor
	selectedIndex int
	totalCount    int
	incomplete    bool
	notice        string
	ready         bool
	windowWidth   int
	windowHeight  int
}

// NewTrendingViewModel creates the list view. A nil logger discards output.
func NewTrendingViewModel(fetcher PageFetcher, opener LinkOpener, logger *slog.Logger) TrendingViewModel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	styles := theme.Global().Styles()

	vp := viewport.New(80, layout.MinViewportHeight)
	// up/down move the selection instead of scrolling line by line.
	vp.KeyMap.Up.SetEnabled(false)
	vp.KeyMap.Down.SetEnabled(false)

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Loading),
	)

	return TrendingViewModel{
		feed:         domain.NewFeed(),
		fetcher:      fetcher,
		opener:       opener,
		logger:       logger,
		watcher:      NewAnchorWatcher(layout.AnchorLookahead),
		viewport:     vp,
		spinner:      sp,
		windowWidth:  80,
		windowHeight: 24,
	}
}

// Init requests the first page.
func (m TrendingViewModel) Init() tea.Cmd {
	return m.fetchPage(1)
}

// Update handles messages.
func (m TrendingViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = layout.CalculateViewportHeight(msg.Height)
		m.ready = true
		m.refreshContent()
		cmd := m.syncAnchor()
		return m, cmd

	case pageFetchedMsg:
		cmd := m.handlePage(msg)
		return m, cmd

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("open link failed", "url", msg.url, "error", msg.err)
			m.notice = fmt.Sprintf("Could not open %s", msg.url)
		} else {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		// The tick chain ends once nothing is loading.
		if !m.feed.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.feed.State() == domain.FeedErrored {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		syncCmd := m.syncAnchor()
		return m, tea.Batch(cmd, syncCmd)
	}

	return m, nil
}

func (m TrendingViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	// Only a retry leaves the error view.
	if m.feed.State() == domain.FeedErrored {
		if msg.String() == "r" {
			cmd := m.retry()
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.selectIndex(m.selectedIndex - 1)

	case "down", "j":
		m.selectIndex(m.selectedIndex + 1)

	case "home", "g":
		m.selectIndex(0)

	case "end", "G":
		m.selectIndex(m.feed.Len() - 1)

	case "o":
		if repo, ok := m.feed.At(m.selectedIndex); ok {
			return m, m.openLink(repo.HTMLURL)
		}
		return m, nil

	case "O":
		if repo, ok := m.feed.At(m.selectedIndex); ok {
			return m, m.openLink(repo.Owner.HTMLURL)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	syncCmd := m.syncAnchor()
	return m, tea.Batch(cmd, syncCmd)
}

// handlePage applies a fetch result. Results from before a retry are
// dropped by the feed.
func (m *TrendingViewModel) handlePage(msg pageFetchedMsg) tea.Cmd {
	if msg.err != nil {
		if !m.feed.Fail(msg.ticket, msg.err.Error()) {
			m.logger.Debug("dropping stale page error", "page", msg.ticket.Page)
			return nil
		}
		m.logger.Error("fetching page", "page", msg.ticket.Page, "error", msg.err)
		m.refreshContent()
		return nil
	}

	var items []domain.Repository
	if msg.resp != nil {
		items = msg.resp.Items
	}
	added, applied := m.feed.Complete(msg.ticket, items)
	if !applied {
		m.logger.Debug("dropping stale page", "page", msg.ticket.Page)
		return nil
	}
	if msg.resp != nil {
		m.totalCount = msg.resp.TotalCount
		m.incomplete = m.incomplete || msg.resp.Incomplete
	}

	m.logger.Debug("page applied",
		"page", msg.ticket.Page,
		"received", len(items),
		"added", added,
		"has_more", m.feed.HasMore(),
	)

	m.refreshContent()
	return m.syncAnchor()
}

// fetchPage issues the request for page unless one is already in flight.
func (m *TrendingViewModel) fetchPage(page int) tea.Cmd {
	ticket, ok := m.feed.BeginFetch(page)
	if !ok {
		return nil
	}

	fetcher := m.fetcher
	fetch := func() tea.Msg {
		resp, err := fetcher.Execute(context.Background(), usecase.FetchPageRequest{Page: ticket.Page})
		return pageFetchedMsg{ticket: ticket, resp: resp, err: err}
	}
	return tea.Batch(fetch, m.spinner.Tick)
}

// syncAnchor checks the last card against the viewport and advances the
// feed when it is in reach.
func (m *TrendingViewModel) syncAnchor() tea.Cmd {
	if !m.ready || m.feed.Loading() || !m.feed.HasMore() || m.feed.Err() != "" || len(m.anchors) == 0 {
		m.watcher.Disconnect()
		return nil
	}

	last := m.anchors[len(m.anchors)-1]
	view := Viewport{YOffset: m.viewport.YOffset, Height: m.viewport.Height}
	if !m.watcher.Sync(last, view) {
		return nil
	}

	page, ok := m.feed.Advance()
	if !ok {
		return nil
	}
	return m.fetchPage(page)
}

// retry discards everything and starts over from page 1.
func (m *TrendingViewModel) retry() tea.Cmd {
	m.logger.Info("retrying from first page")
	m.feed.Reset()
	m.selectedIndex = 0
	m.totalCount = 0
	m.incomplete = false
	m.notice = ""
	m.viewport.GotoTop()
	cmd := m.fetchPage(1)
	m.refreshContent()
	return cmd
}

func (m *TrendingViewModel) openLink(url string) tea.Cmd {
	if m.opener == nil || url == "" {
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: opener.Open(url)}
	}
}

// selectIndex moves the selection, clamped to the list, and scrolls it
// into view.
func (m *TrendingViewModel) selectIndex(i int) {
	if m.feed.Len() == 0 {
		m.selectedIndex = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= m.feed.Len() {
		i = m.feed.Len() - 1
	}
	if i == m.selectedIndex {
		return
	}
	m.selectedIndex = i
	m.refreshContent()
	m.ensureSelectedVisible()
}

func (m *TrendingViewModel) ensureSelectedVisible() {
	if m.selectedIndex >= len(m.anchors) {
		return
	}
	a := m.anchors[m.selectedIndex]
	switch {
	case a.Top < m.viewport.YOffset:
		m.viewport.SetYOffset(a.Top)
	case a.Bottom >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(a.Bottom - m.viewport.Height + 1)
	}
}

// refreshContent re-renders the cards into the viewport and records where
// each one starts and ends.
func (m *TrendingViewModel) refreshContent() {
	items := m.feed.Items()
	if m.selectedIndex >= len(items) {
		m.selectedIndex = max(len(items)-1, 0)
	}

	width := layout.CalculateCardWidth(m.windowWidth)
	indent := lipgloss.NewStyle().MarginLeft(layout.CenterHorizontal(m.windowWidth, width))
	cards := make([]string, 0, len(items))
	anchors := make([]Anchor, 0, len(items))
	line := 0
	for i, repo := range items {
		card := indent.Render(RenderRepoCard(repo, CardOptions{Width: width, Selected: i == m.selectedIndex}))
		h := lipgloss.Height(card)
		anchors = append(anchors, Anchor{Top: line, Bottom: line + h - 1})
		cards = append(cards, card)
		line += h
	}
	m.anchors = anchors

	if len(cards) == 0 {
		m.viewport.SetContent(m.renderEmpty())
		return
	}
	m.viewport.SetContent(strings.Join(cards, "\n"))
}

func (m TrendingViewModel) renderEmpty() string {
	styles := theme.Global().Styles()
	if m.feed.Loading() {
		return ""
	}
	return styles.EndMarker.Render(emptyListText)
}

// View renders the list view.
func (m TrendingViewModel) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.feed.State() == domain.FeedErrored {
		content.WriteString(m.renderError())
		content.WriteString("\n")
		content.WriteString(components.ErrorFooter(m.windowWidth))
		return content.String()
	}

	content.WriteString(m.viewport.View())
	content.WriteString("\n")
	content.WriteString(m.renderStatus())
	content.WriteString("\n")
	content.WriteString(components.ListFooter(m.footerMetadata(), m.windowWidth))

	return content.String()
}

func (m TrendingViewModel) renderHeader() string {
	styles := theme.Global().Styles()

	title := styles.Title.Render(headerTitle)
	if n := m.feed.Len(); n > 0 {
		title += "  " + styles.Counter.Render(fmt.Sprintf("%d %s", n, components.Pluralize(n, "repository", "repositories")))
	}
	return title + "\n" +
		styles.Subtitle.Render(headerSubtitle) + "\n" +
		theme.Global().RenderSeparator(m.windowWidth)
}

// renderStatus renders the line between the list and the footer.
func (m TrendingViewModel) renderStatus() string {
	styles := theme.Global().Styles()

	var status string
	switch m.feed.State() {
	case domain.FeedLoading:
		status = m.spinner.View() + " " + styles.Loading.Render(loadingText)
	case domain.FeedExhausted:
		status = styles.EndMarker.Render(endOfListText)
	}

	if m.incomplete {
		if status != "" {
			status += "  "
		}
		status += styles.StatusWarning.Render(incompleteText)
	}

	if m.notice != "" {
		if status != "" {
			status += "  "
		}
		status += styles.Notice.Render(m.notice)
	}

	return lipgloss.PlaceHorizontal(m.windowWidth, lipgloss.Center, status)
}

// renderError renders the error view that replaces the list.
func (m TrendingViewModel) renderError() string {
	width := min(layout.ErrorBannerWidth, m.windowWidth)
	banner := components.NewErrorBanner(m.feed.Err()).
		WithActions(components.ShortcutRetry).
		WithWidth(width).
		Render()

	return lipgloss.Place(m.windowWidth, m.viewport.Height+layout.StatusBarHeight-1,
		lipgloss.Center, lipgloss.Center, banner)
}

func (m TrendingViewModel) footerMetadata() string {
	if m.feed.Len() == 0 {
		return ""
	}
	meta := fmt.Sprintf("%d/%d", m.selectedIndex+1, m.feed.Len())
	if m.totalCount > 0 {
		meta += fmt.Sprintf(" of %d", m.totalCount)
	}
	return meta + fmt.Sprintf(" · page %d", m.feed.Page())
}
