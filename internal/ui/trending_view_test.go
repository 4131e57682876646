package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/yourusername/freshstars/internal/domain"
	"github.com/yourusername/freshstars/internal/usecase"
)

// stubFetcher returns canned pages and records which pages were requested.
type stubFetcher struct {
	pages      map[int][]domain.Repository
	errs       map[int]error
	incomplete map[int]bool
	calls      []int
}

func (s *stubFetcher) Execute(_ context.Context, req usecase.FetchPageRequest) (*usecase.FetchPageResponse, error) {
	s.calls = append(s.calls, req.Page)
	if err, ok := s.errs[req.Page]; ok {
		return nil, err
	}
	items := s.pages[req.Page]
	return &usecase.FetchPageResponse{
		Page:       req.Page,
		Items:      items,
		TotalCount: 1000,
		Incomplete: s.incomplete[req.Page],
	}, nil
}

type stubOpener struct {
	opened []string
	err    error
}

func (s *stubOpener) Open(url string) error {
	s.opened = append(s.opened, url)
	return s.err
}

func makeRepos(firstID, n int) []domain.Repository {
	out := make([]domain.Repository, n)
	for i := range out {
		id := firstID + i
		out[i] = domain.Repository{
			ID:       int64(id),
			Name:     fmt.Sprintf("repo%d", id),
			FullName: fmt.Sprintf("owner%d/repo%d", id, id),
			Stars:    10000 - id,
			HTMLURL:  fmt.Sprintf("https://github.com/owner%d/repo%d", id, id),
			Owner: domain.Owner{
				Login:   fmt.Sprintf("owner%d", id),
				HTMLURL: fmt.Sprintf("https://github.com/owner%d", id),
			},
		}
	}
	return out
}

// runCmd executes cmd and any batched commands, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func pageMsgs(msgs []tea.Msg) []pageFetchedMsg {
	var out []pageFetchedMsg
	for _, msg := range msgs {
		if pm, ok := msg.(pageFetchedMsg); ok {
			out = append(out, pm)
		}
	}
	return out
}

func update(t *testing.T, m TrendingViewModel, msg tea.Msg) (TrendingViewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	tm, ok := next.(TrendingViewModel)
	if !ok {
		t.Fatalf("Update returned %T, want TrendingViewModel", next)
	}
	return tm, cmd
}

// deliver runs cmd and feeds every page result back into the model.
func deliver(t *testing.T, m TrendingViewModel, cmd tea.Cmd) (TrendingViewModel, tea.Cmd) {
	t.Helper()
	var next tea.Cmd
	for _, pm := range pageMsgs(runCmd(cmd)) {
		m, next = update(t, m, pm)
	}
	return m, next
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newLoadedModel returns a sized model with page 1 already applied.
func newLoadedModel(t *testing.T, fetcher *stubFetcher, opener LinkOpener) TrendingViewModel {
	t.Helper()
	m := NewTrendingViewModel(fetcher, opener, nil)
	initCmd := m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, cmd := deliver(t, m, initCmd)
	if cmd != nil {
		t.Fatalf("first page should not trigger another fetch, got %v", pageMsgs(runCmd(cmd)))
	}
	return m
}

func ids(repos []domain.Repository) []int64 {
	out := make([]int64, len(repos))
	for i, r := range repos {
		out[i] = r.ID
	}
	return out
}

func TestInit_FetchesFirstPage(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	m := NewTrendingViewModel(fetcher, nil, nil)

	cmd := m.Init()
	if !m.feed.Loading() {
		t.Fatal("feed should be loading after Init")
	}

	msgs := pageMsgs(runCmd(cmd))
	if len(msgs) != 1 || msgs[0].ticket.Page != 1 {
		t.Fatalf("Init issued %v, want one page 1 fetch", fetcher.calls)
	}

	m, _ = update(t, m, msgs[0])
	if m.feed.Len() != 20 {
		t.Errorf("items = %d, want 20", m.feed.Len())
	}
	if m.feed.Loading() {
		t.Error("loading still set after page applied")
	}
}

func TestScrollToEnd_FetchesNextPage(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{
		1: makeRepos(1, 20),
		2: makeRepos(21, 20),
	}}
	m := newLoadedModel(t, fetcher, nil)

	m, cmd := update(t, m, key("G"))
	if !m.feed.Loading() {
		t.Fatal("reaching the last card should start a fetch")
	}
	if m.feed.Page() != 2 {
		t.Errorf("page = %d, want 2", m.feed.Page())
	}

	m, _ = deliver(t, m, cmd)
	if got := fetcher.calls; len(got) != 2 || got[1] != 2 {
		t.Fatalf("fetch calls = %v, want [1 2]", got)
	}
	if m.feed.Len() != 40 {
		t.Errorf("items = %d, want 40", m.feed.Len())
	}
}

func TestPage_DropsDuplicates(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{
		1: makeRepos(1, 20),
		2: makeRepos(16, 20), // 16..20 already present
	}}
	m := newLoadedModel(t, fetcher, nil)

	m, cmd := update(t, m, key("G"))
	m, _ = deliver(t, m, cmd)

	if m.feed.Len() != 35 {
		t.Fatalf("items = %d, want 35", m.feed.Len())
	}
	got := ids(m.feed.Items())
	for i, id := range got {
		if id != int64(i+1) {
			t.Fatalf("items out of order at %d: %v", i, got)
		}
	}
	if !m.feed.HasMore() {
		t.Error("a full page should leave has-more set even with duplicates")
	}
}

func TestWhileLoading_NoSecondFetch(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{
		1: makeRepos(1, 20),
		2: makeRepos(21, 20),
	}}
	m := newLoadedModel(t, fetcher, nil)

	m, pending := update(t, m, key("G"))
	if pending == nil {
		t.Fatal("expected a fetch command")
	}

	for _, k := range []string{"G", "pgdown", "j", "k", "G"} {
		var cmd tea.Cmd
		m, cmd = update(t, m, key(k))
		if got := pageMsgs(runCmd(cmd)); len(got) != 0 {
			t.Fatalf("key %q issued a fetch while loading", k)
		}
	}
	if m.feed.Page() != 2 {
		t.Errorf("page = %d, want 2", m.feed.Page())
	}
	if len(fetcher.calls) != 1 {
		t.Errorf("fetch calls = %v, want only the first page", fetcher.calls)
	}
}

func TestShortPage_Exhausts(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{
		1: makeRepos(1, 20),
		2: makeRepos(21, 7),
	}}
	m := newLoadedModel(t, fetcher, nil)

	m, cmd := update(t, m, key("G"))
	m, _ = deliver(t, m, cmd)

	if m.feed.HasMore() {
		t.Fatal("short page should clear has-more")
	}
	if !strings.Contains(ansi.Strip(m.View()), "No more repositories to load.") {
		t.Error("view missing end of list marker")
	}

	m, cmd = update(t, m, key("G"))
	if got := pageMsgs(runCmd(cmd)); len(got) != 0 {
		t.Fatal("exhausted list issued a fetch")
	}
	if m.feed.Page() != 2 {
		t.Errorf("page = %d, want 2", m.feed.Page())
	}
}

func TestEmptyFirstPage(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{}}
	m := newLoadedModel(t, fetcher, nil)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "No more repositories to load.") {
		t.Errorf("view missing end marker:\n%s", view)
	}
	if m.feed.HasMore() {
		t.Error("empty page should clear has-more")
	}
}

func TestFetchError_ShowsErrorView(t *testing.T) {
	fetcher := &stubFetcher{errs: map[int]error{1: domain.NewStatusError(500, nil)}}
	m := newLoadedModel(t, fetcher, nil)

	view := ansi.Strip(m.View())
	for _, want := range []string{"HTTP error! status: 500", "try again"} {
		if !strings.Contains(view, want) {
			t.Errorf("error view missing %q:\n%s", want, view)
		}
	}
	if m.feed.Loading() {
		t.Error("loading still set after failure")
	}
}

func TestFetchError_ReplacesList(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[int][]domain.Repository{1: makeRepos(1, 20)},
		errs:  map[int]error{2: errors.New("connection refused")},
	}
	m := newLoadedModel(t, fetcher, nil)

	m, cmd := update(t, m, key("G"))
	m, _ = deliver(t, m, cmd)

	view := ansi.Strip(m.View())
	if strings.Contains(view, "owner1/repo1") {
		t.Errorf("error view still shows the list:\n%s", view)
	}
	if !strings.Contains(view, "connection refused") {
		t.Errorf("error view missing message:\n%s", view)
	}
	if m.feed.Len() != 20 {
		t.Errorf("accumulated items = %d, want 20 kept", m.feed.Len())
	}

	// Scrolling does nothing while the error is shown.
	for _, k := range []string{"G", "pgdown", "o"} {
		var next tea.Cmd
		m, next = update(t, m, key(k))
		if next != nil {
			t.Errorf("key %q returned a command in the error view", k)
		}
	}
}

func TestRetry_ResetsAndFetchesFirstPage(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[int][]domain.Repository{1: makeRepos(1, 20)},
		errs:  map[int]error{2: domain.NewStatusError(503, nil)},
	}
	m := newLoadedModel(t, fetcher, nil)
	m, cmd := update(t, m, key("G"))
	m, _ = deliver(t, m, cmd)

	if m.feed.State() != domain.FeedErrored {
		t.Fatalf("state = %v, want errored", m.feed.State())
	}

	delete(fetcher.errs, 2)
	fetcher.calls = nil

	m, cmd = update(t, m, key("r"))
	if m.feed.Len() != 0 || m.feed.Page() != 1 || m.feed.Err() != "" {
		t.Fatalf("retry did not reset: len=%d page=%d err=%q", m.feed.Len(), m.feed.Page(), m.feed.Err())
	}

	msgs := pageMsgs(runCmd(cmd))
	if len(msgs) != 1 || msgs[0].ticket.Page != 1 {
		t.Fatalf("retry issued %v, want exactly one page 1 fetch", fetcher.calls)
	}

	m, _ = update(t, m, msgs[0])
	if m.feed.Len() != 20 {
		t.Errorf("items after retry = %d, want 20", m.feed.Len())
	}
	if m.feed.State() != domain.FeedIdle {
		t.Errorf("state after retry = %v, want idle", m.feed.State())
	}
}

func TestStaleResponse_Ignored(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[int][]domain.Repository{1: makeRepos(1, 20)},
		errs:  map[int]error{1: errors.New("boom")},
	}
	m := newLoadedModel(t, fetcher, nil)
	delete(fetcher.errs, 1)

	m, retryCmd := update(t, m, key("r"))

	// A response from before the retry arrives late.
	stale := pageFetchedMsg{
		ticket: domain.FetchTicket{Page: 1, Generation: 0},
		resp:   &usecase.FetchPageResponse{Page: 1, Items: makeRepos(500, 20)},
	}
	m, _ = update(t, m, stale)

	if m.feed.Len() != 0 {
		t.Fatalf("stale response applied: %d items", m.feed.Len())
	}
	if !m.feed.Loading() {
		t.Fatal("stale response cleared the loading flag")
	}

	m, _ = deliver(t, m, retryCmd)
	if got := ids(m.feed.Items()); len(got) != 20 || got[0] != 1 {
		t.Errorf("items = %v, want ids 1..20", got)
	}
}

func TestNavigation_MovesSelection(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	m := newLoadedModel(t, fetcher, nil)

	m, _ = update(t, m, key("j"))
	m, _ = update(t, m, key("down"))
	if m.selectedIndex != 2 {
		t.Errorf("selectedIndex = %d, want 2", m.selectedIndex)
	}

	m, _ = update(t, m, key("k"))
	if m.selectedIndex != 1 {
		t.Errorf("selectedIndex = %d, want 1", m.selectedIndex)
	}

	m, _ = update(t, m, key("up"))
	m, _ = update(t, m, key("up"))
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex = %d, want 0 (clamped)", m.selectedIndex)
	}
}

func TestNavigation_KeepsSelectionVisible(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	m := newLoadedModel(t, fetcher, nil)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, key("j"))
	}

	a := m.anchors[m.selectedIndex]
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	if a.Top < top || a.Bottom >= bottom {
		t.Errorf("selected card lines %d-%d outside viewport %d-%d", a.Top, a.Bottom, top, bottom)
	}
}

func TestOpenLinks(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	opener := &stubOpener{}
	m := newLoadedModel(t, fetcher, opener)

	m, _ = update(t, m, key("j"))

	_, cmd := update(t, m, key("o"))
	runCmd(cmd)
	_, cmd = update(t, m, key("O"))
	runCmd(cmd)

	want := []string{"https://github.com/owner2/repo2", "https://github.com/owner2"}
	if len(opener.opened) != 2 || opener.opened[0] != want[0] || opener.opened[1] != want[1] {
		t.Errorf("opened = %v, want %v", opener.opened, want)
	}
}

func TestOpenLink_FailureShowsNotice(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	opener := &stubOpener{err: errors.New("no browser")}
	m := newLoadedModel(t, fetcher, opener)

	_, cmd := update(t, m, key("o"))
	for _, msg := range runCmd(cmd) {
		m, _ = update(t, m, msg)
	}

	if !strings.Contains(ansi.Strip(m.View()), "Could not open https://github.com/owner1/repo1") {
		t.Errorf("view missing open failure notice:\n%s", ansi.Strip(m.View()))
	}
}

func TestIncompletePage_ShowsNotice(t *testing.T) {
	fetcher := &stubFetcher{
		pages:      map[int][]domain.Repository{1: makeRepos(1, 20)},
		incomplete: map[int]bool{1: true},
	}
	m := newLoadedModel(t, fetcher, nil)

	if !strings.Contains(ansi.Strip(m.View()), "Some results may be missing") {
		t.Errorf("view missing incomplete results notice:\n%s", ansi.Strip(m.View()))
	}

	m, _ = update(t, m, key("r"))
	if strings.Contains(ansi.Strip(m.View()), "Some results may be missing") {
		t.Error("retry kept the incomplete results notice")
	}
}

func TestView_Header(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	m := newLoadedModel(t, fetcher, nil)

	view := ansi.Strip(m.View())
	for _, want := range []string{
		"Most Starred GitHub Repos",
		"Repositories created in the last 10 days",
		"20 repositories",
		"owner1/repo1",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_LoadingIndicator(t *testing.T) {
	fetcher := &stubFetcher{}
	m := NewTrendingViewModel(fetcher, nil, nil)
	_ = m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if !strings.Contains(ansi.Strip(m.View()), "Loading repositories...") {
		t.Error("view missing loading indicator while a fetch is in flight")
	}
}

func TestSpinnerTick_StopsWhenIdle(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]domain.Repository{1: makeRepos(1, 20)}}
	m := newLoadedModel(t, fetcher, nil)

	_, cmd := update(t, m, spinner.TickMsg{})
	if cmd != nil {
		t.Error("spinner kept ticking with nothing loading")
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := NewTrendingViewModel(&stubFetcher{}, nil, nil)
			_, cmd := update(t, m, key(k))
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("command returned %T, want tea.QuitMsg", cmd())
			}
		})
	}
}
