package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/jadipas/freddie/internal/models"
	"github.com/jadipas/freddie/internal/services"
	"github.com/jadipas/freddie/internal/session"
	"github.com/jadipas/freddie/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoadingView ViewState = iota
	BrowseView
	UploadView
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	svc    services.CatalogService
	logger *log.Logger
	opts   session.Options

	sess     *session.Session
	fallback *session.Fallback

	view         ViewState
	libraryList  list.Model
	playlistList list.Model
	pathInput    textinput.Model
	width        int
	height       int
	help         help.Model
	keys         keyMap
	err          error
	status       string

	// seq stamps asynchronous dispatches; user actions advance it so a
	// completion from before the action is discarded on arrival.
	seq uint64
}

type catalogLoadedMsg struct {
	catalog models.Catalog
	err     error
	seq     uint64
}

type uploadResultMsg struct {
	catalog models.Catalog
	err     error
	seq     uint64
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, svc services.CatalogService, opts session.Options, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	input := textinput.New()
	input.Placeholder = "path to catalog .json"
	input.CharLimit = 512

	return &Model{
		ctx:       ctx,
		svc:       svc,
		logger:    logger,
		opts:      opts,
		view:      LoadingView,
		pathInput: input,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init initializes the TUI by fetching the catalog from the backend.
func (m *Model) Init() tea.Cmd {
	return m.fetchCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.sess != nil {
			m.libraryList.SetSize(msg.Width-4, msg.Height-8)
			m.playlistList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoadingView:
			return m.handleLoadingKeys(msg)
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case UploadView:
			return m.handleUploadKeys(msg)
		}

	case catalogLoadedMsg:
		if msg.seq != m.seq {
			m.logger.Debug("discarding stale catalog load", "seq", msg.seq, "current", m.seq)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn("catalog load failed", "error", msg.err)
			return m.enterFallback(msg.err), nil
		}
		m.startSession(msg.catalog)
		return m, nil

	case uploadResultMsg:
		if msg.seq != m.seq {
			m.logger.Debug("discarding stale upload result", "seq", msg.seq, "current", m.seq)
			return m, nil
		}
		if msg.err != nil {
			m.logger.Warn("catalog upload failed", "error", msg.err)
			m.fallback.Reject(msg.err)
			return m, nil
		}
		m.startSession(msg.catalog)
		m.status = fmt.Sprintf("catalog recovered (%d songs)", len(msg.catalog))
		return m, nil
	}

	return m.updateActive(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoadingView:
		return m.renderLoading()
	case BrowseView:
		return m.renderBrowse()
	case UploadView:
		return m.renderUpload()
	default:
		return ""
	}
}

func (m *Model) handleLoadingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter is capturing input, every key belongs to it.
	if m.activeList().FilterState() == list.Filtering {
		return m.updateActive(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggle):
		m.seq++
		m.sess.ToggleView()
		return m, nil

	case key.Matches(msg, m.keys.enter):
		if fp := m.cursorSong(); fp != "" {
			m.seq++
			if _, err := m.sess.Select(fp); err != nil {
				m.err = err
				return m, nil
			}
			m.refreshLists()
			m.ensureVisible(fp)
		}
		return m, nil

	case key.Matches(msg, m.keys.move):
		if m.sess.View() != session.ViewLibrary {
			return m, nil
		}
		if fp := m.cursorSong(); fp != "" {
			m.seq++
			if _, err := m.sess.Move(fp); err != nil {
				m.err = err
				return m, nil
			}
			m.refreshLists()
			m.ensureVisible(fp)
		}
		return m, nil

	case key.Matches(msg, m.keys.more):
		m.seq++
		m.sess.SetRecommendationCount(m.sess.RecommendationCount() + 1)
		m.refreshLists()
		return m, nil

	case key.Matches(msg, m.keys.fewer):
		m.seq++
		m.sess.SetRecommendationCount(m.sess.RecommendationCount() - 1)
		m.refreshLists()
		return m, nil

	case key.Matches(msg, m.keys.upload):
		return m.enterFallback(nil), textinput.Blink
	}

	return m.updateActive(msg)
}

func (m *Model) handleUploadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Recovery can only be abandoned when there is a session to return to.
		if m.sess != nil {
			m.view = BrowseView
			m.pathInput.Blur()
		}
		return m, nil
	case "enter":
		return m, m.submitUpload()
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.view == BrowseView && m.sess.View() == session.ViewLibrary:
		m.libraryList, cmd = m.libraryList.Update(msg)
	case m.view == BrowseView:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case m.view == UploadView:
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

// startSession builds (or rebuilds) the session and both lists around a
// freshly obtained catalog.
func (m *Model) startSession(catalog models.Catalog) {
	if m.sess == nil {
		m.sess = session.New(catalog, m.opts)
	} else {
		m.sess.ReplaceCatalog(catalog)
	}

	m.libraryList = list.New(libraryItems(m.sess), list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.libraryList.Title = "Library"
	m.libraryList.SetStatusBarItemName("song", "songs")

	m.playlistList = list.New(playlistItems(m.sess), list.NewDefaultDelegate(), m.width-4, m.height-8)
	m.playlistList.Title = "Playlist"
	m.playlistList.SetStatusBarItemName("song", "songs")

	m.view = BrowseView
	m.err = nil
	m.pathInput.Blur()
	m.logger.Info("session started", "songs", len(catalog))
}

// enterFallback switches to the catalog-recovery view. cause is the load
// failure that forced recovery, nil when the user asked for it.
func (m *Model) enterFallback(cause error) *Model {
	m.fallback = session.NewFallback()
	m.err = cause
	m.view = UploadView
	m.status = ""
	m.pathInput.SetValue("")
	m.pathInput.Focus()
	return m
}

// refreshLists rebuilds list items from session state, keeping cursors.
func (m *Model) refreshLists() {
	m.libraryList.SetItems(libraryItems(m.sess))
	m.playlistList.SetItems(playlistItems(m.sess))
}

// activeList returns the list backing the session's current view.
func (m *Model) activeList() *list.Model {
	if m.sess.View() == session.ViewLibrary {
		return &m.libraryList
	}
	return &m.playlistList
}

// cursorSong returns the file_path under the cursor in the active list.
func (m *Model) cursorSong() string {
	if m.sess.View() == session.ViewLibrary {
		if item, ok := m.libraryList.SelectedItem().(librarySongItem); ok {
			return item.song.FilePath
		}
		return ""
	}
	if item, ok := m.playlistList.SelectedItem().(playlistSongItem); ok {
		return item.song.FilePath
	}
	return ""
}

// ensureVisible moves the owning list's cursor to the song so it stays on
// screen after a transition.
func (m *Model) ensureVisible(filePath string) {
	for i, song := range m.sess.Library() {
		if song.FilePath == filePath {
			m.libraryList.Select(i)
			return
		}
	}
	for i, song := range m.sess.Playlist() {
		if song.FilePath == filePath {
			m.playlistList.Select(i)
			return
		}
	}
}

func (m *Model) fetchCatalog() tea.Cmd {
	seq := m.seq
	return func() tea.Msg {
		catalog, err := m.svc.Load(m.ctx)
		return catalogLoadedMsg{catalog: catalog, err: err, seq: seq}
	}
}

// submitUpload runs the synchronous validation steps, then dispatches the
// durable upload. The recovered catalog is applied only after the backend
// has accepted it.
func (m *Model) submitUpload() tea.Cmd {
	path := strings.TrimSpace(m.pathInput.Value())

	data, err := shared.VerifyAndReadFile(path)
	if err != nil {
		m.fallback.Reject(err)
		return nil
	}

	filename := filepath.Base(path)
	catalog, err := m.fallback.Submit(filename, data)
	if err != nil {
		return nil
	}

	seq := m.seq
	return func() tea.Msg {
		err := m.svc.Upload(m.ctx, filename, data)
		return uploadResultMsg{catalog: catalog, err: err, seq: seq}
	}
}

func (m *Model) renderLoading() string {
	title := styles.title.Render("freddie")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.quit})
	return fmt.Sprintf("%s\nFetching catalog from %s...\n\n%s", title, m.svc.Name(), helpView)
}

func (m *Model) renderBrowse() string {
	var listView string
	if m.sess.View() == session.ViewLibrary {
		listView = m.libraryList.View()
	} else {
		listView = m.playlistList.View()
	}

	status := fmt.Sprintf("recs: %d", m.sess.RecommendationCount())
	if selected, ok := m.sess.Selected(); ok {
		if selected.HasBPM() {
			status = fmt.Sprintf("%s • selected: %s (%.0f BPM)", status, selected.Title, selected.BPM)
		} else {
			status = fmt.Sprintf("%s • selected: %s", status, selected.Title)
		}
	}
	if m.status != "" {
		status = fmt.Sprintf("%s • %s", status, styles.ok.Render(m.status))
	}
	if m.err != nil {
		status = fmt.Sprintf("%s • %s", status, styles.err.Render(m.err.Error()))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.move, m.keys.toggle, m.keys.more, m.keys.fewer, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", listView, styles.help.Render(status), helpView)
}

func (m *Model) renderUpload() string {
	title := styles.title.Render("Catalog unavailable")
	if m.err == nil {
		title = styles.title.Render("Replace catalog")
	}

	lines := []string{title}
	if m.err != nil {
		lines = append(lines, styles.warn.Render(fmt.Sprintf("The backend could not deliver a catalog: %v", m.err)))
	}
	lines = append(lines, "Provide a replacement catalog (.json) to continue:", "", m.pathInput.View())

	if reason := m.fallback.Reason(); reason != nil {
		lines = append(lines, "", styles.err.Render(fmt.Sprintf("✗ %v", reason)))
	}

	backKeys := []key.Binding{m.keys.enter, m.keys.quit}
	if m.sess != nil {
		backKeys = []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	}
	helpView := m.help.ShortHelpView(backKeys)

	return fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), helpView)
}
