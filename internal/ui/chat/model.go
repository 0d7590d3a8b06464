// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"chatai/internal/config"
	"chatai/internal/session"
	"chatai/internal/storage"
	"chatai/internal/ui/components"
	"chatai/internal/ui/styles"
)

// =============================================================================
// FOCUS AREAS
// =============================================================================

type focusArea int

const (
	focusComposer focusArea = iota
	focusSidebar
	focusSearch
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the chat TUI.
type Model struct {
	store *session.Store
	cfg   *config.Config
	db    *storage.Store

	theme    *styles.Theme
	keys     KeyMap
	renderer *components.MessageRenderer

	composer textarea.Model
	search   textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	focus       focusArea
	sidebarSel  int
	folderIdx   int
	categoryIdx int

	width  int
	height int
	ready  bool

	statusMsg string
}

// New creates the chat TUI model.
func New(store *session.Store, cfg *config.Config, db *storage.Store) Model {
	theme := styles.NewTheme(db.LoadTheme())

	composer := textarea.New()
	composer.Placeholder = "Type your message..."
	composer.ShowLineNumbers = false
	composer.SetHeight(2)
	composer.CharLimit = 4000
	composer.Focus()

	search := textinput.New()
	search.Placeholder = "Search chats..."
	search.CharLimit = 100

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	return Model{
		store:    store,
		cfg:      cfg,
		db:       db,
		theme:    theme,
		keys:     DefaultKeyMap(),
		composer: composer,
		search:   search,
		spin:     spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// =============================================================================
// VIEW STATE HELPERS
// =============================================================================

// sidebarWidth is fixed; the main pane takes the rest.
const sidebarWidth = 30

func (m *Model) layout() {
	mainWidth := m.width - sidebarWidth
	if mainWidth < 20 {
		mainWidth = 20
	}

	// Header, error bar, composer and status bar eat vertical space.
	bodyHeight := m.height - 8
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	m.viewport = viewport.New(mainWidth-2, bodyHeight)
	m.composer.SetWidth(mainWidth - 4)
	m.renderer = components.NewMessageRenderer(m.theme, mainWidth-4)
	m.ready = true

	m.refreshTranscript()
}

// refreshTranscript re-renders the active conversation into the viewport.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	chat := m.store.ActiveChat()
	if chat == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderer.RenderAll(chat.Messages))
	m.viewport.GotoBottom()
}

// setTheme swaps palettes and persists the preference.
func (m *Model) setTheme(mode string) {
	m.theme = styles.NewTheme(mode)
	m.spin.Style = m.theme.Spinner
	_ = m.db.SaveTheme(mode)
	if m.ready {
		m.renderer = components.NewMessageRenderer(m.theme, m.viewport.Width-2)
		m.refreshTranscript()
	}
}

func (m *Model) folderNames() []string {
	return m.cfg.FolderNames()
}

// clampSidebarSel keeps the selection inside the visible chat list.
func (m *Model) clampSidebarSel() {
	n := len(m.store.VisibleChats())
	if m.sidebarSel >= n {
		m.sidebarSel = n - 1
	}
	if m.sidebarSel < 0 {
		m.sidebarSel = 0
	}
}
