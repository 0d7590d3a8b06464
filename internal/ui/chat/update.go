// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"chatai/internal/config"
	"chatai/internal/export"
	"chatai/internal/session"
	"chatai/internal/ui/components"
)

// ConfigReloadedMsg carries a freshly loaded configuration. It is sent
// from the config watcher goroutine via Program.Send so the swap happens
// on the program goroutine, never concurrently with View.
type ConfigReloadedMsg struct {
	Cfg *config.Config
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.store.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ConfigReloadedMsg:
		*m.cfg = *msg.Cfg
		if m.folderIdx >= len(m.cfg.Folders) {
			m.folderIdx = 0
		}
		if m.categoryIdx >= len(m.cfg.Categories) {
			m.categoryIdx = 0
		}
		m.clampSidebarSel()
		return m, nil

	case session.SendFinishedMsg:
		m.store.FinishSend(msg.ChatID, msg.Reply, msg.Err)
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	// Global bindings work regardless of focus.
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.ToggleTheme):
		m.setTheme(m.theme.Toggled().Mode)
		return m, nil

	case key.Matches(msg, keys.NewChat):
		m.store.StartNewChat()
		m.statusMsg = ""
		m.refreshTranscript()
		return m, nil

	case key.Matches(msg, keys.NextFolder):
		m.cycleFolder()
		return m, nil

	case key.Matches(msg, keys.Export):
		m.exportActive()
		return m, nil

	case key.Matches(msg, keys.FocusNext):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, keys.Dismiss):
		if m.focus == focusSearch {
			m.focus = focusComposer
			m.search.Blur()
			m.composer.Focus()
			return m, nil
		}
		m.store.ClearError()
		m.statusMsg = ""
		return m, nil
	}

	switch m.focus {
	case focusSidebar:
		return m.handleSidebarKey(msg)
	case focusSearch:
		return m.handleSearchKey(msg)
	default:
		return m.handleComposerKey(msg)
	}
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	// Welcome-screen shortcuts apply while no chat is open and the
	// composer is empty.
	if m.store.ActiveChat() == nil && m.composer.Value() == "" {
		switch {
		case key.Matches(msg, keys.NextCategory):
			m.cycleCategory(1)
			return m, nil
		case key.Matches(msg, keys.PrevCategory):
			m.cycleCategory(-1)
			return m, nil
		}
		if prompt, ok := m.templatePrompt(msg.String()); ok {
			m.composer.SetValue(prompt)
			return m, nil
		}
	}

	if key.Matches(msg, keys.Send) {
		return m.sendComposer()
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	visible := m.store.VisibleChats()

	switch {
	case key.Matches(msg, keys.Up):
		if m.sidebarSel > 0 {
			m.sidebarSel--
		}
	case key.Matches(msg, keys.Down):
		if m.sidebarSel < len(visible)-1 {
			m.sidebarSel++
		}
	case key.Matches(msg, keys.Select):
		if m.sidebarSel < len(visible) {
			m.store.SelectChat(visible[m.sidebarSel].ID)
			m.focus = focusComposer
			m.composer.Focus()
			m.refreshTranscript()
		}
	case key.Matches(msg, keys.DeleteChat):
		if m.sidebarSel < len(visible) {
			m.store.DeleteChat(visible[m.sidebarSel].ID)
			m.clampSidebarSel()
			m.refreshTranscript()
		}
	case key.Matches(msg, keys.Search):
		m.focus = focusSearch
		m.search.Focus()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		m.focus = focusSidebar
		m.search.Blur()
		m.sidebarSel = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearchQuery(m.search.Value())
	m.clampSidebarSel()
	return m, cmd
}

// =============================================================================
// ACTIONS
// =============================================================================

// sendComposer starts a send for the composer contents.
func (m Model) sendComposer() (tea.Model, tea.Cmd) {
	if !m.cfg.IsAPIKeyConfigured() {
		return m, nil
	}

	send, ok := m.store.BeginSend(m.composer.Value())
	if !ok {
		return m, nil
	}

	m.composer.Reset()
	m.statusMsg = ""
	m.refreshTranscript()

	return m, tea.Batch(
		m.store.CompleteCmd(context.Background(), send),
		m.spin.Tick,
	)
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusComposer:
		m.focus = focusSidebar
		m.composer.Blur()
	case focusSidebar:
		m.focus = focusComposer
		m.composer.Focus()
	case focusSearch:
		m.focus = focusComposer
		m.search.Blur()
		m.composer.Focus()
	}
}

func (m *Model) cycleFolder() {
	folders := m.folderNames()
	if len(folders) == 0 {
		return
	}
	m.folderIdx = (m.folderIdx + 1) % len(folders)
	m.store.SetFolder(folders[m.folderIdx])
	m.sidebarSel = 0
	m.refreshTranscript()
}

func (m *Model) cycleCategory(dir int) {
	cats := m.cfg.Categories
	if len(cats) == 0 {
		return
	}
	m.categoryIdx = (m.categoryIdx + dir + len(cats)) % len(cats)
	m.store.SetCategory(cats[m.categoryIdx])
}

// templatePrompt maps number keys to the starter prompts of the selected
// category.
func (m *Model) templatePrompt(k string) (string, bool) {
	var idx int
	switch k {
	case "1":
		idx = 0
	case "2":
		idx = 1
	case "3":
		idx = 2
	default:
		return "", false
	}

	templates := components.TemplatesFor(m.store.Category())
	if idx >= len(templates) {
		return "", false
	}
	return templates[idx].Prompt, true
}

// exportActive writes the active chat as JSON into the export directory.
func (m *Model) exportActive() {
	chat := m.store.ActiveChat()
	if chat == nil {
		return
	}

	path, err := export.WriteChat(chat, export.JSON{}, m.cfg.ExportDir)
	if err != nil {
		m.statusMsg = "Export failed: " + err.Error()
		return
	}
	m.statusMsg = "Exported to " + path
}

// =============================================================================
// COMPONENT PASSTHROUGH
// =============================================================================

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.composer, cmd = m.composer.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
