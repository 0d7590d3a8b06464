// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatai/internal/config"
	"chatai/internal/model"
	"chatai/internal/session"
	"chatai/internal/storage"
)

type scriptedCompleter struct {
	reply string
	err   error
}

func (c *scriptedCompleter) Complete(ctx context.Context, message, modelID string, history model.History) (string, error) {
	return c.reply, c.err
}

func newTestModel(t *testing.T, completer session.Completer) Model {
	t.Helper()

	db, err := storage.NewWithDir(t.TempDir())
	require.NoError(t, err)

	cfg := config.Default()
	cfg.APIKey = "hf_test_key"
	cfg.ExportDir = t.TempDir()

	store := session.New(nil, db, completer, session.Options{
		ActiveFolder: "Work chats",
		DefaultModel: cfg.DefaultModel,
		ModelsFor:    cfg.ModelsForCategory,
	})

	m := New(store, cfg, db)
	m.width = 100
	m.height = 30
	m.layout()
	return m
}

func TestWindowSizeMakesReady(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := updated.(Model)
	assert.True(t, got.ready)
	assert.NotEmpty(t, got.View())
}

func TestSendFinishedAppliesReply(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{reply: "Hi there"})

	send, ok := m.store.BeginSend("Hello there")
	require.True(t, ok)

	updated, _ := m.Update(session.SendFinishedMsg{ChatID: send.ChatID, Reply: "Hi there"})
	got := updated.(Model)

	chat := got.store.ActiveChat()
	require.NotNil(t, chat)
	assert.Equal(t, 2, chat.MessageCount())
	assert.False(t, got.store.Loading())
}

func TestSendFinishedWithError(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{})

	send, ok := m.store.BeginSend("Hello there")
	require.True(t, ok)

	updated, _ := m.Update(session.SendFinishedMsg{
		ChatID: send.ChatID,
		Err:    errors.New("API error 429: too many requests"),
	})
	got := updated.(Model)

	assert.Equal(t, "AI Server Error: API error 429: too many requests", got.store.LastError())
}

func TestConfigReloadedSwapsConfig(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{})
	m.folderIdx = 3
	m.categoryIdx = 5

	updated := config.Default()
	updated.APIKey = "hf_reloaded_key"
	updated.DefaultModel = "some/other-model"
	updated.Folders = updated.Folders[:2]
	updated.Categories = updated.Categories[:3]

	next, _ := m.Update(ConfigReloadedMsg{Cfg: updated})
	got := next.(Model)

	// The swap writes through the shared pointer, so everything holding
	// the original *Config sees the new values.
	assert.Equal(t, "hf_reloaded_key", m.cfg.APIKey)
	assert.Equal(t, "some/other-model", got.cfg.DefaultModel)

	// Cursor positions survive a reload only while they stay in range.
	assert.Equal(t, 0, got.folderIdx)
	assert.Equal(t, 0, got.categoryIdx)
}

func TestTemplatePromptFillsComposer(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{})

	prompt, ok := m.templatePrompt("1")
	require.True(t, ok)
	assert.Equal(t, "Write a blog post about the future of AI in 2025.", prompt)

	_, ok = m.templatePrompt("9")
	assert.False(t, ok)
}

func TestCycleCategoryUpdatesModel(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{})

	// All -> Text -> Image
	m.cycleCategory(1)
	m.cycleCategory(1)
	assert.Equal(t, "Image", m.store.Category())
	assert.Equal(t, "black-forest-labs/FLUX.1-schnell", m.store.Model())
}

func TestCycleFolderClearsActiveChat(t *testing.T) {
	completer := &scriptedCompleter{reply: "ok"}
	m := newTestModel(t, completer)

	m.store.SendMessage(context.Background(), "hello")
	require.NotNil(t, m.store.ActiveChat())

	m.cycleFolder()
	assert.Nil(t, m.store.ActiveChat())
	assert.Equal(t, "Life chats", m.store.ActiveFolder())
}

func TestExportActiveWritesFile(t *testing.T) {
	completer := &scriptedCompleter{reply: "ok"}
	m := newTestModel(t, completer)

	m.store.SendMessage(context.Background(), "export me")
	m.exportActive()

	assert.Contains(t, m.statusMsg, "export_me.json")
}

func TestExportWithoutActiveChatIsNoOp(t *testing.T) {
	m := newTestModel(t, &scriptedCompleter{})
	m.exportActive()
	assert.Empty(t, m.statusMsg)
}
