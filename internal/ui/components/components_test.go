// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatai/internal/model"
	"chatai/internal/ui/styles"
)

func TestTemplatesFor(t *testing.T) {
	all := TemplatesFor("All")
	require.Len(t, all, 3)
	assert.Equal(t, "Content Creation", all[0].Title)

	text := TemplatesFor("Text")
	require.Len(t, text, 3)
	assert.Equal(t, "Creative Writing", text[0].Title)

	// Unknown categories fall back to All.
	assert.Equal(t, all, TemplatesFor("Nope"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "toolon…", truncate("toolongtitle", 7))
	assert.Equal(t, "", truncate("anything", 0))
}

func TestSidebarRender(t *testing.T) {
	chat := model.NewChat("grocery list", "Work chats")

	sidebar := Sidebar{
		Theme: styles.NewTheme("dark"),
		Width: 28,
		Folders: []FolderEntry{
			{Name: "Work chats", Color: "#a3e635"},
			{Name: "Life chats", Color: "#38bdf8"},
		},
		ActiveFolder: "Work chats",
		Chats:        []*model.Chat{chat},
		Selected:     0,
	}

	out := sidebar.Render()
	assert.Contains(t, out, "Work chats")
	assert.Contains(t, out, "grocery list")
}

func TestWelcomeRender(t *testing.T) {
	welcome := Welcome{
		Theme:        styles.NewTheme("dark"),
		Width:        100,
		ActiveFolder: "Work chats",
		Categories:   []string{"All", "Text"},
		Selected:     "All",
	}

	out := welcome.Render()
	assert.Contains(t, out, "How can i help you today?")
	assert.Contains(t, out, "Content Creation")
	assert.Contains(t, out, "[1]")
}

func TestErrorBarRender(t *testing.T) {
	bar := ErrorBar{Theme: styles.NewTheme("dark"), Width: 60}

	assert.Empty(t, bar.Render(""))
	assert.Contains(t, bar.Render("Something went wrong. Please try again."), "Something went wrong")
}

func TestMessageRenderer(t *testing.T) {
	r := NewMessageRenderer(styles.NewTheme("dark"), 80)

	user := model.NewUserMessage("hello")
	assert.Contains(t, r.Render(user), "hello")

	errMsg := model.NewErrorMessage("Something went wrong. Please try again.")
	assert.Contains(t, r.Render(errMsg), "Something went wrong")

	transcript := r.RenderAll([]*model.Message{user, errMsg})
	assert.Contains(t, transcript, "hello")
}
