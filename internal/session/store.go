// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"sort"
	"strings"
	"sync"

	"chatai/internal/errmsg"
	"chatai/internal/model"
)

// =============================================================================
// DEPENDENCIES
// =============================================================================

// Persister saves the chat list after each mutation.
type Persister interface {
	SaveChats(chats []*model.Chat) error
}

// Completer produces an assistant reply for a message with history.
type Completer interface {
	Complete(ctx context.Context, message, modelID string, history model.History) (string, error)
}

// =============================================================================
// STORE
// =============================================================================

// Options configures a new Store.
type Options struct {
	// ActiveFolder is the initially selected folder.
	ActiveFolder string

	// DefaultCategory is the initially selected category.
	DefaultCategory string

	// DefaultModel is the initially selected model.
	DefaultModel string

	// ModelsFor returns the model list for a category. Used to re-derive
	// the selected model when the category changes.
	ModelsFor func(category string) []string
}

// Store owns all chat session state. All methods are safe for concurrent
// use; bubbletea drives it from one goroutine while completions finish on
// another.
type Store struct {
	mu sync.Mutex

	persister Persister
	completer Completer

	chats        []*model.Chat
	activeChatID string

	activeFolder string
	searchQuery  string
	category     string
	modelID      string
	modelsFor    func(string) []string

	loading   bool
	lastError string
}

// New creates a store over an existing chat list.
func New(chats []*model.Chat, persister Persister, completer Completer, opts Options) *Store {
	if opts.ActiveFolder == "" {
		opts.ActiveFolder = "Work chats"
	}
	if opts.DefaultCategory == "" {
		opts.DefaultCategory = "All"
	}

	return &Store{
		persister:    persister,
		completer:    completer,
		chats:        chats,
		activeFolder: opts.ActiveFolder,
		category:     opts.DefaultCategory,
		modelID:      opts.DefaultModel,
		modelsFor:    opts.ModelsFor,
	}
}

// =============================================================================
// SEND LIFECYCLE
// =============================================================================

// Send describes an in-flight completion request.
type Send struct {
	ChatID  string
	Text    string
	Model   string
	History model.History
}

// BeginSend starts the optimistic half of a send: it creates the chat if
// none is active, appends the user message, flips the loading flag and
// returns what the completion call needs. The second return is false when
// the send is a no-op (blank text or a send already in flight).
//
// The returned history reflects the conversation BEFORE the new user
// message; the message itself travels separately.
func (s *Store) BeginSend(text string) (Send, bool) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if text == "" || s.loading {
		return Send{}, false
	}

	chat := s.activeChatLocked()
	if chat == nil {
		chat = model.NewChat(text, s.activeFolder)
		s.chats = append(s.chats, chat)
		s.activeChatID = chat.ID
	}

	history := chat.History()

	chat.Append(model.NewUserMessage(text))
	s.loading = true
	s.lastError = ""
	s.persistLocked()

	return Send{
		ChatID:  chat.ID,
		Text:    text,
		Model:   s.modelID,
		History: history,
	}, true
}

// FinishSend applies a completion result. A reply lands as an assistant
// message, a failure as an error-flagged message plus the banner text. The
// target chat is addressed by ID: if it was deleted mid-flight the result
// is dropped silently. Loading clears either way.
func (s *Store) FinishSend(chatID, reply string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		friendly := errmsg.Friendly(err)
		s.lastError = friendly
		s.appendByIDLocked(chatID, model.NewErrorMessage(friendly))
		return
	}

	s.appendByIDLocked(chatID, model.NewAIMessage(reply))
}

// SendMessage runs the whole send lifecycle synchronously. The TUI splits
// this into BeginSend and FinishSend around an async command; the REPL and
// tests use this form.
func (s *Store) SendMessage(ctx context.Context, text string) {
	send, ok := s.BeginSend(text)
	if !ok {
		return
	}

	reply, err := s.completer.Complete(ctx, send.Text, send.Model, send.History)
	s.FinishSend(send.ChatID, reply, err)
}

// appendByIDLocked appends msg to the chat with the given ID and persists.
// A missing chat means it was deleted while the request was in flight.
func (s *Store) appendByIDLocked(chatID string, msg *model.Message) {
	for _, chat := range s.chats {
		if chat.ID == chatID {
			chat.Append(msg)
			s.persistLocked()
			return
		}
	}
}

// =============================================================================
// CHAT SELECTION
// =============================================================================

// SelectChat makes a chat active. Selecting an unknown ID clears the
// selection back to the welcome screen. The last error sticks until a
// new chat is started, a send begins, or it is dismissed.
func (s *Store) SelectChat(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, chat := range s.chats {
		if chat.ID == id {
			s.activeChatID = id
			return
		}
	}
	s.activeChatID = ""
}

// StartNewChat clears the active chat so the next send creates a fresh one.
func (s *Store) StartNewChat() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeChatID = ""
	s.lastError = ""
}

// DeleteChat removes a chat. Deleting the active chat returns the UI to
// the welcome screen; an in-flight completion for it will be dropped.
func (s *Store) DeleteChat(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, chat := range s.chats {
		if chat.ID == id {
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			if s.activeChatID == id {
				s.activeChatID = ""
			}
			s.persistLocked()
			return
		}
	}
}

// =============================================================================
// FILTERS
// =============================================================================

// SetFolder switches the sidebar folder and clears the active chat.
func (s *Store) SetFolder(folder string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeFolder = folder
	s.activeChatID = ""
}

// SetSearchQuery updates the sidebar title filter.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
}

// SetCategory switches the model category and re-derives the selected
// model from the category's list.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.category = category
	if s.modelsFor != nil {
		if models := s.modelsFor(category); len(models) > 0 {
			s.modelID = models[0]
		}
	}
}

// SetModel selects a model directly.
func (s *Store) SetModel(modelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.modelID = modelID
}

// =============================================================================
// VIEWS
// =============================================================================

// VisibleChats returns the sidebar list: chats in the active folder whose
// title contains the search query (case-insensitive), newest first.
func (s *Store) VisibleChats() []*model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(s.searchQuery)

	var visible []*model.Chat
	for _, chat := range s.chats {
		if chat.Folder != s.activeFolder {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(chat.Title), query) {
			continue
		}
		visible = append(visible, chat)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Timestamp.After(visible[j].Timestamp)
	})

	return visible
}

// ActiveChat returns the active chat, or nil when none is selected.
func (s *Store) ActiveChat() *model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeChatLocked()
}

// Chats returns all chats regardless of folder.
func (s *Store) Chats() []*model.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Chat, len(s.chats))
	copy(out, s.chats)
	return out
}

// ActiveFolder returns the selected sidebar folder.
func (s *Store) ActiveFolder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeFolder
}

// Category returns the selected model category.
func (s *Store) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

// Model returns the selected model identifier.
func (s *Store) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelID
}

// SearchQuery returns the sidebar title filter.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// Loading reports whether a completion is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the banner text for the last failed send, or empty.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// ClearError dismisses the error banner.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = ""
}

// =============================================================================
// INTERNAL
// =============================================================================

func (s *Store) activeChatLocked() *model.Chat {
	if s.activeChatID == "" {
		return nil
	}
	for _, chat := range s.chats {
		if chat.ID == s.activeChatID {
			return chat
		}
	}
	return nil
}

// persistLocked saves the chat list. Persistence failures are swallowed:
// the in-memory session stays usable and the next mutation retries.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	_ = s.persister.SaveChats(s.chats)
}
