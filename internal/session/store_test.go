// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatai/internal/model"
)

// fakeCompleter scripts completion results and records requests.
type fakeCompleter struct {
	reply string
	err   error

	calls     int
	gotText   string
	gotModel  string
	gotHist   model.History
	onRequest func()
}

func (f *fakeCompleter) Complete(ctx context.Context, message, modelID string, history model.History) (string, error) {
	f.calls++
	f.gotText = message
	f.gotModel = modelID
	f.gotHist = history
	if f.onRequest != nil {
		f.onRequest()
	}
	return f.reply, f.err
}

// memPersister records every saved snapshot.
type memPersister struct {
	saves int
	last  []*model.Chat
}

func (p *memPersister) SaveChats(chats []*model.Chat) error {
	p.saves++
	p.last = chats
	return nil
}

func newTestStore(completer *fakeCompleter) (*Store, *memPersister) {
	persister := &memPersister{}
	store := New(nil, persister, completer, Options{
		DefaultModel: "meta-llama/Llama-3.2-1B-Instruct",
		ModelsFor: func(category string) []string {
			if category == "Image" {
				return []string{"black-forest-labs/FLUX.1-schnell"}
			}
			return []string{"meta-llama/Llama-3.2-1B-Instruct"}
		},
	})
	return store, persister
}

// =============================================================================
// SEND LIFECYCLE
// =============================================================================

func TestSendCreatesChatLazily(t *testing.T) {
	completer := &fakeCompleter{reply: "Hi there"}
	store, persister := newTestStore(completer)

	require.Nil(t, store.ActiveChat())

	store.SendMessage(context.Background(), "Hello there")

	chat := store.ActiveChat()
	require.NotNil(t, chat)
	assert.Equal(t, "Hello there", chat.Title)
	assert.Equal(t, "Work chats", chat.Folder)

	require.Len(t, store.Chats(), 1)

	require.Equal(t, 2, chat.MessageCount())
	assert.Equal(t, model.SenderUser, chat.Messages[0].Sender)
	assert.Equal(t, "Hello there", chat.Messages[0].Content)
	assert.Equal(t, model.SenderAI, chat.Messages[1].Sender)
	assert.Equal(t, "Hi there", chat.Messages[1].Content)

	assert.False(t, store.Loading())
	assert.Empty(t, store.LastError())
	assert.Greater(t, persister.saves, 0)
}

func TestSendReusesActiveChat(t *testing.T) {
	completer := &fakeCompleter{reply: "a1"}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "q1")
	completer.reply = "a2"
	store.SendMessage(context.Background(), "q2")

	require.Len(t, store.Chats(), 1)
	assert.Equal(t, 4, store.ActiveChat().MessageCount())
}

func TestSendTitleTruncation(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, _ := newTestStore(completer)

	long := strings.Repeat("x", 45)
	store.SendMessage(context.Background(), long)

	want := strings.Repeat("x", 30) + "..."
	assert.Equal(t, want, store.ActiveChat().Title)
}

func TestSendBlankIsNoOp(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, persister := newTestStore(completer)

	store.SendMessage(context.Background(), "")
	store.SendMessage(context.Background(), "   \n\t ")

	assert.Zero(t, completer.calls)
	assert.Empty(t, store.Chats())
	assert.Zero(t, persister.saves)
}

func TestSendWhileLoadingIsNoOp(t *testing.T) {
	completer := &fakeCompleter{reply: "slow"}
	store, _ := newTestStore(completer)

	send, ok := store.BeginSend("first")
	require.True(t, ok)

	// A second send while the first is in flight must be rejected.
	_, ok = store.BeginSend("second")
	assert.False(t, ok)

	store.FinishSend(send.ChatID, "done", nil)

	// After completion sends work again.
	_, ok = store.BeginSend("third")
	assert.True(t, ok)
}

func TestSendHistoryExcludesNewMessageAndErrors(t *testing.T) {
	completer := &fakeCompleter{reply: "a1"}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "q1")

	completer.reply = ""
	completer.err = errors.New("API error 500: boom")
	store.SendMessage(context.Background(), "q2")

	completer.reply = "a3"
	completer.err = nil
	store.SendMessage(context.Background(), "q3")

	// The history sent with q3 holds prior turns only, with the failed
	// exchange's error message filtered out.
	assert.Equal(t, []string{"q1", "q2"}, completer.gotHist.PastUserInputs)
	assert.Equal(t, []string{"a1"}, completer.gotHist.GeneratedResponses)
	assert.Equal(t, "q3", completer.gotText)
	assert.Equal(t, "meta-llama/Llama-3.2-1B-Instruct", completer.gotModel)
}

func TestSendFailureRecordsExactlyOneError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("API error 429: too many requests")}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "hello")

	chat := store.ActiveChat()
	require.NotNil(t, chat)
	require.Equal(t, 2, chat.MessageCount())

	var errCount int
	for _, msg := range chat.Messages {
		if msg.IsError {
			errCount++
		}
	}
	assert.Equal(t, 1, errCount)

	assert.Equal(t, "AI Server Error: API error 429: too many requests", store.LastError())
	assert.Equal(t, store.LastError(), chat.Messages[1].Content)
	assert.False(t, store.Loading())

	store.ClearError()
	assert.Empty(t, store.LastError())
}

func TestFinishSendAfterDeleteDropsResult(t *testing.T) {
	completer := &fakeCompleter{}
	store, _ := newTestStore(completer)

	send, ok := store.BeginSend("hello")
	require.True(t, ok)

	store.DeleteChat(send.ChatID)
	store.FinishSend(send.ChatID, "late reply", nil)

	assert.Empty(t, store.Chats())
	assert.False(t, store.Loading())
	assert.Empty(t, store.LastError())
}

// =============================================================================
// SELECTION AND DELETION
// =============================================================================

func TestSelectAndDeleteChat(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "first chat")
	first := store.ActiveChat().ID

	store.StartNewChat()
	require.Nil(t, store.ActiveChat())

	store.SendMessage(context.Background(), "second chat")
	second := store.ActiveChat().ID
	require.NotEqual(t, first, second)

	store.SelectChat(first)
	assert.Equal(t, first, store.ActiveChat().ID)

	store.DeleteChat(first)
	assert.Nil(t, store.ActiveChat())
	require.Len(t, store.Chats(), 1)
	assert.Equal(t, second, store.Chats()[0].ID)
}

func TestSelectChatKeepsLastError(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "first chat")
	first := store.ActiveChat().ID

	store.StartNewChat()
	completer.err = errors.New("API error 500: boom")
	store.SendMessage(context.Background(), "second chat")
	require.NotEmpty(t, store.LastError())
	wantErr := store.LastError()

	// Switching chats leaves the banner up; only a new chat hides it.
	store.SelectChat(first)
	assert.Equal(t, wantErr, store.LastError())

	store.StartNewChat()
	assert.Empty(t, store.LastError())
}

func TestSelectUnknownChatClearsSelection(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "hello")
	store.SelectChat("no-such-id")
	assert.Nil(t, store.ActiveChat())
}

// =============================================================================
// FILTERS
// =============================================================================

func TestVisibleChatsFolderAndSearch(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, _ := newTestStore(completer)

	store.SendMessage(context.Background(), "grocery list")
	store.SetFolder("Life chats")
	assert.Nil(t, store.ActiveChat(), "switching folders clears the active chat")

	store.SendMessage(context.Background(), "travel plans")
	store.StartNewChat()
	store.SendMessage(context.Background(), "gift ideas")

	// Only the Life chats are visible, newest first.
	visible := store.VisibleChats()
	require.Len(t, visible, 2)
	assert.Equal(t, "gift ideas", visible[0].Title)
	assert.Equal(t, "travel plans", visible[1].Title)

	store.SetSearchQuery("TRAVEL")
	visible = store.VisibleChats()
	require.Len(t, visible, 1)
	assert.Equal(t, "travel plans", visible[0].Title)

	store.SetSearchQuery("nothing matches this")
	assert.Empty(t, store.VisibleChats())

	store.SetFolder("Work chats")
	store.SetSearchQuery("")
	visible = store.VisibleChats()
	require.Len(t, visible, 1)
	assert.Equal(t, "grocery list", visible[0].Title)
}

func TestSetCategoryReselectsModel(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, _ := newTestStore(completer)

	store.SetCategory("Image")
	assert.Equal(t, "Image", store.Category())
	assert.Equal(t, "black-forest-labs/FLUX.1-schnell", store.Model())

	store.SetCategory("Text")
	assert.Equal(t, "meta-llama/Llama-3.2-1B-Instruct", store.Model())

	store.SetModel("custom/model")
	assert.Equal(t, "custom/model", store.Model())
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestMutationsPersist(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	store, persister := newTestStore(completer)

	store.SendMessage(context.Background(), "hello")
	sendSaves := persister.saves
	assert.GreaterOrEqual(t, sendSaves, 2, "optimistic append and completion both persist")

	store.DeleteChat(store.Chats()[0].ID)
	assert.Greater(t, persister.saves, sendSaves)
	assert.Empty(t, persister.last)
}

func TestStoreOverExistingChats(t *testing.T) {
	saved := model.NewChat("restored", "Work chats")
	saved.Append(model.NewUserMessage("restored"))

	store := New([]*model.Chat{saved}, &memPersister{}, &fakeCompleter{reply: "ok"}, Options{})

	visible := store.VisibleChats()
	require.Len(t, visible, 1)
	assert.Equal(t, "restored", visible[0].Title)

	store.SelectChat(saved.ID)
	require.NotNil(t, store.ActiveChat())
	assert.Equal(t, 1, store.ActiveChat().MessageCount())
}
