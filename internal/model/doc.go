// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for chats and messages.
//
// # Key Types
//
//   - Chat: a single conversation thread with title, folder, and messages
//   - Message: one message with sender, content, and error flag
//   - History: the parallel past-inputs/responses lists sent to the API
//   - Sender: message sender enumeration (user, ai)
//
// # Usage
//
// Create a chat from the first message and append to it:
//
//	chat := model.NewChat("Explain goroutines to me", "Work chats")
//	chat.Append(model.NewUserMessage("Explain goroutines to me"))
//	chat.Append(model.NewAIMessage("A goroutine is..."))
package model
