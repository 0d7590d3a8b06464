// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the chat session state and its mutation rules.
//
// The Store is the single owner of chat state: the chat list, the active
// chat, folder and search filters, the selected category and model, the
// in-flight send flag and the last error. Every mutation persists the chat
// list before returning, so the on-disk state always matches what the user
// saw last.
package session
