// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chats to files for sharing outside the app.
//
// JSON is the primary format and mirrors the persisted chat shape;
// Markdown is a readable transcript. File names derive from the chat
// title with whitespace runs replaced by underscores.
package export
