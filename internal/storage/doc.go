// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists chats and UI preferences as JSON files on disk.
//
// The store is keyed: each key maps to one JSON file under the base
// directory. Chats live under the "ai_chats" key as a single array, the
// theme preference under "theme". Writes are atomic so a crash mid-save
// never leaves a truncated file behind.
package storage
