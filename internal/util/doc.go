// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the chatai application.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file writes (temp file + fsync + rename)
//   - TruncateRunes: rune-aware truncation with ellipsis
//   - CollapseWhitespace: whitespace normalization for file names
package util
