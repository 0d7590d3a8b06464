// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the main chatai TUI program.
//
// The layout mirrors the app's three-pane design: a sidebar with folders,
// search and the chat list; a main pane showing either the welcome screen
// or the active conversation; and a composer at the bottom. All state
// mutations go through the session store, the bubbletea model only holds
// view state.
package chat
