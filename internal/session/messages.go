// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// BUBBLETEA INTEGRATION
// =============================================================================

// SendFinishedMsg reports a completed (or failed) completion request.
type SendFinishedMsg struct {
	ChatID string
	Reply  string
	Err    error
}

// CompleteCmd runs the completion for an in-flight send and delivers the
// result as a SendFinishedMsg. The update loop hands the message to
// FinishSend.
func (s *Store) CompleteCmd(ctx context.Context, send Send) tea.Cmd {
	return func() tea.Msg {
		reply, err := s.completer.Complete(ctx, send.Text, send.Model, send.History)
		return SendFinishedMsg{ChatID: send.ChatID, Reply: reply, Err: err}
	}
}
