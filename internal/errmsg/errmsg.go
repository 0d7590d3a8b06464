// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package errmsg maps technical API errors to user-friendly messages.
// It keeps the UI readable and never exposes raw error details to users.
package errmsg

import "strings"

// =============================================================================
// ERROR PATTERN MATCHER
// =============================================================================

// Pattern matches substrings in a raw error message and produces a
// user-facing message. When Rewrite is set it receives the raw message
// and builds the output; otherwise Message is returned verbatim.
type Pattern struct {
	// Substrings that trigger the pattern (any match, case-sensitive)
	Contains []string

	// Message shown when the pattern matches
	Message string

	// Rewrite builds the message from the raw error (optional)
	Rewrite func(raw string) string
}

// Fallback is shown when no pattern matches.
const Fallback = "Something went wrong. Please try again."

// patterns are checked in order. The first match wins, so specific
// patterns must come before general ones.
var patterns = []Pattern{
	{
		Contains: []string{"401", "auth"},
		Message:  "API Key invalid or expired. Check your .env file.",
	},
	{
		Contains: []string{"404"},
		Message:  "Model not found or New API endpoint is not yet available in your region.",
	},
	{
		Contains: []string{"400"},
		Message:  "Bad request to AI. The input format might be incorrect.",
	},
	{
		Contains: []string{"API error"},
		Rewrite:  func(raw string) string { return "AI Server Error: " + raw },
	},
	{
		Contains: []string{"503", "loading"},
		Message:  "The AI model is warming up. Please try again in 10 seconds.",
	},
	{
		Contains: []string{"429", "rate"},
		Message:  "Too many requests. Please wait a moment before trying again.",
	},
	{
		Contains: []string{"Network", "fetch", "Failed to fetch", "connection refused", "no such host"},
		Message:  "Connection blocked. Check your internet, or check if a VPN/Firewall is blocking Hugging Face.",
	},
	{
		Contains: []string{"500", "502"},
		Message:  "The AI service is temporarily unavailable. Please try again later.",
	},
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Friendly converts an error into a user-facing message.
func Friendly(err error) string {
	if err == nil {
		return Fallback
	}
	return FriendlyMessage(err.Error())
}

// FriendlyMessage converts a raw error string into a user-facing message.
func FriendlyMessage(raw string) string {
	if raw == "" {
		return Fallback
	}

	for _, p := range patterns {
		for _, sub := range p.Contains {
			if strings.Contains(raw, sub) {
				if p.Rewrite != nil {
					return p.Rewrite(raw)
				}
				return p.Message
			}
		}
	}

	return Fallback
}
