// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"chatai/internal/model"
	"chatai/internal/util"
)

// =============================================================================
// KEYS
// =============================================================================

const (
	// KeyChats holds the full chat list as a JSON array.
	KeyChats = "ai_chats"

	// KeyTheme holds the UI theme preference ("dark" or "light").
	KeyTheme = "theme"
)

// DefaultTheme is used when no theme preference has been saved.
const DefaultTheme = "dark"

// =============================================================================
// STORE
// =============================================================================

// Store persists values as JSON files, one file per key.
type Store struct {
	// BaseDir is the directory holding the store files.
	// Default: ~/.chatai/
	BaseDir string
}

// New creates a store rooted at ~/.chatai.
func New() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Join(homeDir, ".chatai")

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &Store{BaseDir: baseDir}, nil
}

// NewWithDir creates a store rooted at a custom directory.
func NewWithDir(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &Store{BaseDir: baseDir}, nil
}

// =============================================================================
// RAW KEY ACCESS
// =============================================================================

// Put marshals v to JSON and writes it under key.
func (s *Store) Put(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	return util.AtomicWriteFile(s.filePath(key), data, 0644)
}

// Get reads the value stored under key into v.
// Returns ErrKeyNotFound if the key has never been written.
func (s *Store) Get(key string, v any) error {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}
		return err
	}

	return json.Unmarshal(data, v)
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.filePath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// filePath returns the file path backing a key.
func (s *Store) filePath(key string) string {
	return filepath.Join(s.BaseDir, key+".json")
}

// =============================================================================
// CHAT PERSISTENCE
// =============================================================================

// SaveChats persists the full chat list.
func (s *Store) SaveChats(chats []*model.Chat) error {
	if chats == nil {
		chats = []*model.Chat{}
	}
	return s.Put(KeyChats, chats)
}

// LoadChats returns the persisted chat list.
// A missing or unreadable store yields an empty list, never an error:
// first launch and a corrupted file both start the app fresh.
func (s *Store) LoadChats() []*model.Chat {
	var chats []*model.Chat
	if err := s.Get(KeyChats, &chats); err != nil {
		return []*model.Chat{}
	}
	if chats == nil {
		return []*model.Chat{}
	}
	return chats
}

// =============================================================================
// THEME PERSISTENCE
// =============================================================================

// SaveTheme persists the theme preference.
func (s *Store) SaveTheme(theme string) error {
	return s.Put(KeyTheme, theme)
}

// LoadTheme returns the persisted theme, or DefaultTheme when unset.
func (s *Store) LoadTheme() string {
	var theme string
	if err := s.Get(KeyTheme, &theme); err != nil {
		return DefaultTheme
	}
	if theme != "dark" && theme != "light" {
		return DefaultTheme
	}
	return theme
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrKeyNotFound is returned when a key has never been written.
// Use errors.Is(err, ErrKeyNotFound) to check for this error.
var ErrKeyNotFound = &StoreError{Message: "key not found"}

// StoreError represents a storage-related error.
type StoreError struct {
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing store errors.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
