// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// setup.go - First-run configuration for the chatai CLI.
//
// Handles the "chatai setup" command: prompts for the Hugging Face API
// key without echoing it and writes the config file.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"chatai/internal/config"
	"chatai/internal/hf"
)

// HandleSetup runs the interactive setup flow.
func HandleSetup(args Args) error {
	fmt.Println(promptStyle.Render("chatai setup"))
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.IsAPIKeyConfigured() {
		fmt.Println(infoStyle.Render("An API key is already configured. Enter a new one to replace it, or press enter to keep it."))
	} else {
		fmt.Println(infoStyle.Render("Get a token at https://huggingface.co/settings/tokens"))
	}

	fmt.Print("Hugging Face API key: ")

	var key string
	if term.IsTerminal(int(os.Stdin.Fd())) {
		// No echo for the key itself.
		keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		key = string(keyBytes)
	} else {
		// Piped input, e.g. `echo $KEY | chatai setup`.
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		key = line
	}

	key = strings.TrimSpace(key)

	if key == "" {
		if cfg.IsAPIKeyConfigured() {
			fmt.Println(infoStyle.Render("Keeping the existing key."))
			return nil
		}
		fmt.Println(errorStyle.Render("No key entered, nothing saved."))
		return nil
	}

	if !hf.IsKeyConfigured(key) {
		fmt.Println(errorStyle.Render("That looks like the sample placeholder, not a real key."))
		return nil
	}

	cfg.APIKey = key

	if args.Model != "" {
		cfg.DefaultModel = args.Model
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	path, _ := config.ConfigPathTOML()
	fmt.Println(infoStyle.Render("Saved to " + path))
	fmt.Println(infoStyle.Render("Run `chatai` to start chatting."))
	return nil
}
