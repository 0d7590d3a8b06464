// chatai - a terminal chat client for hosted AI models.
//
// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chatai/internal/cli"
	"chatai/internal/config"
	"chatai/internal/hf"
	"chatai/internal/session"
	"chatai/internal/storage"
	"chatai/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdChat:
		err = cli.HandleChat(args)
	case cli.CmdSetup:
		err = cli.HandleSetup(args)
	case cli.CmdExport:
		err = cli.HandleExport(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintHelp()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runTUI wires the store, client and persistence together and starts the
// bubbletea program.
func runTUI(args cli.Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := storage.NewWithDir(cfg.DataDir)
	if err != nil {
		return err
	}

	client := hf.NewClient(cfg.APIKey,
		hf.WithBaseURL(cfg.BaseURL),
		hf.WithMaxTokens(cfg.MaxTokens),
	)

	modelID := cfg.DefaultModel
	if args.Model != "" {
		modelID = args.Model
	}

	store := session.New(db.LoadChats(), db, client, session.Options{
		ActiveFolder: cfg.Folders[0].Name,
		DefaultModel: modelID,
		ModelsFor:    cfg.ModelsForCategory,
	})

	program := tea.NewProgram(
		chat.New(store, cfg, db),
		tea.WithAltScreen(),
	)

	// Reload config edits live so folder and model catalog changes show
	// up without a restart. The new config is delivered as a message so
	// the swap happens on the program goroutine, not the watcher's.
	if watcher, werr := config.NewWatcher(func(updated *config.Config) {
		program.Send(chat.ConfigReloadedMsg{Cfg: updated})
	}); werr == nil {
		if werr := watcher.Watch(); werr != nil {
			watcher.Close()
		} else {
			defer watcher.Close()
		}
	}

	_, err = program.Run()
	return err
}
