// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// export_cmd.go - Chat export command handler for the chatai CLI.
//
// Handles "chatai export": exports every chat, or only those whose title
// contains the given text, to the export directory.
package cli

import (
	"fmt"
	"strings"

	"chatai/internal/config"
	"chatai/internal/export"
	"chatai/internal/storage"
)

// HandleExport exports chats to files.
func HandleExport(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := storage.NewWithDir(cfg.DataDir)
	if err != nil {
		return err
	}

	chats := db.LoadChats()
	if len(chats) == 0 {
		fmt.Println(infoStyle.Render("No chats to export."))
		return nil
	}

	outDir := cfg.ExportDir
	if args.OutDir != "" {
		outDir = args.OutDir
	}

	exporter := export.ForFormat(args.Format)

	filter := ""
	if len(args.Positional) > 0 {
		filter = strings.ToLower(strings.Join(args.Positional, " "))
	}

	var exported int
	for _, chat := range chats {
		if filter != "" && !strings.Contains(strings.ToLower(chat.Title), filter) {
			continue
		}

		path, err := export.WriteChat(chat, exporter, outDir)
		if err != nil {
			fmt.Println(errorStyle.Render("Failed to export " + chat.Title + ": " + err.Error()))
			continue
		}
		fmt.Println(infoStyle.Render("Exported " + path))
		exported++
	}

	if exported == 0 {
		fmt.Println(infoStyle.Render("No chats matched."))
	}
	return nil
}
