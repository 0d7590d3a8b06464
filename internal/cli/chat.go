// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the chatai CLI.
//
// Handles the "chatai chat" command which provides a line-based REPL for
// conversing with the hosted model, for terminals where the full TUI is
// unwanted.
//
// Interactive Commands (during chat):
//   /help, /h           Show available commands
//   /new, /n            Start a new chat
//   /list, /l           List chats in the current folder
//   /open N             Open chat N from the list
//   /folder [name]      Show or switch folder
//   /model [name]       Show or switch model
//   /export             Export the current chat as JSON
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"chatai/internal/config"
	"chatai/internal/export"
	"chatai/internal/hf"
	"chatai/internal/model"
	"chatai/internal/session"
	"chatai/internal/storage"
	"chatai/internal/ui/styles"
	"chatai/internal/util"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.DarkPalette.Accent).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.DarkPalette.TextSecondary)

	aiStyle = lipgloss.NewStyle().
		Foreground(styles.DarkPalette.TextPrimary)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.DarkPalette.Error).
			Bold(true)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// replInput provides input history and line editing for the chat REPL.
type replInput struct {
	line        *liner.State
	historyFile string
}

func newReplInput() *replInput {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	r := &replInput{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}

	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}

	return r
}

func (r *replInput) read(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *replInput) close() {
	if err := config.EnsureConfigDir(); err == nil {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		}
	}
	r.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat runs the interactive chat REPL.
func HandleChat(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !cfg.IsAPIKeyConfigured() {
		fmt.Println(errorStyle.Render("No API key configured."))
		fmt.Println(infoStyle.Render("Run `chatai setup` or set HUGGINGFACE_API_KEY."))
		return nil
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

	input := newReplInput()
	defer input.close()

	fmt.Println(promptStyle.Render("chatai " + Version))
	fmt.Println(infoStyle.Render("Model: " + modelID + "  ·  /help for commands, Ctrl+D to exit"))
	fmt.Println()

	for {
		text, err := input.read(promptStyle.Render("you> "))
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return nil
			}
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "/") {
			if quit := runReplCommand(store, cfg, text); quit {
				return nil
			}
			continue
		}

		store.SendMessage(context.Background(), text)

		if errText := store.LastError(); errText != "" {
			fmt.Println(errorStyle.Render(errText))
			store.ClearError()
			continue
		}

		if chat := store.ActiveChat(); chat != nil {
			if last := chat.LastMessage(); last != nil && last.Sender == model.SenderAI {
				fmt.Println(aiStyle.Render(last.Content))
			}
		}
		fmt.Println()
	}
}

// runReplCommand executes a /command. Returns true when the REPL should exit.
func runReplCommand(store *session.Store, cfg *config.Config, text string) bool {
	fields := strings.Fields(text)
	cmd := fields[0]
	arg := strings.TrimSpace(strings.TrimPrefix(text, cmd))

	switch cmd {
	case "/quit", "/q", "/exit":
		return true

	case "/help", "/h":
		fmt.Println(infoStyle.Render(`Commands:
  /new, /n            Start a new chat
  /list, /l           List chats in the current folder
  /open N             Open chat N from the list
  /folder [name]      Show or switch folder
  /model [name]       Show or switch model
  /export             Export the current chat as JSON
  /quit, /q           Exit`))

	case "/new", "/n":
		store.StartNewChat()
		fmt.Println(infoStyle.Render("Started a new chat."))

	case "/list", "/l":
		visible := store.VisibleChats()
		if len(visible) == 0 {
			fmt.Println(infoStyle.Render("No chats in " + store.ActiveFolder() + "."))
			break
		}
		for i, chat := range visible {
			title := util.PadRight(util.TruncateRunes(chat.Title, 34), 34)
			fmt.Printf("%s %s %s\n",
				promptStyle.Render(strconv.Itoa(i+1)+"."),
				title,
				infoStyle.Render(chat.Timestamp.Format("2006-01-02 15:04")))
		}

	case "/open":
		visible := store.VisibleChats()
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(visible) {
			fmt.Println(errorStyle.Render("Usage: /open N (see /list)"))
			break
		}
		store.SelectChat(visible[n-1].ID)
		chat := store.ActiveChat()
		fmt.Println(infoStyle.Render("Opened: " + chat.Title))
		for _, msg := range chat.Messages {
			label := promptStyle.Render(msg.Sender.DisplayName() + ":")
			fmt.Println(label, msg.Content)
		}

	case "/folder":
		if arg == "" {
			fmt.Println(infoStyle.Render("Folder: " + store.ActiveFolder()))
			fmt.Println(infoStyle.Render("Available: " + strings.Join(cfg.FolderNames(), ", ")))
			break
		}
		store.SetFolder(arg)
		fmt.Println(infoStyle.Render("Switched to " + arg + "."))

	case "/model":
		if arg == "" {
			fmt.Println(infoStyle.Render("Model: " + store.Model()))
			break
		}
		store.SetModel(arg)
		fmt.Println(infoStyle.Render("Model set to " + arg + "."))

	case "/export":
		chat := store.ActiveChat()
		if chat == nil {
			fmt.Println(errorStyle.Render("No active chat to export."))
			break
		}
		path, err := export.WriteChat(chat, export.JSON{}, cfg.ExportDir)
		if err != nil {
			fmt.Println(errorStyle.Render("Export failed: " + err.Error()))
			break
		}
		fmt.Println(infoStyle.Render("Exported to " + path))

	default:
		fmt.Println(errorStyle.Render("Unknown command " + cmd + " (try /help)"))
	}

	return false
}
