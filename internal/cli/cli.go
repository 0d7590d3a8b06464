// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides argument parsing and the non-TUI command handlers
// for chatai: the line-based chat REPL, first-run setup and chat export.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdSetup
	CmdExport
	CmdVersion
	CmdHelp
)

// Args holds parsed command line options.
type Args struct {
	// Model overrides the configured default model.
	Model string

	// Format selects the export format ("json" or "markdown").
	Format string

	// OutDir overrides the export directory.
	OutDir string

	// Positional holds the remaining positional arguments.
	Positional []string
}

// Parse reads os.Args and returns the command to run with its options.
func Parse() (Command, Args) {
	argv := os.Args[1:]
	if len(argv) == 0 {
		return CmdTUI, Args{}
	}

	cmd := CmdTUI
	switch argv[0] {
	case "chat":
		cmd = CmdChat
		argv = argv[1:]
	case "setup":
		cmd = CmdSetup
		argv = argv[1:]
	case "export":
		cmd = CmdExport
		argv = argv[1:]
	case "version", "--version", "-V":
		return CmdVersion, Args{}
	case "help", "--help", "-h":
		return CmdHelp, Args{}
	}

	var args Args
	i := 0
	for i < len(argv) {
		arg := argv[i]

		switch {
		case arg == "--model" || arg == "-m":
			if i+1 < len(argv) {
				args.Model = argv[i+1]
				i += 2
				continue
			}
			i++
		case strings.HasPrefix(arg, "--model="):
			args.Model = strings.TrimPrefix(arg, "--model=")
			i++
		case arg == "--format" || arg == "-f":
			if i+1 < len(argv) {
				args.Format = argv[i+1]
				i += 2
				continue
			}
			i++
		case strings.HasPrefix(arg, "--format="):
			args.Format = strings.TrimPrefix(arg, "--format=")
			i++
		case arg == "--out" || arg == "-o":
			if i+1 < len(argv) {
				args.OutDir = argv[i+1]
				i += 2
				continue
			}
			i++
		case strings.HasPrefix(arg, "--out="):
			args.OutDir = strings.TrimPrefix(arg, "--out=")
			i++
		default:
			args.Positional = append(args.Positional, arg)
			i++
		}
	}

	return cmd, args
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("chatai %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// PrintHelp prints usage information.
func PrintHelp() {
	fmt.Print(`chatai - chat with hosted AI models from your terminal

Usage:
  chatai                 Start the TUI (default)
  chatai chat            Start a line-based chat REPL
  chatai setup           Configure the Hugging Face API key
  chatai export [title]  Export chats to files
  chatai version         Print version information

Flags:
  -m, --model NAME    Use a specific model
  -f, --format NAME   Export format: json (default) or markdown
  -o, --out DIR       Export directory

Environment:
  HUGGINGFACE_API_KEY   API key for the Hugging Face router
  HF_TOKEN              Fallback API key variable
`)
}
