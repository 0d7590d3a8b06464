// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseArgs(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"chatai"}, argv...)
	defer func() { os.Args = orig }()
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, args := parseArgs(t)
	assert.Equal(t, CmdTUI, cmd)
	assert.Empty(t, args.Model)
}

func TestParseSubcommands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"chat"}, CmdChat},
		{[]string{"setup"}, CmdSetup},
		{[]string{"export"}, CmdExport},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
	}

	for _, tt := range tests {
		cmd, _ := parseArgs(t, tt.argv...)
		assert.Equal(t, tt.want, cmd, "argv %v", tt.argv)
	}
}

func TestParseFlags(t *testing.T) {
	cmd, args := parseArgs(t, "chat", "--model", "google/gemma-2-2b-it")
	assert.Equal(t, CmdChat, cmd)
	assert.Equal(t, "google/gemma-2-2b-it", args.Model)

	_, args = parseArgs(t, "chat", "--model=mistralai/Mistral-7B-Instruct-v0.3")
	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", args.Model)

	_, args = parseArgs(t, "export", "-f", "markdown", "-o", "/tmp/out", "trip")
	assert.Equal(t, "markdown", args.Format)
	assert.Equal(t, "/tmp/out", args.OutDir)
	assert.Equal(t, []string{"trip"}, args.Positional)
}
