// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, DarkPalette, PaletteFor("dark"))
	assert.Equal(t, LightPalette, PaletteFor("light"))
	// Unknown modes fall back to dark.
	assert.Equal(t, DarkPalette, PaletteFor(""))
	assert.Equal(t, DarkPalette, PaletteFor("solarized"))
}

func TestNewTheme(t *testing.T) {
	dark := NewTheme("dark")
	assert.Equal(t, "dark", dark.Mode)
	assert.Equal(t, DarkPalette, dark.Palette)

	light := NewTheme("light")
	assert.Equal(t, "light", light.Mode)
	assert.Equal(t, LightPalette, light.Palette)
}

func TestToggled(t *testing.T) {
	dark := NewTheme("dark")
	assert.Equal(t, "light", dark.Toggled().Mode)
	assert.Equal(t, "dark", dark.Toggled().Toggled().Mode)
}
