package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	// Pin the color profile so rendered output is stable regardless of the
	// terminal the tests run in.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderInfo{Version: "v1.0.0", Tagline: "GNOME monitor switcher"})

	assert.Contains(t, out, "gms")
	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "GNOME monitor switcher")
	assert.Contains(t, out, "━")
}

func TestRenderHeader_Minimal(t *testing.T) {
	out := RenderHeader(HeaderInfo{})

	assert.Contains(t, out, "gms")
	assert.NotContains(t, out, "v0")
}

func TestRenderTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "ID", Width: 8},
		{Title: "NAME", Width: 20},
	}
	rows := [][]string{
		{"DP-2", "ASUS 34\" UltraWide"},
		{"eDP-1", "Built-in Laptop Display"},
	}

	out := RenderTable(columns, rows)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "DP-2")
	assert.Contains(t, out, "eDP-1")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notty")
	assert.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f), "a regular file is not a terminal")
}
