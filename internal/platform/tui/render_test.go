package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.ColorOrange)
	s.SetColored(3, 0, '█', core.ColorOrange)
	s.DrawTextColored(0, 1, "hud", core.ColorBrightYellow)

	// A renderer on a non-terminal has no colors and emits the text unchanged.
	r := lipgloss.NewRenderer(io.Discard)

	if got, want := NewPalette(r).RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestPaletteUnknownColor(t *testing.T) {
	p := NewPalette(nil)
	if got := p.Style(core.Color(200)).Render("x"); got != p.Style(core.ColorDefault).Render("x") {
		t.Errorf("unknown color should use the default style, got %q", got)
	}
}
