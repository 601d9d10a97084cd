package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '='
	BrickChar  = '█'
	BonusChar  = '▓'
)

// Screen rows reserved above (score, lives, message) and below (hints)
// the playfield.
const (
	HUDRows    = 1
	FooterRows = 1
)

// RenderSnapshot draws a snapshot into dst, scaling the playfield to the
// screen between the HUD and footer rows.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	field := core.NewRect(0, HUDRows, dst.Width(), dst.Height()-HUDRows-FooterRows)
	if field.W <= 0 || field.H <= 0 || snap.Playfield.X <= 0 || snap.Playfield.Y <= 0 {
		return
	}
	sx := float64(field.W) / snap.Playfield.X
	sy := float64(field.H) / snap.Playfield.Y

	// Draw back to front so the ball stays on top.
	for i := len(snap.Sprites) - 1; i >= 0; i-- {
		drawSprite(dst, field, sx, sy, snap.Sprites[i])
	}

	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// cellSpan maps [lo, hi) in playfield units to a non-empty cell range.
func cellSpan(lo, hi, scale float64, limit int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi*scale)) - 1
	if b < a {
		b = a
	}
	return core.Clamp(a, 0, limit-1), core.Clamp(b, 0, limit-1)
}

func drawSprite(dst *core.Screen, field core.Rect, sx, sy float64, sp Sprite) {
	if sp.Kind == KindBall {
		x := core.Clamp(int((sp.Pos.X+sp.Size.X/2)*sx), 0, field.W-1)
		y := core.Clamp(int((sp.Pos.Y+sp.Size.Y/2)*sy), 0, field.H-1)
		dst.SetColored(field.X+x, field.Y+y, BallChar, sp.Color)
		return
	}

	glyph := BrickChar
	switch sp.Kind {
	case KindPaddle:
		glyph = PaddleChar
	case KindBonusBrick:
		glyph = BonusChar
	}

	x0, x1 := cellSpan(sp.Pos.X, sp.Pos.X+sp.Size.X, sx, field.W)
	y0, _ := cellSpan(sp.Pos.Y, sp.Pos.Y+sp.Size.Y, sy, field.H)
	// Bricks and the paddle are one row tall at terminal resolution.
	for x := x0; x <= x1; x++ {
		dst.SetColored(field.X+x, field.Y+y0, glyph, sp.Color)
	}
}

// renderHUD draws score on the left, lives on the right and the status
// message in between.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawText(dst.Width()-len(lives)-1, 0, lives)

	if snap.Message != "" {
		dst.DrawTextColored((dst.Width()-len([]rune(snap.Message)))/2, 0, snap.Message, core.ColorBrightYellow)
	}
}

// renderOverlay draws the launch hint or the game-over box.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.State {
	case StateHooked:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  SPACE or R to restart", snap.Score)
		drawCenteredBox(dst, snap.Overlay, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
