package breakout

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Minimum terminal size the playfield is drawn at.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// maxFrameGapMs caps how far one frame advances the session clock.
const maxFrameGapMs = 250.0

// Front-end settings applied to every game created after they are set.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	customLayout     *Layout
	baseLogger       = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetLayout replaces the layout of the default "breakout" game.
func SetLayout(l Layout) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	customLayout = &l
}

// SetLogger sets the logger sessions derive theirs from.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	baseLogger = l
}

// Game adapts a Session to the platform: it turns input frames into
// commands and frame times into session timestamps.
type Game struct {
	layout *Layout // nil: layout from config or SetLayout

	session  *Session
	runtime  core.RuntimeConfig
	clock    float64   // session time in ms; excludes paused spans
	lastTick time.Time // time of the previous frame, zero before the first
	paused   bool
	snap     Snapshot
}

// New creates the default game, which plays the configured layout.
func New() *Game {
	return &Game{}
}

// NewWithLayout creates a game bound to a fixed layout.
func NewWithLayout(l Layout) *Game {
	return &Game{layout: &l}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.layout == nil {
		return "breakout"
	}
	return "breakout_" + g.layout.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.layout == nil {
		return "Breakout"
	}
	return fmt.Sprintf("Breakout (%s)", g.layout.Name)
}

// Layout returns the layout being played, or the one the next Reset will play.
func (g *Game) Layout() Layout {
	if g.session != nil {
		return g.session.Layout()
	}
	if g.layout != nil {
		return *g.layout
	}

	settingsMu.RLock()
	path, custom, logger := configPath, customLayout, baseLogger
	settingsMu.RUnlock()
	if custom != nil {
		return *custom
	}

	cfg, err := config.LoadBreakout(path)
	if err != nil {
		logger.Warn("using default config", "game", g.ID(), "err", err)
	}
	if l, ok := LayoutByID(cfg.Gameplay.Layout); ok {
		return l
	}
	l, _ := LayoutByID("classic")
	return l
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	settingsMu.RLock()
	path, preset, layout, logger := configPath, difficultyPreset, customLayout, baseLogger
	settingsMu.RUnlock()

	g.runtime = runtime
	logger = logger.With("game", g.ID())

	cfg, err := config.LoadBreakout(path)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	if preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	opts := []Option{WithSeed(runtime.Seed), WithLogger(logger)}
	switch {
	case g.layout != nil:
		opts = append(opts, WithLayout(*g.layout))
	case layout != nil:
		opts = append(opts, WithLayout(*layout))
	}

	g.session = NewSession(cfg, opts...)
	g.clock = 0
	g.lastTick = time.Time{}
	g.paused = false
	g.snap = g.session.Snapshot()
}

// Step applies the frame's commands and advances the session by the time
// elapsed since the previous frame. While paused the session clock stands
// still, so pending reversions wait too.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.session.State() != StateGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		g.lastTick = in.Time
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.session.MoveLeft()
		case core.ActionRight:
			g.session.MoveRight()
		case core.ActionLaunch:
			g.session.Launch()
		case core.ActionRestart:
			g.session.Restart()
		}
	}

	g.advance(in.Time)
	g.snap = g.session.Update(g.clock)
	return core.StepResult{State: g.State()}
}

// advance moves the clock by the real time since the previous frame.
// Frames without a time and the first frame after a reset count as one
// nominal frame.
func (g *Game) advance(now time.Time) {
	step := g.runtime.FrameMillis()
	if !now.IsZero() && !g.lastTick.IsZero() {
		elapsed := float64(now.Sub(g.lastTick)) / float64(time.Millisecond)
		step = min(max(elapsed, 0), maxFrameGapMs)
	}
	g.lastTick = now
	g.clock += step
}

// Time returns the session timestamp of the current frame in milliseconds.
func (g *Game) Time() float64 {
	return g.clock
}

// Render draws the current game state to the screen.
// The playfield is scaled to dst, so a resize needs no Reset.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}
	RenderSnapshot(dst, g.snap)
	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Won:      g.session.Outcome() == OutcomeWin,
		Paused:   g.paused,
	}
}

// Snapshot returns the last frame snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	for _, l := range BuiltinLayouts() {
		registry.Register("breakout_"+l.ID, func() registry.Game {
			return NewWithLayout(l)
		})
	}
}
