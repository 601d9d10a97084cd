package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	return NewSession(config.DefaultBreakoutConfig(), opts...)
}

// placeUnder puts the ball one unit into the bottom face of b.
func placeUnder(s *Session, b Entity) {
	s.ball.Pos = core.V(b.Left()+5, b.Bottom()-1)
}

func TestNewSessionStartsHooked(t *testing.T) {
	s := newTestSession(t)

	if s.State() != StateHooked {
		t.Errorf("state = %v, want hooked", s.State())
	}
	if s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("lives/score = %d/%d, want 3/0", s.Lives(), s.Score())
	}
	if len(s.Bricks()) != 48 {
		t.Errorf("expected the classic layout's 48 bricks, got %d", len(s.Bricks()))
	}

	ball, paddle := s.Ball(), s.Paddle()
	if !ball.Vel.IsZero() || !ball.Hooked {
		t.Error("ball should start hooked with zero velocity")
	}
	if ball.CenterX() != paddle.CenterX() || ball.Bottom() != paddle.Top() {
		t.Errorf("ball %+v should sit on paddle %+v", ball.Box, paddle.Box)
	}
	if paddle.Bottom() != 400 {
		t.Errorf("paddle bottom = %v, want the playfield bottom", paddle.Bottom())
	}
}

func TestLaunch(t *testing.T) {
	s := newTestSession(t, WithSeed(7))
	s.Launch()

	vel := s.Ball().Vel
	if math.Abs(vel.X) != 150 || vel.Y != -150 {
		t.Errorf("launch velocity = %+v, want (±150, -150)", vel)
	}
	if s.State() != StateLaunched || s.Ball().Hooked {
		t.Errorf("state = %v, want launched and unhooked", s.State())
	}

	s.Launch()
	if s.Ball().Vel != vel {
		t.Errorf("second launch changed velocity: %+v -> %+v", vel, s.Ball().Vel)
	}
}

func TestLaunchSignVaries(t *testing.T) {
	signs := make(map[float64]bool)
	for seed := int64(1); seed <= 50; seed++ {
		s := newTestSession(t, WithSeed(seed))
		s.Launch()
		signs[math.Copysign(1, s.Ball().Vel.X)] = true
	}
	if !signs[1] || !signs[-1] {
		t.Errorf("expected both launch directions across seeds, got %v", signs)
	}
}

func TestPaddleMovement(t *testing.T) {
	s := newTestSession(t)

	for range 15 {
		s.MoveLeft()
	}
	if got := s.Paddle().Left(); got != 0 {
		t.Errorf("paddle left = %v, want clamped to 0", got)
	}
	if s.Ball().CenterX() != s.Paddle().CenterX() {
		t.Error("hooked ball should follow the paddle")
	}

	for range 30 {
		s.MoveRight()
	}
	if got := s.Paddle().Right(); got != 300 {
		t.Errorf("paddle right = %v, want clamped to 300", got)
	}
}

func TestIntegrationScalesWithTime(t *testing.T) {
	s := newTestSession(t)
	s.Launch()
	s.ball.Pos = core.V(150, 200)
	s.ball.Vel = core.V(150, -150)

	s.Update(100) // dt = 100/500

	if got := s.Ball().Pos; got != core.V(180, 170) {
		t.Errorf("ball pos = %+v, want (180, 170)", got)
	}
}

func TestTimestampNeverGoesBack(t *testing.T) {
	s := newTestSession(t)
	s.Update(1000)
	snap := s.Update(500)
	if snap.Time != 1000 {
		t.Errorf("snapshot time = %v, want 1000", snap.Time)
	}
}

func TestLoseBall(t *testing.T) {
	s := newTestSession(t)
	s.lives = 2
	s.Launch()
	s.ball.Pos = core.V(20, 389)
	s.ball.Vel = core.V(150, 150)

	s.Update(100)

	if s.Lives() != 1 {
		t.Errorf("lives = %d, want 1", s.Lives())
	}
	if s.State() != StateHooked {
		t.Errorf("state = %v, want hooked", s.State())
	}
	ball := s.Ball()
	if !ball.Vel.IsZero() || ball.CenterX() != s.Paddle().CenterX() {
		t.Errorf("ball should be back on the paddle at rest, got %+v vel %+v", ball.Box, ball.Vel)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	s := newTestSession(t)
	s.lives = 1
	s.Launch()
	s.ball.Pos = core.V(20, 389)
	s.ball.Vel = core.V(150, 150)

	snap := s.Update(100)

	if s.State() != StateGameOver || s.Outcome() != OutcomeLoss {
		t.Fatalf("state/outcome = %v/%v, want gameover/loss", s.State(), s.Outcome())
	}
	if snap.Overlay != OverlayGameOver {
		t.Errorf("overlay = %q, want %q", snap.Overlay, OverlayGameOver)
	}
	if !s.Paddle().Blocked {
		t.Error("paddle should be blocked")
	}

	x := s.Paddle().Left()
	s.MoveLeft()
	s.MoveRight()
	if s.Paddle().Left() != x {
		t.Error("blocked paddle moved")
	}
}

func TestRestart(t *testing.T) {
	s := newTestSession(t)

	s.Restart()
	if s.Epoch() != 0 {
		t.Fatal("restart outside game over should be ignored")
	}

	s.score = 12
	s.endGame(OutcomeLoss)
	s.Restart()

	if s.Epoch() != 1 {
		t.Errorf("epoch = %d, want 1", s.Epoch())
	}
	if s.State() != StateHooked || s.Outcome() != OutcomeNone {
		t.Errorf("state/outcome = %v/%v, want hooked/none", s.State(), s.Outcome())
	}
	if s.Lives() != 3 || s.Score() != 0 || len(s.Bricks()) != 48 {
		t.Errorf("lives/score/bricks = %d/%d/%d, want 3/0/48", s.Lives(), s.Score(), len(s.Bricks()))
	}
	if s.Paddle().Blocked {
		t.Error("paddle should be unblocked")
	}
}

func TestLaunchAfterGameOverRestarts(t *testing.T) {
	s := newTestSession(t)
	s.endGame(OutcomeLoss)

	s.Launch()
	if s.State() != StateHooked || s.Epoch() != 1 {
		t.Fatalf("state/epoch = %v/%d, want hooked/1", s.State(), s.Epoch())
	}
	if !s.Ball().Vel.IsZero() {
		t.Error("ball should stay hooked after the restart")
	}

	s.Launch()
	if s.State() != StateLaunched {
		t.Errorf("second launch: state = %v, want launched", s.State())
	}
}

func TestClearWallWins(t *testing.T) {
	wall, _ := LayoutByID("wall")
	s := newTestSession(t, WithLayout(wall))
	s.Launch()

	for _, b := range s.Bricks() {
		placeUnder(s, b)
		s.Update(0)
	}

	if s.State() != StateGameOver || s.Outcome() != OutcomeWin {
		t.Fatalf("state/outcome = %v/%v, want gameover/win", s.State(), s.Outcome())
	}
	if s.Score() != 100 {
		t.Errorf("score = %d, want 100", s.Score())
	}
	if snap := s.Snapshot(); snap.Overlay != OverlayWin || snap.Bricks != 0 {
		t.Errorf("overlay/bricks = %q/%d, want %q/0", snap.Overlay, snap.Bricks, OverlayWin)
	}
}

func TestWinRegardlessOfLives(t *testing.T) {
	s := newTestSession(t, WithLayout(Layout{ID: "one", Rows: []string{"1"}}))
	s.bricks[0].Live = false
	s.lives = 0

	s.Update(0)

	if s.Outcome() != OutcomeWin {
		t.Errorf("outcome = %v, want win", s.Outcome())
	}
}

func TestMultiHitBrick(t *testing.T) {
	s := newTestSession(t, WithLayout(Layout{ID: "multi", Rows: []string{"31"}}))
	s.Launch()

	tints := []string{"orange", "white"}
	for hit := 1; hit <= 2; hit++ {
		b := s.Bricks()[0]
		placeUnder(s, b)
		s.Update(0)

		got := s.Bricks()[0]
		if got.Hits != 3-hit || !got.Live {
			t.Fatalf("after hit %d: hits=%d live=%v", hit, got.Hits, got.Live)
		}
		if got.Tint.String() != tints[hit-1] {
			t.Errorf("after hit %d: tint = %s, want %s", hit, got.Tint, tints[hit-1])
		}
	}

	placeUnder(s, s.Bricks()[0])
	s.Update(0)

	if len(s.Bricks()) != 1 {
		t.Errorf("expected 1 brick left, got %d", len(s.Bricks()))
	}
	if s.Score() != 3 {
		t.Errorf("score = %d, want 3", s.Score())
	}
	if s.State() != StateLaunched {
		t.Errorf("state = %v, want launched", s.State())
	}
}

func TestBonusFiresOnceOnDestruction(t *testing.T) {
	s := newTestSession(t, WithLayout(Layout{ID: "bonus", Rows: []string{"b1"}}))
	s.bricks[0].Effect = EffectExtraLife
	s.Launch()

	placeUnder(s, s.Bricks()[0])
	s.Update(0)

	if s.Lives() != 4 {
		t.Errorf("lives = %d, want 4", s.Lives())
	}
	if s.Message() != EffectExtraLife.Message() {
		t.Errorf("message = %q, want %q", s.Message(), EffectExtraLife.Message())
	}

	// Same spot again: the bonus brick is gone.
	s.Update(0)
	if s.Lives() != 4 {
		t.Errorf("bonus fired twice, lives = %d", s.Lives())
	}
	if s.tasks.Len() != 0 {
		t.Errorf("extra life should not schedule a reversion, %d pending", s.tasks.Len())
	}
}

func TestFireBallPassesThrough(t *testing.T) {
	s := newTestSession(t, WithLayout(Layout{ID: "pair", Rows: []string{"11"}}))
	s.Launch()
	s.trigger(EffectFireBall)
	vel := s.Ball().Vel

	placeUnder(s, s.Bricks()[0])
	s.Update(0)

	if s.Ball().Vel != vel {
		t.Errorf("fireball bounced: %+v -> %+v", vel, s.Ball().Vel)
	}
	if len(s.Bricks()) != 1 || s.Score() != 1 {
		t.Errorf("bricks/score = %d/%d, want 1/1", len(s.Bricks()), s.Score())
	}
	if s.Ball().Tint != core.ColorBrightRed {
		t.Errorf("ball tint = %s, want bright-red", s.Ball().Tint)
	}
}

func TestExpandPaddleReverts(t *testing.T) {
	s := newTestSession(t)
	s.Update(1000)
	s.trigger(EffectExpandPaddle)
	s.trigger(EffectFireBall)

	if w := s.Paddle().Size.X; w != 150 {
		t.Fatalf("width = %v, want 150", w)
	}
	if c := s.Paddle().CenterX(); c != 150 {
		t.Errorf("expanded paddle center = %v, want 150", c)
	}

	s.Update(6000)
	if s.FireBall() {
		t.Error("fireball should have reverted at 6000")
	}
	if w := s.Paddle().Size.X; w != 150 {
		t.Errorf("width = %v at 6000, want 150", w)
	}

	s.Update(10999)
	if w := s.Paddle().Size.X; w != 150 {
		t.Errorf("width = %v at 10999, want 150", w)
	}

	s.Update(11000)
	if w := s.Paddle().Size.X; w != 100 {
		t.Errorf("width = %v at 11000, want 100", w)
	}
}

func TestSpeedBoostReverts(t *testing.T) {
	s := newTestSession(t)
	s.trigger(EffectSpeedBoost)

	s.MoveRight()
	if x := s.Paddle().Left(); x != 130 {
		t.Errorf("boosted move: left = %v, want 130", x)
	}

	s.Update(10000)
	s.MoveRight()
	if x := s.Paddle().Left(); x != 140 {
		t.Errorf("after revert: left = %v, want 140", x)
	}
}

func TestNegativeSpeedBoostKeepsDirection(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.PowerUps.SpeedBoostStep = -3 * cfg.Paddle.Step
	s := NewSession(cfg)
	s.trigger(EffectSpeedBoost)

	x := s.Paddle().Left()
	s.MoveLeft()
	if got := s.Paddle().Left(); got >= x {
		t.Errorf("MoveLeft during a boost did not move left: %v -> %v", x, got)
	}
}

func TestRetriggerSchedulesIndependentReversions(t *testing.T) {
	s := newTestSession(t)
	s.Update(1000)
	s.trigger(EffectExpandPaddle)
	s.Update(5000)
	s.trigger(EffectExpandPaddle)

	if n := s.tasks.Pending(0); n != 2 {
		t.Fatalf("pending = %d, want 2", n)
	}

	s.Update(11000)
	if w := s.Paddle().Size.X; w != 100 {
		t.Errorf("first reversion: width = %v, want 100", w)
	}
	if n := s.tasks.Pending(0); n != 1 {
		t.Errorf("pending = %d, want 1", n)
	}

	s.Update(15000)
	if n := s.tasks.Len(); n != 0 {
		t.Errorf("pending = %d, want 0", n)
	}
}

func TestRestartDropsStaleReversions(t *testing.T) {
	s := newTestSession(t)
	s.Update(1000)
	s.trigger(EffectExpandPaddle) // epoch 0, due at 11000

	s.endGame(OutcomeLoss)
	s.Restart()
	if w := s.Paddle().Size.X; w != 100 {
		t.Fatalf("restart should reset the paddle, width = %v", w)
	}

	s.Update(5000)
	s.trigger(EffectExpandPaddle) // epoch 1, due at 15000

	s.Update(11000)
	if w := s.Paddle().Size.X; w != 150 {
		t.Errorf("stale reversion applied: width = %v, want 150", w)
	}

	s.Update(15000)
	if w := s.Paddle().Size.X; w != 100 {
		t.Errorf("width = %v, want 100", w)
	}
}

func TestMessageExpires(t *testing.T) {
	s := newTestSession(t)
	s.Update(1000)
	s.trigger(EffectExpandPaddle)

	if snap := s.Update(2999); snap.Message == "" {
		t.Error("message should still show at 2999")
	}
	if snap := s.Update(3000); snap.Message != "" {
		t.Errorf("message should clear at 3000, got %q", snap.Message)
	}
}

func TestSnapshotSprites(t *testing.T) {
	s := newTestSession(t)
	snap := s.Update(0)

	if len(snap.Sprites) != 50 {
		t.Fatalf("sprites = %d, want ball + paddle + 48 bricks", len(snap.Sprites))
	}
	if snap.Sprites[0].Kind != KindBall || snap.Sprites[1].Kind != KindPaddle {
		t.Errorf("first sprites = %v, %v; want ball, paddle", snap.Sprites[0].Kind, snap.Sprites[1].Kind)
	}
	for _, sp := range snap.Sprites[2:] {
		if !sp.Kind.IsBrick() {
			t.Errorf("unexpected sprite kind %v", sp.Kind)
		}
	}
	if snap.Playfield != core.V(300, 400) {
		t.Errorf("playfield = %+v", snap.Playfield)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		bonus, _ := LayoutByID("bonus")
		s := newTestSession(t, WithSeed(2024), WithLayout(bonus))
		var snap Snapshot
		for frame := range 600 {
			switch {
			case frame == 5:
				s.Launch()
			case frame%7 < 3:
				s.MoveLeft()
			default:
				s.MoveRight()
			}
			snap = s.Update(float64(frame) * 1000 / 60)
		}
		return snap
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	s := NewSession(config.BreakoutConfig{})
	if s.Config().Playfield.Width != 300 || s.Lives() != 3 {
		t.Errorf("zero config not defaulted: %+v", s.Config())
	}
	if s.Layout().ID != "classic" {
		t.Errorf("layout = %q, want classic", s.Layout().ID)
	}
}
