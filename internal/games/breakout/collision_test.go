package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestResolveFaces(t *testing.T) {
	brick := core.NewBox(100, 100, 20, 10)
	tall := core.NewBox(100, 100, 20, 40)

	tests := []struct {
		name    string
		ball    core.Box
		target  core.Box
		face    Face
		reflect core.Vec2
	}{
		{"from below, centered", core.NewBox(105, 109, 10, 10), brick, FaceBottom, ReflectY},
		{"from below, corner graze", core.NewBox(91, 105, 10, 10), brick, FaceBottom, ReflectX},
		{"from below, equal depths", core.NewBox(92, 108, 10, 10), brick, FaceBottom, ReflectY},
		{"from above, centered", core.NewBox(105, 91, 10, 10), brick, FaceTop, ReflectY},
		{"from above, corner graze", core.NewBox(119, 95, 10, 10), brick, FaceTop, ReflectX},
		{"left side", core.NewBox(92, 110, 10, 10), tall, FaceLeft, ReflectX},
		{"right side", core.NewBox(118, 110, 10, 10), tall, FaceRight, ReflectX},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := Resolve(tc.ball, tc.target)
			if !ok {
				t.Fatal("expected a collision")
			}
			if c.Face != tc.face {
				t.Errorf("face = %d, want %d", c.Face, tc.face)
			}
			if c.Reflect != tc.reflect {
				t.Errorf("reflect = %+v, want %+v", c.Reflect, tc.reflect)
			}
		})
	}
}

func TestResolveNoCollision(t *testing.T) {
	brick := core.NewBox(100, 100, 20, 10)

	tests := []struct {
		name string
		ball core.Box
	}{
		{"far away", core.NewBox(0, 0, 10, 10)},
		{"below, not touching", core.NewBox(105, 130, 10, 10)},
		{"above, not touching", core.NewBox(105, 80, 10, 10)},
		{"left, not touching", core.NewBox(80, 100, 10, 10)},
		{"right, not touching", core.NewBox(130, 100, 10, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c, ok := Resolve(tc.ball, brick); ok {
				t.Errorf("unexpected collision %+v", c)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	ball := core.NewBox(91, 105, 10, 10)
	brick := core.NewBox(100, 100, 20, 10)

	first, ok1 := Resolve(ball, brick)
	for range 10 {
		c, ok := Resolve(ball, brick)
		if c != first || ok != ok1 {
			t.Fatalf("Resolve changed its answer: %+v/%v vs %+v/%v", c, ok, first, ok1)
		}
	}
}

func TestResolveNeverFlipsBothAxes(t *testing.T) {
	target := core.NewBox(100, 100, 20, 10)

	for x := 80.0; x <= 130; x += 0.5 {
		for y := 80.0; y <= 120; y += 0.5 {
			c, ok := Resolve(core.NewBox(x, y, 10, 10), target)
			if !ok {
				continue
			}
			if c.Reflect != ReflectX && c.Reflect != ReflectY {
				t.Fatalf("ball at (%v,%v): reflect %+v flips both or neither axis", x, y, c.Reflect)
			}
		}
	}
}

func TestPaddleTopBounce(t *testing.T) {
	paddle := core.NewBox(100, 390, 100, 10)
	ball := core.NewBox(145, 381, 10, 10) // bottom 1 unit into the paddle

	c, ok := Resolve(ball, paddle)
	if !ok {
		t.Fatal("expected paddle contact")
	}
	if c.Face != FaceTop || c.Reflect != ReflectY {
		t.Errorf("contact = %+v, want top face with vertical reflection", c)
	}

	vel := core.V(150, 150).Mul(c.Reflect)
	if vel.Y >= 0 {
		t.Errorf("ball should head up after the bounce, vel = %+v", vel)
	}
}

func TestReflectWalls(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
		want core.Vec2
	}{
		{"left wall", core.V(-1, 100), core.V(-150, -150), core.V(150, -150)},
		{"left wall, already heading in", core.V(-1, 100), core.V(150, -150), core.V(150, -150)},
		{"right wall", core.V(291, 100), core.V(150, 150), core.V(-150, 150)},
		{"right wall, already heading in", core.V(291, 100), core.V(-150, 150), core.V(-150, 150)},
		{"top wall", core.V(100, -2), core.V(150, -150), core.V(150, 150)},
		{"top left corner", core.V(0, 0), core.V(-150, -150), core.V(150, 150)},
		{"no bottom wall", core.V(100, 395), core.V(150, 150), core.V(150, 150)},
		{"open field", core.V(100, 100), core.V(-150, 150), core.V(-150, 150)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := Entity{Kind: KindBall, Box: core.Box{Pos: tc.pos, Size: core.V(10, 10)}, Vel: tc.vel}
			reflectWalls(&ball, 300)
			if ball.Vel != tc.want {
				t.Errorf("vel = %+v, want %+v", ball.Vel, tc.want)
			}
		})
	}
}
