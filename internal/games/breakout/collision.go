package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Face identifies which face of a target box the ball is crossing.
type Face int

const (
	FaceNone Face = iota
	FaceBottom
	FaceTop
	FaceLeft
	FaceRight
)

// Reflection multipliers applied component-wise to the ball velocity.
var (
	ReflectX = core.V(-1, 1) // horizontal component inverted
	ReflectY = core.V(1, -1) // vertical component inverted
)

// Contact is the result of a directional collision test.
type Contact struct {
	Face    Face
	Reflect core.Vec2
}

// Resolve classifies the contact between a moving ball and a stationary
// target using signed penetration depths. Faces are tested in a fixed order
// (bottom, top, left, right) and the first match wins. The second return
// value is false when the ball is not crossing any face.
//
// Resolve is pure: identical geometry always yields an identical result.
func Resolve(ball, target core.Box) (Contact, bool) {
	dtTop := ball.Top() - target.Top()
	dtBottom := ball.Bottom() - target.Bottom()
	dtLeft := ball.Left() - target.Left()
	dtRight := ball.Right() - target.Right()

	penBottom := ball.Top() - target.Bottom()
	penTop := ball.Bottom() - target.Top()
	penLeft := ball.Right() - target.Left()
	penRight := ball.Left() - target.Right()

	switch {
	case penBottom <= 0 && penRight <= 0 && penLeft >= 0 && dtBottom > 0:
		return Contact{Face: FaceBottom, Reflect: cornerReflect(penBottom, penLeft, penRight)}, true

	case penTop > 0 && penRight < 0 && penLeft > 0 && dtTop < 0:
		return Contact{Face: FaceTop, Reflect: cornerReflect(penTop, penLeft, penRight)}, true

	case penLeft > 0 && dtTop > 0 && dtBottom < 0 && dtLeft < 0:
		return Contact{Face: FaceLeft, Reflect: ReflectX}, true

	case penRight < 0 && dtTop > 0 && dtBottom < 0 && dtRight > 0:
		return Contact{Face: FaceRight, Reflect: ReflectX}, true
	}

	return Contact{}, false
}

// cornerReflect decides between a side graze and a vertical bounce on a
// top/bottom face hit. A vertical penetration strictly deeper than either
// horizontal overlap means the ball is grazing the side; ties bounce vertically.
func cornerReflect(vertical, left, right float64) core.Vec2 {
	v := math.Abs(vertical)
	if v > math.Abs(right) || v > math.Abs(left) {
		return ReflectX
	}
	return ReflectY
}

// reflectWalls bounces the ball off the left, right and top playfield walls.
// The new velocity always points back into the playfield, so a ball that is
// still past a wall on the next frame is not flipped outward again.
// There is no bottom wall: crossing it is a lost ball.
func reflectWalls(ball *Entity, width float64) {
	if ball.Left() <= 0 {
		ball.Vel.X = math.Abs(ball.Vel.X)
	} else if ball.Right() >= width {
		ball.Vel.X = -math.Abs(ball.Vel.X)
	}
	if ball.Top() <= 0 {
		ball.Vel.Y = math.Abs(ball.Vel.Y)
	}
}
