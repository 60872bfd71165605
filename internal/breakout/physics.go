package breakout

import (
	"github.com/codebrk/codebreak/internal/core"
)

// Ball represents the ball state with fixed-point coordinates. X and Y
// are the center; Radius is in whole pixels.
type Ball struct {
	X, Y     core.Fixed
	VX, VY   core.Fixed
	Radius   int
	Launched bool
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// Box returns the ball's bounding box in fixed-point coordinates.
func (b *Ball) Box() (x0, y0, x1, y1 core.Fixed) {
	r := core.ToFixed(b.Radius)
	return b.X.Sub(r), b.Y.Sub(r), b.X.Add(r), b.Y.Add(r)
}

// Paddle represents the player's paddle. X is the left edge in
// fixed-point; Y is the fixed top-edge row in pixels.
type Paddle struct {
	X      core.Fixed
	Y      int
	Width  int
	Height int
	Speed  core.Fixed
}

// Rect returns the paddle's bounding box in pixel coordinates.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X.Px(), p.Y, p.Width, p.Height)
}

// CenterX returns the paddle's horizontal center in fixed-point.
func (p *Paddle) CenterX() core.Fixed {
	return p.X.Add(core.ToFixed(p.Width).Div(2))
}

// Clamp keeps the paddle within [margin, viewW - width - margin].
func (p *Paddle) Clamp(viewW, margin int) {
	minX := core.ToFixed(margin)
	maxX := core.ToFixed(viewW - p.Width - margin)
	p.X = core.ClampFixed(p.X, minX, maxX)
}

// CollideWalls reflects the ball off the left, right, and top walls,
// clamping its position to the boundary plus radius. The bottom is
// open: falling past it is detected separately by FellBelow.
func CollideWalls(ball *Ball, viewW int) {
	r := core.ToFixed(ball.Radius)

	if ball.X.Sub(r) <= 0 {
		ball.X = r
		ball.VX = ball.VX.Neg()
	}
	if ball.X.Add(r) >= core.ToFixed(viewW) {
		ball.X = core.ToFixed(viewW).Sub(r)
		ball.VX = ball.VX.Neg()
	}
	if ball.Y.Sub(r) <= 0 {
		ball.Y = r
		ball.VY = ball.VY.Neg()
	}
}

// FellBelow reports whether the ball's top edge has passed the bottom
// of the viewport.
func FellBelow(ball *Ball, viewH int) bool {
	return ball.Y.Sub(core.ToFixed(ball.Radius)) > core.ToFixed(viewH)
}

// CollidePaddle resolves a ball/paddle hit. The ball must be moving
// downward; on contact it is repositioned just above the paddle, VY is
// forced upward, and VX is recomputed from the impact offset:
// center hits go straight up, edge hits deflect up to maxDeflection.
// Returns true if a collision occurred.
func CollidePaddle(ball *Ball, paddle *Paddle, maxDeflection core.Fixed) bool {
	if ball.VY <= 0 {
		return false
	}

	x0, y0, x1, y1 := ball.Box()
	if !paddle.Rect().IntersectsBox(x0, y0, x1, y1) {
		return false
	}

	ball.Y = core.ToFixed(paddle.Y).Sub(core.ToFixed(ball.Radius))
	ball.VY = ball.VY.Abs().Neg()

	// hit is the impact position across the paddle face in [0, 1]
	// (fixed-point), 0.5 being dead center.
	hit := ball.X.Sub(paddle.X).Div(paddle.Width)
	ball.VX = hit.Sub(core.Fixed(core.Scale / 2)).Mul(int(maxDeflection)).Div(core.Scale)

	return true
}

// CollideBricks scans the bricks in slice order and returns the index
// of the first alive brick intersecting the ball's box, or -1. At most
// one brick is hit per call; the caller applies scoring and the bounce.
func CollideBricks(ball *Ball, bricks []Brick) int {
	x0, y0, x1, y1 := ball.Box()
	for i := range bricks {
		if !bricks[i].Alive {
			continue
		}
		if bricks[i].Rect.IntersectsBox(x0, y0, x1, y1) {
			return i
		}
	}
	return -1
}
