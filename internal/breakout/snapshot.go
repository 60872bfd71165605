package breakout

import (
	"github.com/codebrk/codebreak/internal/core"
)

// BrickView is the render-only projection of one alive brick.
type BrickView struct {
	Rect       core.Rect
	Label      string
	LineNumber int
	DrawX      int
	DrawY      int
}

// Frame is a read-only view of everything a renderer needs for one
// frame: paddle rect, ball circle, alive bricks, gutter lines, and the
// session counters. Building a Frame never mutates the game.
type Frame struct {
	ViewW, ViewH int
	Paddle       core.Rect
	BallX, BallY int // Ball center in pixels
	BallRadius   int
	Bricks       []BrickView
	Lines        []RenderLine
	Score        int
	Lives        int
	GameOver     bool
	State        string
}

// Frame returns the current render snapshot.
func (g *Game) Frame() Frame {
	bricks := make([]BrickView, 0, len(g.bricks))
	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.Alive {
			continue
		}
		bricks = append(bricks, BrickView{
			Rect:       b.Rect,
			Label:      b.Label,
			LineNumber: b.LineNumber,
			DrawX:      b.DrawX,
			DrawY:      b.DrawY,
		})
	}

	lines := make([]RenderLine, len(g.renderLines))
	copy(lines, g.renderLines)

	return Frame{
		ViewW:      g.viewW,
		ViewH:      g.viewH,
		Paddle:     g.paddle.Rect(),
		BallX:      g.ball.X.Px(),
		BallY:      g.ball.Y.Px(),
		BallRadius: g.ball.Radius,
		Bricks:     bricks,
		Lines:      lines,
		Score:      g.score,
		Lives:      g.lives,
		GameOver:   g.state == StateGameOver,
		State:      g.state,
	}
}

// Snapshot contains the complete simulation state in primitive types,
// for determinism checks and save/restore. Brick geometry is not
// included: a snapshot is only valid against the layout it was taken
// from.
type Snapshot struct {
	Tick    uint64
	PaddleX int
	BallX   int
	BallY   int
	BallVX  int
	BallVY  int
	Score   int
	Lives   int
	State   string

	// Brick liveness in layout order (1 = alive).
	BrickAlive []int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	alive := make([]int, len(g.bricks))
	for i := range g.bricks {
		if g.bricks[i].Alive {
			alive[i] = 1
		}
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:    int(g.paddle.X),
		BallX:      int(g.ball.X),
		BallY:      int(g.ball.Y),
		BallVX:     int(g.ball.VX),
		BallVY:     int(g.ball.VY),
		Score:      g.score,
		Lives:      g.lives,
		State:      g.state,
		BrickAlive: alive,
	}
}

// ApplySnapshot restores simulation state from a snapshot taken against
// the same brick layout.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.paddle.X = core.Fixed(snap.PaddleX)
	g.ball.X = core.Fixed(snap.BallX)
	g.ball.Y = core.Fixed(snap.BallY)
	g.ball.VX = core.Fixed(snap.BallVX)
	g.ball.VY = core.Fixed(snap.BallVY)
	g.ball.Launched = snap.State == StatePlaying
	g.score = snap.Score
	g.lives = snap.Lives
	g.state = snap.State

	if len(snap.BrickAlive) == len(g.bricks) {
		for i := range g.bricks {
			g.bricks[i].Alive = snap.BrickAlive[i] == 1
		}
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.BrickAlive {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
