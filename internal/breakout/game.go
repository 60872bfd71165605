package breakout

import (
	"fmt"

	"github.com/codebrk/codebreak/internal/config"
	"github.com/codebrk/codebreak/internal/core"
	"github.com/codebrk/codebreak/internal/source"
)

// Game state constants.
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StatePaused   = "paused"   // Game paused
)

// Game implements the codebreak simulation. It owns paddle, ball, and
// the current brick field, advances physics on fixed ticks, and exposes
// read-only snapshots for rendering. A single goroutine drives Step;
// nothing here is safe for concurrent use.
type Game struct {
	provider source.Provider
	cfg      config.Config
	metrics  MonoMetrics
	runtime  core.RuntimeConfig

	// Viewport in virtual pixels (terminal cells x font cell size,
	// floored at the configured minimum).
	viewW int
	viewH int

	paddle      Paddle
	ball        Ball
	bricks      []Brick
	renderLines []RenderLine

	state       string
	score       int
	lives       int
	destroyed   int
	tickCount   int
	pausedFrom  string
	bricksTotal int // Bricks at last layout, for the HUD
}

// New creates a game over the given line provider. A nil or empty
// provider degrades to the built-in placeholder listing, so the game is
// always playable.
func New(provider source.Provider, cfg config.Config) *Game {
	cfg.Validate()
	return &Game{
		provider: source.WithFallback(provider),
		cfg:      cfg,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "codebreak"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Code Break"
}

// applyRuntime recomputes the virtual viewport and the paddle row for
// the given terminal size.
func (g *Game) applyRuntime(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.metrics = NewMonoMetrics(g.cfg.Font)

	g.viewW = core.Max(g.cfg.Layout.MinViewportW, runtime.ScreenW*g.cfg.Font.CharWidth)
	g.viewH = core.Max(g.cfg.Layout.MinViewportH, runtime.ScreenH*g.cfg.Font.CharHeight)
	g.paddle.Y = g.viewH - g.cfg.Paddle.BottomOffset
}

// Reset initializes or restarts the game for the given runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.applyRuntime(runtime)

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.destroyed = 0
	g.tickCount = 0

	g.paddle = Paddle{
		X:      core.ToFixed((g.viewW - g.cfg.Paddle.Width) / 2),
		Y:      g.viewH - g.cfg.Paddle.BottomOffset,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
		Speed:  core.Fixed(g.cfg.Physics.PaddleSpeed),
	}
	g.ball.Radius = g.cfg.Ball.Radius

	g.ReloadBricks()
}

// Resize adapts the game to a new terminal size. Brick geometry
// depends on the viewport, so the field is rebuilt, but score, lives,
// and destroyed-brick count carry over. Outside of game over the ball
// returns to the paddle for a fresh serve; a finished session keeps
// its game-over state.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.applyRuntime(runtime)
	g.paddle.Clamp(g.viewW, g.cfg.Paddle.Margin)

	if g.state == StateGameOver {
		g.rebuildLayout()
		return
	}
	g.ReloadBricks()
}

// rebuildLayout re-queries the provider and replaces the brick field
// wholesale.
func (g *Game) rebuildLayout() {
	lines, anchor := g.provider.Lines()
	rotated := source.Rotate(lines, anchor, g.cfg.Gameplay.MaxLines)
	g.bricks, g.renderLines = BuildLayout(rotated, g.viewW, g.viewH, g.metrics, g.cfg)
	g.bricksTotal = len(g.bricks)
}

// ReloadBricks rebuilds the brick field and places the ball back on
// the paddle.
func (g *Game) ReloadBricks() {
	g.rebuildLayout()
	g.resetBallOnPaddle()
}

// resetBallOnPaddle centers the ball above the paddle with the launch
// velocity armed, entering the serve state.
func (g *Game) resetBallOnPaddle() {
	g.paddle.Clamp(g.viewW, g.cfg.Paddle.Margin)
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = core.ToFixed(g.paddle.Y - g.paddle.Height)
	g.ball.VX = core.Fixed(g.cfg.Physics.LaunchVX)
	g.ball.VY = core.Fixed(g.cfg.Physics.LaunchVY)
	g.ball.Launched = false
	g.state = StateServe
}

// Launch releases the ball off the paddle.
func (g *Game) Launch() {
	if g.state != StateServe {
		return
	}
	g.ball.Launched = true
	g.state = StatePlaying
}

// Restart resets score and lives and rebuilds the brick field. Unlike
// Reset it keeps the current viewport.
func (g *Game) Restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.destroyed = 0
	g.ReloadBricks()
}

// Step advances the game by one tick, consuming this frame's input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRefresh) {
		// A finished session stays finished; only Restart leaves it.
		if g.state != StateGameOver {
			g.ReloadBricks()
		}
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.tick(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	switch g.state {
	case StatePaused:
		// pausedFrom is empty when a paused snapshot was restored into
		// a fresh game; fall back to a serve.
		if g.pausedFrom == "" {
			g.pausedFrom = StateServe
		}
		g.state = g.pausedFrom
	case StatePlaying, StateServe:
		g.pausedFrom = g.state
		g.state = StatePaused
	}
}

// tick runs one fixed-timestep update: paddle input, then (when in
// play) integration, wall/paddle/brick collision, level-clear, and the
// bottom-fall life-loss path.
func (g *Game) tick(in core.InputFrame) {
	// Paddle input applies in every state except game over; the clamp
	// keeps it within the margins regardless.
	if in.Has(core.ActionLeft) {
		g.paddle.X = g.paddle.X.Sub(g.paddle.Speed)
	}
	if in.Has(core.ActionRight) {
		g.paddle.X = g.paddle.X.Add(g.paddle.Speed)
	}
	g.paddle.Clamp(g.viewW, g.cfg.Paddle.Margin)

	if g.state == StateServe {
		// Ball is slaved to the paddle center until launch.
		g.ball.X = g.paddle.CenterX()
		g.ball.Y = core.ToFixed(g.paddle.Y - g.paddle.Height)
		if in.Has(core.ActionLaunch) {
			g.Launch()
		}
		return
	}
	if g.state != StatePlaying {
		return
	}

	g.ball.Move()
	CollideWalls(&g.ball, g.viewW)
	CollidePaddle(&g.ball, &g.paddle, core.Fixed(g.cfg.Physics.MaxDeflection))

	if idx := CollideBricks(&g.ball, g.bricks); idx >= 0 {
		g.bricks[idx].Alive = false
		g.score += g.cfg.Gameplay.BrickPoints
		g.destroyed++
		g.ball.VY = g.ball.VY.Neg()
	}

	if len(g.bricks) > 0 && g.aliveBricks() == 0 {
		// Field cleared: rebuild from the latest source lines.
		g.ReloadBricks()
		return
	}

	if FellBelow(&g.ball, g.viewH) {
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.ball.Launched = false
			g.state = StateGameOver
			return
		}
		g.resetBallOnPaddle()
	}
}

// Destroyed returns the number of bricks broken this session, across
// level clears.
func (g *Game) Destroyed() int {
	return g.destroyed
}

// aliveBricks returns the number of bricks still standing.
func (g *Game) aliveBricks() int {
	count := 0
	for i := range g.bricks {
		if g.bricks[i].Alive {
			count++
		}
	}
	return count
}

// HoverBrick returns the first alive brick containing the pixel point
// (x, y), or nil. Iteration order matches the collision scan.
func (g *Game) HoverBrick(x, y int) *Brick {
	for i := range g.bricks {
		if g.bricks[i].Alive && g.bricks[i].Rect.Contains(x, y) {
			return &g.bricks[i]
		}
	}
	return nil
}

// Tooltip returns the full source line for the brick under (x, y), or
// empty when there is no brick or the brick's label already is the
// whole line.
func (g *Game) Tooltip(x, y int) string {
	b := g.HoverBrick(x, y)
	if b == nil || b.SourceText == b.Label {
		return ""
	}
	return b.SourceText
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Render draws the current game state to the screen buffer, projecting
// virtual pixels onto character cells. Rendering reads but never
// mutates simulation state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cw := g.cfg.Font.CharWidth
	ch := g.cfg.Font.CharHeight

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d   Lives: %d", g.score, g.lives))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	// Gutter line numbers
	for _, line := range g.renderLines {
		row := (line.BaselineY - g.metrics.Ascent()) / ch
		dst.DrawTextColored(1, row, fmt.Sprintf("%4d", line.Number), core.ColorGray)
	}

	// Bricks (alive tokens)
	for i := range g.bricks {
		b := &g.bricks[i]
		if !b.Alive {
			continue
		}
		dst.DrawText(b.DrawX/cw, b.Rect.Y/ch, b.Label)
	}

	// Paddle
	paddleRow := g.paddle.Y / ch
	paddleCol := g.paddle.X.Px() / cw
	paddleCells := core.Max(1, g.paddle.Width/cw)
	for i := 0; i < paddleCells; i++ {
		dst.SetCell(paddleCol+i, paddleRow, '=', core.ColorOrange)
	}

	// Ball
	dst.SetCell(g.ball.X.Px()/cw, g.ball.Y.Px()/ch, '●', core.ColorRed)

	// Overlays
	switch g.state {
	case StateServe:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
