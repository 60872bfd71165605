package breakout

import (
	"testing"

	"github.com/codebrk/codebreak/internal/core"
)

func TestCollideWallsReflects(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		wantX  core.Fixed
		wantY  core.Fixed
		wantVX core.Fixed
		wantVY core.Fixed
	}{
		{
			name:   "left wall",
			ball:   Ball{X: core.ToFixed(6), Y: core.ToFixed(100), VX: core.ToFixed(-2), VY: core.ToFixed(1), Radius: 7},
			wantX:  core.ToFixed(7),
			wantY:  core.ToFixed(101),
			wantVX: core.ToFixed(2),
			wantVY: core.ToFixed(1),
		},
		{
			name:   "right wall",
			ball:   Ball{X: core.ToFixed(636), Y: core.ToFixed(100), VX: core.ToFixed(3), VY: core.ToFixed(1), Radius: 7},
			wantX:  core.ToFixed(633),
			wantY:  core.ToFixed(101),
			wantVX: core.ToFixed(-3),
			wantVY: core.ToFixed(1),
		},
		{
			name:   "top wall",
			ball:   Ball{X: core.ToFixed(100), Y: core.ToFixed(8), VX: core.ToFixed(1), VY: core.ToFixed(-4), Radius: 7},
			wantX:  core.ToFixed(101),
			wantY:  core.ToFixed(7),
			wantVX: core.ToFixed(1),
			wantVY: core.ToFixed(4),
		},
		{
			name:   "open field",
			ball:   Ball{X: core.ToFixed(300), Y: core.ToFixed(200), VX: core.ToFixed(2), VY: core.ToFixed(3), Radius: 7},
			wantX:  core.ToFixed(302),
			wantY:  core.ToFixed(203),
			wantVX: core.ToFixed(2),
			wantVY: core.ToFixed(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			b.Move()
			CollideWalls(&b, 640)

			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.VX != tt.wantVX || b.VY != tt.wantVY {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)", b.VX, b.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestBottomIsOpen(t *testing.T) {
	b := Ball{X: core.ToFixed(300), Y: core.ToFixed(380), VX: 0, VY: core.ToFixed(5), Radius: 7}
	CollideWalls(&b, 640)
	if b.VY != core.ToFixed(5) {
		t.Errorf("bottom wall reflected the ball: vy = %d", b.VY)
	}

	if FellBelow(&b, 384) {
		t.Error("ball at y=380 reported as fallen")
	}
	b.Y = core.ToFixed(392) // top edge at 385, past the 384 bottom
	if !FellBelow(&b, 384) {
		t.Error("ball past the bottom not reported as fallen")
	}
}

func TestCollidePaddleDeflection(t *testing.T) {
	maxDefl := core.ToFixed(10)

	tests := []struct {
		name   string
		ballX  core.Fixed
		wantVX core.Fixed
	}{
		{"dead center goes straight up", core.ToFixed(165), 0},
		{"right edge deflects right", core.ToFixed(230), core.ToFixed(5)},
		{"left edge deflects left", core.ToFixed(100), core.ToFixed(-5)},
		{"quarter point", core.ToFixed(132), core.Fixed(-2540)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paddle{X: core.ToFixed(100), Y: 300, Width: 130, Height: 12}
			b := Ball{X: tt.ballX, Y: core.ToFixed(295), VX: core.ToFixed(1), VY: core.ToFixed(4), Radius: 7}

			if !CollidePaddle(&b, &p, maxDefl) {
				t.Fatal("expected a paddle hit")
			}
			if b.VX != tt.wantVX {
				t.Errorf("vx = %d, expected %d", b.VX, tt.wantVX)
			}
			if b.VY != core.ToFixed(-4) {
				t.Errorf("vy = %d, expected %d", b.VY, core.ToFixed(-4))
			}
			if b.Y != core.ToFixed(293) {
				t.Errorf("ball not repositioned above the paddle: y = %d", b.Y)
			}
		})
	}
}

func TestCollidePaddleRequiresDownwardBall(t *testing.T) {
	p := Paddle{X: core.ToFixed(100), Y: 300, Width: 130, Height: 12}
	b := Ball{X: core.ToFixed(165), Y: core.ToFixed(305), VX: core.ToFixed(1), VY: core.ToFixed(-4), Radius: 7}

	if CollidePaddle(&b, &p, core.ToFixed(10)) {
		t.Error("upward-moving ball must pass through the paddle")
	}
	if b.VY != core.ToFixed(-4) || b.Y != core.ToFixed(305) {
		t.Error("missed collision mutated the ball")
	}
}

func TestPaddleClampAndCenter(t *testing.T) {
	p := Paddle{X: core.ToFixed(-500), Y: 300, Width: 130, Height: 12}
	p.Clamp(640, 10)
	if p.X != core.ToFixed(10) {
		t.Errorf("left clamp: x = %d, expected %d", p.X, core.ToFixed(10))
	}

	p.X = core.ToFixed(9000)
	p.Clamp(640, 10)
	if p.X != core.ToFixed(640-130-10) {
		t.Errorf("right clamp: x = %d, expected %d", p.X, core.ToFixed(500))
	}

	p.X = core.ToFixed(100)
	if p.CenterX() != core.ToFixed(165) {
		t.Errorf("center = %d, expected %d", p.CenterX(), core.ToFixed(165))
	}
}

func TestCollideBricksFirstAliveOnly(t *testing.T) {
	bricks := []Brick{
		{ID: 0, Rect: core.NewRect(70, 64, 8, 18), Alive: true},
		{ID: 1, Rect: core.NewRect(86, 64, 8, 18), Alive: true},
	}
	// Ball box spans both bricks.
	b := Ball{X: core.ToFixed(82), Y: core.ToFixed(70), Radius: 7}

	if idx := CollideBricks(&b, bricks); idx != 0 {
		t.Fatalf("hit brick %d, expected the first in slice order", idx)
	}

	bricks[0].Alive = false
	if idx := CollideBricks(&b, bricks); idx != 1 {
		t.Errorf("hit brick %d, expected the next alive one", idx)
	}

	bricks[1].Alive = false
	if idx := CollideBricks(&b, bricks); idx != -1 {
		t.Errorf("hit brick %d against a dead field", idx)
	}
}
