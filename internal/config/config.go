// Package config provides YAML-based game configuration loading and
// difficulty presets for codebreak.
package config

// Config contains all tunable parameters for the codebreak game.
// Velocity values are fixed-point: scaled by 1000, in pixels per tick.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Layout   LayoutConfig   `yaml:"layout"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Font     FontConfig     `yaml:"font"`
}

// PhysicsConfig defines motion parameters (scaled by 1000, px/tick).
type PhysicsConfig struct {
	LaunchVX      int `yaml:"launch_vx"`      // Initial ball velocity X
	LaunchVY      int `yaml:"launch_vy"`      // Initial ball velocity Y (negative = up)
	PaddleSpeed   int `yaml:"paddle_speed"`   // Paddle movement per tick
	MaxDeflection int `yaml:"max_deflection"` // Paddle-edge deflection range
}

// PaddleConfig defines paddle geometry in pixels.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Margin       int `yaml:"margin"`        // Clamp margin from viewport edges
	BottomOffset int `yaml:"bottom_offset"` // Paddle top edge distance from viewport bottom
}

// BallConfig defines ball geometry in pixels.
type BallConfig struct {
	Radius int `yaml:"radius"`
}

// LayoutConfig defines the code-field geometry in pixels.
type LayoutConfig struct {
	CodeLeft      int `yaml:"code_left"`       // Left edge of token cursor (gutter width)
	RightMargin   int `yaml:"right_margin"`    // Reserved space at the right edge
	CodeTop       int `yaml:"code_top"`        // Top of the first text row
	BottomReserve int `yaml:"bottom_reserve"`  // Space kept clear above the paddle area
	MinLineHeight int `yaml:"min_line_height"` // Row height floor
	MinViewportW  int `yaml:"min_viewport_w"`  // Viewport width floor
	MinViewportH  int `yaml:"min_viewport_h"`  // Viewport height floor
}

// GameplayConfig defines scoring and session rules.
type GameplayConfig struct {
	Lives         int `yaml:"lives"`
	MaxLines      int `yaml:"max_lines"`       // Cap on lines taken from the source
	BrickPoints   int `yaml:"brick_points"`    // Score per destroyed brick
	BrickMinWidth int `yaml:"brick_min_width"` // Clickable rect width floor (px)
}

// FontConfig defines the monospace cell the platform renders with, and
// the metrics the layout measures tokens against.
type FontConfig struct {
	CharWidth  int `yaml:"char_width"`
	CharHeight int `yaml:"char_height"`
	Ascent     int `yaml:"ascent"`
}

// Validate clamps out-of-range values to safe floors so a hand-edited
// config can never produce degenerate geometry.
func (c *Config) Validate() {
	if c.Paddle.Width < 1 {
		c.Paddle.Width = 1
	}
	if c.Paddle.Height < 1 {
		c.Paddle.Height = 1
	}
	if c.Paddle.Margin < 0 {
		c.Paddle.Margin = 0
	}
	if c.Paddle.BottomOffset < c.Paddle.Height {
		c.Paddle.BottomOffset = c.Paddle.Height
	}
	if c.Ball.Radius < 1 {
		c.Ball.Radius = 1
	}
	if c.Gameplay.Lives < 1 {
		c.Gameplay.Lives = 1
	}
	if c.Gameplay.MaxLines < 1 {
		c.Gameplay.MaxLines = 1
	}
	if c.Gameplay.BrickMinWidth < 1 {
		c.Gameplay.BrickMinWidth = 1
	}
	if c.Layout.MinLineHeight < 1 {
		c.Layout.MinLineHeight = 1
	}
	if c.Font.CharWidth < 1 {
		c.Font.CharWidth = 1
	}
	if c.Font.CharHeight < 1 {
		c.Font.CharHeight = 1
	}
	if c.Font.Ascent < 1 {
		c.Font.Ascent = c.Font.CharHeight
	}
}
