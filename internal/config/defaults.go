package config

import (
	_ "embed"
)

//go:embed defaults/codebreak.yaml
var defaultYAML []byte

// Default returns the default codebreak configuration. The numbers
// mirror the classic tuning: launch vector (3.8, -4.6) px/tick, 9
// px/tick paddle, 10 px/tick edge deflection, 130x12 paddle, radius 7.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			LaunchVX:      3800,
			LaunchVY:      -4600,
			PaddleSpeed:   9000,
			MaxDeflection: 10000,
		},
		Paddle: PaddleConfig{
			Width:        130,
			Height:       12,
			Margin:       10,
			BottomOffset: 30,
		},
		Ball: BallConfig{
			Radius: 7,
		},
		Layout: LayoutConfig{
			CodeLeft:      70,
			RightMargin:   18,
			CodeTop:       64,
			BottomReserve: 70,
			MinLineHeight: 16,
			MinViewportW:  640,
			MinViewportH:  360,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			MaxLines:      56,
			BrickPoints:   10,
			BrickMinWidth: 6,
		},
		Font: FontConfig{
			CharWidth:  8,
			CharHeight: 16,
			Ascent:     12,
		},
	}
}
