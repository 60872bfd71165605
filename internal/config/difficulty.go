package config

// DifficultyPreset names a predefined difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Alias of normal; kept for CLI compatibility
)

// ParsePreset maps a CLI string to a preset. Unknown strings return
// false so callers can reject them with a helpful message.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// ApplyPreset adjusts the config for a difficulty preset. Easy slows
// the ball and widens the paddle; hard does the opposite. The adjusted
// values stay fixed for the whole session - the simulation itself has
// no progression.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.LaunchVX = cfg.Physics.LaunchVX * 80 / 100
		cfg.Physics.LaunchVY = cfg.Physics.LaunchVY * 80 / 100
		cfg.Paddle.Width = cfg.Paddle.Width * 120 / 100
	case DifficultyHard:
		cfg.Physics.LaunchVX = cfg.Physics.LaunchVX * 125 / 100
		cfg.Physics.LaunchVY = cfg.Physics.LaunchVY * 125 / 100
		cfg.Paddle.Width = cfg.Paddle.Width * 85 / 100
	}
	cfg.Validate()
}
