// Package config provides YAML-based configuration loading and difficulty
// management for vision-snake. Every gameplay tunable lives here rather
// than as a hardcoded constant.
package config

// Config is the root configuration document.
type Config struct {
	Vision     VisionConfig     `yaml:"vision"`
	Engine     EngineConfig     `yaml:"engine"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// VisionConfig tunes the landmark source and gesture classifier.
type VisionConfig struct {
	// MinConfidence is the detection confidence below which a landmark
	// set is treated as "no hand".
	MinConfidence float64 `yaml:"min_confidence"`
	// PalmMargin is the relative margin by which a fingertip must exceed
	// its knuckle's distance from the wrist to count as extended.
	PalmMargin float64 `yaml:"palm_margin"`
	// HoldSeconds is how long an open palm must be held to confirm reset.
	HoldSeconds float64 `yaml:"hold_seconds"`
	// StaleAfterMs is how long a landmark frame stays usable before the
	// classifier treats the hand as lost.
	StaleAfterMs int `yaml:"stale_after_ms"`
}

// EngineConfig tunes the snake engine.
type EngineConfig struct {
	PlayfieldW      float64 `yaml:"playfield_width"`
	PlayfieldH      float64 `yaml:"playfield_height"`
	CollisionRadius float64 `yaml:"collision_radius"`
	// BaseStep is the per-tick movement cap at score zero, in pixels.
	BaseStep float64 `yaml:"base_step"`
	// MaxStep is the hard ceiling on the per-tick movement cap.
	MaxStep       float64 `yaml:"max_step"`
	GrowthPerFood int     `yaml:"growth_per_food"`
	PointsPerFood int     `yaml:"points_per_food"`
	// MinSelfLen is the body length below which self collision is never
	// checked: dense sampling at low length produces spurious overlaps.
	MinSelfLen int `yaml:"min_self_collision_length"`
	// ExemptSegments is how many segments adjacent to the head are
	// excluded from the self collision test.
	ExemptSegments int     `yaml:"exempt_segments"`
	FoodMargin     float64 `yaml:"food_margin"`
	PlaceAttempts  int     `yaml:"place_attempts"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// SpeedMultiplier is the fraction added to the movement cap at max
	// difficulty: cap = base * (1 + level * multiplier).
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
