// Package config provides YAML-based configuration loading for the
// platformer host: the game-rule constants the collision engine itself does
// not decide.
package config

// PlayerConfig contains all configuration for the player controller.
type PlayerConfig struct {
	Physics PlayerPhysics `yaml:"physics"`
	Body    PlayerBody    `yaml:"body"`
	Runtime Runtime       `yaml:"runtime"`
}

// PlayerPhysics defines movement parameters in world units per second.
type PlayerPhysics struct {
	Gravity      float32 `yaml:"gravity"`        // Downward acceleration (units/s²)
	JumpSpeed    float32 `yaml:"jump_speed"`     // Vertical speed set on jump (negative = up)
	MoveSpeed    float32 `yaml:"move_speed"`     // Horizontal run speed
	MaxFallSpeed float32 `yaml:"max_fall_speed"` // 0 disables the clamp
}

// PlayerBody defines the player's collision box.
type PlayerBody struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Runtime defines simulation timing.
type Runtime struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate reports the first unusable value.
func (c PlayerConfig) Validate() error {
	if c.Body.Width <= 0 || c.Body.Height <= 0 {
		return ValidationError{Field: "body", Message: "width and height must be positive"}
	}
	if c.Physics.MaxFallSpeed < 0 {
		return ValidationError{Field: "physics.max_fall_speed", Message: "must not be negative"}
	}
	if c.Runtime.TickRate <= 0 {
		return ValidationError{Field: "runtime.tick_rate", Message: "must be positive"}
	}
	return nil
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return "config: " + e.Field + " " + e.Message
}
