package game

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

var ErrInvalidConfig = errors.New("invalid physics config")

// PhysicsConfig holds the tuning constants of the simulation.
type PhysicsConfig struct {
	Gravity                 float32 `json:"gravity"`
	Friction                float32 `json:"friction"`
	MaxTickSeconds          float32 `json:"max_tick_seconds"`
	MaxSubstepDistance      float32 `json:"max_substep_distance"` // per axis, in voxels
	FallOutHeight           float32 `json:"fall_out_height"`
	StopSpeed               float32 `json:"stop_speed"`
	JumpPower               float32 `json:"jump_power"`
	PlatformSpeed           float32 `json:"platform_speed"`
	WaypointReachedDistance float32 `json:"waypoint_reached_distance"`
}

// DefaultPhysicsConfig returns the constants the game was tuned with.
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:                 160,
		Friction:                17,
		MaxTickSeconds:          1.0 / 30.0,
		MaxSubstepDistance:      1,
		FallOutHeight:           -30,
		StopSpeed:               0.1,
		JumpPower:               12,
		PlatformSpeed:           24,
		WaypointReachedDistance: 0.1,
	}
}

func (c PhysicsConfig) Validate() error {
	switch {
	case !(c.MaxTickSeconds > 0):
		return errors.Wrapf(ErrInvalidConfig, "max_tick_seconds must be positive, got %v", c.MaxTickSeconds)
	case !(c.MaxSubstepDistance > 0):
		return errors.Wrapf(ErrInvalidConfig, "max_substep_distance must be positive, got %v", c.MaxSubstepDistance)
	case c.Friction < 0:
		return errors.Wrapf(ErrInvalidConfig, "friction must not be negative, got %v", c.Friction)
	case !(c.WaypointReachedDistance > 0):
		return errors.Wrapf(ErrInvalidConfig, "waypoint_reached_distance must be positive, got %v", c.WaypointReachedDistance)
	case c.StopSpeed < 0:
		return errors.Wrapf(ErrInvalidConfig, "stop_speed must not be negative, got %v", c.StopSpeed)
	}
	return nil
}

// ReadPhysicsConfig decodes JSON on top of the defaults, so a file only
// needs to name the values it changes.
func ReadPhysicsConfig(r io.Reader) (PhysicsConfig, error) {
	config := DefaultPhysicsConfig()
	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return config, errors.Wrap(err, "decoding physics config")
	}
	return config, config.Validate()
}

func LoadPhysicsConfig(filename string) (PhysicsConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return DefaultPhysicsConfig(), errors.Wrapf(err, "opening physics config %s", filename)
	}
	defer file.Close()
	return ReadPhysicsConfig(file)
}

func (c PhysicsConfig) Save(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(c), "encoding physics config")
}
