package gravity

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultHookSlack is subtracted from the hook distance to get the tether length.
const DefaultHookSlack = 500.0

// Config holds the field body tunables.
type Config struct {
	Mode                 Mode
	AttractForce         float64
	RepulsionForce       float64
	HomingAcceleration   float64
	MovementSpeed        float64
	MaxDistanceToCarrier float64
	// AnchorOffset is applied in aim space when the body re-attaches.
	AnchorOffset mgl64.Vec3
	AreaRadius   float64
}

// DefaultConfig returns tuning that works at sandbox scale.
func DefaultConfig() Config {
	return Config{
		Mode:                 ModeAttraction,
		AttractForce:         4,
		RepulsionForce:       4,
		HomingAcceleration:   3000,
		MovementSpeed:        500,
		MaxDistanceToCarrier: 1000,
		AnchorOffset:         mgl64.Vec3{40, 0, 0},
		AreaRadius:           160,
	}
}

// Validate rejects values the force and flight math cannot use.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: mode %d", ErrUnknownMode, c.Mode)
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"attract_force", c.AttractForce},
		{"repulsion_force", c.RepulsionForce},
		{"homing_acceleration", c.HomingAcceleration},
		{"movement_speed", c.MovementSpeed},
		{"max_distance_to_carrier", c.MaxDistanceToCarrier},
		{"area_radius", c.AreaRadius},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.v) || math.IsInf(chk.v, 0) || chk.v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidValue, chk.name, chk.v)
		}
	}
	for i, v := range c.AnchorOffset {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: anchor_offset[%d] = %v", ErrInvalidValue, i, v)
		}
	}
	return nil
}

// CarrierConfig holds the carrier-side tunables.
type CarrierConfig struct {
	// ActiveDuration is how long, in seconds, a launched field stays out
	// before it is recalled automatically.
	ActiveDuration float64
	// SwingMagnitude scales the swing force. Negative values pull the
	// carrier back toward the field body.
	SwingMagnitude float64
	HookSlack      float64
}

func DefaultCarrierConfig() CarrierConfig {
	return CarrierConfig{
		ActiveDuration: 10,
		SwingMagnitude: -0.02,
		HookSlack:      DefaultHookSlack,
	}
}

func (c CarrierConfig) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"active_duration", c.ActiveDuration},
		{"swing_magnitude", c.SwingMagnitude},
		{"hook_slack", c.HookSlack},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.v) || math.IsInf(chk.v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidValue, chk.name, chk.v)
		}
	}
	if c.ActiveDuration < 0 {
		return fmt.Errorf("%w: active_duration = %v", ErrInvalidValue, c.ActiveDuration)
	}
	if c.HookSlack < 0 {
		return fmt.Errorf("%w: hook_slack = %v", ErrInvalidValue, c.HookSlack)
	}
	return nil
}
