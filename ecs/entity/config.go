package entity

import (
	"fmt"

	"github.com/milk9111/gravityball/gravity"
	"github.com/milk9111/gravityball/prefabs"
)

// GravityConfig overlays a prefab spec on the core defaults and validates
// the result.
func GravityConfig(spec prefabs.GravityBallComponentSpec) (gravity.Config, error) {
	cfg := gravity.DefaultConfig()
	mode, err := gravity.ParseMode(spec.Mode)
	if err != nil {
		return cfg, fmt.Errorf("gravity ball: %w", err)
	}
	cfg.Mode = mode
	overlay(&cfg.AttractForce, spec.AttractForce)
	overlay(&cfg.RepulsionForce, spec.RepulsionForce)
	overlay(&cfg.HomingAcceleration, spec.HomingAcceleration)
	overlay(&cfg.MovementSpeed, spec.MovementSpeed)
	overlay(&cfg.MaxDistanceToCarrier, spec.MaxDistanceToCarrier)
	overlay(&cfg.AreaRadius, spec.AreaRadius)
	if spec.AnchorOffset != nil {
		cfg.AnchorOffset = spec.AnchorOffset.Vec3()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("gravity ball: %w", err)
	}
	return cfg, nil
}

func CarrierConfig(spec prefabs.CarrierComponentSpec) (gravity.CarrierConfig, error) {
	cfg := gravity.DefaultCarrierConfig()
	overlay(&cfg.ActiveDuration, spec.ActiveDuration)
	overlay(&cfg.SwingMagnitude, spec.SwingMagnitude)
	overlay(&cfg.HookSlack, spec.HookSlack)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("carrier: %w", err)
	}
	return cfg, nil
}

func overlay(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
