package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/prefabs"
)

// NewCarrierAt builds a carrier and the gravity ball its prefab names. A
// carrier whose ball cannot be built is still returned; its weapon commands
// are then no-ops.
func NewCarrierAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	carrier, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, carrier, x, y, 0); err != nil {
		return 0, fmt.Errorf("carrier: override transform: %w", err)
	}

	c, ok := ecs.Get(w, carrier, component.CarrierComponent.Kind())
	if !ok {
		return carrier, nil
	}

	spec, _, err := prefabs.ComponentSpec[prefabs.CarrierComponentSpec](prefab, "carrier")
	if err != nil || spec.GravityBall == "" {
		return carrier, nil
	}

	ball, err := NewGravityBallAt(w, spec.GravityBall, x, y)
	if err != nil {
		log.Printf("Carrier: %s: gravity ball %s: %v", prefab, spec.GravityBall, err)
		return carrier, nil
	}
	if b, ok := ecs.Get(w, ball, component.GravityBallComponent.Kind()); ok {
		b.Carrier = uint64(carrier)
	}
	c.Ball = uint64(ball)
	return carrier, nil
}

func NewGravityBallAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	ball, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if !ecs.Has(w, ball, component.GravityBallComponent.Kind()) {
		ecs.DestroyEntity(w, ball)
		return 0, fmt.Errorf("gravity ball: %s has no gravity_ball component", prefab)
	}
	if err := SetEntityTransform(w, ball, x, y, 0); err != nil {
		return 0, fmt.Errorf("gravity ball: override transform: %w", err)
	}
	return ball, nil
}
