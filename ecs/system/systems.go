package system

import "github.com/milk9111/gravityball/ecs"

// GameplaySystems returns the per-tick systems that follow input, in frame
// order. Overlap runs before the gravity ball so enters and exits land before
// that tick's forces, and physics runs after so the step consumes them. A nil
// physics system is left out.
func GameplaySystems(overlap *OverlapSystem, physics *PhysicsSystem) []ecs.System {
	systems := []ecs.System{
		NewCarrierControlSystem(),
		overlap,
		NewGravityBallSystem(overlap),
		NewCarrierSystem(),
		NewProjectileSystem(),
	}
	if physics != nil {
		systems = append(systems, physics)
	}
	return append(systems, NewTTLSystem(), NewPresentationSystem())
}
