package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
)

// NewProjectile spawns a projectile at pos flying along rot's forward axis.
func NewProjectile(w *ecs.World, prefab string, pos mgl64.Vec3, rot mgl64.Quat) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("projectile: %s has no projectile component", prefab)
	}
	p.Velocity = rot.Rotate(p.Velocity)

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.Position = pos
	t.Rotation = rot
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return 0, fmt.Errorf("projectile: transform: %w", err)
	}
	return e, nil
}
