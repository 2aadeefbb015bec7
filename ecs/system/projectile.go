package system

import (
	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
)

// ProjectileSystem integrates projectile motion, adding homing acceleration
// while steering is enabled. Speed is capped at MaxSpeed when set.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const dt = common.TickSeconds
	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		if p.Steering.Enabled {
			p.Velocity = p.Velocity.Add(p.Steering.Acceleration(t.Position).Mul(dt))
		}
		if speed := p.Velocity.Len(); p.MaxSpeed > 0 && speed > p.MaxSpeed {
			p.Velocity = p.Velocity.Mul(p.MaxSpeed / speed)
		}
		t.Position = t.Position.Add(p.Velocity.Mul(dt))
		t.Rotation = common.AimRotation(p.Velocity.X(), p.Velocity.Y())
	})
}
