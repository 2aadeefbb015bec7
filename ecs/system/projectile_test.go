package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
)

func newProjectile(t *testing.T, w *ecs.World, pos, vel mgl64.Vec3, maxSpeed float64) ecs.Entity {
	t.Helper()
	e := newBounded(t, w, pos, 4)
	mustAdd(t, w, e, component.ProjectileComponent.Kind(), &component.Projectile{Velocity: vel, MaxSpeed: maxSpeed})
	return e
}

func TestProjectileIntegration(t *testing.T) {
	cases := []struct {
		name     string
		vel      mgl64.Vec3
		maxSpeed float64
		wantVel  mgl64.Vec3
	}{
		{"straight", mgl64.Vec3{600, 0, 0}, 0, mgl64.Vec3{600, 0, 0}},
		{"capped", mgl64.Vec3{0, 1200, 0}, 900, mgl64.Vec3{0, 900, 0}},
		{"under_cap", mgl64.Vec3{300, 0, 0}, 900, mgl64.Vec3{300, 0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newProjectile(t, w, mgl64.Vec3{}, c.vel, c.maxSpeed)

			NewProjectileSystem().Update(w)
			p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if !vecNear(p.Velocity, c.wantVel) {
				t.Fatalf("velocity: expected %v, got %v", c.wantVel, p.Velocity)
			}
			if want := c.wantVel.Mul(1.0 / 60); !vecNear(tr.Position, want) {
				t.Fatalf("position: expected %v, got %v", want, tr.Position)
			}
		})
	}
}

func TestProjectileHomesOnTarget(t *testing.T) {
	w := ecs.NewWorld()
	e := newProjectile(t, w, mgl64.Vec3{}, mgl64.Vec3{600, 0, 0}, 0)
	target := newBounded(t, w, mgl64.Vec3{0, 500, 0}, 1)

	p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	p.Steering.SetHoming(true)
	p.Steering.SetHomingTarget(ActorFor(w, target))
	p.Steering.SetHomingAcceleration(3000)

	NewProjectileSystem().Update(w)
	if p.Velocity.Y() <= 0 {
		t.Fatalf("homing should bend the shot toward the target, got %v", p.Velocity)
	}

	p.Steering.SetHomingInverted(true)
	before := p.Velocity.Y()
	NewProjectileSystem().Update(w)
	if p.Velocity.Y() >= before {
		t.Fatalf("inverted homing should push away, got %v after %v", p.Velocity.Y(), before)
	}
}
