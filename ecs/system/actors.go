package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
)

// ActorFor exposes an entity to the gravity core with the capabilities its
// components provide. Returns nil for dead entities.
func ActorFor(w *ecs.World, e ecs.Entity) gravity.Actor {
	if w == nil || !w.IsAlive(e) {
		return nil
	}
	base := entityActor{w: w, e: e}
	switch {
	case ecs.Has(w, e, component.ProjectileComponent.Kind()):
		return projectileActor{base}
	case ecs.Has(w, e, component.CharacterMovementComponent.Kind()):
		return characterActor{base}
	case ecs.Has(w, e, component.PhysicsBodyComponent.Kind()):
		return bodyActor{base}
	}
	return base
}

// EntityOf maps an actor id back to its entity handle.
func EntityOf(id gravity.ActorID) ecs.Entity {
	return ecs.Entity(id)
}

type entityActor struct {
	w *ecs.World
	e ecs.Entity
}

func (a entityActor) ID() gravity.ActorID {
	return gravity.ActorID(a.e)
}

func (a entityActor) Position() mgl64.Vec3 {
	t, ok := ecs.Get(a.w, a.e, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}
	}
	return t.Position
}

func (a entityActor) body() *cp.Body {
	pb, ok := ecs.Get(a.w, a.e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return nil
	}
	return pb.Body
}

func (a entityActor) applyForce(f mgl64.Vec3) {
	body := a.body()
	if body == nil || body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	// world-space force through the centre of gravity
	body.ApplyForceAtWorldPoint(common.ToCP(f), body.Position())
}

// characterActor is a walking pawn; its mass is the controller mass.
type characterActor struct {
	entityActor
}

func (a characterActor) Mass() float64 {
	cm, ok := ecs.Get(a.w, a.e, component.CharacterMovementComponent.Kind())
	if !ok {
		return 0
	}
	return cm.Mass
}

func (a characterActor) AddForce(f mgl64.Vec3) {
	a.applyForce(f)
}

func (a characterActor) Velocity() mgl64.Vec3 {
	body := a.body()
	if body == nil {
		return mgl64.Vec3{}
	}
	return common.FromCP(body.Velocity())
}

func (a characterActor) Airborne() bool {
	cm, ok := ecs.Get(a.w, a.e, component.CharacterMovementComponent.Kind())
	if !ok {
		return false
	}
	return !cm.Grounded
}

// bodyActor is a rigid body; it only takes forces while simulated.
type bodyActor struct {
	entityActor
}

func (a bodyActor) Mass() float64 {
	if body := a.body(); body != nil {
		return body.Mass()
	}
	pb, ok := ecs.Get(a.w, a.e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return 0
	}
	return pb.Mass
}

func (a bodyActor) AddForce(f mgl64.Vec3) {
	a.applyForce(f)
}

func (a bodyActor) Simulating() bool {
	pb, ok := ecs.Get(a.w, a.e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return false
	}
	return !pb.Static && !pb.Frozen
}

// projectileActor forwards steering commands to the projectile component.
type projectileActor struct {
	entityActor
}

func (a projectileActor) steering() *gravity.Steering {
	p, ok := ecs.Get(a.w, a.e, component.ProjectileComponent.Kind())
	if !ok {
		return nil
	}
	return &p.Steering
}

func (a projectileActor) SetHoming(enabled bool) {
	if s := a.steering(); s != nil {
		s.SetHoming(enabled)
	}
}

func (a projectileActor) SetHomingTarget(target gravity.Actor) {
	if s := a.steering(); s != nil {
		s.SetHomingTarget(target)
	}
}

func (a projectileActor) SetHomingAcceleration(magnitude float64) {
	if s := a.steering(); s != nil {
		s.SetHomingAcceleration(magnitude)
	}
}

func (a projectileActor) SetHomingInverted(inverted bool) {
	if s := a.steering(); s != nil {
		s.SetHomingInverted(inverted)
	}
}

// carrierRig resolves the carrier's sockets from its transform and aim.
type carrierRig struct {
	w *ecs.World
	e ecs.Entity
}

func (r carrierRig) socket(offset func(*component.Carrier) mgl64.Vec3) mgl64.Vec3 {
	t, ok := ecs.Get(r.w, r.e, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}
	}
	c, ok := ecs.Get(r.w, r.e, component.CarrierComponent.Kind())
	if !ok {
		return t.Position
	}
	return t.Position.Add(c.Aim.Rotate(offset(c)))
}

func (r carrierRig) MuzzlePosition() mgl64.Vec3 {
	return r.socket(func(c *component.Carrier) mgl64.Vec3 { return c.MuzzleOffset })
}

func (r carrierRig) HookPosition() mgl64.Vec3 {
	return r.socket(func(c *component.Carrier) mgl64.Vec3 { return c.HookOffset })
}

func (r carrierRig) AimRotation() mgl64.Quat {
	c, ok := ecs.Get(r.w, r.e, component.CarrierComponent.Kind())
	if !ok {
		return mgl64.QuatIdent()
	}
	return c.Aim
}
