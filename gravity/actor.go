package gravity

import "github.com/go-gl/mathgl/mgl64"

// ActorID identifies an actor for the lifetime of the simulation.
type ActorID uint64

// Actor is anything the host can report inside a field's area.
//
// Optional capabilities are discovered by type assertion: ForceReceiver,
// Simulated and Steerable.
type Actor interface {
	ID() ActorID
	Position() mgl64.Vec3
}

// ForceReceiver is an actor with mass-bearing movement (a character
// controller or a rigid body). Forces are accumulated by the host integrator.
type ForceReceiver interface {
	Mass() float64
	AddForce(f mgl64.Vec3)
}

// Simulated is implemented by rigid bodies that can be switched out of the
// physics simulation. Bodies that report false receive no force.
type Simulated interface {
	Simulating() bool
}

// Steerable is a homing-capable projectile. The projectile's own integrator
// reads these values; the field only toggles them.
type Steerable interface {
	SetHoming(enabled bool)
	SetHomingTarget(target Actor)
	SetHomingAcceleration(magnitude float64)
	SetHomingInverted(inverted bool)
}

// forceTarget returns the receiver for a, or false when a cannot take forces
// this tick.
func forceTarget(a Actor) (ForceReceiver, bool) {
	r, ok := a.(ForceReceiver)
	if !ok {
		return nil, false
	}
	if sim, ok := a.(Simulated); ok && !sim.Simulating() {
		return nil, false
	}
	return r, true
}

// Pawn is the carrier's movement capability.
type Pawn interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	Airborne() bool
	AddForce(f mgl64.Vec3)
}

// Rig exposes the carrier's weapon sockets.
type Rig interface {
	// MuzzlePosition is where the field body attaches.
	MuzzlePosition() mgl64.Vec3
	// HookPosition is where the tether starts.
	HookPosition() mgl64.Vec3
	// AimRotation is the carrier's current aim pose.
	AimRotation() mgl64.Quat
}

// OverlapSource delivers area enter/exit events. Subscribe is called once
// when a field is bound to its area trigger.
type OverlapSource interface {
	Subscribe(enter, exit func(Actor))
}
