package gravity_test

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/gravity"
)

type fakeActor struct {
	id  gravity.ActorID
	pos mgl64.Vec3
}

func (a *fakeActor) ID() gravity.ActorID  { return a.id }
func (a *fakeActor) Position() mgl64.Vec3 { return a.pos }

// fakeBody is a rigid body that can be taken out of the simulation.
type fakeBody struct {
	fakeActor
	mass      float64
	simulated bool
	forces    []mgl64.Vec3
}

func (b *fakeBody) Mass() float64         { return b.mass }
func (b *fakeBody) AddForce(f mgl64.Vec3) { b.forces = append(b.forces, f) }
func (b *fakeBody) Simulating() bool      { return b.simulated }

// fakeCharacter has a movement controller but no simulation switch.
type fakeCharacter struct {
	fakeActor
	mass   float64
	forces []mgl64.Vec3
}

func (c *fakeCharacter) Mass() float64         { return c.mass }
func (c *fakeCharacter) AddForce(f mgl64.Vec3) { c.forces = append(c.forces, f) }

type fakeProjectile struct {
	fakeActor
	gravity.Steering
}

type fakeRig struct {
	muzzle mgl64.Vec3
	hook   mgl64.Vec3
	aim    mgl64.Quat
}

func newRig() *fakeRig {
	return &fakeRig{aim: mgl64.QuatIdent()}
}

func (r *fakeRig) MuzzlePosition() mgl64.Vec3 { return r.muzzle }
func (r *fakeRig) HookPosition() mgl64.Vec3   { return r.hook }
func (r *fakeRig) AimRotation() mgl64.Quat    { return r.aim }

type fakePawn struct {
	pos      mgl64.Vec3
	vel      mgl64.Vec3
	airborne bool
	forces   []mgl64.Vec3
}

func (p *fakePawn) Position() mgl64.Vec3  { return p.pos }
func (p *fakePawn) Velocity() mgl64.Vec3  { return p.vel }
func (p *fakePawn) Airborne() bool        { return p.airborne }
func (p *fakePawn) AddForce(f mgl64.Vec3) { p.forces = append(p.forces, f) }

type fakeOverlap struct {
	enter func(gravity.Actor)
	exit  func(gravity.Actor)
}

func (o *fakeOverlap) Subscribe(enter, exit func(gravity.Actor)) {
	o.enter = enter
	o.exit = exit
}

// vecNear compares with an absolute tolerance; mgl64's relative check is
// too strict around zero.
func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
