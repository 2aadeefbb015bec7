package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/gravity"
)

// Carrier owns a gravity ball. Offsets are relative to the carrier's
// transform and rotated by Aim.
type Carrier struct {
	Config  gravity.CarrierConfig
	Carrier *gravity.Carrier
	Ball    uint64
	Prefab  string

	MuzzleOffset mgl64.Vec3
	HookOffset   mgl64.Vec3
	Aim          mgl64.Quat

	ProjectilePrefab   string
	FireCooldownFrames int
	FireCooldown       int
}

var CarrierComponent = NewComponent[Carrier]()
