package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/gravity"
)

// Projectile is a kinematic shot. Steering is driven by gravity balls while
// the projectile sits inside an active field.
type Projectile struct {
	Velocity mgl64.Vec3
	MaxSpeed float64
	Steering gravity.Steering
}

var ProjectileComponent = NewComponent[Projectile]()
