package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// TPS is the fixed simulation rate; every system advances by TickSeconds.
const (
	TPS         = 60
	TickSeconds = 1.0 / TPS
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// LerpF64 is Lerp for float64 values.
func LerpF64(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ToCP drops Z; the physics space is the XY plane.
func ToCP(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}

func FromCP(v cp.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, 0}
}

// AimRotation returns the rotation about Z that points +X at (dx, dy). A
// zero direction yields the identity.
func AimRotation(dx, dy float64) mgl64.Quat {
	if dx == 0 && dy == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(math.Atan2(dy, dx), mgl64.Vec3{0, 0, 1})
}
