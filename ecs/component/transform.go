package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is the world pose. The sandbox plays in the XY plane with Y
// pointing down; Z stays zero for everything except the gravity core's
// own math.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

var TransformComponent = NewComponent[Transform]()
