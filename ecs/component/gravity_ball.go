package component

import (
	"image/color"

	"github.com/milk9111/gravityball/gravity"
)

// GravityBall binds a field body to an entity. Field is created by the
// gravity ball system on first update from Config; Carrier is the owning
// carrier entity (ecs.Entity is uint64), zero when unowned. Prefab names
// the prefab the tuning came from, for hot reload.
type GravityBall struct {
	Config  gravity.Config
	Field   *gravity.Field
	Carrier uint64
	Prefab  string

	// presentation state, driven by field signals
	AreaScale   float64
	TargetScale float64
	Tint        color.Color
	Hidden      bool
	HUDIndex    int
	Tether      gravity.Tether
}

var GravityBallComponent = NewComponent[GravityBall]()
