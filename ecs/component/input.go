package component

import "github.com/milk9111/gravityball/gravity"

// Input stores per-frame input state for an entity. The *Pressed fields are
// edges and are true for a single frame.
type Input struct {
	MoveX       float64
	JumpPressed bool

	LaunchPressed bool
	RecallPressed bool
	HookPressed   bool
	HookReleased  bool
	FirePressed   bool

	ModeSelected bool
	Mode         gravity.Mode

	AimX float64
	AimY float64
}

var InputComponent = NewComponent[Input]()
