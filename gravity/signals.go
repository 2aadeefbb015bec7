package gravity

import "github.com/go-gl/mathgl/mgl64"

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

// Resize is the direction of the area-of-effect resize animation.
type Resize uint8

const (
	ResizeGrowing Resize = iota
	ResizeShrinking
)

// Appearance is the ball appear/disappear animation.
type Appearance uint8

const (
	AppearanceShown Appearance = iota
	AppearanceHidden
)

// Tether describes the hook rope visual.
type Tether struct {
	Visible bool
	Anchor  mgl64.Vec3
	Length  float64
}

// Presenter receives cosmetic notifications. Calls never feed back into
// gameplay state.
type Presenter interface {
	AreaResized(r Resize)
	BallAppearance(a Appearance)
	MaterialChanged(m Mode)
	HUDModeChanged(index int)
	TetherChanged(t Tether)
}

// NopPresenter drops every notification.
type NopPresenter struct{}

func (NopPresenter) AreaResized(Resize)        {}
func (NopPresenter) BallAppearance(Appearance) {}
func (NopPresenter) MaterialChanged(Mode)      {}
func (NopPresenter) HUDModeChanged(int)        {}
func (NopPresenter) TetherChanged(Tether)      {}
