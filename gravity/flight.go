package gravity

import "github.com/go-gl/mathgl/mgl64"

// Launch detaches a carried field and starts forward flight. It reports
// false when the field is already detached.
func (f *Field) Launch() bool {
	if f.detached {
		return false
	}
	f.detached = true
	f.flying = true
	return true
}

// Stop ends forward flight and switches the area effect on.
func (f *Field) Stop() bool {
	if !f.flying {
		return false
	}
	f.flying = false
	f.active = true
	f.presenter.AreaResized(ResizeGrowing)
	return true
}

// Recall brings a detached field back to the carrier's muzzle. The ball is
// hidden while it moves and shown once it is carried again. Recalling a
// carried field is a no-op.
func (f *Field) Recall() bool {
	if !f.detached {
		return false
	}
	f.detached = false
	f.flying = false
	f.active = false
	f.presenter.AreaResized(ResizeShrinking)
	f.presenter.BallAppearance(AppearanceHidden)
	f.snapToAnchor()
	f.presenter.BallAppearance(AppearanceShown)
	return true
}

func (f *Field) advance(dt float64) {
	f.position = f.position.Add(f.Forward().Mul(f.cfg.MovementSpeed * dt))

	if f.anchor == nil {
		f.warnAnchor()
		return
	}
	if f.detached && f.position.Sub(f.anchor.MuzzlePosition()).Len() >= f.cfg.MaxDistanceToCarrier {
		f.Stop()
	}
}

// AnchorPose is where the field sits while carried.
func (f *Field) AnchorPose() (mgl64.Vec3, mgl64.Quat, bool) {
	if f.anchor == nil {
		return mgl64.Vec3{}, mgl64.QuatIdent(), false
	}
	rot := f.anchor.AimRotation()
	return f.anchor.MuzzlePosition().Add(rot.Rotate(f.cfg.AnchorOffset)), rot, true
}

func (f *Field) snapToAnchor() {
	pos, rot, ok := f.AnchorPose()
	if !ok {
		f.warnAnchor()
		return
	}
	f.position = pos
	f.rotation = rot
}

func (f *Field) warnAnchor() {
	if f.warnedNoAnchor {
		return
	}
	f.warnedNoAnchor = true
	f.logger.Printf("GravityBall %d: no carrier anchor, flight range and re-attach disabled", f.id)
}
