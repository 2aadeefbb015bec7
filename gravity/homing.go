package gravity

import "github.com/go-gl/mathgl/mgl64"

// HandleEnter is the area-enter callback.
func (f *Field) HandleEnter(a Actor) {
	if a == nil || a.ID() == f.id || f.tracked.Contains(a.ID()) {
		return
	}
	if steer, ok := a.(Steerable); ok {
		if !f.active {
			return
		}
		f.couple(steer)
		f.tracked.Add(a, TrackedHoming)
		return
	}
	f.tracked.Add(a, TrackedGeneric)
}

// HandleExit is the area-exit callback.
func (f *Field) HandleExit(a Actor) {
	if a == nil || a.ID() == f.id {
		return
	}
	if steer, ok := a.(Steerable); ok {
		steer.SetHoming(false)
	}
	f.tracked.Remove(a.ID())
}

// couple hands the projectile a target; the sign, not the target, decides
// between pull and push.
func (f *Field) couple(s Steerable) {
	s.SetHoming(true)
	s.SetHomingAcceleration(f.cfg.HomingAcceleration)
	s.SetHomingTarget(f)
	s.SetHomingInverted(f.mode == ModeRepulsion)
}

// HomingAcceleration is the steering term a projectile integrator adds each
// tick. It is zero when position and target coincide.
func HomingAcceleration(target, position mgl64.Vec3, magnitude float64, inverted bool) mgl64.Vec3 {
	acc := safeNormal(target.Sub(position)).Mul(magnitude)
	if inverted {
		return acc.Mul(-1)
	}
	return acc
}

// Steering is a Steerable a projectile can embed.
type Steering struct {
	Enabled   bool
	Target    Actor
	Magnitude float64
	Inverted  bool
}

func (s *Steering) SetHoming(enabled bool)          { s.Enabled = enabled }
func (s *Steering) SetHomingTarget(target Actor)    { s.Target = target }
func (s *Steering) SetHomingAcceleration(m float64) { s.Magnitude = m }
func (s *Steering) SetHomingInverted(inverted bool) { s.Inverted = inverted }

// Acceleration returns the steering term for a projectile at position, or
// zero when steering is off.
func (s *Steering) Acceleration(position mgl64.Vec3) mgl64.Vec3 {
	if s == nil || !s.Enabled || s.Target == nil {
		return mgl64.Vec3{}
	}
	return HomingAcceleration(s.Target.Position(), position, s.Magnitude, s.Inverted)
}

func safeNormal(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-8 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}
