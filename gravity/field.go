package gravity

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// forwardAxis is the local facing direction of the field body.
var forwardAxis = mgl64.Vec3{1, 0, 0}

// FlightState is the attachment/flight state of a field body.
type FlightState uint8

const (
	StateCarried FlightState = iota
	StateFlying
	StateIdle
)

func (s FlightState) String() string {
	switch s {
	case StateCarried:
		return "carried"
	case StateFlying:
		return "flying"
	case StateIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Field is the gravity ball: a detachable force-field body owned by one
// carrier. All methods must be called from the simulation goroutine.
type Field struct {
	id  ActorID
	cfg Config

	mode     Mode
	active   bool
	detached bool
	flying   bool

	position mgl64.Vec3
	rotation mgl64.Quat

	tracked *Tracker
	anchor  Rig

	presenter Presenter
	logger    *log.Logger

	warnedNoAnchor bool
}

// FieldOption configures a Field at construction.
type FieldOption func(*Field)

// WithPresenter routes cosmetic signals to p.
func WithPresenter(p Presenter) FieldOption {
	return func(f *Field) {
		if p != nil {
			f.presenter = p
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) FieldOption {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithAnchor attaches the field to a carrier's weapon sockets.
func WithAnchor(r Rig) FieldOption {
	return func(f *Field) {
		f.anchor = r
	}
}

// WithPose sets the initial world position and rotation.
func WithPose(pos mgl64.Vec3, rot mgl64.Quat) FieldOption {
	return func(f *Field) {
		f.position = pos
		f.rotation = rot
	}
}

// NewField creates a carried, inactive field body.
func NewField(id ActorID, cfg Config, opts ...FieldOption) *Field {
	f := &Field{
		id:        id,
		cfg:       cfg,
		mode:      cfg.Mode,
		rotation:  mgl64.QuatIdent(),
		tracked:   NewTracker(),
		presenter: NopPresenter{},
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.anchor != nil {
		f.snapToAnchor()
	}
	return f
}

func (f *Field) ID() ActorID          { return f.id }
func (f *Field) Position() mgl64.Vec3 { return f.position }
func (f *Field) Rotation() mgl64.Quat { return f.rotation }
func (f *Field) Mode() Mode           { return f.mode }
func (f *Field) Active() bool         { return f.active }
func (f *Field) Detached() bool       { return f.detached }
func (f *Field) Flying() bool         { return f.flying }
func (f *Field) Config() Config       { return f.cfg }

// Forward is the facing direction used by autonomous flight.
func (f *Field) Forward() mgl64.Vec3 {
	return f.rotation.Rotate(forwardAxis)
}

// State reports the flight state derived from the detached/flying flags.
func (f *Field) State() FlightState {
	switch {
	case !f.detached:
		return StateCarried
	case f.flying:
		return StateFlying
	default:
		return StateIdle
	}
}

// Tracked exposes the affected set for read-only use.
func (f *Field) Tracked() *Tracker {
	return f.tracked
}

// SetConfig replaces the tunables. The current mode is kept.
func (f *Field) SetConfig(cfg Config) {
	cfg.Mode = f.mode
	f.cfg = cfg
}

// SetAnchor rebinds the field to a carrier rig. A nil rig leaves the body
// where it is.
func (f *Field) SetAnchor(r Rig) {
	f.anchor = r
	f.warnedNoAnchor = false
}

// SetMode switches the mode and reports whether it changed. Signals are the
// carrier's job.
func (f *Field) SetMode(m Mode) bool {
	if !m.Valid() || f.mode == m {
		return false
	}
	f.mode = m
	f.cfg.Mode = m
	return true
}

// SetPose places the body, typically by the host when it moves it.
func (f *Field) SetPose(pos mgl64.Vec3, rot mgl64.Quat) {
	f.position = pos
	f.rotation = rot
}

// Subscribe binds the field to its area trigger.
func (f *Field) Subscribe(src OverlapSource) {
	if src == nil {
		f.logger.Printf("GravityBall %d: no area trigger, area effects disabled", f.id)
		return
	}
	src.Subscribe(f.HandleEnter, f.HandleExit)
}

// Tick runs the per-frame update: forces first, then flight.
func (f *Field) Tick(dt float64) {
	f.ApplyForces()
	switch {
	case f.flying:
		f.advance(dt)
	case !f.detached:
		f.snapToAnchor()
	}
}

// ApplyForces adds one force sample to every generic actor in the area.
// Nothing happens while inactive or in hook mode.
func (f *Field) ApplyForces() {
	if !f.forcesEnabled() {
		return
	}
	f.tracked.Each(TrackedGeneric, func(a Actor) {
		if recv, force, ok := f.forceOn(a); ok {
			recv.AddForce(force)
		}
	})
}

// ForceOn returns the force ApplyForces would add to a this tick, and false
// when a would be skipped.
func (f *Field) ForceOn(a Actor) (mgl64.Vec3, bool) {
	if !f.forcesEnabled() || a == nil {
		return mgl64.Vec3{}, false
	}
	_, force, ok := f.forceOn(a)
	return force, ok
}

func (f *Field) forcesEnabled() bool {
	return f.active && f.mode != ModeHook
}

// forceOn grows linearly with distance; direction is not normalised.
func (f *Field) forceOn(a Actor) (ForceReceiver, mgl64.Vec3, bool) {
	recv, ok := forceTarget(a)
	if !ok {
		return nil, mgl64.Vec3{}, false
	}
	direction := a.Position().Sub(f.position)
	if f.mode == ModeAttraction {
		return recv, direction.Mul(-f.cfg.AttractForce * recv.Mass()), true
	}
	return recv, direction.Mul(f.cfg.RepulsionForce * recv.Mass()), true
}
