package gravity

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Carrier is the character side of the weapon: it issues commands to its
// field, runs the auto-recall countdown and the hook swing.
type Carrier struct {
	cfg   CarrierConfig
	pawn  Pawn
	rig   Rig
	field *Field

	presenter Presenter
	logger    *log.Logger

	swinging     bool
	countdown    float64
	tetherLength float64

	warnedNoField bool
}

// CarrierOption configures a Carrier at construction.
type CarrierOption func(*Carrier)

func WithCarrierPresenter(p Presenter) CarrierOption {
	return func(c *Carrier) {
		if p != nil {
			c.presenter = p
		}
	}
}

func WithCarrierLogger(l *log.Logger) CarrierOption {
	return func(c *Carrier) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCarrier binds field to the carrier's rig. field may be nil, in which
// case every weapon command is a no-op.
func NewCarrier(cfg CarrierConfig, pawn Pawn, rig Rig, field *Field, opts ...CarrierOption) *Carrier {
	c := &Carrier{
		cfg:       cfg,
		pawn:      pawn,
		rig:       rig,
		field:     field,
		presenter: NopPresenter{},
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if field != nil && rig != nil {
		field.SetAnchor(rig)
	}
	if field == nil {
		c.logger.Printf("Carrier: %v, gravity ball disabled", ErrNoFieldBody)
		c.warnedNoField = true
	}
	return c
}

func (c *Carrier) Field() *Field         { return c.field }
func (c *Carrier) Swinging() bool        { return c.swinging }
func (c *Carrier) Countdown() float64    { return c.countdown }
func (c *Carrier) TetherLength() float64 { return c.tetherLength }
func (c *Carrier) Config() CarrierConfig { return c.cfg }

func (c *Carrier) SetConfig(cfg CarrierConfig) {
	c.cfg = cfg
}

// LaunchOrStop is the single launch control: it launches a carried field and
// stops a flying one. A field resting in the world ignores it.
func (c *Carrier) LaunchOrStop() bool {
	if !c.hasField() {
		return false
	}
	switch c.field.State() {
	case StateCarried:
		c.field.Launch()
		c.countdown = c.cfg.ActiveDuration
		return true
	case StateFlying:
		return c.field.Stop()
	default:
		return false
	}
}

// Recall returns the field to the muzzle and drops any active hook.
func (c *Carrier) Recall() bool {
	if !c.hasField() || !c.field.Detached() {
		return false
	}
	c.HookRelease()
	return c.field.Recall()
}

// HookEngage tethers the carrier to a resting hook-mode field.
func (c *Carrier) HookEngage() bool {
	if !c.hasField() {
		return false
	}
	f := c.field
	if f.Mode() != ModeHook || !f.Detached() || f.Flying() {
		return false
	}

	from := c.hookPosition()
	c.tetherLength = math.Max(0, from.Sub(f.Position()).Len()-c.cfg.HookSlack)
	c.swinging = true
	c.presenter.TetherChanged(Tether{Visible: true, Anchor: f.Position(), Length: c.tetherLength})
	return true
}

// HookRelease ends the swing. Releasing when not hooked is a no-op.
func (c *Carrier) HookRelease() bool {
	if !c.swinging {
		return false
	}
	c.swinging = false
	c.tetherLength = 0
	c.presenter.TetherChanged(Tether{})
	return true
}

// SetMode switches the field mode and notifies the presentation layer.
func (c *Carrier) SetMode(m Mode) bool {
	if !c.hasField() || !c.field.SetMode(m) {
		return false
	}
	c.presenter.MaterialChanged(m)
	c.presenter.HUDModeChanged(m.HUDIndex())
	return true
}

// Tick applies the swing force and advances the auto-recall countdown.
func (c *Carrier) Tick(dt float64) {
	if c.field == nil {
		return
	}
	if force, ok := c.SwingForce(); ok {
		c.pawn.AddForce(force)
	}

	if c.countdown > 0 {
		c.countdown = math.Max(0, c.countdown-dt)
	}
	if c.countdown <= 0 && c.field.Active() {
		c.Recall()
	}
}

// SwingForce is the pendulum force for this tick. The tether length is not
// enforced.
func (c *Carrier) SwingForce() (mgl64.Vec3, bool) {
	if c.field == nil || c.pawn == nil || !c.swinging {
		return mgl64.Vec3{}, false
	}
	if c.field.Mode() != ModeHook || !c.field.Active() || !c.pawn.Airborne() {
		return mgl64.Vec3{}, false
	}
	d := c.pawn.Position().Sub(c.field.Position())
	magnitude := c.pawn.Velocity().Dot(d)
	return safeNormal(d).Mul(magnitude * c.cfg.SwingMagnitude), true
}

func (c *Carrier) hookPosition() mgl64.Vec3 {
	if c.rig != nil {
		return c.rig.HookPosition()
	}
	if c.pawn != nil {
		return c.pawn.Position()
	}
	return mgl64.Vec3{}
}

func (c *Carrier) hasField() bool {
	if c.field != nil {
		return true
	}
	if !c.warnedNoField {
		c.warnedNoField = true
		c.logger.Printf("Carrier: %v", ErrNoFieldBody)
	}
	return false
}
