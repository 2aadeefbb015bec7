package system

import (
	"image/color"
	"log"

	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
	"golang.org/x/image/colornames"
)

const (
	EventAreaResized     = "gravity.area_resized"
	EventBallAppearance  = "gravity.ball_appearance"
	EventMaterialChanged = "gravity.material_changed"
	EventHUDModeChanged  = "gravity.hud_mode_changed"
	EventTetherChanged   = "gravity.tether_changed"
)

// BallSignal is the payload of every gravity.* event. Only the field
// matching the event type is meaningful.
type BallSignal struct {
	Ball       ecs.Entity
	Resize     gravity.Resize
	Appearance gravity.Appearance
	Mode       gravity.Mode
	HUDIndex   int
	Tether     gravity.Tether
}

// Presentation turns core signals for one ball into world events. It never
// touches components directly; PresentationSystem applies the events at the
// end of the frame.
type Presentation struct {
	events *ecs.EventQueue
	ball   ecs.Entity
}

func NewPresentation(w *ecs.World, ball ecs.Entity) *Presentation {
	return &Presentation{events: w.Events(), ball: ball}
}

func (p *Presentation) push(kind string, sig BallSignal) {
	sig.Ball = p.ball
	p.events.Push(ecs.Event{Type: kind, Data: sig})
}

func (p *Presentation) AreaResized(r gravity.Resize) {
	p.push(EventAreaResized, BallSignal{Resize: r})
}

func (p *Presentation) BallAppearance(a gravity.Appearance) {
	p.push(EventBallAppearance, BallSignal{Appearance: a})
}

func (p *Presentation) MaterialChanged(m gravity.Mode) {
	p.push(EventMaterialChanged, BallSignal{Mode: m})
}

func (p *Presentation) HUDModeChanged(index int) {
	p.push(EventHUDModeChanged, BallSignal{HUDIndex: index})
}

func (p *Presentation) TetherChanged(t gravity.Tether) {
	p.push(EventTetherChanged, BallSignal{Tether: t})
}

// areaResizeRate is the fraction of the remaining scale covered per tick.
const areaResizeRate = 0.15

// ModeColor is the ball tint for each mode.
func ModeColor(m gravity.Mode) color.Color {
	switch m {
	case gravity.ModeRepulsion:
		return colornames.Orangered
	case gravity.ModeHook:
		return colornames.Gold
	default:
		return colornames.Deepskyblue
	}
}

// PresentationSystem drains gravity events into ball presentation state and
// animates the area scale toward its target.
type PresentationSystem struct{}

func NewPresentationSystem() *PresentationSystem {
	return &PresentationSystem{}
}

func (s *PresentationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		sig, ok := evt.Data.(BallSignal)
		if !ok {
			continue
		}
		ball, ok := ecs.Get(w, sig.Ball, component.GravityBallComponent.Kind())
		if !ok {
			log.Printf("Presentation: %s for missing ball %s", evt.Type, sig.Ball)
			continue
		}
		switch evt.Type {
		case EventAreaResized:
			if sig.Resize == gravity.ResizeGrowing {
				ball.TargetScale = 1
			} else {
				ball.TargetScale = 0
			}
		case EventBallAppearance:
			ball.Hidden = sig.Appearance == gravity.AppearanceHidden
		case EventMaterialChanged:
			ball.Tint = ModeColor(sig.Mode)
		case EventHUDModeChanged:
			ball.HUDIndex = sig.HUDIndex
		case EventTetherChanged:
			ball.Tether = sig.Tether
		}
	}

	ecs.ForEach(w, component.GravityBallComponent.Kind(), func(e ecs.Entity, ball *component.GravityBall) {
		ball.AreaScale = common.LerpF64(ball.AreaScale, ball.TargetScale, areaResizeRate)
		s.syncTether(w, e, ball)
	})
}

// syncTether keeps the tether line between the carrier's hook socket and
// the anchor while it is visible.
func (s *PresentationSystem) syncTether(w *ecs.World, e ecs.Entity, ball *component.GravityBall) {
	if !ball.Tether.Visible {
		ecs.Remove(w, e, component.LineRenderComponent.Kind())
		return
	}
	start := ball.Tether.Anchor
	if ball.Carrier != 0 {
		start = carrierRig{w: w, e: ecs.Entity(ball.Carrier)}.HookPosition()
	}
	line, ok := ecs.Get(w, e, component.LineRenderComponent.Kind())
	if !ok {
		line = &component.LineRender{Width: 2, Color: colornames.Gold, AntiAlias: true}
	}
	line.StartX, line.StartY = start.X(), start.Y()
	line.EndX, line.EndY = ball.Tether.Anchor.X(), ball.Tether.Anchor.Y()
	if err := ecs.Add(w, e, component.LineRenderComponent.Kind(), line); err != nil {
		log.Printf("Presentation: tether line: %v", err)
	}
}
