package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
	"golang.org/x/image/colornames"
)

func newBall(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.GravityBallComponent.Kind(), &component.GravityBall{Config: gravity.DefaultConfig()})
	return e
}

func TestPresentationAppliesSignals(t *testing.T) {
	cases := []struct {
		name  string
		emit  func(p *Presentation)
		check func(t *testing.T, ball *component.GravityBall)
	}{
		{
			name: "material",
			emit: func(p *Presentation) { p.MaterialChanged(gravity.ModeRepulsion) },
			check: func(t *testing.T, ball *component.GravityBall) {
				if ball.Tint != colornames.Orangered {
					t.Fatalf("expected repulsion tint, got %v", ball.Tint)
				}
			},
		},
		{
			name: "hud",
			emit: func(p *Presentation) { p.HUDModeChanged(2) },
			check: func(t *testing.T, ball *component.GravityBall) {
				if ball.HUDIndex != 2 {
					t.Fatalf("expected HUD index 2, got %d", ball.HUDIndex)
				}
			},
		},
		{
			name: "hidden",
			emit: func(p *Presentation) { p.BallAppearance(gravity.AppearanceHidden) },
			check: func(t *testing.T, ball *component.GravityBall) {
				if !ball.Hidden {
					t.Fatalf("ball should be hidden")
				}
			},
		},
		{
			name: "grow",
			emit: func(p *Presentation) { p.AreaResized(gravity.ResizeGrowing) },
			check: func(t *testing.T, ball *component.GravityBall) {
				if ball.TargetScale != 1 {
					t.Fatalf("expected target scale 1, got %v", ball.TargetScale)
				}
				if ball.AreaScale <= 0 || ball.AreaScale >= 1 {
					t.Fatalf("area scale should move toward 1, got %v", ball.AreaScale)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := newBall(t, w)
			c.emit(NewPresentation(w, e))
			if w.Events().Len() != 1 {
				t.Fatalf("expected one queued event, got %d", w.Events().Len())
			}

			NewPresentationSystem().Update(w)
			ball, _ := ecs.Get(w, e, component.GravityBallComponent.Kind())
			c.check(t, ball)
			if w.Events().Len() != 0 {
				t.Fatalf("events should be drained")
			}
		})
	}
}

func TestPresentationShrinkConverges(t *testing.T) {
	w := ecs.NewWorld()
	e := newBall(t, w)
	ball, _ := ecs.Get(w, e, component.GravityBallComponent.Kind())
	ball.AreaScale, ball.TargetScale = 1, 1

	NewPresentation(w, e).AreaResized(gravity.ResizeShrinking)
	s := NewPresentationSystem()
	for i := 0; i < 120; i++ {
		s.Update(w)
	}
	if ball.AreaScale > 0.001 {
		t.Fatalf("area should have shrunk, got %v", ball.AreaScale)
	}
}

func TestPresentationTetherLine(t *testing.T) {
	w := ecs.NewWorld()
	carrier := ecs.CreateEntity(w)
	mustAdd(t, w, carrier, component.TransformComponent.Kind(), &component.Transform{Position: mgl64.Vec3{10, 20, 0}, Rotation: mgl64.QuatIdent()})
	mustAdd(t, w, carrier, component.CarrierComponent.Kind(), &component.Carrier{HookOffset: mgl64.Vec3{0, -8, 0}, Aim: mgl64.QuatIdent()})
	e := newBall(t, w)
	ball, _ := ecs.Get(w, e, component.GravityBallComponent.Kind())
	ball.Carrier = uint64(carrier)

	p := NewPresentation(w, e)
	s := NewPresentationSystem()

	p.TetherChanged(gravity.Tether{Visible: true, Anchor: mgl64.Vec3{300, 40, 0}, Length: 100})
	s.Update(w)
	line, ok := ecs.Get(w, e, component.LineRenderComponent.Kind())
	if !ok {
		t.Fatalf("visible tether should add a line")
	}
	if line.StartX != 10 || line.StartY != 12 || line.EndX != 300 || line.EndY != 40 {
		t.Fatalf("unexpected tether line %+v", line)
	}

	p.TetherChanged(gravity.Tether{})
	s.Update(w)
	if ecs.Has(w, e, component.LineRenderComponent.Kind()) {
		t.Fatalf("hidden tether should remove the line")
	}
}

func TestPresentationSkipsMissingBall(t *testing.T) {
	w := ecs.NewWorld()
	e := newBall(t, w)
	p := NewPresentation(w, e)
	ecs.DestroyEntity(w, e)

	p.MaterialChanged(gravity.ModeHook)
	NewPresentationSystem().Update(w)
	if w.Events().Len() != 0 {
		t.Fatalf("events for a destroyed ball should still be drained")
	}
}
