package system

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
)

var hudModes = []gravity.Mode{gravity.ModeAttraction, gravity.ModeRepulsion, gravity.ModeHook}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	// areas sit under everything else
	ecs.ForEach2(w, component.GravityBallComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, ball *component.GravityBall, t *component.Transform) {
		if ball.Field == nil || ball.AreaScale < 0.01 {
			return
		}
		radius := ball.Field.Config().AreaRadius * ball.AreaScale
		x, y := float32(t.Position.X()), float32(t.Position.Y())
		vector.FillCircle(screen, x, y, float32(radius), withAlpha(ball.Tint, 40), true)
		vector.StrokeCircle(screen, x, y, float32(radius), 1.5, withAlpha(ball.Tint, 160), true)
	})

	ecs.ForEach2(w, component.ShapeRenderComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.ShapeRender, t *component.Transform) {
		if s.Hidden {
			return
		}
		c := s.Color
		if ball, ok := ecs.Get(w, e, component.GravityBallComponent.Kind()); ok {
			if ball.Hidden {
				return
			}
			if ball.Tint != nil {
				c = ball.Tint
			}
		}
		x, y := float32(t.Position.X()), float32(t.Position.Y())
		if s.Radius > 0 {
			vector.FillCircle(screen, x, y, float32(s.Radius), c, true)
			return
		}
		wdt, hgt := float32(s.Width), float32(s.Height)
		vector.FillRect(screen, x-wdt/2, y-hgt/2, wdt, hgt, c, false)
	})

	ecs.ForEach(w, component.LineRenderComponent.Kind(), func(_ ecs.Entity, l *component.LineRender) {
		vector.StrokeLine(screen, float32(l.StartX), float32(l.StartY), float32(l.EndX), float32(l.EndY), l.Width, l.Color, l.AntiAlias)
	})

	r.drawHUD(w, screen)
}

// drawHUD prints the selected mode of the first carrier's ball.
func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	_, c, ok := ecs.First(w, component.CarrierComponent.Kind())
	if !ok {
		return
	}
	ball, ok := ecs.Get(w, ecs.Entity(c.Ball), component.GravityBallComponent.Kind())
	if !ok {
		ebitenutil.DebugPrintAt(screen, "Gravity ball: none", 10, 10)
		return
	}
	ebitenutil.DebugPrintAt(screen, HUDLine(ball.HUDIndex, c.Carrier), 10, 10)
}

// HUDLine renders the mode selector with the active mode bracketed, plus
// the recall countdown while the field is out.
func HUDLine(index int, carrier *gravity.Carrier) string {
	parts := make([]string, 0, len(hudModes))
	for _, m := range hudModes {
		if m.HUDIndex() == index {
			parts = append(parts, "["+m.String()+"]")
			continue
		}
		parts = append(parts, m.String())
	}
	line := "Mode: " + strings.Join(parts, " ")
	if carrier != nil && carrier.Field() != nil && carrier.Field().Detached() && carrier.Countdown() > 0 {
		line += fmt.Sprintf("  Recall in %.1fs", carrier.Countdown())
	}
	return line
}

func withAlpha(c color.Color, a uint8) color.Color {
	if c == nil {
		return color.NRGBA{A: a}
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = a
	return nc
}
