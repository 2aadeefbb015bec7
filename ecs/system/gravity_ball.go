package system

import (
	"log"

	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
)

// GravityBallSystem binds a gravity.Field to every GravityBall entity on
// first sight, ticks it and mirrors its pose and area onto the entity.
type GravityBallSystem struct {
	overlap *OverlapSystem
	logger  *log.Logger
}

func NewGravityBallSystem(overlap *OverlapSystem) *GravityBallSystem {
	return &GravityBallSystem{overlap: overlap, logger: log.Default()}
}

func (s *GravityBallSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.GravityBallComponent.Kind(), func(e ecs.Entity, ball *component.GravityBall) {
		if ball.Field == nil {
			s.bind(w, e, ball)
		}
		ball.Field.Tick(common.TickSeconds)

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Position = ball.Field.Position()
			t.Rotation = ball.Field.Rotation()
		}
		if area, ok := ecs.Get(w, e, component.AreaTriggerComponent.Kind()); ok {
			area.Radius = ball.Field.Config().AreaRadius
		}
	})
}

func (s *GravityBallSystem) bind(w *ecs.World, e ecs.Entity, ball *component.GravityBall) {
	cfg := ball.Config
	if err := cfg.Validate(); err != nil {
		s.logger.Printf("GravityBall %s: %v, using defaults", e, err)
		cfg = gravity.DefaultConfig()
	}

	opts := []gravity.FieldOption{
		gravity.WithPresenter(NewPresentation(w, e)),
		gravity.WithLogger(s.logger),
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		opts = append(opts, gravity.WithPose(t.Position, t.Rotation))
	}
	if carrier := ecs.Entity(ball.Carrier); ball.Carrier != 0 && w.IsAlive(carrier) {
		opts = append(opts, gravity.WithAnchor(carrierRig{w: w, e: carrier}))
	}

	ball.Field = gravity.NewField(gravity.ActorID(e), cfg, opts...)
	if s.overlap != nil {
		ball.Field.Subscribe(s.overlap.Source(e))
	} else {
		s.logger.Printf("GravityBall %s: no overlap system, area events disabled", e)
	}
	ball.Tint = ModeColor(cfg.Mode)
	ball.HUDIndex = cfg.Mode.HUDIndex()
}
