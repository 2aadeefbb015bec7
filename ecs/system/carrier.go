package system

import (
	"log"

	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
)

// CarrierSystem binds a gravity.Carrier to every Carrier entity once its
// ball has a field, then ticks it.
type CarrierSystem struct {
	logger *log.Logger
}

func NewCarrierSystem() *CarrierSystem {
	return &CarrierSystem{logger: log.Default()}
}

func (s *CarrierSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.CarrierComponent.Kind(), func(e ecs.Entity, c *component.Carrier) {
		if c.Carrier == nil && !s.bind(w, e, c) {
			return
		}
		c.Carrier.Tick(common.TickSeconds)
	})
}

func (s *CarrierSystem) bind(w *ecs.World, e ecs.Entity, c *component.Carrier) bool {
	pawn, ok := ActorFor(w, e).(gravity.Pawn)
	if !ok {
		s.logger.Printf("Carrier %s: entity has no character movement", e)
		return false
	}

	var field *gravity.Field
	var presenter gravity.Presenter = gravity.NopPresenter{}
	ballEnt := ecs.Entity(c.Ball)
	if ball, ok := ecs.Get(w, ballEnt, component.GravityBallComponent.Kind()); ok {
		if ball.Field == nil {
			// the ball system binds first; wait a frame
			return false
		}
		field = ball.Field
		presenter = NewPresentation(w, ballEnt)
	}

	cfg := c.Config
	if err := cfg.Validate(); err != nil {
		s.logger.Printf("Carrier %s: %v, using defaults", e, err)
		cfg = gravity.DefaultCarrierConfig()
	}
	c.Carrier = gravity.NewCarrier(cfg, pawn, carrierRig{w: w, e: e}, field,
		gravity.WithCarrierPresenter(presenter),
		gravity.WithCarrierLogger(s.logger),
	)
	return true
}
