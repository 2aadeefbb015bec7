package system

import (
	"log"

	"github.com/milk9111/gravityball/common"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/ecs/entity"
)

// airControl is the share of the velocity gap closed per tick while
// airborne. Grounded input snaps to the target speed; without input the
// body keeps whatever external forces and friction leave it.
const airControl = 0.08

// CarrierControlSystem turns input edges into carrier commands, walks and
// jumps the carrier body, aims at the cursor and fires projectiles.
type CarrierControlSystem struct{}

func NewCarrierControlSystem() *CarrierControlSystem {
	return &CarrierControlSystem{}
}

func (s *CarrierControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CarrierComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, c *component.Carrier, input *component.Input) {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			c.Aim = common.AimRotation(input.AimX-t.Position.X(), input.AimY-t.Position.Y())
		}

		s.move(w, e, input)
		s.command(c, input)
		s.fire(w, e, c, input)
	})
}

func (s *CarrierControlSystem) move(w *ecs.World, e ecs.Entity, input *component.Input) {
	cm, ok := ecs.Get(w, e, component.CharacterMovementComponent.Kind())
	if !ok {
		return
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil {
		return
	}

	vel := bodyComp.Body.Velocity()
	target := input.MoveX * cm.MoveSpeed
	if input.MoveX != 0 {
		if cm.Grounded {
			vel.X = target
		} else {
			vel.X += (target - vel.X) * airControl
		}
	}
	if input.JumpPressed && (cm.Grounded || cm.GroundGrace > 0) {
		vel.Y = -cm.JumpSpeed
		cm.GroundGrace = 0
	}
	bodyComp.Body.SetVelocityVector(vel)
}

func (s *CarrierControlSystem) command(c *component.Carrier, input *component.Input) {
	if c.Carrier == nil {
		return
	}
	if input.ModeSelected {
		c.Carrier.SetMode(input.Mode)
	}
	if input.LaunchPressed {
		c.Carrier.LaunchOrStop()
	}
	if input.RecallPressed {
		c.Carrier.Recall()
	}
	if input.HookPressed {
		c.Carrier.HookEngage()
	}
	if input.HookReleased {
		c.Carrier.HookRelease()
	}
}

func (s *CarrierControlSystem) fire(w *ecs.World, e ecs.Entity, c *component.Carrier, input *component.Input) {
	if c.FireCooldown > 0 {
		c.FireCooldown--
	}
	if !input.FirePressed || c.FireCooldown > 0 || c.ProjectilePrefab == "" {
		return
	}
	muzzle := carrierRig{w: w, e: e}.MuzzlePosition()
	if _, err := entity.NewProjectile(w, c.ProjectilePrefab, muzzle, c.Aim); err != nil {
		log.Printf("CarrierControl: fire: %v", err)
		return
	}
	c.FireCooldown = c.FireCooldownFrames
}
