package entity

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/prefabs"
	"golang.org/x/image/colornames"
)

// LoadArena populates w from an arena spec and returns the carrier entity.
func LoadArena(w *ecs.World, name string) (ecs.Entity, error) {
	spec, err := prefabs.LoadArenaSpec(name)
	if err != nil {
		return 0, err
	}

	bounds := ecs.CreateEntity(w)
	if err := ecs.Add(w, bounds, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: spec.Width, Height: spec.Height}); err != nil {
		return 0, fmt.Errorf("arena: bounds: %w", err)
	}

	for i, wall := range spec.Walls {
		if _, err := NewWall(w, wall); err != nil {
			return 0, fmt.Errorf("arena: wall %d: %w", i, err)
		}
	}

	for i, crate := range spec.Crates {
		prefab := crate.Prefab
		if prefab == "" {
			prefab = "crate.yaml"
		}
		e, err := BuildEntity(w, prefab)
		if err != nil {
			// a broken crate prefab should not take the arena down
			log.Printf("Arena: crate %d: %v", i, err)
			continue
		}
		if err := SetEntityTransform(w, e, crate.X, crate.Y, 0); err != nil {
			return 0, fmt.Errorf("arena: crate %d: %w", i, err)
		}
	}

	prefab := spec.Carrier.Prefab
	if prefab == "" {
		prefab = "carrier.yaml"
	}
	return NewCarrierAt(w, prefab, spec.Carrier.X, spec.Carrier.Y)
}

// NewWall creates a static box centred on the wall position.
func NewWall(w *ecs.World, spec prefabs.WallSpec) (ecs.Entity, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("wall size must be positive, got %gx%g", spec.Width, spec.Height)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{spec.X, spec.Y, 0},
		Rotation: mgl64.QuatIdent(),
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: 0.8,
		Static:   true,
	}); err != nil {
		return 0, err
	}
	var c color.Color = colornames.Slategray
	if spec.Color != nil && spec.Color.Color != nil {
		c = spec.Color.Color
	}
	return e, ecs.Add(w, e, component.ShapeRenderComponent.Kind(), &component.ShapeRender{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  c,
	})
}
