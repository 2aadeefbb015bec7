package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":         addPlayerTag,
	"crate_tag":          addCrateTag,
	"wall_tag":           addWallTag,
	"input":              addInput,
	"transform":          addTransform,
	"character_movement": addCharacterMovement,
	"physics_body":       addPhysicsBody,
	"shape_render":       addShapeRender,
	"line_render":        addLineRender,
	"bounds":             addBounds,
	"area_trigger":       addAreaTrigger,
	"projectile":         addProjectile,
	"ttl":                addTTL,
	"gravity_ball":       addGravityBall,
	"carrier":            addCarrier,
	"level_bounds":       addLevelBounds,
}

var componentBuildOrder = []string{
	"player_tag",
	"crate_tag",
	"wall_tag",
	"input",
	"transform",
	"character_movement",
	"physics_body",
	"shape_render",
	"line_render",
	"bounds",
	"area_trigger",
	"projectile",
	"ttl",
	"gravity_ball",
	"carrier",
	"level_bounds",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	unknown := make([]string, 0)
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, unknown)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetEntityTransform moves e, creating the transform if needed. rotation is
// about the screen normal, in radians.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{}
	}
	t.Position = mgl64.Vec3{x, y, 0}
	t.Rotation = mgl64.QuatRotate(rotation, mgl64.Vec3{0, 0, 1})
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCrateTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CrateTagComponent.Kind(), &component.CrateTag{})
}

func addWallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return SetEntityTransform(w, e, spec.X, spec.Y, mgl64.DegToRad(spec.Rotation))
}

type characterMovementSpec = prefabs.CharacterMovementComponentSpec

func addCharacterMovement(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[characterMovementSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character movement spec: %w", err)
	}
	if spec.Mass < 0 {
		return fmt.Errorf("character mass must not be negative, got %g", spec.Mass)
	}
	return ecs.Add(w, e, component.CharacterMovementComponent.Kind(), &component.CharacterMovement{
		Mass:      spec.Mass,
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Radius <= 0 && (spec.Width <= 0 || spec.Height <= 0) {
		spec.Width, spec.Height = 32, 32
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      spec.Width,
		Height:     spec.Height,
		Radius:     spec.Radius,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
		Static:     spec.Static,
		Frozen:     spec.Frozen,
	})
}

type shapeRenderSpec = prefabs.ShapeRenderComponentSpec

func addShapeRender(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[shapeRenderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode shape render spec: %w", err)
	}
	return ecs.Add(w, e, component.ShapeRenderComponent.Kind(), &component.ShapeRender{
		Radius: spec.Radius,
		Width:  spec.Width,
		Height: spec.Height,
		Color:  orDefault(spec.Color.Color, color.White),
	})
}

type lineRenderSpec = prefabs.LineRenderComponentSpec

func addLineRender(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lineRenderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode line render spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	return ecs.Add(w, e, component.LineRenderComponent.Kind(), &component.LineRender{
		StartX:    spec.StartX,
		StartY:    spec.StartY,
		EndX:      spec.EndX,
		EndY:      spec.EndY,
		Width:     spec.Width,
		Color:     orDefault(spec.Color.Color, color.RGBA{R: 255, A: 255}),
		AntiAlias: spec.AntiAlias,
	})
}

type boundsSpec = prefabs.BoundsComponentSpec

func addBounds(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[boundsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bounds spec: %w", err)
	}
	return ecs.Add(w, e, component.BoundsComponent.Kind(), &component.Bounds{Radius: spec.Radius})
}

type areaTriggerSpec = prefabs.AreaTriggerComponentSpec

func addAreaTrigger(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[areaTriggerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode area trigger spec: %w", err)
	}
	return ecs.Add(w, e, component.AreaTriggerComponent.Kind(), &component.AreaTrigger{Radius: spec.Radius})
}

type projectileSpec = prefabs.ProjectileComponentSpec

// addProjectile stores the launch velocity along +X; NewProjectile rotates
// it into the firing direction.
func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[projectileSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Velocity: mgl64.Vec3{spec.Speed, 0, 0},
		MaxSpeed: spec.MaxSpeed,
	})
}

type ttlSpec = prefabs.TTLComponentSpec

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[ttlSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.Frames})
}

type gravityBallSpec = prefabs.GravityBallComponentSpec

func addGravityBall(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravityBallSpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity ball spec: %w", err)
	}
	cfg, err := GravityConfig(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.GravityBallComponent.Kind(), &component.GravityBall{Config: cfg, Prefab: ctx.PrefabPath})
}

type carrierSpec = prefabs.CarrierComponentSpec

func addCarrier(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[carrierSpec](raw)
	if err != nil {
		return fmt.Errorf("decode carrier spec: %w", err)
	}
	cfg, err := CarrierConfig(spec)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CarrierComponent.Kind(), &component.Carrier{
		Config:             cfg,
		Prefab:             ctx.PrefabPath,
		MuzzleOffset:       spec.MuzzleOffset.Vec3(),
		HookOffset:         spec.HookOffset.Vec3(),
		Aim:                mgl64.QuatIdent(),
		ProjectilePrefab:   spec.Projectile,
		FireCooldownFrames: spec.FireCooldownFrames,
	})
}

type levelBoundsSpec = prefabs.LevelBoundsComponentSpec

func addLevelBounds(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[levelBoundsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode level bounds spec: %w", err)
	}
	return ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: spec.Width, Height: spec.Height})
}

func orDefault(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
