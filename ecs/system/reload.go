package system

import (
	"fmt"
	"path/filepath"

	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/ecs/entity"
	"github.com/milk9111/gravityball/prefabs"
)

// ReloadTuning re-reads prefab and applies its gravity_ball and carrier
// tuning to live entities built from it. Invalid tuning is rejected whole and
// live entities keep their previous config. Returns the number of entities
// updated.
func ReloadTuning(w *ecs.World, prefab string) (int, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("reload: %w", err)
	}

	updated := 0
	if raw, ok := spec.Components["gravity_ball"]; ok {
		gs, err := prefabs.DecodeComponentSpec[prefabs.GravityBallComponentSpec](raw)
		if err != nil {
			return 0, fmt.Errorf("reload %s: decode gravity_ball: %w", prefab, err)
		}
		cfg, err := entity.GravityConfig(gs)
		if err != nil {
			return 0, fmt.Errorf("reload %s: %w", prefab, err)
		}
		ecs.ForEach(w, component.GravityBallComponent.Kind(), func(_ ecs.Entity, ball *component.GravityBall) {
			if !samePrefab(ball.Prefab, prefab) {
				return
			}
			ball.Config = cfg
			if ball.Field != nil {
				ball.Field.SetConfig(cfg)
			}
			updated++
		})
	}

	if raw, ok := spec.Components["carrier"]; ok {
		cs, err := prefabs.DecodeComponentSpec[prefabs.CarrierComponentSpec](raw)
		if err != nil {
			return updated, fmt.Errorf("reload %s: decode carrier: %w", prefab, err)
		}
		cfg, err := entity.CarrierConfig(cs)
		if err != nil {
			return updated, fmt.Errorf("reload %s: %w", prefab, err)
		}
		ecs.ForEach(w, component.CarrierComponent.Kind(), func(_ ecs.Entity, c *component.Carrier) {
			if !samePrefab(c.Prefab, prefab) {
				return
			}
			c.Config = cfg
			c.MuzzleOffset = cs.MuzzleOffset.Vec3()
			c.HookOffset = cs.HookOffset.Vec3()
			c.FireCooldownFrames = cs.FireCooldownFrames
			if c.Carrier != nil {
				c.Carrier.SetConfig(cfg)
			}
			updated++
		})
	}

	return updated, nil
}

// samePrefab matches "prefabs/carrier.yaml" against "carrier.yaml".
func samePrefab(a, b string) bool {
	return a != "" && filepath.Base(filepath.ToSlash(a)) == filepath.Base(filepath.ToSlash(b))
}
