package system

import (
	"testing"

	"github.com/milk9111/gravityball/gravity"
)

func TestReloadTuningRestoresPrefabValues(t *testing.T) {
	sb := newSandbox(t)
	f := sb.ballState.Field

	cfg := f.Config()
	cfg.AttractForce = 99
	f.SetConfig(cfg)
	sb.ballState.Config.AttractForce = 99
	f.SetMode(gravity.ModeRepulsion)

	n, err := ReloadTuning(sb.w, "prefabs/gravity_ball.yaml")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one ball updated, got %d", n)
	}
	if f.Config().AttractForce != 4 || sb.ballState.Config.AttractForce != 4 {
		t.Fatalf("attract force should come back from the prefab, got %v", f.Config().AttractForce)
	}
	if f.Mode() != gravity.ModeRepulsion {
		t.Fatalf("reload must keep the selected mode, got %s", f.Mode())
	}
}

func TestReloadTuningCarrier(t *testing.T) {
	sb := newSandbox(t)
	c := sb.carrierState
	c.Carrier.SetConfig(gravity.CarrierConfig{ActiveDuration: 1})
	c.FireCooldownFrames = 0

	n, err := ReloadTuning(sb.w, "carrier.yaml")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one carrier updated, got %d", n)
	}
	if got := c.Carrier.Config().ActiveDuration; got != 10 {
		t.Fatalf("expected active duration 10, got %v", got)
	}
	if c.FireCooldownFrames != 8 {
		t.Fatalf("expected fire cooldown 8, got %d", c.FireCooldownFrames)
	}
}

func TestReloadTuningUnrelatedPrefab(t *testing.T) {
	sb := newSandbox(t)
	n, err := ReloadTuning(sb.w, "crate.yaml")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if n != 0 {
		t.Fatalf("crate prefab has no tuning, updated %d", n)
	}

	if _, err := ReloadTuning(sb.w, "missing.yaml"); err == nil {
		t.Fatalf("missing prefab should fail")
	}
}
