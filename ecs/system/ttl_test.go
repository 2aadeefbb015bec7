package system

import (
	"testing"

	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
)

func TestTTLExpiry(t *testing.T) {
	cases := []struct {
		name       string
		frames     int
		aliveAfter int
	}{
		{"zero_expires_now", 0, 0},
		{"one_frame", 1, 0},
		{"three_frames", 3, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			mustAdd(t, w, e, component.TTLComponent.Kind(), &component.TTL{Frames: c.frames})

			s := NewTTLSystem()
			for i := 0; i < c.aliveAfter; i++ {
				s.Update(w)
				if !ecs.IsAlive(w, e) {
					t.Fatalf("entity died early at update %d", i+1)
				}
			}
			s.Update(w)
			if ecs.IsAlive(w, e) {
				t.Fatalf("entity should be destroyed after %d updates", c.aliveAfter+1)
			}
		})
	}
}
