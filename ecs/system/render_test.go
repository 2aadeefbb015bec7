package system

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/gravity"
)

func TestHUDLine(t *testing.T) {
	cases := []struct {
		name  string
		index int
		want  string
	}{
		{"attraction", 0, "Mode: [attraction] repulsion hook"},
		{"repulsion", 1, "Mode: attraction [repulsion] hook"},
		{"hook", 2, "Mode: attraction repulsion [hook]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HUDLine(c.index, nil); got != c.want {
				t.Fatalf("expected %q, got %q", c.want, got)
			}
		})
	}
}

type stillPawn struct{}

func (stillPawn) Position() mgl64.Vec3 { return mgl64.Vec3{} }
func (stillPawn) Velocity() mgl64.Vec3 { return mgl64.Vec3{} }
func (stillPawn) Airborne() bool       { return false }
func (stillPawn) AddForce(mgl64.Vec3)  {}

func TestHUDLineCountdown(t *testing.T) {
	field := gravity.NewField(1, gravity.DefaultConfig())
	carrier := gravity.NewCarrier(gravity.DefaultCarrierConfig(), stillPawn{}, nil, field)

	if got := HUDLine(0, carrier); strings.Contains(got, "Recall") {
		t.Fatalf("carried field should show no countdown, got %q", got)
	}
	if !carrier.LaunchOrStop() {
		t.Fatalf("launch should succeed")
	}
	if got := HUDLine(0, carrier); !strings.Contains(got, "Recall in") {
		t.Fatalf("launched field should show the countdown, got %q", got)
	}
}
