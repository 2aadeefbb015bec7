package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

func TestAimRotation(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   mgl64.Vec3
	}{
		{"right", 10, 0, mgl64.Vec3{1, 0, 0}},
		{"down", 0, 3, mgl64.Vec3{0, 1, 0}},
		{"left", -2, 0, mgl64.Vec3{-1, 0, 0}},
		{"zero", 0, 0, mgl64.Vec3{1, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AimRotation(tc.dx, tc.dy).Rotate(mgl64.Vec3{1, 0, 0})
			if !vecNear(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCPRoundTripDropsZ(t *testing.T) {
	v := ToCP(mgl64.Vec3{3, -4, 9})
	if v != (cp.Vector{X: 3, Y: -4}) {
		t.Fatalf("unexpected cp vector %v", v)
	}
	if back := FromCP(v); back != (mgl64.Vec3{3, -4, 0}) {
		t.Fatalf("unexpected vec3 %v", back)
	}
}

// vecNear compares with an absolute tolerance; mgl64's relative check is
// too strict around zero.
func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
