package gravity_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gravityball/gravity"
	"github.com/milk9111/gravityball/gravity/mocks"
	"go.uber.org/mock/gomock"
)

func newTestCarrier(t *testing.T, cfg gravity.CarrierConfig, p gravity.Presenter) (*gravity.Carrier, *gravity.Field, *fakePawn, *fakeRig) {
	t.Helper()
	rig := newRig()
	pawn := &fakePawn{}
	fcfg := testConfig()
	fcfg.MovementSpeed = 500
	fcfg.MaxDistanceToCarrier = 1000
	f := gravity.NewField(1, fcfg, gravity.WithPresenter(p))
	c := gravity.NewCarrier(cfg, pawn, rig, f, gravity.WithCarrierPresenter(p))
	return c, f, pawn, rig
}

func TestLaunchOrStopToggles(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().AreaResized(gravity.ResizeGrowing).Times(1)

	c, f, _, _ := newTestCarrier(t, gravity.DefaultCarrierConfig(), p)

	if !c.LaunchOrStop() || f.State() != gravity.StateFlying {
		t.Fatalf("expected first launch to start flight, got %v", f.State())
	}
	if !c.LaunchOrStop() || f.State() != gravity.StateIdle {
		t.Fatalf("expected second launch to stop flight, got %v", f.State())
	}
	if !f.Active() {
		t.Fatalf("expected the area effect to be active after stopping")
	}
	if c.LaunchOrStop() || f.State() != gravity.StateIdle {
		t.Fatalf("expected launch while idle to be a no-op, got %v", f.State())
	}
}

func TestDurationAutoRecallsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().AreaResized(gravity.ResizeGrowing).Times(1)
	p.EXPECT().AreaResized(gravity.ResizeShrinking).Times(1)
	gomock.InOrder(
		p.EXPECT().BallAppearance(gravity.AppearanceHidden).Times(1),
		p.EXPECT().BallAppearance(gravity.AppearanceShown).Times(1),
	)

	cfg := gravity.DefaultCarrierConfig()
	cfg.ActiveDuration = 10
	c, f, _, _ := newTestCarrier(t, cfg, p)

	c.LaunchOrStop()
	c.LaunchOrStop()

	for i := 1; i < 10; i++ {
		c.Tick(1)
		if f.State() != gravity.StateIdle {
			t.Fatalf("tick %d: recalled too early", i)
		}
	}
	c.Tick(1)
	if f.State() != gravity.StateCarried {
		t.Fatalf("expected recall after 10 ticks, got %v", f.State())
	}
	for i := 0; i < 5; i++ {
		c.Tick(1)
	}
	if c.Countdown() != 0 {
		t.Fatalf("expected countdown to rest at 0, got %v", c.Countdown())
	}
}

func TestRelaunchResetsCountdown(t *testing.T) {
	cfg := gravity.DefaultCarrierConfig()
	cfg.ActiveDuration = 4
	c, f, _, _ := newTestCarrier(t, cfg, nil)

	c.LaunchOrStop()
	c.Tick(1)
	c.Tick(1)
	c.Recall()
	if f.State() != gravity.StateCarried {
		t.Fatalf("expected manual recall, got %v", f.State())
	}
	c.LaunchOrStop()
	if c.Countdown() != 4 {
		t.Fatalf("expected countdown reset to 4, got %v", c.Countdown())
	}
}

func TestSetMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)

	c, f, _, _ := newTestCarrier(t, gravity.DefaultCarrierConfig(), p)

	if c.SetMode(gravity.ModeAttraction) {
		t.Fatalf("setting the current mode should be a no-op")
	}

	gomock.InOrder(
		p.EXPECT().MaterialChanged(gravity.ModeHook),
		p.EXPECT().HUDModeChanged(2),
	)
	if !c.SetMode(gravity.ModeHook) || f.Mode() != gravity.ModeHook {
		t.Fatalf("expected mode switch to hook")
	}
	if c.SetMode(gravity.ModeHook) {
		t.Fatalf("repeating the mode should be a no-op")
	}
}

func TestHookEngageComputesTether(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().AreaResized(gomock.Any()).AnyTimes()
	p.EXPECT().MaterialChanged(gomock.Any()).AnyTimes()
	p.EXPECT().HUDModeChanged(gomock.Any()).AnyTimes()

	c, f, _, rig := newTestCarrier(t, gravity.DefaultCarrierConfig(), p)
	c.SetMode(gravity.ModeHook)

	if c.HookEngage() {
		t.Fatalf("hook should not engage on a carried field")
	}
	c.LaunchOrStop()
	if c.HookEngage() {
		t.Fatalf("hook should not engage on a flying field")
	}
	c.LaunchOrStop()

	rig.hook = f.Position().Sub(mgl64.Vec3{1000, 0, 0})
	p.EXPECT().TetherChanged(gravity.Tether{Visible: true, Anchor: f.Position(), Length: 500})
	if !c.HookEngage() || !c.Swinging() {
		t.Fatalf("expected hook to engage")
	}
	if c.TetherLength() != 500 {
		t.Fatalf("expected tether length 500, got %v", c.TetherLength())
	}

	p.EXPECT().TetherChanged(gravity.Tether{})
	if !c.HookRelease() || c.Swinging() {
		t.Fatalf("expected hook release")
	}
	if c.HookRelease() {
		t.Fatalf("second release should be a no-op")
	}

	rig.hook = f.Position().Sub(mgl64.Vec3{0, 1500, 0})
	p.EXPECT().TetherChanged(gravity.Tether{Visible: true, Anchor: f.Position(), Length: 1000})
	c.HookEngage()
	if c.TetherLength() != 1000 {
		t.Fatalf("expected re-engage to recompute 1000, got %v", c.TetherLength())
	}
}

func TestHookEngageRequiresHookMode(t *testing.T) {
	c, _, _, _ := newTestCarrier(t, gravity.DefaultCarrierConfig(), nil)
	c.LaunchOrStop()
	c.LaunchOrStop()
	if c.HookEngage() || c.Swinging() {
		t.Fatalf("hook must not engage in attraction mode")
	}
}

func TestSwingForce(t *testing.T) {
	cfg := gravity.DefaultCarrierConfig()
	cfg.SwingMagnitude = -0.5

	cases := []struct {
		name     string
		airborne bool
		mode     gravity.Mode
		want     mgl64.Vec3
		applied  bool
	}{
		{"airborne_hooked", true, gravity.ModeHook, mgl64.Vec3{0, 100, 0}, true},
		{"grounded", false, gravity.ModeHook, mgl64.Vec3{}, false},
		{"wrong_mode", true, gravity.ModeRepulsion, mgl64.Vec3{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, f, pawn, rig := newTestCarrier(t, cfg, nil)
			c.SetMode(gravity.ModeHook)
			c.LaunchOrStop()
			c.LaunchOrStop()
			rig.hook = f.Position().Add(mgl64.Vec3{0, -100, 0})
			if !c.HookEngage() {
				t.Fatalf("expected hook to engage")
			}
			c.SetMode(tc.mode)

			pawn.pos = f.Position().Add(mgl64.Vec3{0, -100, 0})
			pawn.vel = mgl64.Vec3{5, -2, 0}
			pawn.airborne = tc.airborne
			c.Tick(1.0 / 60)

			if !tc.applied {
				if len(pawn.forces) != 0 {
					t.Fatalf("expected no swing force, got %v", pawn.forces)
				}
				return
			}
			if len(pawn.forces) != 1 {
				t.Fatalf("expected one swing force, got %d", len(pawn.forces))
			}
			if !vecNear(pawn.forces[0], tc.want) {
				t.Fatalf("expected swing force %v, got %v", tc.want, pawn.forces[0])
			}
		})
	}
}

func TestRecallReleasesHook(t *testing.T) {
	c, _, _, _ := newTestCarrier(t, gravity.DefaultCarrierConfig(), nil)
	c.SetMode(gravity.ModeHook)
	c.LaunchOrStop()
	c.LaunchOrStop()
	c.HookEngage()

	if !c.Recall() {
		t.Fatalf("expected recall")
	}
	if c.Swinging() {
		t.Fatalf("recall should end the swing")
	}
	if c.Recall() {
		t.Fatalf("second recall should be a no-op")
	}
}

func TestCarrierWithoutField(t *testing.T) {
	var buf bytes.Buffer
	c := gravity.NewCarrier(gravity.DefaultCarrierConfig(), &fakePawn{}, newRig(), nil,
		gravity.WithCarrierLogger(log.New(&buf, "", 0)))

	if c.LaunchOrStop() || c.Recall() || c.HookEngage() || c.SetMode(gravity.ModeHook) {
		t.Fatalf("commands without a field must be no-ops")
	}
	c.Tick(1)
	if n := strings.Count(buf.String(), gravity.ErrNoFieldBody.Error()); n != 1 {
		t.Fatalf("expected the missing field to be reported once, got %d: %q", n, buf.String())
	}
}
