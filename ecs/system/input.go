package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gravityball/ecs"
	"github.com/milk9111/gravityball/ecs/component"
	"github.com/milk9111/gravityball/gravity"
)

var modeKeys = []struct {
	key  ebiten.Key
	mode gravity.Mode
}{
	{ebiten.Key1, gravity.ModeAttraction},
	{ebiten.Key2, gravity.ModeRepulsion},
	{ebiten.Key3, gravity.ModeHook},
}

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	launchPressed := inpututil.IsKeyJustPressed(ebiten.KeyE)
	recallPressed := inpututil.IsKeyJustPressed(ebiten.KeyR)
	hookPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	hookReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	firePressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	modeSelected := false
	mode := gravity.ModeAttraction
	for _, mk := range modeKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			modeSelected = true
			mode = mk.mode
		}
	}

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		firePressed = firePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		launchPressed = launchPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		recallPressed = recallPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		hookPressed = hookPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		hookReleased = hookReleased || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}

	cx, cy := ebiten.CursorPosition()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.JumpPressed = jumpPressed
		input.LaunchPressed = launchPressed
		input.RecallPressed = recallPressed
		input.HookPressed = hookPressed
		input.HookReleased = hookReleased
		input.FirePressed = firePressed
		input.ModeSelected = modeSelected
		input.Mode = mode
		input.AimX = float64(cx)
		input.AimY = float64(cy)
	})
}
