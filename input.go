package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/obj"
)

const stickDeadzone = 0.2

// Input polls keyboard and the first gamepad once per tick.
type Input struct {
	state   obj.Input
	confirm bool
	pause   bool
	restart bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)

	confirm := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	pause := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	restart := inpututil.IsKeyJustPressed(ebiten.KeyR)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		left = left || leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)

		confirm = confirm || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		pause = pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		restart = restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}

	i.state = obj.Input{Left: left, Right: right, Jump: jump}
	i.confirm = confirm
	i.pause = pause
	i.restart = restart
}

// State is the held-key snapshot handed to the world each tick.
func (i *Input) State() obj.Input { return i.state }

func (i *Input) ConfirmPressed() bool { return i.confirm }
func (i *Input) PausePressed() bool   { return i.pause }
func (i *Input) RestartPressed() bool { return i.restart }
