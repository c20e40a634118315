package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/engine/world"
)

// arrowKeys are polled every tick while held, along with letterKeys
var arrowKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
}

type keyCode struct {
	key  ebiten.Key
	code string
}

// pressKeys fire once per press, in this order when pressed on the same tick
var pressKeys = []keyCode{
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyKPEnter, "enter"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyF1, "f1"},
	{ebiten.KeyF2, "f2"},
	{ebiten.KeyF3, "f3"},
	{ebiten.KeyG, "g"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

var dpadButtons = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:    "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom: "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:   "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:  "gamepad_dpad_right",
}

// letterKeys report their lower-case letter so rebound actions work. Letters
// already in pressKeys are not reported twice.
var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
	ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
	ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
	ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
}

type buttonCode struct {
	button ebiten.StandardGamepadButton
	code   string
}

var gamepadPressButtons = []buttonCode{
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
	{ebiten.StandardGamepadButtonCenterLeft, "gamepad_back"},
}

func intentFor(device engineinput.Device, code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: device,
		Code:   code,
	}))
}

// pollMovement rebuilds the held movement set from the keyboard, the D-pad
// and the left stick of every connected gamepad. Nothing is held while the
// window is unfocused.
func (e *EbitenRenderer) pollMovement() {
	if !ebiten.IsFocused() {
		e.input.Reset()
		return
	}

	held := make(map[engineinput.Action]bool)
	for key, code := range arrowKeys {
		if ebiten.IsKeyPressed(key) {
			held[intentFor(engineinput.DeviceKeyboard, code).Action] = true
		}
	}
	for i, key := range letterKeys {
		if ebiten.IsKeyPressed(key) {
			held[intentFor(engineinput.DeviceKeyboard, string(rune('a'+i))).Action] = true
		}
	}

	var stick world.Vector
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			for btn, code := range dpadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					held[intentFor(engineinput.DeviceGamepad, code).Action] = true
				}
			}
			v := world.Vector{
				X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
				Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			}
			if v.Len() > stick.Len() {
				stick = v
			}
			continue
		}
		// Axes: 0 = X (left = -1, right = +1), 1 = Y (up = -1, down = +1)
		v := world.Vector{X: ebiten.GamepadAxisValue(id, 0), Y: ebiten.GamepadAxisValue(id, 1)}
		if v.Len() > stick.Len() {
			stick = v
		}
	}
	e.input.SetStick(stick)

	for _, a := range []engineinput.Action{
		engineinput.ActionMoveUp, engineinput.ActionMoveDown,
		engineinput.ActionMoveLeft, engineinput.ActionMoveRight,
	} {
		if held[a] {
			e.input.Press(a)
		} else {
			e.input.Release(a)
		}
	}
}

// pressedIntents returns the non-movement actions pressed this tick
func (e *EbitenRenderer) pressedIntents() []engineinput.Intent {
	var intents []engineinput.Intent

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		intents = append(intents, intentFor(engineinput.DeviceKeyboard, "ctrl+r"))
	}
	for _, code := range pressedCodes(inpututil.IsKeyJustPressed) {
		if intent := intentFor(engineinput.DeviceKeyboard, code); !intent.Action.IsMovement() {
			intents = append(intents, intent)
		}
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadPressButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				intents = append(intents, intentFor(engineinput.DeviceGamepad, b.code))
			}
		}
	}
	return intents
}

// pressedCodes returns the codes of the press keys, then the remaining
// letters, for which pressed is true
func pressedCodes(pressed func(ebiten.Key) bool) []string {
	var codes []string
	fixed := make(map[string]bool, len(pressKeys))
	for _, k := range pressKeys {
		fixed[k.code] = true
		if pressed(k.key) {
			codes = append(codes, k.code)
		}
	}
	for i, key := range letterKeys {
		code := string(rune('a' + i))
		if !fixed[code] && pressed(key) {
			codes = append(codes, code)
		}
	}
	return codes
}
