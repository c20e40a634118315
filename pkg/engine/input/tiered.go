package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (held)
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta / debug (pressed)
	ActionConfirm
	ActionQuit
	ActionToggleDebug
	ActionRegenerate
	ActionRestart
	ActionCopyMaze
	ActionDumpMaze
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten and tcell already report edges for us, so this is a thin copy that
// keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,

	// Confirm (restart from the outcome screen)
	"enter": ActionConfirm,
	"space": ActionConfirm,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Debug
	"f1":     ActionToggleDebug,
	"g":      ActionRegenerate,
	"ctrl+r": ActionRestart,
	"f2":     ActionCopyMaze,
	"f3":     ActionDumpMaze,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_a":          ActionConfirm,
	"gamepad_start":      ActionConfirm,
	"gamepad_back":       ActionToggleDebug,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IsMovement reports whether the action is one of the held movement directions
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionToggleDebug:
		return "Toggle Debug"
	case ActionRegenerate:
		return "New Maze"
	case ActionRestart:
		return "Restart"
	case ActionCopyMaze:
		return "Copy Maze"
	case ActionDumpMaze:
		return "Dump Maze"
	default:
		return "None"
	}
}

// Actions returns every bindable action in declaration order
func Actions() []Action {
	actions := make([]Action, 0, int(ActionDumpMaze))
	for a := ActionMoveUp; a <= ActionDumpMaze; a++ {
		actions = append(actions, a)
	}
	return actions
}

// ActionID returns the configuration identifier for an action, e.g.
// "COPY_MAZE" for ActionCopyMaze.
func ActionID(a Action) string {
	return strings.ToUpper(strings.ReplaceAll(ActionName(a), " ", "_"))
}

// ParseAction finds the action with the given ActionID, ignoring case
func ParseAction(id string) (Action, bool) {
	for _, a := range Actions() {
		if strings.EqualFold(ActionID(a), id) {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys stay bound to movement.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if c == "arrow_up" || c == "arrow_down" || c == "arrow_left" || c == "arrow_right" {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" &&
		code != "arrow_up" && code != "arrow_down" &&
		code != "arrow_left" && code != "arrow_right" {
		bindings[code] = action
	}
}
