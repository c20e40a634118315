package renderer

import (
	"sync"
	"time"

	"wraithmaze/pkg/game/state"
)

// noticeLifetime is how long a Notify message stays on screen
const noticeLifetime = 3 * time.Second

// HUDState is a copy of the HUD contents for drawing
type HUDState struct {
	Energy    float64
	MaxEnergy float64
	Debug     DebugSnapshot
	HasDebug  bool
	Outcome   state.Outcome
	Notice    string
}

// HUD implements UI by keeping the latest values for a backend to paint
type HUD struct {
	mu sync.Mutex

	energy    float64
	maxEnergy float64
	debug     DebugSnapshot
	debugAt   uint64
	outcome   state.Outcome
	restart   func()
	notice    string
	noticeAt  time.Time

	now func() time.Time
}

// NewHUD creates an empty HUD
func NewHUD() *HUD {
	return &HUD{now: time.Now}
}

func (h *HUD) UpdateEnergy(energy, maxEnergy float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.energy = energy
	h.maxEnergy = maxEnergy
}

func (h *HUD) UpdateDebug(d DebugSnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.debug = d
	h.debugAt = d.Tick
}

func (h *HUD) ShowOutcome(o state.Outcome, restart func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.outcome = o
	h.restart = restart
}

func (h *HUD) Notify(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notice = msg
	h.noticeAt = h.now()
}

// Restart invokes the restart function handed over with the outcome, if any.
// Returns false when there is no finished round to restart.
func (h *HUD) Restart() bool {
	h.mu.Lock()
	restart := h.restart
	h.restart = nil
	h.mu.Unlock()

	if restart == nil {
		return false
	}
	restart()
	return true
}

// State returns the values to draw. Debug data is only included while it
// is being refreshed, i.e. when its tick matches currentTick.
func (h *HUD) State(currentTick uint64) HUDState {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := HUDState{
		Energy:    h.energy,
		MaxEnergy: h.maxEnergy,
		Outcome:   h.outcome,
	}
	if h.debugAt == currentTick && h.debugAt != 0 {
		s.Debug = h.debug
		s.HasDebug = true
	}
	if h.notice != "" && h.now().Sub(h.noticeAt) < noticeLifetime {
		s.Notice = h.notice
	}
	return s
}
