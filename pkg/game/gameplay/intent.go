package gameplay

import (
	"log"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/game/devtools"
	"wraithmaze/pkg/game/i18n"
)

// ProcessIntent handles a pressed (non-movement) action from the tiered input
// system. World changes are only requested here and take effect at the start
// of the next tick. Returns true when the player asked to quit.
func (l *Loop) ProcessIntent(intent engineinput.Intent) (quit bool) {
	s := l.session

	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionQuit:
		log.Printf("[LOOP] quit requested by player")
		return true

	case engineinput.ActionConfirm:
		if s.Outcome.Terminal() {
			s.RequestRestart()
		}

	case engineinput.ActionRestart:
		s.RequestRestart()

	case engineinput.ActionRegenerate:
		s.RequestRegenerate()

	case engineinput.ActionToggleDebug:
		s.ToggleDebug()
		if s.Debug {
			l.ui.Notify(i18n.T("DEBUG_ON"))
		} else {
			l.ui.Notify(i18n.T("DEBUG_OFF"))
		}

	case engineinput.ActionCopyMaze:
		if err := devtools.CopyMaze(s.World.Maze); err != nil {
			log.Printf("[LOOP] %v", err)
			l.ui.Notify(i18n.T("ACTION_FAILED", engineinput.ActionName(intent.Action), err))
			return false
		}
		l.ui.Notify(i18n.T("MAZE_COPIED"))

	case engineinput.ActionDumpMaze:
		path, err := devtools.DumpSessionToFile(s)
		if err != nil {
			log.Printf("[LOOP] maze dump failed: %v", err)
			l.ui.Notify(i18n.T("ACTION_FAILED", engineinput.ActionName(intent.Action), err))
			return false
		}
		l.ui.Notify(i18n.T("MAZE_DUMPED", path))
	}

	return false
}
