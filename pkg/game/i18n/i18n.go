// Package i18n looks up user-facing strings in the gettext catalogue.
package i18n

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the catalogue name under <dir>/<lang>/LC_MESSAGES/
const Domain = "default"

// fallback holds the English text for every message id, used when no
// catalogue is loaded or a translation is missing.
var fallback = map[string]string{
	"OUTCOME_ESCAPED": "You escaped the maze!",
	"OUTCOME_CAUGHT":  "The wraiths caught you.",
	"RESTART_HINT":    "Press Enter to play again",
	"ENERGY":          "Energy",
	"SPRINTING":       "Sprinting",
	"NEW_MAZE":        "A new maze takes shape (seed %d)",
	"MAZE_COPIED":     "Maze copied to clipboard",
	"MAZE_DUMPED":     "Maze written to %s",
	"ACTION_FAILED":   "%s failed: %v",
	"DEBUG_ON":        "Diagnostics on",
	"DEBUG_OFF":       "Diagnostics off",
	"SIM_HALTED":      "Simulation halted: %v",
	"TITLE":           "Wraith Maze",
}

// dynamicGet looks up message ids chosen at run time
var dynamicGet = gotext.Get

// Init loads the catalogue for lang from dir. A missing catalogue is not an
// error; the English fallback text is used instead.
func Init(dir, lang string) {
	po := filepath.Join(dir, lang, "LC_MESSAGES", Domain+".po")
	if _, err := os.Stat(po); err != nil {
		log.Printf("[I18N] no catalogue at %s, using built-in English", po)
		return
	}
	gotext.Configure(dir, lang, Domain)
}

// T returns the translated text for id, formatted with args
func T(id string, args ...any) string {
	s := dynamicGet(id)
	if s == id {
		var ok bool
		if s, ok = fallback[id]; !ok {
			return id
		}
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}
