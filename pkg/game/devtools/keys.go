package devtools

import (
	"fmt"
	"io"
	"strings"

	engineinput "wraithmaze/pkg/engine/input"
)

// WriteBindings lists every action, its WRAITH_BIND_ identifier and the
// key codes currently bound to it.
func WriteBindings(w io.Writer) {
	by := engineinput.GetBindingsByAction()
	for _, a := range engineinput.Actions() {
		codes := "-"
		if len(by[a]) > 0 {
			codes = strings.Join(by[a], ", ")
		}
		fmt.Fprintf(w, "%-14s %-14s %s\n", engineinput.ActionName(a), engineinput.ActionID(a), codes)
	}
}
