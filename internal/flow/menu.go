package flow

import (
	"errors"
	"fmt"

	"svcctl/internal/prompt"
	"svcctl/pkg/logging"
)

// menuAction enumerates the entry menu's choices.
type menuAction int

const (
	actionServiceStatus menuAction = iota
	actionSwitchContext
	actionExit
)

var menuItems = []string{"Service Status", "Switch Context", "Exit"}

// RunMenu is the entry loop: display the current context, offer the flows,
// dispatch the chosen one, repeat. The current context is re-fetched on
// every iteration so a context switch is reflected immediately. Cancelling
// the menu prompt or choosing Exit ends the session cleanly; a failed flow
// prints its error and the session keeps running.
func (f *Flows) RunMenu() error {
	for {
		current, err := f.Kube.GetCurrentContext()
		if err != nil {
			logging.Warn("flow", "Could not determine current context: %v", err)
			current = "unknown"
		}
		fmt.Fprintf(f.Out, "\nCurrent context: %s\n", current)

		idx, err := f.selectFn("What do you want to do?", menuItems, prompt.NoPreselect)
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		var outcome Outcome
		switch menuAction(idx) {
		case actionServiceStatus:
			outcome = f.ServiceStatus()
		case actionSwitchContext:
			outcome = f.SwitchContext()
		case actionExit:
			fmt.Fprintln(f.Out, "Bye!")
			return nil
		}

		switch outcome.Status {
		case StatusFailed:
			logging.Error("flow", outcome.Err, "Flow failed")
			fmt.Fprintf(f.Out, "Error: %v\n", outcome.Err)
		case StatusCancelled:
			// Back to the menu without noise.
		}
	}
}
