package flow

import (
	"errors"
	"fmt"
	"strings"

	"svcctl/internal/prompt"
	"svcctl/pkg/logging"
)

// contextChoice pairs the environment name shown in the prompt with the
// kubeconfig context it switches to.
type contextChoice struct {
	name    string
	context string
}

// buildContextChoices maps the configured environments onto the contexts the
// cluster actually knows: each environment contributes the first context
// carrying its suffix. Environments with no matching context are skipped.
func buildContextChoices(f *Flows, contexts []string) []contextChoice {
	var choices []contextChoice
	for _, env := range f.Cfg.Environments {
		for _, ctx := range contexts {
			if strings.HasSuffix(ctx, env.ContextSuffix) {
				choices = append(choices, contextChoice{name: env.Name, context: ctx})
				break
			}
		}
	}
	return choices
}

// preselectIndex returns the index of the choice whose context is current,
// or prompt.NoPreselect when none matches.
func preselectIndex(choices []contextChoice, current string) int {
	for i, choice := range choices {
		if choice.context == current {
			return i
		}
	}
	return prompt.NoPreselect
}

// SwitchContext walks the operator through switching the active kubeconfig
// context between the configured environments, preselecting the environment
// that is already active.
func (f *Flows) SwitchContext() Outcome {
	contexts, err := f.Kube.GetConfigContexts()
	if err != nil {
		return failed(err)
	}

	current, err := f.Kube.GetCurrentContext()
	if err != nil {
		// Only used for preselection; a missing current context should not
		// block switching to a valid one.
		logging.Warn("flow", "Could not determine current context: %v", err)
		current = ""
	}

	choices := buildContextChoices(f, contexts)
	if len(choices) == 0 {
		return failed(fmt.Errorf("no kubeconfig context matches any configured environment suffix"))
	}

	names := make([]string, len(choices))
	for i, choice := range choices {
		names[i] = choice.name
	}

	idx, err := f.selectFn("Switch context", names, preselectIndex(choices, current))
	if errors.Is(err, prompt.ErrCancelled) {
		return cancelled()
	}
	if err != nil {
		return failed(err)
	}

	stdout, err := f.Kube.UseConfigContext(choices[idx].context)
	if err != nil {
		return failed(err)
	}
	fmt.Fprint(f.Out, stdout)
	return completed()
}
