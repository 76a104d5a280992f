package main

import (
	"fmt"
	"strings"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

// GetCombinedKeybindings merges the user's configured keybindings on top of
// the default mappings, producing keybinding -> [actions]. A user binding for
// a key fully replaces that key's default.
func GetCombinedKeybindings(kb map[string][]string, def map[string]string) map[string][]string {
	r := make(map[string][]string)

	for binding, action := range def {
		r[binding] = []string{action}
	}

	for binding, actions := range kb {
		r[binding] = actions
	}

	return r
}

// GetAllBoundActions produces the inverse view, action -> [keybindings], for
// rendering on the help page. Default bindings that were overridden by the
// user are included but greyed out so that the user can see what they've
// changed.
func GetAllBoundActions(kb map[string][]string, def map[string]string) map[string][]string {
	r := make(map[string][]string)

	for binding, action := range def {
		_, overridden := kb[binding]
		if overridden {
			r[action] = append(r[action], fmt.Sprintf("[gray]%v%v", binding, c.Reset))

			continue
		}

		r[action] = append(r[action], binding)
	}

	for binding, actions := range kb {
		for _, action := range actions {
			r[action] = append(r[action], binding)
		}
	}

	return r
}

func formatBoundKeys(action string) string {
	keys, ok := LW.ActionBindings[action]
	if !ok || len(keys) == 0 {
		return LW.T["KeybindingsUnbound"]
	}

	return strings.Join(keys, ", ")
}

// setBottomPageNavText renders the wizard step strip at the bottom of every
// page, highlighting the front page.
func setBottomPageNavText() {
	current, _ := LW.Pages.GetFrontPage()

	steps := []string{}

	for i, page := range WizardSteps {
		label := fmt.Sprintf("%v. %v", i+1, LW.T[fmt.Sprintf("BottomNav%v", page)])
		if page == current {
			steps = append(steps, fmt.Sprintf("%v%v%v", LW.Colors["BottomNavActiveStep"], label, c.Reset))

			continue
		}

		steps = append(steps, fmt.Sprintf("%v%v%v", LW.Colors["BottomNavStep"], label, c.Reset))
	}

	LW.BottomPageNavText.SetText(fmt.Sprintf(
		" %v %v%v%v",
		strings.Join(steps, fmt.Sprintf("%v > %v", LW.Colors["BottomNavStep"], c.Reset)),
		LW.Colors["BottomNavHint"],
		LW.T["BottomNavHelpHint"],
		c.Reset,
	))
}
