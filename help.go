package main

import (
	"bytes"
	"log"
	"text/template"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"

	"github.com/rivo/tview"
)

const HelpTextTemplate = `[lightgreen::b]Loan Wizard[-:-:-:-]

[gold]
             _
            | |    ___   __ _ _ __
            | |   / _ \ / _  | '_ \
            | |__| (_) | (_| | | | |[lightgreen]
            |_____\___/ \__,_|_| |_|_
            \ \      / (_)______ _ _ __ __| |
             \ \ /\ / /| |_  / _  | '__/ _  |
              \ V  V / | |/ / (_| | | | (_| |
               \_/\_/  |_/___\__,_|_|  \__,_|
[-:-:-:-]


[lightgreen::b]General information[-:-:-:-]

[white]This application walks you through a term loan application as a wizard:

1. [blue]General[white]: the applicant, firm, and loan parameters. The loan tenure
   decides the schedule layout - drafts with a tenure above 7 years get the
   extended layout with more room for assets.
2. [blue]Assets[white]: the asset schedule, one tab per category. Enter the rows you
   intend to acquire, and for each category that has rows, the percentage of
   its total that the loan should finance. You cannot move past this step
   until every category tab has been looked at and every populated category
   has an allocation.
3. [blue]Expenses[white]: the indirect expense schedule with a yearly increment
   override per category.
4. [blue]Review[white]: totals, allocations, an indicative repayment schedule, and
   the submission readiness banner.

[lightgreen::b]Drafts[-:-:-:-]

[white]Drafts are shown on the left-hand side of the [blue]General[white] page.

- You may need to use the <tab> key to get to them.
- [gold]Each draft must have a unique name.[white] New drafts get a numeric suffix.
- Changes are kept in an undo buffer; nothing touches the disk until you save.

[lightgreen::b]Allocations[-:-:-:-]

[white]The percentage and amount fields of an allocation are two views of the same
value and always stay consistent:

- Editing the percentage recomputes the amount from the category total.
- Editing the amount recomputes the percentage, clamped to the total.
- Clearing the percentage clears both; clearing the amount resets it to 0%.

[lightgreen::b]Keyboard Shortcuts:[-:-:-:-]
{{ range .Actions }}
- {{ .Name }}: {{ .Keys }}
{{- end }}
`

func getHelpText() (output string) {
	type actionBinding struct {
		Name string
		Keys string
	}

	type tmplDataShape struct {
		Actions []actionBinding
	}

	tmplData := tmplDataShape{}

	for _, a := range c.AllActions {
		tmplData.Actions = append(tmplData.Actions, actionBinding{
			Name: a,
			Keys: formatBoundKeys(a),
		})
	}

	tmpl, err := template.New("help").Parse(HelpTextTemplate)
	if err != nil {
		log.Fatalf("failed to parse help text template: %v", err.Error())
	}

	var b bytes.Buffer

	err = tmpl.Execute(&b, tmplData)
	if err != nil {
		log.Fatalf("failed to render help text: %v", err.Error())
	}

	return b.String()
}

// getHelpModal builds the scrollable text view shown on the help page.
func getHelpModal() {
	LW.HelpTextView = tview.NewTextView()
	LW.HelpTextView.SetBorder(true)
	LW.HelpTextView.SetText(getHelpText()).SetDynamicColors(true)
}
