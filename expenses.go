package main

import (
	"fmt"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// expensesRowTarget maps a rendered table row back to the expense ledger
// entry it edits. Rebuilt on every render.
type expensesRowTarget struct {
	category  string
	line      int
	increment bool
}

var expensesRowTargets map[int]expensesRowTarget

func deactivateExpensesInputField() {
	LW.ExpensesInputField.SetFieldBackgroundColor(tcell.ColorBlack)
	LW.ExpensesInputField.SetLabel(fmt.Sprintf("[gray] %v%v", LW.T["ExpensesPageInputFieldAppearsHere"], c.ResetStyle))
	LW.ExpensesInputField.SetText("")

	if LW.Previous != nil {
		LW.App.SetFocus(LW.Previous)
	}
}

func activateExpensesInputField(msg, value string) {
	LW.ExpensesInputField.SetFieldBackgroundColor(tcell.ColorDimGray)
	LW.ExpensesInputField.SetLabel(fmt.Sprintf("[lightgreen::b] %v[-:-:-:-]", msg))
	LW.ExpensesInputField.SetText(value)

	currentFocus := LW.App.GetFocus()
	if currentFocus == LW.ExpensesInputField {
		return
	}

	LW.Previous = currentFocus

	LW.App.SetFocus(LW.ExpensesInputField)
}

// getExpensesTable clears and re-renders the indirect expense schedule for
// the active schema version: one block per category with its lines, closed by
// the yearly increment override row.
func getExpensesTable() {
	LW.ExpensesTable.Clear()

	expensesRowTargets = make(map[int]expensesRowTarget)

	exp := &LW.SelectedDraft.Expenses

	LW.ExpensesTable.SetTitle(fmt.Sprintf(
		"%v (%v)",
		LW.T["ExpensesPageTitle"],
		exp.Version,
	))

	row := 0

	LW.ExpensesTable.SetCell(row, 0,
		tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesColumnLabel"], LW.T["ExpensesColumnLine"], c.Reset)).SetExpansion(1))
	LW.ExpensesTable.SetCell(row, 1,
		tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesColumnValue"], LW.T["ExpensesColumnYearlyAmount"], c.Reset)))

	row++

	for i := range exp.Categories {
		cat := &exp.Categories[i]

		LW.ExpensesTable.SetCell(row, 0,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesCategoryHeader"], cat.Name, c.Reset)).SetExpansion(1))
		LW.ExpensesTable.SetCell(row, 1,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesCategoryHeader"], lib.FormatAsCurrency(categoryTotal(cat)), c.Reset)))

		row++

		for j := range cat.Lines {
			line := cat.Lines[j]

			value := lib.FormatAsCurrency(line.Value)
			if line.Value == 0 {
				value = LW.T["ExpensesPageEmptyCellPlaceholder"]
			}

			LW.ExpensesTable.SetCell(row, 0,
				tview.NewTableCell(fmt.Sprintf("%v  %v%v", LW.Colors["ExpensesColumnLabel"], line.Label, c.Reset)).SetExpansion(1))
			LW.ExpensesTable.SetCell(row, 1,
				tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesColumnValue"], value, c.Reset)))

			expensesRowTargets[row] = expensesRowTarget{category: cat.Name, line: j}

			row++
		}

		increment := cat.Increment
		if increment == "" {
			increment = LW.T["ExpensesPageDefaultIncrementMarker"]
		}

		LW.ExpensesTable.SetCell(row, 0,
			tview.NewTableCell(fmt.Sprintf("%v  %v%v", LW.Colors["ExpensesIncrementRow"], LW.T["ExpensesPageIncrementLabel"], c.Reset)).SetExpansion(1))
		LW.ExpensesTable.SetCell(row, 1,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesIncrementRow"], increment, c.Reset)))

		expensesRowTargets[row] = expensesRowTarget{category: cat.Name, increment: true}

		row++
	}

	// grand total
	LW.ExpensesTable.SetCell(row, 0,
		tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesTableTotal"], LW.T["ExpensesPageTotalLabel"], c.Reset)).SetExpansion(1))
	LW.ExpensesTable.SetCell(row, 1,
		tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["ExpensesTableTotal"], lib.FormatAsCurrency(exp.Total()), c.Reset)))

	LW.ExpensesTable.SetSelectedFunc(expensesTableCellSelected)
}

func categoryTotal(cat *lib.ExpenseCategory) float64 {
	total := 0.0

	for _, line := range cat.Lines {
		total += line.Value
	}

	return total
}

func expensesTableCellSelected(row, _ int) {
	target, ok := expensesRowTargets[row]
	if !ok {
		return
	}

	exp := &LW.SelectedDraft.Expenses

	if target.increment {
		current := ""

		for i := range exp.Categories {
			if exp.Categories[i].Name == target.category {
				current = exp.Categories[i].Increment
			}
		}

		LW.ExpensesInputField.SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEscape:
				// don't save the changes
				deactivateExpensesInputField()

				return
			default:
				if err := exp.SetIncrement(target.category, LW.ExpensesInputField.GetText()); err != nil {
					LW.ExpensesInputField.SetLabel(fmt.Sprintf("[red] %v:", err.Error()))

					return
				}

				modified()
				getExpensesTable()
				updateReviewPage()
				deactivateExpensesInputField()
			}
		})
		activateExpensesInputField(
			fmt.Sprintf("%v (%v):", LW.T["ExpensesPageEditIncrementLabel"], target.category),
			current,
		)

		return
	}

	current := ""

	for i := range exp.Categories {
		if exp.Categories[i].Name != target.category {
			continue
		}

		if v := exp.Categories[i].Lines[target.line].Value; v != 0 {
			current = lib.FormatNumber(v)
		}
	}

	LW.ExpensesInputField.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEscape:
			// don't save the changes
			deactivateExpensesInputField()

			return
		default:
			if err := exp.SetValue(target.category, target.line, LW.ExpensesInputField.GetText()); err != nil {
				LW.ExpensesInputField.SetLabel(fmt.Sprintf("[red] %v:", err.Error()))

				return
			}

			modified()
			getExpensesTable()
			updateReviewPage()
			deactivateExpensesInputField()
		}
	})
	activateExpensesInputField(
		fmt.Sprintf("%v:", LW.T["ExpensesPageEditValueLabel"]),
		current,
	)
}

// returns the expenses page: the schedule table with the edit field below it
func getExpensesPage() *tview.Flex {
	LW.ExpensesTable = tview.NewTable().SetFixed(1, 0)
	LW.ExpensesTable.SetBorder(true)
	LW.ExpensesTable.SetBorders(false).
		SetSelectable(true, false).
		SetSeparator(' ')

	LW.ExpensesInputField = tview.NewInputField()
	LW.ExpensesInputField.SetBorder(true)
	LW.ExpensesInputField.SetFieldBackgroundColor(tcell.ColorBlack)
	LW.ExpensesInputField.SetLabel(fmt.Sprintf("[gray] %v%v", LW.T["ExpensesPageInputFieldAppearsHere"], c.ResetStyle))

	getExpensesTable()

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(LW.ExpensesTable, 0, 1, true).
		AddItem(LW.ExpensesInputField, 3, 0, false)
}
