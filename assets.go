package main

import (
	"errors"
	"fmt"
	"strings"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"
	m "gitea.cmcode.dev/cmcode/loan-wizard-tui/models"

	"github.com/gdamore/tcell/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rivo/tview"
)

// descriptionSuggestions feeds the autocomplete on the description column.
// These are only suggestions; free text is always accepted.
var descriptionSuggestions = map[string][]string{
	c.CategoryLand: {
		"Freehold land",
		"Leasehold land",
		"Industrial plot",
		"Site development",
	},
	c.CategoryBuilding: {
		"Factory shed",
		"Office building",
		"Godown",
		"Boundary wall",
		"Civil works",
	},
	c.CategoryMachinery: {
		"Lathe machine",
		"CNC machine",
		"Generator set",
		"Compressor",
		"Packing machine",
		"Electrical installation",
	},
	c.CategoryFurniture: {
		"Office furniture",
		"Computers & printers",
		"Air conditioner",
		"Racks & storage",
	},
	c.CategoryVehicles: {
		"Delivery van",
		"Pickup truck",
		"Two wheeler",
	},
	c.CategoryOther: {
		"Tools & dies",
		"Testing equipment",
		"Software licenses",
		"Security deposit",
	},
}

func setAssetsStatus(msg string) {
	if LW.AssetsStatusText == nil {
		return
	}

	LW.AssetsStatusText.SetText(msg)
}

func resetAssetsInputFieldAutocomplete() {
	LW.AssetsInputField.SetAutocompleteFunc(func(currentText string) []string {
		return []string{}
	})
}

func deactivateAssetsInputField() {
	LW.AssetsInputField.SetFieldBackgroundColor(tcell.ColorBlack)
	LW.AssetsInputField.SetLabel(fmt.Sprintf("[gray] %v%v", LW.T["AssetsPageInputFieldAppearsHere"], c.ResetStyle))
	LW.AssetsInputField.SetText("")

	if LW.Previous != nil {
		LW.App.SetFocus(LW.Previous)
	}
}

// focuses the assets input field, updates its label, and sets
// its background color to something noticeable
func activateAssetsInputField(msg, value string) {
	resetAssetsInputFieldAutocomplete()

	LW.AssetsInputField.SetFieldBackgroundColor(tcell.ColorDimGray)
	LW.AssetsInputField.SetLabel(fmt.Sprintf("[lightgreen::b] %v[-:-:-:-]", msg))
	LW.AssetsInputField.SetText(value)

	// don't mess with the previously stored focus if the text field is already
	// focused
	currentFocus := LW.App.GetFocus()
	if currentFocus == LW.AssetsInputField {
		return
	}

	LW.Previous = currentFocus

	LW.App.SetFocus(LW.AssetsInputField)
}

func getCategoryListText(i int) string {
	name := LW.Visits.Categories[i]
	status := LW.Visits.Status[i]

	marker := LW.T["AssetsPageCategoryUnvisitedMarker"]
	color := LW.Colors["AssetsCategoryUnvisited"]

	switch status {
	case lib.StatusVisited:
		marker = LW.T["AssetsPageCategoryVisitedMarker"]
		color = LW.Colors["AssetsCategoryVisited"]
	case lib.StatusBlocked:
		marker = LW.T["AssetsPageCategoryBlockedMarker"]
		color = LW.Colors["AssetsCategoryBlocked"]
	}

	if i == LW.Visits.Active {
		return fmt.Sprintf("[white::bu]%v %v%v", name, marker, c.ResetStyle)
	}

	return fmt.Sprintf("%v%v %v%v", color, name, marker, c.Reset)
}

// populateAssetCategoryList clears out the category tab list and repopulates
// it with the active schema version's categories, marked with their
// visitation state.
func populateAssetCategoryList() {
	LW.AssetCategoryList.Clear()

	for i := range LW.Visits.Categories {
		dest := i
		LW.AssetCategoryList.AddItem(getCategoryListText(i), "", 0, func() {
			attemptCategorySwitch(dest)
		})
	}
}

// attemptCategorySwitch routes a tab change through the visitation gate. A
// refused switch leaves the active category in place, paints it blocked, and
// moves focus to the allocation form so the user can fix it.
func attemptCategorySwitch(dest int) {
	err := LW.Visits.SwitchTo(
		dest,
		&LW.SelectedDraft.Ledger,
		&LW.SelectedDraft.Allocations,
		LW.T["AssetsPageMissingAllocation"],
	)
	if err != nil {
		if errors.Is(err, lib.ErrMissingAllocation) {
			setAssetsStatus(fmt.Sprintf(
				"%v%v: %v%v",
				LW.Colors["AssetsStatusTextError"],
				LW.Visits.ActiveCategory(),
				LW.T["AssetsPageMissingAllocation"],
				c.Reset,
			))
			populateAssetCategoryList()
			LW.AssetCategoryList.SetCurrentItem(LW.Visits.Active)
			LW.AllocationForm.SetFocus(0)
			LW.App.SetFocus(LW.AllocationForm)
		}

		return
	}

	setAssetsStatus(fmt.Sprintf(
		"%v%v/%v %v%v",
		LW.Colors["AssetsStatusTextPassive"],
		LW.Visits.VisitedCount(),
		len(LW.Visits.Categories),
		LW.T["AssetsPageCategoriesVisited"],
		c.Reset,
	))

	populateAssetCategoryList()
	LW.AssetCategoryList.SetCurrentItem(dest)
	getAssetsTable()
	updateAllocationForm()
	LW.App.SetFocus(LW.AssetsTable)
}

// Returns a list, representing the ordered columns to be shown in
// the assets table, alongside their configured colors.
func getAssetsTableHeaders() []m.TableCell {
	return []m.TableCell{
		{Text: LW.T["AssetsColumnRow"], Color: LW.Colors["AssetsColumnRow"]},
		{Text: LW.T["AssetsColumnDescription"], Color: LW.Colors["AssetsColumnDescription"], Expand: 1},
		{Text: LW.T["AssetsColumnAmount"], Color: LW.Colors["AssetsColumnAmount"]},
	}
}

// getAssetsTable clears and re-renders the asset schedule table for the
// active category, wiring up the per-cell edit handlers.
func getAssetsTable() {
	LW.AssetsTable.Clear()

	category := LW.Visits.ActiveCategory()
	ledger := &LW.SelectedDraft.Ledger

	cat, err := lib.AssetCategory(ledger.Version, category)
	if err != nil {
		return
	}

	LW.AssetsTable.SetTitle(fmt.Sprintf(
		"%v (%v/%v)",
		category,
		len(ledger.Rows(category)),
		cat.MaxItems(),
	))

	th := getAssetsTableHeaders()

	for i := range th {
		cell := tview.NewTableCell(fmt.Sprintf("%v%v%v", th[i].Color, th[i].Text, c.Reset))
		if th[i].Expand > 0 {
			cell.SetExpansion(th[i].Expand)
		}

		LW.AssetsTable.SetCell(0, i, cell)
	}

	rows := ledger.Rows(category)

	for i := range rows {
		it := rows[i]

		desc := it.Description
		if desc == "" {
			desc = LW.T["AssetsPageEmptyCellPlaceholder"]
		}

		amt := lib.FormatAsCurrency(it.Amount)
		if it.Amount == 0 {
			amt = LW.T["AssetsPageEmptyCellPlaceholder"]
		}

		LW.AssetsTable.SetCell(i+1, c.ColumnRowIndex,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["AssetsColumnRow"], it.Row, c.Reset)))
		LW.AssetsTable.SetCell(i+1, c.ColumnDescriptionIndex,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["AssetsColumnDescription"], desc, c.Reset)).SetExpansion(1))
		LW.AssetsTable.SetCell(i+1, c.ColumnAmountIndex,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["AssetsColumnAmount"], amt, c.Reset)))
	}

	// totals row
	total := ledger.Total(category)
	last := len(rows) + 1

	LW.AssetsTable.SetCell(last, c.ColumnRowIndex,
		tview.NewTableCell(""))
	LW.AssetsTable.SetCell(last, c.ColumnDescriptionIndex,
		tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["AssetsTableTotal"], LW.T["AssetsPageTotalLabel"], c.Reset)))
	LW.AssetsTable.SetCell(last, c.ColumnAmountIndex,
		tview.NewTableCell(fmt.Sprintf("%v%v%v", LW.Colors["AssetsTableTotal"], lib.FormatAsCurrency(total), c.Reset)))

	LW.AssetsTable.SetSelectedFunc(assetsTableCellSelected)
}

// assetsTableCellSelected activates the input field for the selected cell.
func assetsTableCellSelected(row, column int) {
	category := LW.Visits.ActiveCategory()
	ledger := &LW.SelectedDraft.Ledger
	rows := ledger.Rows(category)

	i := row - 1 // skip header
	if i < 0 || i >= len(rows) {
		return
	}

	templateRow := rows[i].Row

	switch column {
	case c.ColumnDescriptionIndex:
		activateAssetsInputField(
			fmt.Sprintf("%v:", LW.T["AssetsPageEditDescriptionLabel"]),
			rows[i].Description,
		)

		saveFunc := func(newValue string) {
			if err := ledger.UpdateItem(category, templateRow, c.FieldDescription, newValue); err != nil {
				setAssetsStatus(fmt.Sprintf(
					"%v%v%v",
					LW.Colors["AssetsStatusTextError"],
					err.Error(),
					c.Reset,
				))

				return
			}

			assetScheduleChanged(category)
		}

		LW.AssetsInputField.SetAutocompleteFunc(func(currentText string) []string {
			if strings.TrimSpace(currentText) == "" {
				return []string{}
			}

			return fuzzy.Find(strings.TrimSpace(currentText), descriptionSuggestions[category])
		})
		LW.AssetsInputField.SetAutocompletedFunc(func(text string, index, source int) bool {
			saveFunc(text)
			deactivateAssetsInputField()

			return true
		})
		LW.AssetsInputField.SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEscape:
				break
			default:
				saveFunc(LW.AssetsInputField.GetText())
			}
			deactivateAssetsInputField()
		})
	case c.ColumnAmountIndex:
		LW.AssetsInputField.SetDoneFunc(func(key tcell.Key) {
			switch key {
			case tcell.KeyEscape:
				// don't save the changes
				deactivateAssetsInputField()

				return
			default:
				err := ledger.UpdateItem(category, templateRow, c.FieldAmount, LW.AssetsInputField.GetText())
				if err != nil {
					setAssetsStatus(fmt.Sprintf(
						"%v%v%v",
						LW.Colors["AssetsStatusTextError"],
						err.Error(),
						c.Reset,
					))
				}

				assetScheduleChanged(category)
				deactivateAssetsInputField()
			}
		})
		activateAssetsInputField(
			fmt.Sprintf("%v:", LW.T["AssetsPageEditAmountLabel"]),
			lib.FormatNumber(rows[i].Amount),
		)
	default:
		return
	}
}

// assetScheduleChanged runs after every ledger edit: the allocation amount is
// re-derived from the new category total so the pair can never drift, any
// block that no longer applies is lifted, and the page re-renders.
func assetScheduleChanged(category string) {
	total := LW.SelectedDraft.Ledger.Total(category)

	if err := LW.SelectedDraft.Allocations.Reconcile(category, total); err != nil {
		setAssetsStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["AssetsStatusTextError"],
			err.Error(),
			c.Reset,
		))
	}

	LW.Visits.Unblock(&LW.SelectedDraft.Ledger, &LW.SelectedDraft.Allocations)

	modified()
	getAssetsTable()
	updateAllocationForm()
	populateAssetCategoryList()
	updateReviewPage()
}

// addAssetRow opens a new empty row in the active category, or reports that
// the category's template rows are all taken.
func addAssetRow() {
	category := LW.Visits.ActiveCategory()

	row, err := LW.SelectedDraft.Ledger.AddItem(category)
	if err != nil {
		if errors.Is(err, lib.ErrCapacityExceeded) {
			cat, catErr := lib.AssetCategory(LW.SelectedDraft.Ledger.Version, category)
			if catErr != nil {
				return
			}

			setAssetsStatus(fmt.Sprintf(
				"%v%v: %v (%v)%v",
				LW.Colors["AssetsStatusTextError"],
				category,
				LW.T["AssetsPageCategoryFull"],
				cat.MaxItems(),
				c.Reset,
			))
		}

		return
	}

	modified()
	getAssetsTable()

	// select the freshly opened row
	rows := LW.SelectedDraft.Ledger.Rows(category)
	for i := range rows {
		if rows[i].Row == row {
			LW.AssetsTable.Select(i+1, c.ColumnDescriptionIndex)

			break
		}
	}

	LW.App.SetFocus(LW.AssetsTable)
}

// deleteAssetRow destroys the highlighted row's item.
func deleteAssetRow() {
	category := LW.Visits.ActiveCategory()
	rows := LW.SelectedDraft.Ledger.Rows(category)

	cr, cc := LW.AssetsTable.GetSelection()

	i := cr - 1 // skip header
	if i < 0 || i >= len(rows) {
		return
	}

	if err := LW.SelectedDraft.Ledger.RemoveItem(category, rows[i].Row); err != nil {
		setAssetsStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["AssetsStatusTextError"],
			err.Error(),
			c.Reset,
		))

		return
	}

	assetScheduleChanged(category)
	LW.AssetsTable.Select(cr, cc)
	LW.App.SetFocus(LW.AssetsTable)
}

// Completely rebuilds the allocation form for the active category, safe to
// run repeatedly. Percentage and amount stay consistent in both directions:
// editing one derives the other from the category total.
func updateAllocationForm() {
	LW.AllocationForm.Clear(true)

	category := LW.Visits.ActiveCategory()
	if category == "" {
		return
	}

	a := LW.SelectedDraft.Allocations.Get(category)
	total := LW.SelectedDraft.Ledger.Total(category)

	LW.AllocationForm.SetTitle(fmt.Sprintf("%v: %v", LW.T["AllocationFormTitle"], category))

	// handles to both fields, so an edit on one side can repaint the derived
	// side in place; rebuilding the whole form here would steal focus
	// mid-keystroke
	var pctField, amtField *tview.InputField

	LW.AllocationForm.
		AddInputField(fmt.Sprintf("%v:", LW.T["AllocationFormPercentageLabel"]),
			a.Percentage,
			10, nil,
			func(text string) {
				if allocationFieldSyncing {
					return
				}

				if !allocationEdited(func() error {
					return LW.SelectedDraft.Allocations.SetPercentage(category, text, total)
				}) {
					return
				}

				refreshAllocationField(amtField, LW.SelectedDraft.Allocations.Get(category).Amount)
			}).
		AddInputField(fmt.Sprintf("%v:", LW.T["AllocationFormAmountLabel"]),
			a.Amount,
			20, nil,
			func(text string) {
				if allocationFieldSyncing {
					return
				}

				if !allocationEdited(func() error {
					return LW.SelectedDraft.Allocations.SetAmount(category, text, total)
				}) {
					return
				}

				refreshAllocationField(pctField, LW.SelectedDraft.Allocations.Get(category).Percentage)
			})

	pctField, _ = LW.AllocationForm.GetFormItem(0).(*tview.InputField)
	amtField, _ = LW.AllocationForm.GetFormItem(1).(*tview.InputField)

	LW.AllocationForm.SetLabelColor(tcell.ColorViolet)
	LW.AllocationForm.SetFieldBackgroundColor(tcell.NewRGBColor(40, 40, 40))
	LW.AllocationForm.SetBorder(true)
}

// allocationFieldSyncing suppresses the changed handler that SetText fires
// while the derived side of the allocation form is repainted.
//
//nolint:gochecknoglobals
var allocationFieldSyncing bool

func refreshAllocationField(f *tview.InputField, text string) {
	if f == nil || f.GetText() == text {
		return
	}

	allocationFieldSyncing = true
	f.SetText(text)
	allocationFieldSyncing = false
}

// allocationEdited applies one side of an allocation edit and, on success,
// re-renders everything that depends on the pair. Reports whether the edit
// stuck.
func allocationEdited(apply func() error) bool {
	if err := apply(); err != nil {
		setAssetsStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["AssetsStatusTextError"],
			err.Error(),
			c.Reset,
		))

		return false
	}

	LW.Visits.Unblock(&LW.SelectedDraft.Ledger, &LW.SelectedDraft.Allocations)

	modified()
	populateAssetCategoryList()
	updateReviewPage()

	return true
}

// returns the assets page: category tabs and the visitation status on the
// left, the schedule table, allocation form and edit field on the right
func getAssetsPage() *tview.Flex {
	LW.AssetCategoryList = tview.NewList()
	LW.AssetCategoryList.SetBorder(true)
	LW.AssetCategoryList.ShowSecondaryText(false).
		SetSelectedBackgroundColor(tcell.NewRGBColor(50, 50, 50)).
		SetSelectedTextColor(tcell.ColorWhite).
		SetTitle(LW.T["AssetsPageCategoryListTitle"])

	LW.AssetsStatusText = tview.NewTextView()
	LW.AssetsStatusText.SetBorder(true)
	LW.AssetsStatusText.SetDynamicColors(true)

	assetsLeftSide := tview.NewFlex().SetDirection(tview.FlexRow)
	assetsLeftSide.AddItem(LW.AssetCategoryList, 0, 1, true).
		AddItem(LW.AssetsStatusText, 4, 0, true)

	LW.AssetsTable = tview.NewTable().SetFixed(1, 1)
	LW.AssetsTable.SetBorder(true)
	LW.AssetsTable.SetBorders(false).
		SetSelectable(true, true).
		SetSeparator(' ')

	LW.AllocationForm = tview.NewForm()

	LW.AssetsInputField = tview.NewInputField()
	LW.AssetsInputField.SetBorder(true)
	LW.AssetsInputField.SetFieldBackgroundColor(tcell.ColorBlack)
	LW.AssetsInputField.SetLabel(fmt.Sprintf("[gray] %v%v", LW.T["AssetsPageInputFieldAppearsHere"], c.ResetStyle))

	assetsRightSide := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(LW.AssetsTable, 0, 1, false).
		AddItem(LW.AllocationForm, 7, 0, false).
		AddItem(LW.AssetsInputField, 3, 0, false)

	return tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(assetsLeftSide, 0, 1, true).
		AddItem(assetsRightSide, 0, 3, false)
}
