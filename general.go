package main

import (
	"fmt"
	"strconv"
	"strings"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"
	m "gitea.cmcode.dev/cmcode/loan-wizard-tui/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func setDraftStatus(msg string) {
	if LW.DraftStatusText == nil {
		return
	}

	LW.DraftStatusText.SetText(msg)
}

func setStatusNoChanges() {
	setDraftStatus(fmt.Sprintf("[gray] %v", LW.T["GeneralPageStatusTextNoChanges"]))
}

func getActiveDraftText(draft m.Draft) string {
	if LW.SelectedDraft != nil && LW.SelectedDraft.ID == draft.ID {
		return fmt.Sprintf("[white::bu]%v %v%v", draft.Name, LW.T["GeneralPageDraftOpenMarker"], c.ResetStyle)
	}

	return draft.Name
}

// populateDraftList clears out the draft list and proceeds to populate it
// with the current drafts in the config, including handlers for changing
// the LW.SelectedDraft.
func populateDraftList() {
	LW.DraftList.Clear()

	for i := range LW.Config.Drafts {
		draft := &(LW.Config.Drafts[i])
		LW.DraftList.AddItem(getActiveDraftText(*draft), "", 0, func() {
			loadDraft(draft)
			LW.App.SetFocus(LW.GeneralForm)
		})
	}
}

// When changing a numeric field in the general form, this function is executed
// and will reject changes that do not properly parse into the desired format.
func generalFormInputFieldNumericValidator(textToCheck string, _ rune) bool {
	if textToCheck == "" {
		return true
	}

	v, err := strconv.ParseFloat(textToCheck, 64)
	if err != nil || v < 0 {
		return false
	}

	return true
}

// When changing a month field ("YYYY-MM") in the general form, this function
// is executed and will reject characters that can never form a valid value.
func generalFormInputFieldMonthValidator(textToCheck string, _ rune) bool {
	if len(textToCheck) > 7 {
		return false
	}

	for _, r := range textToCheck {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}

	return true
}

func getGeneralFormLabel(m string) string {
	return fmt.Sprintf("%v:", m)
}

// setGeneralField stores an edit into the draft's cell-keyed general map and
// registers the change with the undo buffer.
func setGeneralField(cell, value string) {
	LW.SelectedDraft.General[cell] = value
	modified()
}

// tenureChanged is the handler for the tenure field, which is special: it
// drives the schema version. Crossing the tenure boundary rebuilds the asset
// and expense schedules from the new version's defaults, discarding the old
// layout's rows wholesale.
func tenureChanged(text string) {
	LW.SelectedDraft.General[c.CellTenureYears] = text

	v, reset := LW.Schema.Observe(text)
	if reset {
		names := lib.AssetCategoryNames(v)

		LW.SelectedDraft.Ledger = lib.NewAssetLedger(v)
		LW.SelectedDraft.Allocations = lib.NewAllocationSet(names)
		LW.SelectedDraft.Expenses = lib.NewExpenseLedger(v)
		LW.Visits = lib.NewVisitationTracker(names)

		populateAssetCategoryList()
		getAssetsTable()
		updateAllocationForm()
		getExpensesTable()

		setDraftStatus(fmt.Sprintf(
			"%v%v: %v%v",
			LW.Colors["DraftStatusTextPassive"],
			LW.T["GeneralPageSchemaChanged"],
			v,
			c.Reset,
		))
	}

	modified()
	updateReviewPage()
}

// Completely rebuilds the general form, safe to run repeatedly.
func updateGeneralForm() {
	LW.GeneralForm.Clear(true)
	LW.GeneralForm.SetTitle(LW.T["GeneralFormTitle"])

	if LW.SelectedDraft == nil {
		return
	}

	g := LW.SelectedDraft.General

	constitutions := []string{
		LW.T["GeneralFormConstitutionProprietorship"],
		LW.T["GeneralFormConstitutionPartnership"],
		LW.T["GeneralFormConstitutionPrivateLimited"],
		LW.T["GeneralFormConstitutionLLP"],
	}

	constitutionIndex := 0

	for i := range constitutions {
		if constitutions[i] == g[c.CellConstitution] {
			constitutionIndex = i

			break
		}
	}

	LW.GeneralForm.
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormApplicantNameLabel"]),
			g[c.CellApplicantName],
			0, nil,
			func(text string) { setGeneralField(c.CellApplicantName, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormFirmNameLabel"]),
			g[c.CellFirmName],
			0, nil,
			func(text string) { setGeneralField(c.CellFirmName, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormAddressLabel"]),
			g[c.CellAddress],
			0, nil,
			func(text string) { setGeneralField(c.CellAddress, text) }).
		AddDropDown(getGeneralFormLabel(LW.T["GeneralFormConstitutionLabel"]),
			constitutions, constitutionIndex,
			func(option string, _ int) { setGeneralField(c.CellConstitution, option) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormEmailLabel"]),
			g[c.CellEmail],
			0, nil,
			func(text string) { setGeneralField(c.CellEmail, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormPhoneLabel"]),
			g[c.CellPhone],
			0, nil,
			func(text string) { setGeneralField(c.CellPhone, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormCommencementMonthLabel"]),
			g[c.CellCommencementMonth],
			0, generalFormInputFieldMonthValidator,
			func(text string) { setGeneralField(c.CellCommencementMonth, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormFirstRepaymentMonthLabel"]),
			g[c.CellFirstRepaymentMonth],
			0, generalFormInputFieldMonthValidator,
			func(text string) { setGeneralField(c.CellFirstRepaymentMonth, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormLoanAmountLabel"]),
			g[c.CellLoanAmount],
			0, generalFormInputFieldNumericValidator,
			func(text string) { setGeneralField(c.CellLoanAmount, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormTenureYearsLabel"]),
			g[c.CellTenureYears],
			0, generalFormInputFieldNumericValidator,
			tenureChanged).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormInterestRateLabel"]),
			g[c.CellInterestRate],
			0, generalFormInputFieldNumericValidator,
			func(text string) { setGeneralField(c.CellInterestRate, text) }).
		AddInputField(getGeneralFormLabel(LW.T["GeneralFormMoratoriumMonthsLabel"]),
			g[c.CellMoratoriumMonths],
			0, generalFormInputFieldNumericValidator,
			func(text string) { setGeneralField(c.CellMoratoriumMonths, text) }).
		AddButton(LW.T["GeneralFormNextButtonLabel"], func() {
			switchToStep(PageAssets)
		})

	LW.GeneralForm.SetLabelColor(tcell.ColorViolet)
	LW.GeneralForm.SetFieldBackgroundColor(tcell.NewRGBColor(40, 40, 40))
	LW.GeneralForm.SetBorder(true)
}

// returns a simple flex view with two columns:
// - a list of application drafts (left side)
// - the general information form (right side)
func getGeneralPage() *tview.Flex {
	LW.DraftList = tview.NewList()
	LW.DraftList.SetBorder(true)
	LW.DraftList.ShowSecondaryText(false).
		SetSelectedBackgroundColor(tcell.NewRGBColor(50, 50, 50)).
		SetSelectedTextColor(tcell.ColorWhite).
		SetTitle(LW.T["GeneralPageDraftListTitle"])

	LW.DraftStatusText = tview.NewTextView()
	LW.DraftStatusText.SetBorder(true)
	LW.DraftStatusText.SetDynamicColors(true)
	setStatusNoChanges()

	generalLeftSide := tview.NewFlex().SetDirection(tview.FlexRow)
	generalLeftSide.AddItem(LW.DraftList, 0, 1, true).
		AddItem(LW.DraftStatusText, 3, 0, true)

	LW.GeneralForm = tview.NewForm()

	populateDraftList()
	updateGeneralForm()

	return tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(generalLeftSide, 0, 1, false).
		AddItem(LW.GeneralForm, 0, 3, true)
}

// addDraft appends a fresh draft to the config and switches to it. The name
// must be unique, so a numeric suffix is added when necessary.
func addDraft() {
	name := LW.T["DefaultNewDraftName"]

	for i := 2; ; i++ {
		unique := true

		for j := range LW.Config.Drafts {
			if LW.Config.Drafts[j].Name == name {
				unique = false

				break
			}
		}

		if unique {
			break
		}

		name = fmt.Sprintf("%v %v", LW.T["DefaultNewDraftName"], i)
	}

	LW.Config.Drafts = append(LW.Config.Drafts, m.Draft{Name: name})
	processConfig(&LW.Config)

	loadDraft(&(LW.Config.Drafts[len(LW.Config.Drafts)-1]))
	modified()
	LW.App.SetFocus(LW.GeneralForm)
}

// deleteDraft removes the selected draft, refusing to delete the last one.
func deleteDraft() {
	if len(LW.Config.Drafts) <= 1 {
		setDraftStatus(fmt.Sprintf("[gray] %v", LW.T["GeneralPageCannotDeleteLastDraft"]))
		return
	}

	id := LW.SelectedDraft.ID

	for i := range LW.Config.Drafts {
		if LW.Config.Drafts[i].ID == id {
			LW.Config.Drafts = append(LW.Config.Drafts[:i], LW.Config.Drafts[i+1:]...)

			break
		}
	}

	loadDraft(&(LW.Config.Drafts[0]))
	modified()
	LW.App.SetFocus(LW.DraftList)
}

// switchToStep changes the front page to another wizard step, enforcing the
// asset step's gate: the user may not move past the assets page until every
// category has been visited and every populated category has an allocation.
func switchToStep(page string) {
	current, _ := LW.Pages.GetFrontPage()

	if stepIndex(page) > stepIndex(PageAssets) && stepIndex(current) <= stepIndex(PageAssets) {
		if !LW.Visits.CanAdvance(&LW.SelectedDraft.Ledger, &LW.SelectedDraft.Allocations) {
			LW.Pages.SwitchToPage(PageAssets)
			setBottomPageNavText()
			setAssetsStatus(fmt.Sprintf(
				"%v%v%v",
				LW.Colors["AssetsStatusTextError"],
				LW.T["AssetsPageCannotAdvance"],
				c.Reset,
			))
			LW.App.SetFocus(LW.AssetCategoryList)

			return
		}
	}

	if page == PageReview {
		updateReviewPage()
	}

	LW.Pages.SwitchToPage(page)
	setBottomPageNavText()
}

func stepIndex(page string) int {
	for i := range WizardSteps {
		if WizardSteps[i] == page {
			return i
		}
	}

	return -1
}

// trimmedOrDefault is a tiny helper for optional text cells on the review
// page.
func trimmedOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}

	return v
}
