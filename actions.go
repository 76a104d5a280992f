package main

import (
	"fmt"
	"os"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

func actionRedo(e *tcell.EventKey) *tcell.EventKey {
	switch LW.App.GetFocus() {
	case LW.AssetsInputField, LW.ExpensesInputField, LW.AllocationForm:
		return e
	default:
		redo()
		return nil
	}
}

func actionUndo(e *tcell.EventKey) *tcell.EventKey {
	switch LW.App.GetFocus() {
	case LW.AssetsInputField, LW.ExpensesInputField, LW.AllocationForm:
		return e
	default:
		undo()
		return nil
	}
}

func actionQuit() *tcell.EventKey {
	promptExit()
	return nil
}

func actionSave() *tcell.EventKey {
	if LW.Config.Version == "" {
		LW.Config.Version = c.ConfigVersion
	}

	b, err := yaml.Marshal(LW.Config)
	if err != nil {
		setDraftStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["ActionSaveFailedToMarshal"],
			c.Reset,
		))

		return nil
	}

	err = os.WriteFile(LW.FlagConfigFile, b, os.FileMode(0o644))
	if err != nil {
		setDraftStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["ActionSaveFailedToWrite"],
			c.Reset,
		))

		return nil
	}

	LW.SelectedDraft.Modified = false

	setDraftStatus(fmt.Sprintf("[gray] %v %v", LW.T["ActionSaveSuccess"], lib.GetNowStr()))

	return nil
}

func actionAdd(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()
	switch pageName {
	case PageGeneral:
		switch LW.App.GetFocus() {
		case LW.DraftList:
			addDraft()
			return nil
		default:
			return e
		}
	case PageAssets:
		switch LW.App.GetFocus() {
		case LW.AssetsInputField:
			return e
		default:
			addAssetRow()
			return nil
		}
	default:
		return e
	}
}

func actionDelete(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()
	switch pageName {
	case PageGeneral:
		switch LW.App.GetFocus() {
		case LW.DraftList:
			deleteDraft()
			return nil
		default:
			return e
		}
	case PageAssets:
		switch LW.App.GetFocus() {
		case LW.AssetsInputField:
			return e
		default:
			deleteAssetRow()
			return nil
		}
	default:
		return e
	}
}

func actionNextStep() *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()

	i := stepIndex(pageName)
	if i == -1 || i >= len(WizardSteps)-1 {
		return nil
	}

	switchToStep(WizardSteps[i+1])

	return nil
}

func actionPrevStep() *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()

	i := stepIndex(pageName)
	if i <= 0 {
		// leaving the help or prompt page goes back to where we came from
		if i == -1 && LW.PrevPage != "" {
			switchToStep(LW.PrevPage)
		}

		return nil
	}

	switchToStep(WizardSteps[i-1])

	return nil
}

func actionNextTab(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()
	if pageName != PageAssets {
		return e
	}

	if LW.Visits.Active >= len(LW.Visits.Categories)-1 {
		return nil
	}

	attemptCategorySwitch(LW.Visits.Active + 1)

	return nil
}

func actionPrevTab(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()
	if pageName != PageAssets {
		return e
	}

	if LW.Visits.Active <= 0 {
		return nil
	}

	attemptCategorySwitch(LW.Visits.Active - 1)

	return nil
}

func actionTab(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()
	switch pageName {
	case PageGeneral:
		switch LW.App.GetFocus() {
		case LW.DraftList:
			LW.App.SetFocus(LW.GeneralForm)
			return nil
		case LW.GeneralForm:
			return e
		default:
			LW.App.SetFocus(LW.DraftList)
			return nil
		}
	case PageAssets:
		switch LW.App.GetFocus() {
		case LW.AssetsInputField:
			return nil
		case LW.AssetCategoryList:
			LW.App.SetFocus(LW.AssetsTable)
		case LW.AssetsTable:
			LW.AllocationForm.SetFocus(0)
			LW.App.SetFocus(LW.AllocationForm)
		case LW.AllocationForm:
			return e
		default:
			LW.App.SetFocus(LW.AssetCategoryList)
		}

		return nil
	case PageReview:
		switch LW.App.GetFocus() {
		case LW.ReviewSummary:
			LW.App.SetFocus(LW.ReviewTable)
		default:
			LW.App.SetFocus(LW.ReviewSummary)
		}

		return nil
	default:
		return e
	}
}

func actionBackTab(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()
	switch pageName {
	case PageGeneral:
		switch LW.App.GetFocus() {
		case LW.GeneralForm:
			LW.App.SetFocus(LW.DraftList)
			return nil
		default:
			return e
		}
	case PageAssets:
		switch LW.App.GetFocus() {
		case LW.AssetsInputField:
			return nil
		case LW.AllocationForm:
			LW.App.SetFocus(LW.AssetsTable)
		case LW.AssetsTable:
			LW.App.SetFocus(LW.AssetCategoryList)
		case LW.AssetCategoryList:
			return e
		default:
			LW.App.SetFocus(LW.AssetCategoryList)
		}

		return nil
	case PageReview:
		switch LW.App.GetFocus() {
		case LW.ReviewTable:
			LW.App.SetFocus(LW.ReviewSummary)
			return nil
		default:
			return e
		}
	default:
		return e
	}
}

func actionEsc(e *tcell.EventKey) *tcell.EventKey {
	pageName, _ := LW.Pages.GetFrontPage()

	currentFocus := LW.App.GetFocus()
	switch currentFocus {
	case LW.AssetsInputField, LW.ExpensesInputField:
		// the input fields handle escape themselves via their done funcs
		return e
	case LW.AllocationForm:
		LW.App.SetFocus(LW.AssetsTable)
		return nil
	case LW.AssetsTable:
		LW.App.SetFocus(LW.AssetCategoryList)
		return nil
	case LW.GeneralForm:
		LW.App.SetFocus(LW.DraftList)
		return nil
	case LW.HelpTextView:
		if LW.PrevPage != "" {
			LW.Pages.SwitchToPage(LW.PrevPage)
			setBottomPageNavText()

			return nil
		}

		fallthrough
	default:
		// stepping back out of a later wizard step is less surprising than
		// an exit prompt
		i := stepIndex(pageName)
		if i > 0 {
			switchToStep(WizardSteps[i-1])
			return nil
		}

		promptExit()

		return nil
	}
}

func actionGeneral() *tcell.EventKey {
	switchToStep(PageGeneral)
	return nil
}

func actionAssets() *tcell.EventKey {
	p, _ := LW.Pages.GetFrontPage()
	alreadyOnPage := p == PageAssets

	switchToStep(PageAssets)

	if alreadyOnPage {
		LW.App.SetFocus(LW.AssetCategoryList)
	}

	return nil
}

func actionExpenses() *tcell.EventKey {
	p, _ := LW.Pages.GetFrontPage()
	alreadyOnPage := p == PageExpenses

	switchToStep(PageExpenses)

	if alreadyOnPage {
		getExpensesTable()
		LW.App.SetFocus(LW.ExpensesTable)
	}

	return nil
}

func actionReview() *tcell.EventKey {
	p, _ := LW.Pages.GetFrontPage()
	alreadyOnPage := p == PageReview

	switchToStep(PageReview)

	if alreadyOnPage {
		updateReviewPage()
		LW.App.SetFocus(LW.ReviewTable)
	}

	return nil
}

func actionSubmit() *tcell.EventKey {
	promptSubmit()
	return nil
}

func actionExport() *tcell.EventKey {
	exportPDF()
	return nil
}

func actionGlobalHelp() *tcell.EventKey {
	p, _ := LW.Pages.GetFrontPage()
	if p != PageHelp {
		LW.PrevPage = p
	}

	LW.Pages.SwitchToPage(PageHelp)
	setBottomPageNavText()

	return nil
}

// action is the primary decision tree that is triggered when a key event
// is triggered. Please ensure that every case statement has a return or
// fallthrough.
//
//nolint:cyclop
func action(action string, e *tcell.EventKey) *tcell.EventKey {
	switch action {
	case c.ActionRedo:
		return actionRedo(e)
	case c.ActionUndo:
		return actionUndo(e)
	case c.ActionQuit:
		return actionQuit()
	case c.ActionSave:
		return actionSave()
	case c.ActionAdd:
		return actionAdd(e)
	case c.ActionDelete:
		return actionDelete(e)
	case c.ActionNextStep:
		return actionNextStep()
	case c.ActionPrevStep:
		return actionPrevStep()
	case c.ActionNextTab:
		return actionNextTab(e)
	case c.ActionPrevTab:
		return actionPrevTab(e)
	case c.ActionTab:
		return actionTab(e)
	case c.ActionBackTab:
		return actionBackTab(e)
	case c.ActionEsc:
		return actionEsc(e)
	case c.ActionGeneral:
		return actionGeneral()
	case c.ActionAssets:
		return actionAssets()
	case c.ActionExpenses:
		return actionExpenses()
	case c.ActionReview:
		return actionReview()
	case c.ActionSubmit:
		return actionSubmit()
	case c.ActionExport:
		return actionExport()
	case c.ActionGlobalHelp:
		return actionGlobalHelp()
	default:
		return e
	}
}
