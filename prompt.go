package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// This file mainly contains functions for the hidden prompt page in the
// application.

func promptExit() {
	// check if we are already prompting
	currentPage, _ := LW.Pages.GetFrontPage()
	if currentPage == PagePrompt {
		return
	}

	// now check if the previous page is something other than the prompt already
	LW.PrevPage, _ = LW.Pages.GetFrontPage()
	if LW.PrevPage == PagePrompt {
		return
	}

	LW.PromptBox.ClearButtons().AddButtons(
		[]string{
			LW.T["PromptExitButtonExit"],
			LW.T["PromptExitButtonNo"],
			LW.T["PromptExitButtonCancel"],
		},
	).SetText(LW.T["PromptExitText"]).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				LW.App.Stop()
			case 1:
				fallthrough
			case 2:
				fallthrough
			default:
				LW.Pages.SwitchToPage(LW.PrevPage)
				return
			}
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	LW.Pages.SwitchToPage(PagePrompt)
	LW.PromptBox.SetFocus(2)
	LW.App.SetFocus(LW.PromptBox)
}

// promptKBMode switches to the prompt page and shows a modal that informs the
// user that they are in keyboard echo mode. If KB echo mode is not enabled,
// this gracefully returns immediately and does nothing.
//
// Requires the first argument to be the translation map.
func promptKBMode(t map[string]string) {
	if !LW.FlagKeyboardEchoMode {
		return
	}

	// temporarily turn off KB echo mode so that the user's keys are captured
	// properly until they can give consent to entering the mode
	LW.FlagKeyboardEchoMode = false

	LW.PromptBox.ClearButtons().AddButtons(
		[]string{
			t["PromptKeyboardEchoModeButtonTurnOff"],
			t["PromptKeyboardEchoModeButtonExitNow"],
			t["PromptKeyboardEchoModeButtonContinue"],
		},
	).SetText(t["PromptKeyboardEchoModeText"]).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			switch buttonIndex {
			case 0:
				LW.FlagKeyboardEchoMode = false
				LW.Pages.SwitchToPage(PageGeneral)
			case 1:
				LW.FlagKeyboardEchoMode = false
				LW.App.Stop()
			case 2:
				LW.FlagKeyboardEchoMode = true
				LW.Pages.SwitchToPage(PageGeneral)
			default:
				LW.FlagKeyboardEchoMode = false
				LW.App.Stop()
				return
			}
		},
	).SetBackgroundColor(tcell.ColorDimGray).
		SetTextColor(tcell.ColorWhite)

	LW.Pages.SwitchToPage(PagePrompt)
	LW.PromptBox.SetFocus(2)
	LW.App.SetFocus(LW.PromptBox)
}

// promptSubmit asks for confirmation before shipping the draft off to the
// report service. Refuses outright while a submission is in flight or while
// the visitation gate is still closed.
func promptSubmit() {
	currentPage, _ := LW.Pages.GetFrontPage()
	if currentPage == PagePrompt {
		return
	}

	if LW.Submitting {
		setDraftStatus(fmt.Sprintf("[gray] %v", LW.T["SubmitAlreadyInFlight"]))
		return
	}

	if !LW.Visits.CanAdvance(&LW.SelectedDraft.Ledger, &LW.SelectedDraft.Allocations) {
		switchToStep(PageReview)
		return
	}

	LW.PrevPage = currentPage

	LW.PromptBox.ClearButtons().AddButtons(
		[]string{
			LW.T["PromptSubmitButtonSubmit"],
			LW.T["PromptSubmitButtonCancel"],
		},
	).SetText(fmt.Sprintf(
		LW.T["PromptSubmitText"],
		LW.SelectedDraft.Name,
		LW.Config.ReportServiceURL,
	)).SetDoneFunc(
		func(buttonIndex int, buttonLabel string) {
			LW.Pages.SwitchToPage(LW.PrevPage)

			if buttonIndex == 0 {
				submitApplication()
			}
		},
	).SetBackgroundColor(tcell.ColorGoldenrod).
		SetTextColor(tcell.ColorBlack)

	LW.Pages.SwitchToPage(PagePrompt)
	LW.PromptBox.SetFocus(1)
	LW.App.SetFocus(LW.PromptBox)
}
