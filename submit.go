package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"

	"github.com/google/uuid"
)

// submission is the request body sent to the report service. The cells map is
// the flattened template state; the allocations travel alongside it so the
// service can validate the percentages against the asset totals.
type submission struct {
	Reference       string            `json:"reference"`
	Cells           map[string]any    `json:"cells"`
	LoanAllocations map[string]string `json:"loanAllocations"`
}

// submitApplication flattens the selected draft and POSTs it to the
// configured report service. The request runs on its own goroutine so the
// terminal stays responsive; the outcome lands in the draft status text.
func submitApplication() {
	if LW.Submitting {
		setDraftStatus(fmt.Sprintf("[gray] %v", LW.T["SubmitAlreadyInFlight"]))
		return
	}

	if LW.Config.ReportServiceURL == "" {
		setDraftStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["SubmitNoServiceURL"],
			c.Reset,
		))

		return
	}

	draft := LW.SelectedDraft

	payload := submission{
		Reference:       uuid.NewString(),
		Cells:           lib.Serialize(draft.General, &draft.Ledger, &draft.Allocations, &draft.Expenses),
		LoanAllocations: draft.Allocations.Percentages(),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		setDraftStatus(fmt.Sprintf(
			"%v%v: %v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["SubmitFailedToMarshal"],
			err.Error(),
			c.Reset,
		))

		return
	}

	LW.Submitting = true

	setDraftStatus(fmt.Sprintf(
		"%v%v%v",
		LW.Colors["DraftStatusTextPassive"],
		LW.T["SubmitInFlight"],
		c.Reset,
	))

	url := LW.Config.ReportServiceURL
	timeout := time.Duration(LW.Config.SubmitTimeoutSeconds) * time.Second

	go func() {
		result := postSubmission(url, b, timeout)

		LW.App.QueueUpdateDraw(func() {
			LW.Submitting = false

			if result != nil {
				// the draft is untouched on failure; the user can retry
				setDraftStatus(fmt.Sprintf(
					"%v%v: %v%v",
					LW.Colors["DraftStatusTextError"],
					LW.T["SubmitFailed"],
					result.Error(),
					c.Reset,
				))

				return
			}

			setDraftStatus(fmt.Sprintf(
				"%v%v (%v)%v",
				LW.Colors["DraftStatusTextPassive"],
				LW.T["SubmitSucceeded"],
				payload.Reference,
				c.Reset,
			))
		})
	}()
}

func postSubmission(url string, body []byte, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%v: %w", LW.T["SubmitFailedToBuildRequest"], err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%v: %v", LW.T["SubmitRejected"], resp.Status)
	}

	return nil
}
