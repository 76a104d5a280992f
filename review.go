package main

import (
	"fmt"
	"strings"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"
	m "gitea.cmcode.dev/cmcode/loan-wizard-tui/models"

	"github.com/rivo/tview"
)

// Returns a list, representing the ordered columns to be shown in
// the repayment schedule table, alongside their configured colors.
func getReviewTableHeaders() []m.TableCell {
	return []m.TableCell{
		{Text: LW.T["ReviewColumnInstallment"], Color: LW.Colors["ReviewColumnInstallment"]},
		{Text: c.ColumnDueDate, Color: LW.Colors["ReviewColumnDueDate"]},
		{Text: c.ColumnPayment, Color: LW.Colors["ReviewColumnPayment"], Align: tview.AlignRight},
		{Text: c.ColumnPrincipal, Color: LW.Colors["ReviewColumnPrincipal"], Align: tview.AlignRight},
		{Text: c.ColumnInterest, Color: LW.Colors["ReviewColumnInterest"], Align: tview.AlignRight},
		{Text: c.ColumnBalance, Color: LW.Colors["ReviewColumnBalance"], Align: tview.AlignRight},
	}
}

func getReviewTableCell(in lib.Installment) []m.TableCell {
	return []m.TableCell{
		{Text: fmt.Sprintf("%v", in.Sequence), Color: LW.Colors["ReviewColumnInstallment"]},
		{Text: in.DueDate.Format("Jan 2006"), Color: LW.Colors["ReviewColumnDueDate"]},
		{Text: lib.FormatAsCurrency(in.Payment), Color: LW.Colors["ReviewColumnPayment"], Align: tview.AlignRight},
		{Text: lib.FormatAsCurrency(in.Principal), Color: LW.Colors["ReviewColumnPrincipal"], Align: tview.AlignRight},
		{Text: lib.FormatAsCurrency(in.Interest), Color: LW.Colors["ReviewColumnInterest"], Align: tview.AlignRight},
		{Text: lib.FormatAsCurrency(in.Balance), Color: LW.Colors["ReviewColumnBalance"], Align: tview.AlignRight},
	}
}

// getReviewSchedule re-renders the indicative repayment schedule from the
// general form's loan parameters. This is a preview only; the report service
// computes the authoritative schedule.
func getReviewSchedule() {
	LW.ReviewTable.Clear()

	th := getReviewTableHeaders()

	for i := range th {
		LW.ReviewTable.SetCell(0, i,
			tview.NewTableCell(fmt.Sprintf("%v%v%v", th[i].Color, th[i].Text, c.Reset)).
				SetAlign(th[i].Align))
	}

	g := LW.SelectedDraft.General

	schedule, err := lib.RepaymentSchedule(
		lib.ParseAmount(g[c.CellLoanAmount]),
		lib.ParseAmount(g[c.CellInterestRate]),
		lib.ParseAmount(g[c.CellTenureYears]),
		int(lib.ParseAmount(g[c.CellMoratoriumMonths])),
		g[c.CellFirstRepaymentMonth],
	)
	if err != nil {
		LW.ReviewTable.SetCell(1, 0,
			tview.NewTableCell(fmt.Sprintf(
				"%v%v%v",
				LW.Colors["ReviewScheduleUnavailable"],
				LW.T["ReviewPageScheduleUnavailable"],
				c.Reset,
			)).SetExpansion(1))

		return
	}

	for i := range schedule {
		cells := getReviewTableCell(schedule[i])

		for j := range cells {
			LW.ReviewTable.SetCell(i+1, j,
				tview.NewTableCell(fmt.Sprintf("%v%v%v", cells[j].Color, cells[j].Text, c.Reset)).
					SetAlign(cells[j].Align))
		}
	}
}

// getReviewSummaryText composes the top pane of the review page: the
// applicant block, per-category totals with their loan allocations, the
// expense total, and whether the draft is ready for submission.
func getReviewSummaryText() string {
	var sb strings.Builder

	draft := LW.SelectedDraft
	g := draft.General

	sb.WriteString(fmt.Sprintf(
		"%v%v%v %v (%v)\n",
		LW.Colors["ReviewSummaryHeading"],
		LW.T["ReviewPageApplicantHeading"],
		c.Reset,
		trimmedOrDefault(g[c.CellApplicantName], LW.T["ReviewPageNotProvided"]),
		trimmedOrDefault(g[c.CellFirmName], LW.T["ReviewPageNotProvided"]),
	))

	sb.WriteString(fmt.Sprintf(
		"%v%v:%v %v  %v%v:%v %v%%  %v%v:%v %v %v  %v%v:%v %v\n\n",
		LW.Colors["ReviewSummaryLabel"], LW.T["ReviewPageLoanAmountLabel"], c.Reset,
		lib.FormatAsCurrency(lib.ParseAmount(g[c.CellLoanAmount])),
		LW.Colors["ReviewSummaryLabel"], LW.T["ReviewPageInterestRateLabel"], c.Reset,
		trimmedOrDefault(g[c.CellInterestRate], "0"),
		LW.Colors["ReviewSummaryLabel"], LW.T["ReviewPageTenureLabel"], c.Reset,
		trimmedOrDefault(g[c.CellTenureYears], "0"), LW.T["ReviewPageYears"],
		LW.Colors["ReviewSummaryLabel"], LW.T["ReviewPageSchemaLabel"], c.Reset,
		LW.Schema.Current(),
	))

	sb.WriteString(fmt.Sprintf(
		"%v%v%v\n",
		LW.Colors["ReviewSummaryHeading"],
		LW.T["ReviewPageAssetsHeading"],
		c.Reset,
	))

	grandTotal := 0.0
	financed := 0.0

	for _, name := range draft.Ledger.PopulatedCategories() {
		total := draft.Ledger.Total(name)
		grandTotal += total

		a := draft.Allocations.Get(name)

		pctText := LW.T["ReviewPageNoAllocation"]

		if a.Defined() {
			p, _ := lib.ParsePercentage(a.Percentage)
			financed += lib.Round2(total * p / 100)
			pctText = fmt.Sprintf("%v%%", a.Percentage)
		}

		sb.WriteString(fmt.Sprintf(
			"  %v: %v (%v)\n",
			name,
			lib.FormatAsCurrency(total),
			pctText,
		))
	}

	sb.WriteString(fmt.Sprintf(
		"  %v%v: %v  %v: %v%v\n\n",
		LW.Colors["ReviewSummaryLabel"],
		LW.T["ReviewPageAssetsTotalLabel"],
		lib.FormatAsCurrency(grandTotal),
		LW.T["ReviewPageFinancedLabel"],
		lib.FormatAsCurrency(financed),
		c.Reset,
	))

	sb.WriteString(fmt.Sprintf(
		"%v%v:%v %v\n\n",
		LW.Colors["ReviewSummaryLabel"],
		LW.T["ReviewPageExpensesTotalLabel"],
		c.Reset,
		lib.FormatAsCurrency(draft.Expenses.Total()),
	))

	if LW.Visits.CanAdvance(&draft.Ledger, &draft.Allocations) {
		sb.WriteString(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["ReviewReadyBanner"],
			fmt.Sprintf(LW.T["ReviewPageReadyBanner"], formatBoundKeys(c.ActionSubmit)),
			c.Reset,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"%v%v (%v/%v)%v",
			LW.Colors["ReviewNotReadyBanner"],
			LW.T["ReviewPageNotReadyBanner"],
			LW.Visits.VisitedCount(),
			len(LW.Visits.Categories),
			c.Reset,
		))
	}

	return sb.String()
}

// updateReviewPage re-renders the review page's summary and schedule. Safe to
// call from any edit handler, including before the page has been built.
func updateReviewPage() {
	if LW.ReviewSummary == nil || LW.ReviewTable == nil || LW.Visits == nil {
		return
	}

	LW.ReviewSummary.SetText(getReviewSummaryText())
	getReviewSchedule()
}

// returns the review page: the summary pane on top, the indicative repayment
// schedule below it
func getReviewPage() *tview.Flex {
	LW.ReviewSummary = tview.NewTextView().SetDynamicColors(true)
	LW.ReviewSummary.SetBorder(true)
	LW.ReviewSummary.SetTitle(LW.T["ReviewPageSummaryTitle"])

	LW.ReviewTable = tview.NewTable().SetFixed(1, 0)
	LW.ReviewTable.SetBorder(true)
	LW.ReviewTable.SetTitle(LW.T["ReviewPageScheduleTitle"])
	LW.ReviewTable.SetBorders(false).
		SetSelectable(true, false).
		SetSeparator(' ')

	updateReviewPage()

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(LW.ReviewSummary, 0, 1, true).
		AddItem(LW.ReviewTable, 0, 2, false)
}
