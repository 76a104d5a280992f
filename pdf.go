package main

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"

	"github.com/go-pdf/fpdf"
)

const pdfContentWidth = 190.0

// pdfMoney formats an amount for PDF output. The standard PDF fonts are
// Latin-1, which has no rupee sign, so the "Rs." prefix is used instead of
// the on-screen currency formatting.
func pdfMoney(amount float64) string {
	return fmt.Sprintf("Rs. %.2f", amount)
}

var pdfFileNameUnsafe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func pdfFileName(draftName string) string {
	base := pdfFileNameUnsafe.ReplaceAllString(strings.TrimSpace(draftName), "-")
	if base == "" {
		base = "application"
	}

	return fmt.Sprintf("%v-%v.pdf", base, time.Now().Format("2006-01-02"))
}

func pdfSectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(pdfContentWidth, 8, title, "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
}

func pdfKeyValueRow(pdf *fpdf.Fpdf, key, value string) {
	pdf.CellFormat(60, 7, key, "LB", 0, "L", false, 0, "")
	pdf.CellFormat(pdfContentWidth-60, 7, value, "RB", 1, "L", false, 0, "")
}

// exportPDF renders the selected draft as an A4 summary document in the
// current working directory, named after the draft and today's date.
func exportPDF() {
	draft := LW.SelectedDraft
	g := draft.General

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(pdfContentWidth, 12, LW.T["PDFTitle"], "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf(
		"%v: %v",
		LW.T["PDFGeneratedLabel"],
		time.Now().Format("2 January 2006"),
	), "", 1, "C", false, 0, "")

	pdfSectionHeader(pdf, LW.T["PDFApplicantSection"])
	pdfKeyValueRow(pdf, LW.T["GeneralFormApplicantNameLabel"], g[c.CellApplicantName])
	pdfKeyValueRow(pdf, LW.T["GeneralFormFirmNameLabel"], g[c.CellFirmName])
	pdfKeyValueRow(pdf, LW.T["GeneralFormAddressLabel"], g[c.CellAddress])
	pdfKeyValueRow(pdf, LW.T["GeneralFormConstitutionLabel"], g[c.CellConstitution])
	pdfKeyValueRow(pdf, LW.T["GeneralFormEmailLabel"], g[c.CellEmail])
	pdfKeyValueRow(pdf, LW.T["GeneralFormPhoneLabel"], g[c.CellPhone])

	pdfSectionHeader(pdf, LW.T["PDFLoanSection"])
	pdfKeyValueRow(pdf, LW.T["GeneralFormLoanAmountLabel"], pdfMoney(lib.ParseAmount(g[c.CellLoanAmount])))
	pdfKeyValueRow(pdf, LW.T["GeneralFormTenureYearsLabel"], trimmedOrDefault(g[c.CellTenureYears], "0"))
	pdfKeyValueRow(pdf, LW.T["GeneralFormInterestRateLabel"], fmt.Sprintf("%v%%", trimmedOrDefault(g[c.CellInterestRate], "0")))
	pdfKeyValueRow(pdf, LW.T["GeneralFormMoratoriumMonthsLabel"], trimmedOrDefault(g[c.CellMoratoriumMonths], "0"))
	pdfKeyValueRow(pdf, LW.T["ReviewPageSchemaLabel"], fmt.Sprintf("%v", LW.Schema.Current()))

	pdfSectionHeader(pdf, LW.T["PDFAssetsSection"])

	grandTotal := 0.0

	for _, name := range draft.Ledger.PopulatedCategories() {
		total := draft.Ledger.Total(name)
		grandTotal += total

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(pdfContentWidth, 7, name, "LRB", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)

		for _, it := range draft.Ledger.ListItems(name) {
			pdf.CellFormat(20, 6, "", "L", 0, "L", false, 0, "")
			pdf.CellFormat(110, 6, it.Description, "B", 0, "L", false, 0, "")
			pdf.CellFormat(pdfContentWidth-130, 6, pdfMoney(it.Amount), "RB", 1, "R", false, 0, "")
		}

		if a := draft.Allocations.Get(name); a.Defined() {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf(
				"%v: %v%%",
				LW.T["PDFAllocationLabel"],
				a.Percentage,
			), "LRB", 1, "R", false, 0, "")
			pdf.SetFont("Arial", "", 10)
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdfKeyValueRow(pdf, LW.T["PDFAssetsTotalLabel"], pdfMoney(grandTotal))
	pdf.SetFont("Arial", "", 10)

	pdfSectionHeader(pdf, LW.T["PDFExpensesSection"])

	for i := range draft.Expenses.Categories {
		cat := &draft.Expenses.Categories[i]

		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(pdfContentWidth, 7, fmt.Sprintf(
			"%v (%v)",
			cat.Name,
			pdfMoney(categoryTotal(cat)),
		), "LRB", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)

		for _, line := range cat.Lines {
			pdf.CellFormat(20, 6, "", "L", 0, "L", false, 0, "")
			pdf.CellFormat(110, 6, line.Label, "B", 0, "L", false, 0, "")
			pdf.CellFormat(pdfContentWidth-130, 6, pdfMoney(line.Value), "RB", 1, "R", false, 0, "")
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdfKeyValueRow(pdf, LW.T["PDFExpensesTotalLabel"], pdfMoney(draft.Expenses.Total()))
	pdf.SetFont("Arial", "", 10)

	schedule, err := lib.RepaymentSchedule(
		lib.ParseAmount(g[c.CellLoanAmount]),
		lib.ParseAmount(g[c.CellInterestRate]),
		lib.ParseAmount(g[c.CellTenureYears]),
		int(lib.ParseAmount(g[c.CellMoratoriumMonths])),
		g[c.CellFirstRepaymentMonth],
	)
	if err == nil {
		pdf.AddPage()
		pdfSectionHeader(pdf, LW.T["PDFScheduleSection"])

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(15, 6, "#", "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, c.ColumnDueDate, "B", 0, "L", false, 0, "")
		pdf.CellFormat(36, 6, c.ColumnPayment, "B", 0, "R", false, 0, "")
		pdf.CellFormat(36, 6, c.ColumnPrincipal, "B", 0, "R", false, 0, "")
		pdf.CellFormat(36, 6, c.ColumnInterest, "B", 0, "R", false, 0, "")
		pdf.CellFormat(pdfContentWidth-153, 6, c.ColumnBalance, "B", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 9)

		for _, in := range schedule {
			pdf.CellFormat(15, 5, fmt.Sprintf("%v", in.Sequence), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 5, in.DueDate.Format("Jan 2006"), "", 0, "L", false, 0, "")
			pdf.CellFormat(36, 5, pdfMoney(in.Payment), "", 0, "R", false, 0, "")
			pdf.CellFormat(36, 5, pdfMoney(in.Principal), "", 0, "R", false, 0, "")
			pdf.CellFormat(36, 5, pdfMoney(in.Interest), "", 0, "R", false, 0, "")
			pdf.CellFormat(pdfContentWidth-153, 5, pdfMoney(in.Balance), "", 1, "R", false, 0, "")
		}
	}

	name := pdfFileName(draft.Name)

	if err := pdf.OutputFileAndClose(name); err != nil {
		setDraftStatus(fmt.Sprintf(
			"%v%v: %v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["PDFExportFailed"],
			err.Error(),
			c.Reset,
		))

		return
	}

	setDraftStatus(fmt.Sprintf(
		"%v%v: %v%v",
		LW.Colors["DraftStatusTextPassive"],
		LW.T["PDFExportSucceeded"],
		name,
		c.Reset,
	))
}
