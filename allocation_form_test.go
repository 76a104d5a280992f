package main

import (
	"testing"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"
	m "gitea.cmcode.dev/cmcode/loan-wizard-tui/models"

	"github.com/rivo/tview"
	"gopkg.in/yaml.v3"
)

// newAllocationFormFixture wires up just enough of the app state to build the
// allocation form for a draft whose Land category totals 1,000,000, and
// returns both of its input fields.
func newAllocationFormFixture(t *testing.T) (pctField, amtField *tview.InputField) {
	t.Helper()

	LW = LoanWizard{}
	LW.T = map[string]string{}
	LW.Colors = map[string]string{}

	names := lib.AssetCategoryNames(lib.SchemaDefault)

	LW.Config = m.Config{
		UndoBufferMaxLength: 32,
		Drafts: []m.Draft{{
			Name:        "allocation sync",
			ID:          "draft-1",
			General:     map[string]string{},
			Ledger:      lib.NewAssetLedger(lib.SchemaDefault),
			Allocations: lib.NewAllocationSet(names),
			Expenses:    lib.NewExpenseLedger(lib.SchemaDefault),
		}},
	}
	LW.SelectedDraft = &LW.Config.Drafts[0]

	b, err := yaml.Marshal(LW.Config)
	if err != nil {
		t.Fatalf("failed to marshal fixture config: %v", err)
	}

	initializeUndo(b, false)

	LW.Visits = lib.NewVisitationTracker(names)
	LW.AssetCategoryList = tview.NewList()
	LW.AssetsTable = tview.NewTable()
	LW.AllocationForm = tview.NewForm()

	row, err := LW.SelectedDraft.Ledger.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("failed to open a ledger row: %v", err)
	}

	if err := LW.SelectedDraft.Ledger.UpdateItem(c.CategoryLand, row, c.FieldAmount, "1000000"); err != nil {
		t.Fatalf("failed to set the ledger amount: %v", err)
	}

	updateAllocationForm()

	pctField, _ = LW.AllocationForm.GetFormItem(0).(*tview.InputField)
	amtField, _ = LW.AllocationForm.GetFormItem(1).(*tview.InputField)

	if pctField == nil || amtField == nil {
		t.Fatal("allocation form fields were not built")
	}

	return pctField, amtField
}

// Editing one side of the allocation form must repaint the derived other
// side in place, without rebuilding the form, so the user never sees (or
// commits) a stale value.
func TestAllocationFormKeepsBothSidesInStep(t *testing.T) {
	pctField, amtField := newAllocationFormFixture(t)

	pctField.SetText("50")

	if got := amtField.GetText(); got != "500000" {
		t.Errorf("amount field after percentage edit = %q, want %q", got, "500000")
	}

	a := LW.SelectedDraft.Allocations.Get(c.CategoryLand)
	if a.Percentage != "50" || a.Amount != "500000" {
		t.Errorf("allocation after percentage edit = %+v, want {50 500000}", a)
	}

	amtField.SetText("250000")

	if got := pctField.GetText(); got != "25" {
		t.Errorf("percentage field after amount edit = %q, want %q", got, "25")
	}

	a = LW.SelectedDraft.Allocations.Get(c.CategoryLand)
	if a.Percentage != "25" || a.Amount != "250000" {
		t.Errorf("allocation after amount edit = %+v, want {25 250000}", a)
	}
}

// Clearing the percentage clears both sides. The amount field's repaint must
// not loop back through its own changed handler, which would turn the
// cleared pair into a zero percentage.
func TestAllocationFormClearDoesNotEcho(t *testing.T) {
	pctField, amtField := newAllocationFormFixture(t)

	pctField.SetText("50")
	pctField.SetText("")

	if got := amtField.GetText(); got != "" {
		t.Errorf("amount field after clearing = %q, want empty", got)
	}

	a := LW.SelectedDraft.Allocations.Get(c.CategoryLand)
	if a.Percentage != "" || a.Amount != "" {
		t.Errorf("allocation after clearing = %+v, want both sides empty", a)
	}
}
