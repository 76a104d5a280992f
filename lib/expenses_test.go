package lib

import (
	"math"
	"testing"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

func TestNewExpenseLedgerDefaults(t *testing.T) {
	e := NewExpenseLedger(SchemaDefault)

	if len(e.Categories) != 3 {
		t.Fatalf("categories = %v, want 3", len(e.Categories))
	}

	if got := e.Categories[0].Lines[0].Label; got != "Salaries & wages" {
		t.Errorf("first line label = %q", got)
	}

	if got := e.Categories[0].Lines[0].DescriptorCell; got != "g22" {
		t.Errorf("first line cell = %v, want g22", got)
	}

	if got := e.Total(); got != 0 {
		t.Errorf("fresh ledger total = %v, want 0", got)
	}
}

func TestExpenseLedgerVersionsDifferByCells(t *testing.T) {
	def := NewExpenseLedger(SchemaDefault)
	ext := NewExpenseLedger(SchemaExtended)

	if def.Categories[0].Lines[0].DescriptorCell == ext.Categories[0].Lines[0].DescriptorCell {
		t.Error("default and extended ledgers should map to different cells")
	}

	if ext.Categories[0].Lines[0].DescriptorCell != "g52" {
		t.Errorf("extended first cell = %v, want g52", ext.Categories[0].Lines[0].DescriptorCell)
	}
}

func TestSetValueAndTotal(t *testing.T) {
	e := NewExpenseLedger(SchemaDefault)

	if err := e.SetValue(c.ExpenseAdministrative, 0, "120000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := e.SetValue(c.ExpenseSelling, 1, "45000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := e.Total(); math.Abs(got-165000) > 0.001 {
		t.Errorf("total = %v, want 165000", got)
	}
}

func TestSetValueBadLine(t *testing.T) {
	e := NewExpenseLedger(SchemaDefault)

	if err := e.SetValue(c.ExpenseMaintenance, 99, "100"); err == nil {
		t.Error("expected an error for an out-of-range line")
	}

	if err := e.SetValue("Legal", 0, "100"); err == nil {
		t.Error("expected an error for an unknown category")
	}
}

func TestSetIncrement(t *testing.T) {
	e := NewExpenseLedger(SchemaDefault)

	if err := e.SetIncrement(c.ExpenseAdministrative, "5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := e.Categories[0].Increment; got != "5" {
		t.Errorf("increment = %q, want 5", got)
	}
}
