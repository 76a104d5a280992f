package lib

import (
	"errors"
	"math"
	"testing"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

func TestAddItemAssignsFirstFreeRow(t *testing.T) {
	l := NewAssetLedger(SchemaDefault)

	row, err := l.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row != 152 {
		t.Errorf("first Land row = %v, want 152", row)
	}

	row, err = l.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row != 153 {
		t.Errorf("second Land row = %v, want 153", row)
	}
}

func TestAddItemReusesRemovedRow(t *testing.T) {
	l := NewAssetLedger(SchemaDefault)

	for i := 0; i < 3; i++ {
		if _, err := l.AddItem(c.CategoryLand); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := l.RemoveItem(c.CategoryLand, 153); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row, err := l.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row != 153 {
		t.Errorf("row after removal = %v, want 153", row)
	}
}

func TestAddItemCapacityExceeded(t *testing.T) {
	l := NewAssetLedger(SchemaDefault)

	// Plant & Machinery spans rows 162-171, so 10 adds fill it
	for i := 0; i < 10; i++ {
		row, err := l.AddItem(c.CategoryMachinery)
		if err != nil {
			t.Fatalf("add %v: unexpected error: %v", i, err)
		}

		if err := l.UpdateItem(c.CategoryMachinery, row, c.FieldDescription, "Lathe"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if _, err := l.AddItem(c.CategoryMachinery); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("11th add: got %v, want ErrCapacityExceeded", err)
	}

	// the failed add must not have disturbed the existing items
	if got := len(l.ListItems(c.CategoryMachinery)); got != 10 {
		t.Errorf("items after failed add = %v, want 10", got)
	}
}

func TestUpdateItemAndTotal(t *testing.T) {
	l := NewAssetLedger(SchemaDefault)

	row, err := l.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.UpdateItem(c.CategoryLand, row, c.FieldDescription, "Plot at industrial estate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.UpdateItem(c.CategoryLand, row, c.FieldAmount, "2000000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := l.Total(c.CategoryLand); math.Abs(got-2000000) > 0.001 {
		t.Errorf("Total = %v, want 2000000", got)
	}

	if !l.HasItems(c.CategoryLand) {
		t.Error("expected Land to have items")
	}
}

func TestUpdateItemUnknownRow(t *testing.T) {
	l := NewAssetLedger(SchemaDefault)

	if err := l.UpdateItem(c.CategoryLand, 152, c.FieldAmount, "100"); err == nil {
		t.Error("expected an error updating a row that was never added")
	}
}

func TestEmptyRowsAreNotItems(t *testing.T) {
	l := NewAssetLedger(SchemaDefault)

	if _, err := l.AddItem(c.CategoryVehicles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// an open but unfilled row counts toward capacity but not membership
	if got := len(l.Rows(c.CategoryVehicles)); got != 1 {
		t.Errorf("open rows = %v, want 1", got)
	}

	if l.HasItems(c.CategoryVehicles) {
		t.Error("an empty open row should not count as an item")
	}

	if got := len(l.PopulatedCategories()); got != 0 {
		t.Errorf("populated categories = %v, want 0", got)
	}
}

func TestExtendedLedgerUsesExtendedRows(t *testing.T) {
	l := NewAssetLedger(SchemaExtended)

	row, err := l.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row != 202 {
		t.Errorf("first extended Land row = %v, want 202", row)
	}
}
