package lib

import (
	"errors"
	"testing"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

func newAssetState(t *testing.T) (*AssetLedger, *AllocationSet, *VisitationTracker) {
	t.Helper()

	names := AssetCategoryNames(SchemaDefault)
	ledger := NewAssetLedger(SchemaDefault)
	allocs := NewAllocationSet(names)

	return &ledger, &allocs, NewVisitationTracker(names)
}

func TestFirstCategoryStartsVisited(t *testing.T) {
	_, _, tracker := newAssetState(t)

	if tracker.ActiveCategory() != c.CategoryLand {
		t.Errorf("active = %v, want Land", tracker.ActiveCategory())
	}

	if tracker.Status[0] != StatusVisited {
		t.Errorf("first category status = %v, want visited", tracker.Status[0])
	}

	if tracker.VisitedCount() != 1 {
		t.Errorf("visited count = %v, want 1", tracker.VisitedCount())
	}
}

func TestSwitchAwayFromEmptyCategory(t *testing.T) {
	ledger, allocs, tracker := newAssetState(t)

	if err := tracker.SwitchTo(1, ledger, allocs, "missing allocation"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tracker.ActiveCategory() != c.CategoryBuilding {
		t.Errorf("active = %v, want Building", tracker.ActiveCategory())
	}

	if tracker.VisitedCount() != 2 {
		t.Errorf("visited count = %v, want 2", tracker.VisitedCount())
	}
}

func TestSwitchRefusedWithoutAllocation(t *testing.T) {
	ledger, allocs, tracker := newAssetState(t)

	row, err := ledger.AddItem(c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ledger.UpdateItem(c.CategoryLand, row, c.FieldDescription, "Plot"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ledger.UpdateItem(c.CategoryLand, row, c.FieldAmount, "2000000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = tracker.SwitchTo(1, ledger, allocs, "enter a loan percentage first")
	if !errors.Is(err, ErrMissingAllocation) {
		t.Fatalf("got %v, want ErrMissingAllocation", err)
	}

	// the refusal must not have moved the active category
	if tracker.ActiveCategory() != c.CategoryLand {
		t.Errorf("active = %v, want Land", tracker.ActiveCategory())
	}

	if tracker.Status[0] != StatusBlocked {
		t.Errorf("status = %v, want blocked", tracker.Status[0])
	}

	if tracker.Errors[c.CategoryLand] != "enter a loan percentage first" {
		t.Errorf("error message = %q", tracker.Errors[c.CategoryLand])
	}
}

func TestSwitchAllowedOnceAllocationSet(t *testing.T) {
	ledger, allocs, tracker := newAssetState(t)

	row, _ := ledger.AddItem(c.CategoryLand)
	_ = ledger.UpdateItem(c.CategoryLand, row, c.FieldDescription, "Plot")
	_ = ledger.UpdateItem(c.CategoryLand, row, c.FieldAmount, "2000000")

	if err := tracker.SwitchTo(1, ledger, allocs, "blocked"); err == nil {
		t.Fatal("expected the first switch to be refused")
	}

	if err := allocs.SetPercentage(c.CategoryLand, "50", ledger.Total(c.CategoryLand)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := allocs.Get(c.CategoryLand).Amount; got != "1000000" {
		t.Errorf("derived amount = %q, want 1000000", got)
	}

	tracker.Unblock(ledger, allocs)

	if tracker.Status[0] != StatusVisited {
		t.Errorf("status after unblock = %v, want visited", tracker.Status[0])
	}

	if err := tracker.SwitchTo(1, ledger, allocs, "blocked"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tracker.ActiveCategory() != c.CategoryBuilding {
		t.Errorf("active = %v, want Building", tracker.ActiveCategory())
	}
}

func TestBlockReturnsAfterClearingAllocation(t *testing.T) {
	ledger, allocs, tracker := newAssetState(t)

	row, _ := ledger.AddItem(c.CategoryLand)
	_ = ledger.UpdateItem(c.CategoryLand, row, c.FieldDescription, "Plot")
	_ = ledger.UpdateItem(c.CategoryLand, row, c.FieldAmount, "2000000")
	_ = allocs.SetPercentage(c.CategoryLand, "50", 2000000)

	if err := tracker.SwitchTo(1, ledger, allocs, "blocked"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tracker.SwitchTo(0, ledger, allocs, "blocked"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// clearing the percentage reinstates the gate on the next switch
	_ = allocs.SetPercentage(c.CategoryLand, "", 2000000)

	if err := tracker.SwitchTo(1, ledger, allocs, "blocked"); !errors.Is(err, ErrMissingAllocation) {
		t.Fatalf("got %v, want ErrMissingAllocation", err)
	}
}

func TestCanAdvance(t *testing.T) {
	ledger, allocs, tracker := newAssetState(t)

	if tracker.CanAdvance(ledger, allocs) {
		t.Error("advance should require visiting every category")
	}

	for i := 1; i < len(tracker.Categories); i++ {
		if err := tracker.SwitchTo(i, ledger, allocs, "blocked"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !tracker.CanAdvance(ledger, allocs) {
		t.Error("all categories visited and none populated: advance should pass")
	}

	// populating a category without an allocation blocks advance again
	row, _ := ledger.AddItem(c.CategoryVehicles)
	_ = ledger.UpdateItem(c.CategoryVehicles, row, c.FieldAmount, "800000")

	if tracker.CanAdvance(ledger, allocs) {
		t.Error("populated category without an allocation should block advance")
	}

	_ = allocs.SetPercentage(c.CategoryVehicles, "75", ledger.Total(c.CategoryVehicles))

	if !tracker.CanAdvance(ledger, allocs) {
		t.Error("advance should pass once the allocation is supplied")
	}
}

func TestSwitchToOutOfRange(t *testing.T) {
	ledger, allocs, tracker := newAssetState(t)

	if err := tracker.SwitchTo(99, ledger, allocs, ""); err == nil {
		t.Error("expected an error for an out-of-range destination")
	}
}
