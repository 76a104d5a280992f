package lib

import (
	"math"
	"reflect"
	"testing"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

func TestIsCellRef(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"d122", true},
		{"e122", true},
		{"k28", true},
		{"i46", true},
		{"AB12", true},
		{"selectedRow", false},
		{"d", false},
		{"122", false},
		{"d12x", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsCellRef(tc.key); got != tc.want {
			t.Errorf("IsCellRef(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestRepackMonthAsDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-04", "04-01-2026"},
		{"2025-12", "12-01-2025"},
		{"garbage", "garbage"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := RepackMonthAsDate(tc.input); got != tc.want {
			t.Errorf("RepackMonthAsDate(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRepackMonthAbbreviated(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2026-04", "Apr-26"},
		{"2025-12", "Dec-25"},
		{"garbage", "garbage"},
	}

	for _, tc := range tests {
		if got := RepackMonthAbbreviated(tc.input); got != tc.want {
			t.Errorf("RepackMonthAbbreviated(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func populatedFixture(t *testing.T) (map[string]string, AssetLedger, AllocationSet, ExpenseLedger) {
	t.Helper()

	general := map[string]string{
		c.CellApplicantName:       "A. Sharma",
		c.CellFirmName:            "Sharma Fabricators",
		c.CellCommencementMonth:   "2026-04",
		c.CellFirstRepaymentMonth: "2026-07",
		c.CellTenureYears:         "5",
		c.CellInterestRate:        "11.5",
		"selectedRow":             "3",
		c.CellAddress:             "",
	}

	ledger := NewAssetLedger(SchemaDefault)
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

	allocs := NewAllocationSet(AssetCategoryNames(SchemaDefault))
	if err := allocs.SetPercentage(c.CategoryLand, "50", ledger.Total(c.CategoryLand)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expenses := NewExpenseLedger(SchemaDefault)
	if err := expenses.SetValue(c.ExpenseAdministrative, 0, "120000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := expenses.SetIncrement(c.ExpenseAdministrative, "5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return general, ledger, allocs, expenses
}

func TestSerialize(t *testing.T) {
	general, ledger, allocs, expenses := populatedFixture(t)

	flat := Serialize(general, &ledger, &allocs, &expenses)

	if got := flat[c.CellApplicantName]; got != "A. Sharma" {
		t.Errorf("c6 = %v, want A. Sharma", got)
	}

	if got := flat[c.CellCommencementMonth]; got != "04-01-2026" {
		t.Errorf("d14 = %v, want 04-01-2026", got)
	}

	if got := flat[c.CellFirstRepaymentMonth]; got != "Jul-26" {
		t.Errorf("d15 = %v, want Jul-26", got)
	}

	// non-cell keys and blank values never reach the wire
	if _, ok := flat["selectedRow"]; ok {
		t.Error("selectedRow leaked into the payload")
	}

	if _, ok := flat[c.CellAddress]; ok {
		t.Error("blank c8 should be omitted")
	}

	// first Land row lands at d152/e152, allocation at k146
	if got := flat["d152"]; got != "Plot" {
		t.Errorf("d152 = %v, want Plot", got)
	}

	amt, ok := flat["e152"].(float64)
	if !ok || math.Abs(amt-2000000) > 0.001 {
		t.Errorf("e152 = %v, want 2000000", flat["e152"])
	}

	pct, ok := flat["k146"].(float64)
	if !ok || math.Abs(pct-50) > 0.001 {
		t.Errorf("k146 = %v, want 50", flat["k146"])
	}

	// expense lines carry both the label and the value
	if got := flat["g22"]; got != "Salaries & wages" {
		t.Errorf("g22 = %v, want Salaries & wages", got)
	}

	val, ok := flat["h22"].(float64)
	if !ok || math.Abs(val-120000) > 0.001 {
		t.Errorf("h22 = %v, want 120000", flat["h22"])
	}

	inc, ok := flat["k28"].(float64)
	if !ok || math.Abs(inc-5) > 0.001 {
		t.Errorf("k28 = %v, want 5", flat["k28"])
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	general, ledger, allocs, expenses := populatedFixture(t)

	a := Serialize(general, &ledger, &allocs, &expenses)
	b := Serialize(general, &ledger, &allocs, &expenses)

	if !reflect.DeepEqual(a, b) {
		t.Error("serializing unchanged state twice produced different maps")
	}
}

func TestSerializeUndefinedAllocationOmitsLoanCell(t *testing.T) {
	general, ledger, allocs, expenses := populatedFixture(t)

	if err := allocs.SetPercentage(c.CategoryLand, "", ledger.Total(c.CategoryLand)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flat := Serialize(general, &ledger, &allocs, &expenses)

	if _, ok := flat["k146"]; ok {
		t.Error("k146 should be absent when no percentage is defined")
	}
}

func TestSerializeExtendedUsesExtendedCells(t *testing.T) {
	ledger := NewAssetLedger(SchemaExtended)
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

	allocs := NewAllocationSet(AssetCategoryNames(SchemaExtended))
	if err := allocs.SetPercentage(c.CategoryLand, "50", ledger.Total(c.CategoryLand)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expenses := NewExpenseLedger(SchemaExtended)

	flat := Serialize(map[string]string{}, &ledger, &allocs, &expenses)

	if _, ok := flat["d202"]; !ok {
		t.Error("extended Land row should serialize at d202")
	}

	if _, ok := flat["k196"]; !ok {
		t.Error("extended Land allocation should serialize at k196")
	}

	// none of the default layout's cells may appear
	for _, key := range []string{"d152", "e152", "k146", "g22", "h22", "k28"} {
		if _, ok := flat[key]; ok {
			t.Errorf("stale default-layout key %v in extended payload", key)
		}
	}

	// extended expense lines start at g52
	if _, ok := flat["g52"]; !ok {
		t.Error("extended expense labels should serialize at g52")
	}
}
