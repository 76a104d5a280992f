package lib

import (
	"testing"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

func TestResolveSchema(t *testing.T) {
	tests := []struct {
		tenure string
		want   SchemaVersion
	}{
		{"", SchemaDefault},
		{"abc", SchemaDefault},
		{"0", SchemaDefault},
		{"5", SchemaDefault},
		{"7", SchemaDefault},
		{"7.0", SchemaDefault},
		{"7.5", SchemaExtended},
		{"8", SchemaExtended},
		{"9", SchemaExtended},
		{"25", SchemaExtended},
	}

	for _, tc := range tests {
		if got := ResolveSchema(tc.tenure); got != tc.want {
			t.Errorf("ResolveSchema(%q) = %v, want %v", tc.tenure, got, tc.want)
		}
	}
}

func TestSchemaRowRangesDoNotOverlap(t *testing.T) {
	for _, v := range []SchemaVersion{SchemaDefault, SchemaExtended} {
		seen := map[int]string{}

		for _, cat := range GetSchema(v).AssetCategories {
			if cat.RowEnd < cat.RowStart {
				t.Errorf("%v %v: inverted row range %v-%v", v, cat.Name, cat.RowStart, cat.RowEnd)
			}

			for row := cat.RowStart; row <= cat.RowEnd; row++ {
				if owner, ok := seen[row]; ok {
					t.Errorf("%v: row %v claimed by both %v and %v", v, row, owner, cat.Name)
				}
				seen[row] = cat.Name
			}
		}
	}
}

func TestSchemaCapacityMatchesRowRange(t *testing.T) {
	cat, err := AssetCategory(SchemaDefault, c.CategoryLand)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cat.MaxItems() != 3 {
		t.Errorf("Land capacity = %v, want 3", cat.MaxItems())
	}

	machinery, err := AssetCategory(SchemaExtended, c.CategoryMachinery)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if machinery.MaxItems() != 10 {
		t.Errorf("Plant & Machinery capacity = %v, want 10", machinery.MaxItems())
	}
}

func TestAssetCategoryUnknownName(t *testing.T) {
	if _, err := AssetCategory(SchemaDefault, "Goodwill"); err == nil {
		t.Error("expected an error for an unknown category name")
	}
}

func TestSchemaVersionsShareCategoryNames(t *testing.T) {
	def := AssetCategoryNames(SchemaDefault)
	ext := AssetCategoryNames(SchemaExtended)

	if len(def) != len(ext) {
		t.Fatalf("category count mismatch: %v vs %v", len(def), len(ext))
	}

	for i := range def {
		if def[i] != ext[i] {
			t.Errorf("category %v: %v vs %v", i, def[i], ext[i])
		}
	}
}

func TestSchemaTrackerResetTriggers(t *testing.T) {
	var st SchemaTracker

	// first tenure value ever entered resets, even within the default range
	if v, reset := st.Observe("5"); v != SchemaDefault || !reset {
		t.Errorf("first observe: got (%v, %v), want (default, true)", v, reset)
	}

	// same-version edit does not reset
	if _, reset := st.Observe("6"); reset {
		t.Error("edit within the default range should not reset")
	}

	// crossing the boundary resets
	if v, reset := st.Observe("9"); v != SchemaExtended || !reset {
		t.Errorf("crossing up: got (%v, %v), want (extended, true)", v, reset)
	}

	// re-entering the same value does not reset again
	if _, reset := st.Observe("9"); reset {
		t.Error("re-entering 9 should not reset")
	}

	// crossing back down resets once more
	if v, reset := st.Observe("5"); v != SchemaDefault || !reset {
		t.Errorf("crossing down: got (%v, %v), want (default, true)", v, reset)
	}
}

func TestSchemaTrackerBlankTenure(t *testing.T) {
	var st SchemaTracker

	v, reset := st.Observe("")
	if v != SchemaDefault {
		t.Errorf("blank tenure resolved to %v, want default", v)
	}

	if reset {
		t.Error("an unset tenure is not a value and should not reset")
	}

	if _, reset := st.Observe(""); reset {
		t.Error("repeated blank tenure should not reset")
	}
}

// A freshly loaded draft observes its stored tenure before the user touches
// anything; when that field is still blank, the first value the user then
// types must reset exactly once, even without a boundary crossing.
func TestSchemaTrackerFirstValueAfterBlank(t *testing.T) {
	var st SchemaTracker

	if _, reset := st.Observe(""); reset {
		t.Error("observing an unset tenure should not reset")
	}

	if v, reset := st.Observe("5"); v != SchemaDefault || !reset {
		t.Errorf("first real value: got (%v, %v), want (default, true)", v, reset)
	}

	if _, reset := st.Observe("5"); reset {
		t.Error("re-entering the same value should not reset again")
	}

	if v, reset := st.Observe("9"); v != SchemaExtended || !reset {
		t.Errorf("crossing up after the first value: got (%v, %v), want (extended, true)", v, reset)
	}
}
