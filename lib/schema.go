package lib

import (
	"fmt"
	"strconv"
	"strings"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

// SchemaVersion selects one of the two row-layout/cell-mapping tables that
// the downstream spreadsheet template understands. The two versions are never
// mixed within one submission.
type SchemaVersion int

const (
	SchemaDefault SchemaVersion = iota
	SchemaExtended
)

// ExtendedTenureYears is the tenure boundary: anything above this many years
// switches the template to the extended layout.
const ExtendedTenureYears = 7.0

func (v SchemaVersion) String() string {
	if v == SchemaExtended {
		return "extended"
	}

	return "default"
}

// AssetCategorySchema describes the block of template rows reserved for one
// asset category's line items, plus the single cell that carries the
// category's loan percentage.
type AssetCategorySchema struct {
	Name     string
	RowStart int
	RowEnd   int
	LoanCell string
}

// MaxItems is the category's item capacity; the row range is inclusive.
func (s AssetCategorySchema) MaxItems() int {
	return s.RowEnd - s.RowStart + 1
}

// DescriptorCell returns the cell that holds a row's item description.
func (s AssetCategorySchema) DescriptorCell(row int) string {
	return fmt.Sprintf("d%v", row)
}

// ValueCell returns the cell that holds a row's item amount.
func (s AssetCategorySchema) ValueCell(row int) string {
	return fmt.Sprintf("e%v", row)
}

// ExpenseLineSchema is one fixed line of the indirect expense table.
type ExpenseLineSchema struct {
	Label          string
	DescriptorCell string
	ValueCell      string
}

// ExpenseCategorySchema groups the ordered expense lines of one category and
// links the category to its single "percentage increase" override cell.
type ExpenseCategorySchema struct {
	Name          string
	Lines         []ExpenseLineSchema
	IncrementCell string
}

// Schema is one complete version of the template layout: every asset
// category block and every indirect expense block for that version.
type Schema struct {
	Version           SchemaVersion
	AssetCategories   []AssetCategorySchema
	ExpenseCategories []ExpenseCategorySchema
}

func expenseLines(start int, labels ...string) []ExpenseLineSchema {
	lines := make([]ExpenseLineSchema, 0, len(labels))

	for i, label := range labels {
		lines = append(lines, ExpenseLineSchema{
			Label:          label,
			DescriptorCell: fmt.Sprintf("g%v", start+i),
			ValueCell:      fmt.Sprintf("h%v", start+i),
		})
	}

	return lines
}

// The two schema versions live in a single lookup keyed by the version enum,
// so a future third layout is additive.
var schemas = map[SchemaVersion]Schema{
	SchemaDefault: {
		Version: SchemaDefault,
		AssetCategories: []AssetCategorySchema{
			{Name: c.CategoryLand, RowStart: 152, RowEnd: 154, LoanCell: "k146"},
			{Name: c.CategoryBuilding, RowStart: 156, RowEnd: 160, LoanCell: "k147"},
			{Name: c.CategoryMachinery, RowStart: 162, RowEnd: 171, LoanCell: "k148"},
			{Name: c.CategoryFurniture, RowStart: 173, RowEnd: 177, LoanCell: "k149"},
			{Name: c.CategoryVehicles, RowStart: 179, RowEnd: 182, LoanCell: "k150"},
			{Name: c.CategoryOther, RowStart: 184, RowEnd: 188, LoanCell: "k151"},
		},
		ExpenseCategories: []ExpenseCategorySchema{
			{
				Name: c.ExpenseAdministrative,
				Lines: expenseLines(22,
					"Salaries & wages",
					"Office rent",
					"Stationery & printing",
					"Postage & telephone",
					"Insurance",
				),
				IncrementCell: "k28",
			},
			{
				Name: c.ExpenseSelling,
				Lines: expenseLines(30,
					"Advertising",
					"Travelling",
					"Commission",
					"Packing & forwarding",
				),
				IncrementCell: "k35",
			},
			{
				Name: c.ExpenseMaintenance,
				Lines: expenseLines(37,
					"Repairs & maintenance",
					"Power & fuel",
					"Water charges",
				),
				IncrementCell: "k41",
			},
		},
	},
	SchemaExtended: {
		Version: SchemaExtended,
		AssetCategories: []AssetCategorySchema{
			{Name: c.CategoryLand, RowStart: 202, RowEnd: 204, LoanCell: "k196"},
			{Name: c.CategoryBuilding, RowStart: 206, RowEnd: 210, LoanCell: "k197"},
			{Name: c.CategoryMachinery, RowStart: 212, RowEnd: 221, LoanCell: "k198"},
			{Name: c.CategoryFurniture, RowStart: 223, RowEnd: 227, LoanCell: "k199"},
			{Name: c.CategoryVehicles, RowStart: 229, RowEnd: 232, LoanCell: "k200"},
			{Name: c.CategoryOther, RowStart: 234, RowEnd: 238, LoanCell: "k201"},
		},
		ExpenseCategories: []ExpenseCategorySchema{
			{
				Name: c.ExpenseAdministrative,
				Lines: expenseLines(52,
					"Salaries & wages",
					"Office rent",
					"Stationery & printing",
					"Postage & telephone",
					"Insurance",
				),
				IncrementCell: "k58",
			},
			{
				Name: c.ExpenseSelling,
				Lines: expenseLines(60,
					"Advertising",
					"Travelling",
					"Commission",
					"Packing & forwarding",
				),
				IncrementCell: "k65",
			},
			{
				Name: c.ExpenseMaintenance,
				Lines: expenseLines(67,
					"Repairs & maintenance",
					"Power & fuel",
					"Water charges",
				),
				IncrementCell: "k71",
			},
		},
	},
}

// parseTenure reports the tenure value and whether the field held a number at
// all. A blank or unparseable tenure counts as unset.
func parseTenure(tenure string) (float64, bool) {
	t, err := strconv.ParseFloat(strings.TrimSpace(tenure), 64)

	return t, err == nil
}

// ResolveSchema maps a tenure field value to the schema version that must be
// active. An empty or unparseable tenure counts as unset, which keeps the
// default layout. Pure, no side effects; call it on every tenure edit.
func ResolveSchema(tenure string) SchemaVersion {
	t, ok := parseTenure(tenure)
	if !ok {
		return SchemaDefault
	}

	if t > ExtendedTenureYears {
		return SchemaExtended
	}

	return SchemaDefault
}

// GetSchema returns the complete table set for a version.
func GetSchema(v SchemaVersion) Schema {
	return schemas[v]
}

// AssetCategory looks up one category block in a version's table, failing
// fast on unknown names rather than silently producing missing cells.
func AssetCategory(v SchemaVersion, name string) (AssetCategorySchema, error) {
	for _, cat := range schemas[v].AssetCategories {
		if cat.Name == name {
			return cat, nil
		}
	}

	return AssetCategorySchema{}, fmt.Errorf("unknown asset category %v in %v schema", name, v)
}

// AssetCategoryNames returns the category names for a version, in table
// order. Both versions carry the same names; only the rows differ.
func AssetCategoryNames(v SchemaVersion) []string {
	cats := schemas[v].AssetCategories
	names := make([]string, 0, len(cats))

	for _, cat := range cats {
		names = append(names, cat.Name)
	}

	return names
}

// SchemaTracker coordinates the expense-ledger reset that must fire when the
// resolved schema version changes. Exactly one reset per tenure change: the
// first tenure value ever entered resets, crossing the boundary in either
// direction resets, and same-version edits never reset. An unset tenure is
// not a value: observing a blank or unparseable field never arms the
// tracker, so the first real entry still counts as the first.
type SchemaTracker struct {
	resolved SchemaVersion
	seen     bool
}

// Observe resolves the schema for a new tenure value and reports whether the
// asset and expense schedules must be rebuilt from the new version's
// defaults.
func (st *SchemaTracker) Observe(tenure string) (SchemaVersion, bool) {
	v := ResolveSchema(tenure)

	if !st.seen {
		if _, ok := parseTenure(tenure); !ok {
			st.resolved = v

			return v, false
		}

		st.seen = true
		st.resolved = v

		return v, true
	}

	reset := v != st.resolved
	st.resolved = v

	return v, reset
}

// Current returns the last resolved version, defaulting until Observe has
// been called.
func (st *SchemaTracker) Current() SchemaVersion {
	return st.resolved
}
