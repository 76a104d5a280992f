package lib

import (
	"regexp"
	"time"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

// cellRef matches a spreadsheet cell reference: a column letter prefix
// followed by a row number, e.g. "e122" or "k28". Section keys that do not
// match are UI-only state and never reach the wire.
var cellRef = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)

// IsCellRef reports whether a key addresses a template cell.
func IsCellRef(key string) bool {
	return cellRef.MatchString(key)
}

// RepackMonthAsDate converts a month field value "YYYY-MM" into the literal
// "MM-01-YYYY" form the template expects for the business commencement date.
// Unparseable input passes through unchanged.
func RepackMonthAsDate(v string) string {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return v
	}

	return t.Format("01-02-2006")
}

// RepackMonthAbbreviated converts a month field value "YYYY-MM" into the
// abbreviated "Mon-YY" form the template expects for the first repayment
// month. Unparseable input passes through unchanged.
func RepackMonthAbbreviated(v string) string {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return v
	}

	return t.Format("Jan-06")
}

// Serialize flattens one application's state into the single-level cell map
// handed to the report service. Only the active schema version's rows are
// walked, so the output can never contain stale keys from the other layout,
// and unchanged input always yields an identical map.
func Serialize(general map[string]string, ledger *AssetLedger, allocs *AllocationSet, expenses *ExpenseLedger) map[string]any {
	flat := map[string]any{}

	// general info: copy every cell-keyed leaf verbatim, except the two
	// month fields which the template wants repacked
	for key, value := range general {
		if !IsCellRef(key) || value == "" {
			continue
		}

		switch key {
		case c.CellCommencementMonth:
			flat[key] = RepackMonthAsDate(value)
		case c.CellFirstRepaymentMonth:
			flat[key] = RepackMonthAbbreviated(value)
		default:
			flat[key] = value
		}
	}

	// asset schedule: populated rows only, using the active version's rows
	for _, name := range AssetCategoryNames(ledger.Version) {
		cat, err := AssetCategory(ledger.Version, name)
		if err != nil {
			continue
		}

		for _, it := range ledger.ListItems(name) {
			flat[cat.DescriptorCell(it.Row)] = it.Description
			flat[cat.ValueCell(it.Row)] = it.Amount
		}

		if a := allocs.Get(name); a.Defined() {
			p, _ := ParsePercentage(a.Percentage)
			flat[cat.LoanCell] = p
		}
	}

	// indirect expense schedule: labels and values for every line, plus the
	// per-category increment override when one was entered
	for _, cat := range expenses.Categories {
		for _, line := range cat.Lines {
			flat[line.DescriptorCell] = line.Label
			flat[line.ValueCell] = line.Value
		}

		if cat.Increment != "" {
			if p, ok := ParsePercentage(cat.Increment); ok {
				flat[cat.IncrementCell] = p
			}
		}
	}

	return flat
}
