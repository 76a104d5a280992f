package lib

import "fmt"

// ExpenseLine is one editable line of the indirect expense schedule. The
// cells are copied out of the active schema when the ledger is built, so a
// serialized line can never point at a row from the other layout.
type ExpenseLine struct {
	Label          string  `yaml:"label"`
	DescriptorCell string  `yaml:"descriptorCell"`
	ValueCell      string  `yaml:"valueCell"`
	Value          float64 `yaml:"value"`
}

// ExpenseCategory groups the lines of one indirect expense category together
// with its yearly percentage-increase override field.
type ExpenseCategory struct {
	Name          string        `yaml:"name"`
	Lines         []ExpenseLine `yaml:"lines"`
	IncrementCell string        `yaml:"incrementCell"`
	Increment     string        `yaml:"increment"`
}

// ExpenseLedger is the indirect expense schedule for one schema version.
// Crossing the tenure boundary discards it wholesale and rebuilds from the
// new version's defaults; values are not migrated because the two layouts
// are not cell-compatible.
type ExpenseLedger struct {
	Version    SchemaVersion     `yaml:"version"`
	Categories []ExpenseCategory `yaml:"categories"`
}

// NewExpenseLedger builds a ledger from a version's defaults: labels
// populated, every value zero, overrides blank.
func NewExpenseLedger(v SchemaVersion) ExpenseLedger {
	schema := GetSchema(v)
	cats := make([]ExpenseCategory, 0, len(schema.ExpenseCategories))

	for _, cs := range schema.ExpenseCategories {
		lines := make([]ExpenseLine, 0, len(cs.Lines))

		for _, ls := range cs.Lines {
			lines = append(lines, ExpenseLine{
				Label:          ls.Label,
				DescriptorCell: ls.DescriptorCell,
				ValueCell:      ls.ValueCell,
			})
		}

		cats = append(cats, ExpenseCategory{
			Name:          cs.Name,
			Lines:         lines,
			IncrementCell: cs.IncrementCell,
		})
	}

	return ExpenseLedger{Version: v, Categories: cats}
}

func (e *ExpenseLedger) category(name string) (*ExpenseCategory, error) {
	for i := range e.Categories {
		if e.Categories[i].Name == name {
			return &e.Categories[i], nil
		}
	}

	return nil, fmt.Errorf("unknown expense category %v", name)
}

// SetValue edits one expense line's yearly amount.
func (e *ExpenseLedger) SetValue(category string, line int, value string) error {
	cat, err := e.category(category)
	if err != nil {
		return err
	}

	if line < 0 || line >= len(cat.Lines) {
		return fmt.Errorf("expense category %v has no line %v", category, line)
	}

	cat.Lines[line].Value = ParseAmount(value)

	return nil
}

// SetIncrement edits a category's percentage-increase override.
func (e *ExpenseLedger) SetIncrement(category, value string) error {
	cat, err := e.category(category)
	if err != nil {
		return err
	}

	cat.Increment = value

	return nil
}

// Total sums every line value across all categories.
func (e *ExpenseLedger) Total() float64 {
	total := 0.0

	for _, cat := range e.Categories {
		for _, line := range cat.Lines {
			total += line.Value
		}
	}

	return total
}
