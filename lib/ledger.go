package lib

import (
	"errors"
	"fmt"
	"sort"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
)

// ErrCapacityExceeded is returned when a category's fixed row range is full.
// The attempted add does not mutate any state.
var ErrCapacityExceeded = errors.New("asset category is at capacity")

// AssetItem is one line of an asset category's schedule, bound to a specific
// template row. An item exists while it has a non-empty description or a
// non-zero amount; clearing both destroys it.
type AssetItem struct {
	Row         int     `yaml:"row"`
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
}

// Empty reports whether the item carries no data at all.
func (it AssetItem) Empty() bool {
	return it.Description == "" && it.Amount == 0
}

// AssetLedger owns the per-category line items of one application, using the
// row ranges of a single schema version. Switching versions means building a
// fresh ledger; rows are never migrated between layouts.
type AssetLedger struct {
	Version SchemaVersion          `yaml:"version"`
	Items   map[string][]AssetItem `yaml:"items"`
}

// NewAssetLedger returns an empty ledger for the given schema version.
func NewAssetLedger(v SchemaVersion) AssetLedger {
	items := make(map[string][]AssetItem)

	for _, name := range AssetCategoryNames(v) {
		items[name] = []AssetItem{}
	}

	return AssetLedger{Version: v, Items: items}
}

func (l *AssetLedger) rows(category string) ([]AssetItem, error) {
	items, ok := l.Items[category]
	if !ok {
		return nil, fmt.Errorf("unknown asset category %v", category)
	}

	return items, nil
}

// Rows returns every open row of a category in row order, including rows the
// user has added but not yet filled in.
func (l *AssetLedger) Rows(category string) []AssetItem {
	items, err := l.rows(category)
	if err != nil {
		return nil
	}

	out := make([]AssetItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i].Row < out[j].Row })

	return out
}

// ListItems returns only the populated rows of a category, in row order.
func (l *AssetLedger) ListItems(category string) []AssetItem {
	out := []AssetItem{}

	for _, it := range l.Rows(category) {
		if !it.Empty() {
			out = append(out, it)
		}
	}

	return out
}

// AddItem opens a new empty row at the first free row within the category's
// range. Fails with ErrCapacityExceeded once every row is taken, leaving the
// existing items unchanged.
func (l *AssetLedger) AddItem(category string) (int, error) {
	items, err := l.rows(category)
	if err != nil {
		return 0, err
	}

	cat, err := AssetCategory(l.Version, category)
	if err != nil {
		return 0, err
	}

	if len(items) >= cat.MaxItems() {
		return 0, ErrCapacityExceeded
	}

	used := make(map[int]bool, len(items))
	for _, it := range items {
		used[it.Row] = true
	}

	for row := cat.RowStart; row <= cat.RowEnd; row++ {
		if used[row] {
			continue
		}

		l.Items[category] = append(items, AssetItem{Row: row})

		return row, nil
	}

	return 0, ErrCapacityExceeded
}

// UpdateItem edits one field of the item at the given row. Unknown rows are
// rejected; amounts are parsed leniently the same way the form fields are.
func (l *AssetLedger) UpdateItem(category string, row int, field, value string) error {
	items, err := l.rows(category)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].Row != row {
			continue
		}

		switch field {
		case c.FieldDescription:
			items[i].Description = value
		case c.FieldAmount:
			items[i].Amount = ParseAmount(value)
		default:
			return fmt.Errorf("unknown asset item field %v", field)
		}

		return nil
	}

	return fmt.Errorf("no open row %v in category %v", row, category)
}

// RemoveItem clears both cells at the given row, destroying the item.
func (l *AssetLedger) RemoveItem(category string, row int) error {
	items, err := l.rows(category)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].Row != row {
			continue
		}

		l.Items[category] = append(items[:i], items[i+1:]...)

		return nil
	}

	return fmt.Errorf("no open row %v in category %v", row, category)
}

// Total is the category's running total: the sum of every populated item's
// amount. The allocation calculator derives from this on every edit.
func (l *AssetLedger) Total(category string) float64 {
	total := 0.0

	for _, it := range l.ListItems(category) {
		total += it.Amount
	}

	return total
}

// HasItems reports whether a category holds at least one populated item.
// This membership is what the allocation validation gate reads.
func (l *AssetLedger) HasItems(category string) bool {
	return len(l.ListItems(category)) > 0
}

// PopulatedCategories returns the names of all categories with at least one
// populated item, in schema table order.
func (l *AssetLedger) PopulatedCategories() []string {
	out := []string{}

	for _, name := range AssetCategoryNames(l.Version) {
		if l.HasItems(name) {
			out = append(out, name)
		}
	}

	return out
}
