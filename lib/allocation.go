package lib

import "fmt"

// LoanAllocation is the percentage/amount pair describing how much of one
// category's total the loan finances. Both fields are kept as form strings:
// an empty amount means "no basis to compute", which is not the same thing
// as a computed zero, and the distinction must survive round trips.
type LoanAllocation struct {
	Percentage string `yaml:"percentage"`
	Amount     string `yaml:"amount"`
}

// Defined reports whether the percentage is a positive, usable number. A
// blank, unparseable, or zero percentage leaves a populated category blocked.
func (a LoanAllocation) Defined() bool {
	p, ok := ParsePercentage(a.Percentage)

	return ok && p > 0
}

// AllocationSet holds one LoanAllocation per asset category. Allocations are
// never trusted independently; they are recomputed against the category
// total on every edit of either side and on every ledger change.
type AllocationSet struct {
	ByCategory map[string]LoanAllocation `yaml:"byCategory"`
}

// NewAllocationSet initializes an empty allocation per category.
func NewAllocationSet(categories []string) AllocationSet {
	byCat := make(map[string]LoanAllocation, len(categories))

	for _, name := range categories {
		byCat[name] = LoanAllocation{Percentage: "", Amount: ""}
	}

	return AllocationSet{ByCategory: byCat}
}

// Get returns the allocation for a category.
func (s *AllocationSet) Get(category string) LoanAllocation {
	return s.ByCategory[category]
}

func (s *AllocationSet) put(category string, a LoanAllocation) error {
	if _, ok := s.ByCategory[category]; !ok {
		return fmt.Errorf("unknown allocation category %v", category)
	}

	s.ByCategory[category] = a

	return nil
}

// SetPercentage applies a percentage edit: the amount becomes
// round2(total * clamp(pct,0,100) / 100). With a zero total there is nothing
// to take a percentage of, so the amount becomes empty rather than zero.
// Clearing the field clears both sides. Idempotent for a given total.
func (s *AllocationSet) SetPercentage(category, pct string, total float64) error {
	if pct == "" {
		return s.put(category, LoanAllocation{Percentage: "", Amount: ""})
	}

	p, ok := ParsePercentage(pct)
	if !ok {
		// keep the raw text so the user sees what they typed; no amount can
		// be derived from it
		return s.put(category, LoanAllocation{Percentage: pct, Amount: ""})
	}

	a := LoanAllocation{Percentage: FormatNumber(p)}

	if total > 0 {
		a.Amount = FormatNumber(Round2(total * p / 100))
	} else {
		a.Amount = ""
	}

	return s.put(category, a)
}

// SetAmount applies an amount edit. With a positive total the stored amount
// is clamped to the total and the percentage re-derived; with a zero total
// the amount is stored verbatim and the percentage left alone. Clearing the
// field empties the amount and sets the percentage to exactly 0.
func (s *AllocationSet) SetAmount(category, amt string, total float64) error {
	if amt == "" {
		return s.put(category, LoanAllocation{Percentage: "0", Amount: ""})
	}

	if total <= 0 {
		prior := s.Get(category)

		return s.put(category, LoanAllocation{Percentage: prior.Percentage, Amount: amt})
	}

	v := ParseAmount(amt)
	if v > total {
		v = total
	}

	return s.put(category, LoanAllocation{
		Percentage: FormatNumber(Round2(Clamp(v/total*100, 0, 100))),
		Amount:     FormatNumber(v),
	})
}

// Reconcile re-derives a category's amount after its underlying total
// changed, holding the percentage fixed. Ledger edits call this so the pair
// never drifts apart.
func (s *AllocationSet) Reconcile(category string, total float64) error {
	a := s.Get(category)
	if a.Percentage == "" {
		return nil
	}

	return s.SetPercentage(category, a.Percentage, total)
}

// Percentages projects the set down to category → percentage, the sibling
// representation the report service validates against.
func (s *AllocationSet) Percentages() map[string]string {
	out := make(map[string]string, len(s.ByCategory))

	for name, a := range s.ByCategory {
		out[name] = a.Percentage
	}

	return out
}
