package lib

import "errors"

// ErrMissingAllocation is returned when the user tries to leave a populated
// category whose loan percentage is unset or zero. The switch is refused and
// the category blocked until a value is supplied.
var ErrMissingAllocation = errors.New("category has items but no loan percentage")

// CategoryStatus is the visitation state of one asset category.
type CategoryStatus int

const (
	StatusUnvisited CategoryStatus = iota
	StatusVisited
	StatusBlocked
)

func (s CategoryStatus) String() string {
	switch s {
	case StatusVisited:
		return "visited"
	case StatusBlocked:
		return "blocked"
	default:
		return "unvisited"
	}
}

// VisitationTracker records which categories the user has looked at and
// which are blocked on a missing allocation. The wizard may not advance past
// the asset step until every category has been visited and every populated
// category carries a positive percentage.
type VisitationTracker struct {
	Categories []string
	Status     []CategoryStatus
	Errors     map[string]string
	Active     int
}

// NewVisitationTracker starts with the first category active and visited,
// everything else unvisited.
func NewVisitationTracker(categories []string) *VisitationTracker {
	status := make([]CategoryStatus, len(categories))
	if len(status) > 0 {
		status[0] = StatusVisited
	}

	return &VisitationTracker{
		Categories: categories,
		Status:     status,
		Errors:     map[string]string{},
		Active:     0,
	}
}

// ActiveCategory returns the name of the category currently shown.
func (t *VisitationTracker) ActiveCategory() string {
	if t.Active < 0 || t.Active >= len(t.Categories) {
		return ""
	}

	return t.Categories[t.Active]
}

// SwitchTo attempts to change the active category. Leaving a category that
// has items but no positive percentage is refused: the source category
// becomes blocked with a message attached, and the active index does not
// move. A successful switch marks both source and destination visited.
func (t *VisitationTracker) SwitchTo(dest int, ledger *AssetLedger, allocs *AllocationSet, msg string) error {
	if dest < 0 || dest >= len(t.Categories) {
		return errors.New("no such category")
	}

	cur := t.ActiveCategory()

	if ledger.HasItems(cur) && !allocs.Get(cur).Defined() {
		t.Status[t.Active] = StatusBlocked
		t.Errors[cur] = msg

		return ErrMissingAllocation
	}

	t.Status[t.Active] = StatusVisited
	delete(t.Errors, cur)

	t.Active = dest
	t.Status[dest] = StatusVisited

	return nil
}

// Unblock clears a block after the user supplies an allocation, without
// moving the active category.
func (t *VisitationTracker) Unblock(ledger *AssetLedger, allocs *AllocationSet) {
	cur := t.ActiveCategory()

	if t.Status[t.Active] == StatusBlocked &&
		(!ledger.HasItems(cur) || allocs.Get(cur).Defined()) {
		t.Status[t.Active] = StatusVisited
		delete(t.Errors, cur)
	}
}

// VisitedCount returns how many categories have been seen at least once;
// blocked categories have necessarily been seen.
func (t *VisitationTracker) VisitedCount() int {
	n := 0

	for _, s := range t.Status {
		if s != StatusUnvisited {
			n++
		}
	}

	return n
}

// CanAdvance is the step-level gate: every category visited, and every
// populated category carrying a positive, defined percentage. The wizard
// re-evaluates it on every relevant edit, not just when the user presses
// next.
func (t *VisitationTracker) CanAdvance(ledger *AssetLedger, allocs *AllocationSet) bool {
	if t.VisitedCount() != len(t.Categories) {
		return false
	}

	for _, name := range ledger.PopulatedCategories() {
		if !allocs.Get(name).Defined() {
			return false
		}
	}

	return true
}
