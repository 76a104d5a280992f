package models

import (
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"
)

// Draft is one in-progress loan application. The contents of this will be
// saved to disk as part of the config.
type Draft struct {
	Name        string            `yaml:"name"`
	ID          string            `yaml:"id"`
	Modified    bool              `yaml:"-"`
	General     map[string]string `yaml:"general"`
	Ledger      lib.AssetLedger   `yaml:"ledger"`
	Allocations lib.AllocationSet `yaml:"allocations"`
	Expenses    lib.ExpenseLedger `yaml:"expenses"`
	SelectedRow int               `yaml:"selectedRow"`
}

type Config struct {
	Keybindings map[string][]string `yaml:"keybindings"`
	Drafts      []Draft             `yaml:"drafts"`
	Version     string              `yaml:"version"`
	Theme       string              `yaml:"theme"`
	// where the flat cell payload is POSTed on final submission
	ReportServiceURL string `yaml:"reportServiceURL"`
	// how long a submission may take before it is abandoned; there is no
	// automatic retry, the user resubmits manually
	SubmitTimeoutSeconds int `yaml:"submitTimeoutSeconds"`
	UndoBufferMaxLength  int `yaml:"undoBufferMaxLength"`
	// to save on memory, each time a change is made, a copy of the config is
	// added to the undo buffer, which can add up over time. If you're on a
	// system that struggles with gzip somehow, you can disable this feature
	// here at the cost of using more memory.
	DisableGzipCompressionInUndoBuffer bool `yaml:"disableGzipCompressionInUndoBuffer"`
}

type TableCell struct {
	Color  string
	Text   string
	Expand int
	Align  int
}
