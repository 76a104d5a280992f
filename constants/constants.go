package constants

// Asset schedule categories. These are the closed set of category names that
// the schema tables, ledger, allocations, and visitation tracker all key on.
// Anything outside this list is a typo and gets rejected at construction time.
const (
	CategoryLand      = "Land"
	CategoryBuilding  = "Building"
	CategoryMachinery = "Plant & Machinery"
	CategoryFurniture = "Furniture & Fixtures"
	CategoryVehicles  = "Vehicles"
	CategoryOther     = "Other Assets"
)

// Indirect expense categories.
const (
	ExpenseAdministrative = "Administrative"
	ExpenseSelling        = "Selling"
	ExpenseMaintenance    = "Maintenance"
)

// Editable fields on an asset schedule row.
const (
	FieldDescription = "Description"
	FieldAmount      = "Amount"
)

// Cell references for the general information section. The downstream
// spreadsheet template addresses every destination field by one of these.
const (
	CellApplicantName       = "c6"
	CellFirmName            = "c7"
	CellAddress             = "c8"
	CellConstitution        = "c9"
	CellEmail               = "c10"
	CellPhone               = "c11"
	CellCommencementMonth   = "d14" // YYYY-MM in the form, MM-01-YYYY on the wire
	CellFirstRepaymentMonth = "d15" // YYYY-MM in the form, Mon-YY on the wire
	CellLoanAmount          = "i44"
	CellTenureYears         = "i45"
	CellInterestRate        = "i46"
	CellMoratoriumMonths    = "i47"
)

// Asset schedule table columns.
const (
	ColumnRow         = "Row"
	ColumnDescription = "Description"
	ColumnAmount      = "Amount"
)

const (
	ColumnRowIndex = iota
	ColumnDescriptionIndex
	ColumnAmountIndex
)

// Review page repayment schedule columns.
const (
	ColumnDueDate   = "Due date"
	ColumnPayment   = "Payment"
	ColumnPrincipal = "Principal"
	ColumnInterest  = "Interest"
	ColumnBalance   = "Balance"
)

const ResetStyle = "[-:-:-:-]"

// Reset is the short alias used when composing themed strings.
const Reset = ResetStyle

const ConfigVersion = "1"

const (
	DefaultConfig          = "loan-wizard.yml"
	DefaultConfigParentDir = "loan-wizard-tui"
)

// All supported keyboard-bindable actions.
const (
	ActionQuit       = "quit"
	ActionSave       = "save"
	ActionUndo       = "undo"
	ActionRedo       = "redo"
	ActionAdd        = "add"
	ActionDelete     = "delete"
	ActionNextStep   = "nextstep"
	ActionPrevStep   = "prevstep"
	ActionNextTab    = "nexttab"
	ActionPrevTab    = "prevtab"
	ActionTab        = "tab"
	ActionBackTab    = "backtab"
	ActionEsc        = "esc"
	ActionGeneral    = "general"
	ActionAssets     = "assets"
	ActionExpenses   = "expenses"
	ActionReview     = "review"
	ActionSubmit     = "submit"
	ActionExport     = "export"
	ActionGlobalHelp = "help"
)

// AllActions is used for rendering the help page and for validating user
// keybinding configuration.
var AllActions = []string{
	ActionQuit,
	ActionSave,
	ActionUndo,
	ActionRedo,
	ActionAdd,
	ActionDelete,
	ActionNextStep,
	ActionPrevStep,
	ActionNextTab,
	ActionPrevTab,
	ActionTab,
	ActionBackTab,
	ActionEsc,
	ActionGeneral,
	ActionAssets,
	ActionExpenses,
	ActionReview,
	ActionSubmit,
	ActionExport,
	ActionGlobalHelp,
}

// DefaultMappings binds keys (as returned from tcell's event.Name()) to
// actions. User keybindings from the config are merged on top of these.
var DefaultMappings = map[string]string{
	"Ctrl+C":     ActionQuit,
	"Ctrl+S":     ActionSave,
	"Ctrl+Z":     ActionUndo,
	"Ctrl+Y":     ActionRedo,
	"Ctrl+A":     ActionAdd,
	"Ctrl+D":     ActionDelete,
	"Ctrl+N":     ActionNextStep,
	"Ctrl+P":     ActionPrevStep,
	"Ctrl+L":     ActionNextTab,
	"Ctrl+H":     ActionPrevTab,
	"Tab":        ActionTab,
	"Backtab":    ActionBackTab,
	"Esc":        ActionEsc,
	"F1":         ActionGeneral,
	"F2":         ActionAssets,
	"F3":         ActionExpenses,
	"F4":         ActionReview,
	"F5":         ActionSubmit,
	"F6":         ActionExport,
	"F12":        ActionGlobalHelp,
	"Ctrl+Space": ActionGlobalHelp,
}
