package main

import (
	"embed"
	"flag"
	"log"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/lib"
	m "gitea.cmcode.dev/cmcode/loan-wizard-tui/models"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/themes"
	"gitea.cmcode.dev/cmcode/loan-wizard-tui/translations"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"gopkg.in/yaml.v3"
)

//go:embed translations/*.yml
var AllTranslations embed.FS

//go:embed themes/*.yml
var AllThemes embed.FS

//go:embed example.yml
var ExampleConfig embed.FS

const (
	// PageGeneral is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PageGeneral = "General"
	// PageAssets is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PageAssets = "Assets"
	// PageExpenses is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PageExpenses = "Expenses"
	// PageReview is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PageReview = "Review"
	// PageHelp is not shown to the user ever, and is only used in the code. Its
	// primary purpose is for use in switch/case statements to determine the
	// current page.
	PageHelp = "Help"
	// PagePrompt is not shown to the user ever, and is only used in the code.
	// Its primary purpose is for use in switch/case statements to determine the
	// current page.
	PagePrompt = "Prompt"
)

// WizardSteps is the ordered list of pages that make up the application
// wizard. Step navigation (next/previous) walks this slice; the help and
// prompt pages sit outside of it.
var WizardSteps = []string{PageGeneral, PageAssets, PageExpenses, PageReview}

type LoanWizard struct {
	// The tview/tcell terminal application.
	App *tview.Application

	// The currently loaded configuration. The contents of this will be saved
	// to disk.
	Config m.Config

	// A pointer to the currently selected application draft, which is a member
	// of the currently loaded config.
	SelectedDraft *m.Draft

	// The primary primitive that the app uses as its root in the terminal.
	Layout *tview.Flex

	// Translations that are loaded at runtime.
	T map[string]string

	// The previously focused primitive.
	Previous tview.Primitive

	// The previously shown page (via the primary pages primitive).
	PrevPage string

	// The primary page-switching primitive.
	Pages *tview.Pages

	// Tracks the schema version resolved from the tenure field, and decides
	// when a tenure edit has to rebuild the asset and expense schedules.
	Schema lib.SchemaTracker

	// Tracks which asset categories the user has looked at, and which are
	// blocked on a missing loan percentage. Rebuilt whenever the selected
	// draft or the schema version changes.
	Visits *lib.VisitationTracker

	// All activated key bindings. Composed of the user's key bindings merged on
	// top of the default key bindings, as one would expect. It is
	// possible for unsupported keyboard shortcuts to be present in this map.
	//
	// usage example: KeyBindings["Ctrl+Z"] = ["undo", "save"].
	KeyBindings map[string][]string

	// All activated action bindings. Composed of the user's configured actions
	// merged on top of the default actions, as one would expect. It is
	// possible for unsupported actions to be present in this map.
	//
	// usage example: ActionBindings["save"] = ["Ctrl+S", "[gold]Ctrl+X"].
	ActionBindings map[string][]string

	// Shows the gigantic help text on the help page.
	HelpTextView *tview.TextView

	// Always shown on every page - renders the wizard steps and the keyboard
	// shortcuts for all supported pages.
	BottomPageNavText *tview.TextView

	// Contains the list of application drafts that are contained within the
	// current config. This is a list that the user can navigate and upon
	// hitting the enter key, the selected draft will be loaded into the
	// wizard.
	DraftList *tview.List

	// This is the text that is shown below the draft list, and contains
	// status and error messages, undo buffer positions, and other things.
	DraftStatusText *tview.TextView

	// The general information form on the first wizard step.
	GeneralForm *tview.Form

	// The asset category tab list on the left side of the assets page.
	AssetCategoryList *tview.List

	// The per-category asset schedule table.
	AssetsTable *tview.Table

	// The single input field below the assets table; activated when editing
	// a row's description or amount.
	AssetsInputField *tview.InputField

	// The loan allocation form for the active asset category.
	AllocationForm *tview.Form

	// This is the text that is shown below the asset category list, and
	// contains validation messages for the visitation gate.
	AssetsStatusText *tview.TextView

	// The indirect expense schedule table.
	ExpensesTable *tview.Table

	// The input field below the expenses table.
	ExpensesInputField *tview.InputField

	// The indicative repayment schedule shown on the review page.
	ReviewTable *tview.Table

	// Totals, allocation summary, and the submission readiness banner.
	ReviewSummary *tview.TextView

	// There is a hidden page that only shows a modal, typically shown
	// only for exiting or submitting.
	PromptBox *tview.Modal

	// True while a submission request is in flight. Used in async operations.
	// Use with care.
	Submitting bool

	// The undo buffer contains yaml-serialized byte slices. Each member of the
	// slice is the entire serialized yaml config at a specific point in time.
	// Moving back and forth throughout the undo buffer works as you'd expect,
	// see the undo(), redo(), and modified() functions.
	UndoBuffer [][]byte

	// The undo buffer's position is tracked globally via this variable.
	UndoBufferPos int

	// The name of the configuration file. This will get populated if set by
	// a flag at runtime, and determines the name of the file that this program
	// will save configuration changes to. The value can be an absolute or a
	// relative path. See the loadConfig function.
	FlagConfigFile string

	// If this flag is set to true, the application will only show the user the
	// keyboard keys that they press. They will of course be prompted to proceed
	// before being fully immersed into this restricted mode.
	FlagKeyboardEchoMode bool

	// Allows the colors of the application to be changed. Themes are included
	// as an embedded file when compiling, and will be parsed at runtime.
	FlagTheme string

	// All default & custom colors are stored in here at runtime. Themes can be
	// loaded via FlagTheme.
	Colors map[string]string
}

// LW contains all shared data in a global. Avoid using globals where possible,
// but in the context of an application like this, things will get extremely
// messy without a global unless I spend a ton of time cleaning up and
// refactoring.
//
//nolint:gochecknoglobals
var LW LoanWizard

// For an input keybinding (straight from event.Name()), an output action
// will be returned, for example - "Ctrl+Z" will return "undo".
func getDefaultKeybind(name string) string {
	m, ok := c.DefaultMappings[name]
	if !ok {
		return ""
	}

	return m
}

// capture is the primary input capture handler for the app, and should be used
// like: app.SetInputCapture(capture)
func capture(e *tcell.EventKey) *tcell.EventKey {
	n := e.Name()
	if LW.FlagKeyboardEchoMode {
		LW.DraftStatusText.SetDynamicColors(false).SetText(n)

		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			LW.App.Stop()
		}

		return nil
	}

	var final *tcell.EventKey
	final = e

	foundBinding := false

	for binding, actions := range LW.Config.Keybindings {
		if n != binding {
			continue
		}

		foundBinding = true

		for i := range actions {
			final = action(actions[i], final)
		}
	}

	if !foundBinding {
		// execute default action
		return action(getDefaultKeybind(n), e)
	}

	return final
}

// loadDraft points the wizard at one of the config's drafts: the schema
// tracker re-observes the draft's stored tenure, the visitation tracker is
// rebuilt, and every page re-renders from the draft's data.
func loadDraft(draft *m.Draft) {
	LW.SelectedDraft = draft

	LW.Schema = lib.SchemaTracker{}
	v, _ := LW.Schema.Observe(draft.General[c.CellTenureYears])

	// a draft saved before its first tenure edit has zero-valued schedules
	if draft.Ledger.Items == nil {
		draft.Ledger = lib.NewAssetLedger(v)
	}

	if draft.Allocations.ByCategory == nil {
		draft.Allocations = lib.NewAllocationSet(lib.AssetCategoryNames(v))
	}

	if len(draft.Expenses.Categories) == 0 {
		draft.Expenses = lib.NewExpenseLedger(v)
	}

	LW.Visits = lib.NewVisitationTracker(lib.AssetCategoryNames(v))

	populateDraftList()
	updateGeneralForm()
	populateAssetCategoryList()
	getAssetsTable()
	updateAllocationForm()
	getExpensesTable()
	updateReviewPage()
}

// bootstrap is the initialization function for the app, including initializing
// globals. This function should only ever be run once.
//
// t is the translation map, and conf is the freshly loaded config.
func bootstrap(t map[string]string, conf m.Config) {
	b, err := yaml.Marshal(conf)
	if err != nil {
		log.Fatalf("%v: %v", t["ErrorFailedToMarshalInitialConfig"], err.Error())
	}

	LW.KeyBindings = GetCombinedKeybindings(conf.Keybindings, c.DefaultMappings)
	LW.ActionBindings = GetAllBoundActions(conf.Keybindings, c.DefaultMappings)

	initializeUndo(b, conf.DisableGzipCompressionInUndoBuffer)

	LW.App = tview.NewApplication()

	LW.Pages = tview.NewPages()

	getHelpModal()

	LW.PromptBox = tview.NewModal()

	LW.Pages.AddPage(PageGeneral, getGeneralPage(), true, true).
		AddPage(PageAssets, getAssetsPage(), true, true).
		AddPage(PageExpenses, getExpensesPage(), true, true).
		AddPage(PageReview, getReviewPage(), true, true).
		AddPage(PageHelp, LW.HelpTextView, true, true).
		AddPage(PagePrompt, LW.PromptBox, true, true)

	loadDraft(LW.SelectedDraft)

	LW.Pages.SwitchToPage(PageGeneral)

	LW.BottomPageNavText = tview.NewTextView()

	LW.BottomPageNavText.SetDynamicColors(true)
	setBottomPageNavText()

	LW.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(LW.Pages, 0, 1, true).AddItem(LW.BottomPageNavText, 1, 0, false)

	LW.App.SetFocus(LW.GeneralForm)

	promptKBMode(t)

	LW.App.SetInputCapture(capture)
}

// parseFlags parses the command line flags, using t as the translation map.
func parseFlags(t map[string]string) {
	flag.StringVar(&LW.FlagConfigFile, t["FlagConfigFileFlag"], "", t["FlagConfigFileDesc"])
	flag.BoolVar(&LW.FlagKeyboardEchoMode, t["FlagKeyboardEchoModeFlag"], false, t["FlagKeyboardEchoModeDesc"])
	flag.StringVar(&LW.FlagTheme, t["FlagThemeFlag"], "", t["FlagThemeDesc"])
	flag.Parse()
}

func main() {
	var err error

	LW.T, err = translations.Load(AllTranslations)
	if err != nil {
		log.Fatalf("failed to load translations: %v", err.Error())
	}

	parseFlags(LW.T)

	LW.Config, LW.FlagConfigFile, err = loadConfig(LW.FlagConfigFile, LW.T, ExampleConfig)
	if err != nil {
		log.Fatalf("%v: %v", LW.T["ErrorFailedToLoadConfig"], err.Error())
	}

	processConfig(&LW.Config)

	theme := LW.Config.Theme
	if LW.FlagTheme != "" {
		theme = LW.FlagTheme
	}

	LW.Colors, err = themes.Load(AllThemes, theme)
	if err != nil {
		log.Fatalf("%v: %v", LW.T["ErrorFailedToLoadThemes"], err.Error())
	}

	LW.SelectedDraft = &(LW.Config.Drafts[0])

	bootstrap(LW.T, LW.Config)

	if err := LW.App.SetRoot(LW.Layout, true).EnableMouse(true).Run(); err != nil {
		panic(err)
	}
}
