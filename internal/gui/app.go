package gui

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/snonux/flashcards/internal"
	"codeberg.org/snonux/flashcards/internal/anki"
	"codeberg.org/snonux/flashcards/internal/deck"
	"codeberg.org/snonux/flashcards/internal/nav"
)

// ShareURL is the fixed link offered by the share button on the set list.
const ShareURL = "https://developer.apple.com/xcode/swiftui"

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// Set list surface
	listView   fyne.CanvasObject
	setList    *widget.List
	listEmpty  *widget.Label
	addSetBtn  *ttwidget.Button
	shareBtn   *ttwidget.Button
	listHeader *widget.Label

	// Set detail surface
	detailView    fyne.CanvasObject
	titleLabel    *widget.Label
	cardFace      *CardFace
	positionLabel *widget.Label
	emptyView     fyne.CanvasObject
	browser       fyne.CanvasObject
	backBtn       *ttwidget.Button
	prevBtn       *ttwidget.Button
	nextBtn       *ttwidget.Button
	addCardBtn    *ttwidget.Button
	emptyAddBtn   *widget.Button
	exportBtn     *ttwidget.Button

	// Forms
	formDialog      dialog.Dialog
	nameEntry       *CustomEntry
	termEntry       *CustomEntry
	definitionEntry *CustomMultiLineEntry

	statusLabel *widget.Label
	content     *fyne.Container

	// State management
	machine *nav.Machine
	config  *Config
	logger  *slog.Logger
}

// Config holds GUI application configuration
type Config struct {
	Width        float32
	Height       float32
	ExportDir    string
	ExportFormat anki.Format
}

// DefaultConfig returns default GUI configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Width:        420,
		Height:       640,
		ExportDir:    filepath.Join(homeDir, "Downloads"),
		ExportFormat: anki.FormatAPKG,
	}
}

func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Width <= 0 {
		out.Width = defaults.Width
	}
	if out.Height <= 0 {
		out.Height = defaults.Height
	}
	if out.ExportDir == "" {
		out.ExportDir = defaults.ExportDir
	}
	if out.ExportFormat == "" {
		out.ExportFormat = defaults.ExportFormat
	}
	return &out
}

// New creates a new GUI application over store. A nil store starts empty.
func New(config *Config, store *deck.Store, logger *slog.Logger) *Application {
	myApp := app.NewWithID("org.codeberg.snonux.flashcards")
	myApp.SetIcon(GetAppIcon())
	return newApplication(myApp, config, store, logger)
}

func newApplication(fyneApp fyne.App, config *Config, store *deck.Store, logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &Application{
		app:     fyneApp,
		config:  config.withDefaults(),
		logger:  logger,
		machine: nav.New(store, logger),
	}

	a.setupUI()
	a.machine.Subscribe(a.render)
	a.render(a.machine.State())

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Flashcards v%s", internal.Version))
	a.window.SetIcon(GetAppIcon())
	a.window.Resize(fyne.NewSize(a.config.Width, a.config.Height))

	a.listView = a.buildSetList()
	a.detailView = a.buildDetail()

	a.statusLabel = widget.NewLabel("Ready")
	a.statusLabel.Truncation = fyne.TextTruncateEllipsis

	a.content = container.NewStack(a.listView)
	root := container.NewBorder(nil, a.statusLabel, nil, nil, a.content)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(root, a.window.Canvas()))
	a.setupTooltips()

	a.setupKeyboardShortcuts()
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// Machine exposes the state machine driving the window.
func (a *Application) Machine() *nav.Machine {
	return a.machine
}

// render redraws the window for state.
func (a *Application) render(state nav.State) {
	switch state.Screen {
	case nav.ScreenSetList:
		a.closeForm()
		a.showView(a.listView)
		a.refreshSetList()
	case nav.ScreenSetDetail:
		a.closeForm()
		a.showView(a.detailView)
		a.refreshDetail()
	case nav.ScreenAddSet:
		a.showAddSetForm()
	case nav.ScreenAddCard:
		a.showAddCardForm()
	}
}

func (a *Application) showView(view fyne.CanvasObject) {
	if len(a.content.Objects) == 1 && a.content.Objects[0] == view {
		return
	}
	a.content.Objects = []fyne.CanvasObject{view}
	a.content.Refresh()
}

func (a *Application) setupTooltips() {
	a.addSetBtn.SetToolTip("Add flashcard set (a)")
	a.shareBtn.SetToolTip("Share link")
	a.backBtn.SetToolTip("Back to sets (Esc)")
	a.prevBtn.SetToolTip("Previous card (←)")
	a.nextBtn.SetToolTip("Next card (→)")
	a.addCardBtn.SetToolTip("Add flashcard (a)")
	a.exportBtn.SetToolTip("Export to Anki (x)")
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	a.logger.Error("action failed", "err", err)
	a.updateStatus("Error: " + err.Error())
	dialog.ShowError(err, a.window)
}

// onShare opens the fixed share link and copies it to the clipboard.
func (a *Application) onShare() {
	u, err := url.Parse(ShareURL)
	if err != nil {
		a.showError(err)
		return
	}
	a.app.Clipboard().SetContent(ShareURL)
	if err := a.app.OpenURL(u); err != nil {
		a.logger.Warn("open share link", "url", ShareURL, "err", err)
	}
	a.updateStatus("Link copied: " + ShareURL)
}
