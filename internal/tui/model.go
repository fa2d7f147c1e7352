package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stepperlab/internal/logger"
	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
	"github.com/alexisbeaulieu97/stepperlab/internal/tui/components"
)

// IntentMsg asks the model to dispatch an intent, as if the matching control
// had been used.
type IntentMsg struct {
	Intent stepper.Intent
}

// control identifies one row of the options panel.
type control int

const (
	controlVertical control = iota
	controlAlternativeLabel
	controlLarge
	controlAccordion
	controlFill
	controlIconSet
	controlHasContent
	controlErrored
	controlCount
)

// Appearance holds the rendering preferences shared by the interactive and
// static views.
type Appearance struct {
	ASCII       bool
	AccentColor string
	Width       int
}

// Options configures a Model.
type Options struct {
	Appearance
	Configurator *stepper.Configurator
	Logger       *logger.Logger
}

// Model contains the Bubbletea state for the stepper configurator.
type Model struct {
	configurator *stepper.Configurator
	keys         keyMap
	help         help.Model
	theme        components.Theme
	glyphs       components.Glyphs
	progress     components.Progress
	log          *logger.Logger

	focus    control
	width    int
	height   int
	notice   string
	quitting bool
}

// NewModel constructs the configurator model. A fresh Configurator is created
// when opts does not carry one.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	cfgr := opts.Configurator
	if cfgr == nil {
		cfgr = stepper.NewConfigurator(stepper.WithLogger(log))
	}
	width := opts.Width
	if width < minWidth {
		width = minWidth
	}

	glyphs := components.NewGlyphs(opts.ASCII)
	h := help.New()
	h.Width = width

	return Model{
		configurator: cfgr,
		keys:         newKeyMap(),
		help:         h,
		theme:        components.NewTheme(opts.AccentColor),
		glyphs:       glyphs,
		progress:     components.NewProgress(stepper.StepCount, glyphs),
		log:          log,
		width:        width,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Config returns the configuration currently driving the preview.
func (m Model) Config() stepper.Config {
	return m.configurator.Snapshot()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) dispatch(in stepper.Intent) {
	m.notice = ""
	m.log.Debug("control used", "intent", in.Field())
	m.configurator.Dispatch(in)
}
