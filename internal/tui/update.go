package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stepperlab/internal/stepper"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, minWidth)
		m.height = msg.Height
		m.help.Width = m.width
		return m, nil
	case IntentMsg:
		if msg.Intent != nil {
			m.dispatch(msg.Intent)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus + controlCount - 1) % controlCount
	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % controlCount
	case key.Matches(msg, m.keys.Toggle):
		m.toggle()
	case key.Matches(msg, m.keys.Previous):
		m.navigate(stepper.ActionPrevious)
	case key.Matches(msg, m.keys.Next):
		m.navigate(stepper.ActionNext)
	case key.Matches(msg, m.keys.Reset):
		if m.configurator.Controls().ShowReset {
			m.dispatch(stepper.Reset{})
		}
	}
	return m, nil
}

// toggle flips the focused control.
func (m *Model) toggle() {
	cfg := m.configurator.Snapshot()
	switch m.focus {
	case controlVertical:
		m.dispatch(stepper.SetVertical{Value: !cfg.Vertical()})
	case controlAlternativeLabel:
		m.dispatch(stepper.SetAlternativeLabel{Value: !cfg.AlternativeLabel})
	case controlLarge:
		m.dispatch(stepper.SetLarge{Value: !cfg.Large})
	case controlAccordion:
		m.dispatch(stepper.SetAccordion{Value: !cfg.Accordion})
	case controlFill:
		if !stepper.ResolveControls(cfg).FillEnabled {
			m.notice = "Fill is managed by Accordion while it is on"
			return
		}
		m.dispatch(stepper.SetFill{Value: !cfg.Fill})
	case controlIconSet:
		m.dispatch(stepper.SetIconSet{Set: stepper.NextIconSet(cfg.IconSet)})
	case controlHasContent:
		m.dispatch(stepper.SetHasContent{Value: !cfg.HasContent})
	case controlErrored:
		m.dispatch(stepper.SetErrored{Value: !cfg.ErroredStepTwo})
	}
}

// navigate moves the cursor with the outer bar when it is shown, otherwise
// with the active step's own buttons.
func (m *Model) navigate(direction stepper.Action) {
	cfg := m.configurator.Snapshot()
	controls := stepper.ResolveControls(cfg)

	if controls.ShowNavigation {
		switch {
		case direction == stepper.ActionPrevious && controls.PreviousEnabled:
			m.dispatch(stepper.Previous{})
		case direction != stepper.ActionPrevious && controls.NextEnabled:
			m.dispatch(stepper.Next{})
		}
		return
	}

	for _, action := range stepper.ActiveActions(cfg) {
		forward := action != stepper.ActionPrevious
		if forward == (direction != stepper.ActionPrevious) {
			m.dispatch(action.Intent())
			return
		}
	}
}
