package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/sezir/internal/climate"
	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/protocol"
	"github.com/muurk/sezir/internal/ui"
)

// sentMsg reports the outcome of a TransmitState call
type sentMsg struct {
	state protocol.ClimateState
	err   error
}

// Model is a virtual remote for one SEZ unit. Every button press updates the
// controller's target and re-encodes the frame; send hands the frame to the
// controller's transmitter.
type Model struct {
	ctx  context.Context
	ctrl *climate.Controller

	// Draft state shown on the remote
	State    protocol.ClimateState
	lastMode protocol.Mode // restored when powering back on

	Payload protocol.Payload
	Seq     ir.Sequence

	Sent    int
	Sending bool
	Status  string
	Err     error

	Width  int
	Height int

	Help help.Model
	Keys keyMap

	quitting bool
}

// NewModel creates a remote starting from the controller's current target
func NewModel(ctx context.Context, ctrl *climate.Controller) Model {
	state := ctrl.Target()

	lastMode := state.Mode
	if lastMode == protocol.ModeOff {
		lastMode = ctrl.Traits().Modes[0]
	}

	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		State:    state,
		lastMode: lastMode,
		Width:    ui.MinTerminalWidth,
		Help:     help.New(),
		Keys:     newKeyMap(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case sentMsg:
		m.Sending = false
		if msg.err != nil {
			m.Err = msg.err
			m.Status = ""
			return m, nil
		}
		m.Sent++
		m.Err = nil
		m.Status = fmt.Sprintf("Sent %s", msg.state)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	traits := m.ctrl.Traits()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Send):
		if m.Sending {
			return m, nil
		}
		m.Sending = true
		m.Status = "Sending..."
		return m, m.send()

	case key.Matches(msg, m.Keys.Power):
		m.State.Power = !m.State.Power
		if m.State.Power {
			m.State.Mode = m.lastMode
		} else {
			m.lastMode = m.State.Mode
			m.State.Mode = protocol.ModeOff
		}

	case key.Matches(msg, m.Keys.Mode):
		m.lastMode = next(traits.Modes, m.lastMode)
		if m.State.Power {
			m.State.Mode = m.lastMode
		}

	case key.Matches(msg, m.Keys.TempUp):
		m.State.Temperature = traits.ClampTemperature(m.State.Temperature + traits.TemperatureStep)

	case key.Matches(msg, m.Keys.TempDown):
		m.State.Temperature = traits.ClampTemperature(m.State.Temperature - traits.TemperatureStep)

	case key.Matches(msg, m.Keys.Fan):
		m.State.Fan = next(traits.FanSpeeds, m.State.Fan)

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// refresh pushes the draft to the controller and re-encodes it
func (m *Model) refresh() {
	if err := m.ctrl.SetTarget(m.State); err != nil {
		m.Err = err
		return
	}

	payload, seq, err := m.ctrl.Frame(m.State)
	if err != nil {
		m.Err = err
		return
	}
	m.Payload = payload
	m.Seq = seq
	m.Err = nil
}

// send transmits the controller's target off the UI goroutine
func (m Model) send() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		state := ctrl.Target()
		return sentMsg{state: state, err: ctrl.TransmitState(ctx)}
	}
}

// next returns the element after cur in list, wrapping around
func next[T comparable](list []T, cur T) T {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.Width
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}

	var b strings.Builder

	b.WriteString(ui.StateLine(m.State))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Payload"))
	b.WriteString("\n")
	b.WriteString(PayloadStyle.Render(m.Payload.String()))
	b.WriteString("\n\n")

	b.WriteString(LabelStyle.Render("Signal"))
	b.WriteString("\n")
	b.WriteString(ui.SequenceSummary(m.Seq))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(ui.ErrorMessageStyle.Render("Error: " + m.Err.Error()))
	case m.Status != "":
		b.WriteString(StatusStyle.Render(m.Status))
	}
	if m.Sent > 0 {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%d frame(s) sent", m.Sent)))
	}

	return RenderContainer(b.String(), m.Help.View(m.Keys), width)
}
