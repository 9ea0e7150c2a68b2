package remote

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/muurk/sezir/internal/climate"
	"github.com/muurk/sezir/internal/climate/mocks"
	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/protocol"
)

func newTestModel(t *testing.T, start protocol.ClimateState, tx climate.Transmitter) Model {
	t.Helper()
	opts := []climate.Option{climate.WithLogger(zap.NewNop()), climate.WithTarget(start)}
	if tx != nil {
		opts = append(opts, climate.WithTransmitter(tx))
	}
	ctrl, err := climate.New(climate.DefaultTraits(), nil, opts...)
	require.NoError(t, err)
	return NewModel(context.Background(), ctrl)
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

var cool22 = protocol.ClimateState{Power: true, Mode: protocol.ModeCool, Temperature: 22, Fan: protocol.FanAuto}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, cool22, nil)

	assert.Equal(t, cool22, m.State)
	assert.Equal(t, "23 CB 26 21 00 40 61 31 04 00 00 BF 9E CE FB FF FF", m.Payload.String())
	assert.Len(t, m.Seq, ir.FrameLength)
	assert.NoError(t, m.Err)
}

func TestModel_Power(t *testing.T) {
	m := newTestModel(t, cool22, nil)

	m, _ = press(t, m, "p")
	assert.False(t, m.State.Power)
	assert.Equal(t, protocol.ModeOff, m.State.Mode)
	assert.Equal(t, protocol.PowerOff, m.Payload[protocol.IndexPower])

	m, _ = press(t, m, "p")
	assert.True(t, m.State.Power)
	assert.Equal(t, protocol.ModeCool, m.State.Mode, "last mode should be restored")
}

func TestModel_PowerOnFromOff(t *testing.T) {
	off := protocol.ClimateState{Mode: protocol.ModeOff, Temperature: 24}
	m := newTestModel(t, off, nil)

	m, _ = press(t, m, "p")
	assert.True(t, m.State.Power)
	assert.Equal(t, climate.DefaultTraits().Modes[0], m.State.Mode)
}

func TestModel_ModeCycle(t *testing.T) {
	m := newTestModel(t, cool22, nil)
	modes := climate.DefaultTraits().Modes

	for i := 1; i <= len(modes); i++ {
		m, _ = press(t, m, "m")
		assert.Equal(t, modes[i%len(modes)], m.State.Mode)
	}
}

func TestModel_ModeWhileOff(t *testing.T) {
	m := newTestModel(t, cool22, nil)

	m, _ = press(t, m, "p", "m")
	assert.Equal(t, protocol.ModeOff, m.State.Mode, "mode stays off while powered down")

	m, _ = press(t, m, "p")
	assert.Equal(t, protocol.ModeHeat, m.State.Mode)
}

func TestModel_Temperature(t *testing.T) {
	tests := []struct {
		name  string
		start int
		keys  []string
		want  int
	}{
		{"up", 22, []string{"+"}, 23},
		{"arrow up", 22, []string{"up", "up"}, 24},
		{"down", 22, []string{"-"}, 21},
		{"arrow down", 22, []string{"down"}, 21},
		{"clamp high", 29, []string{"+", "+", "+"}, 30},
		{"clamp low", 20, []string{"-", "-", "-"}, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := cool22
			start.Temperature = tt.start
			m := newTestModel(t, start, nil)

			m, _ = press(t, m, tt.keys...)
			assert.Equal(t, tt.want, m.State.Temperature)
			assert.Equal(t, byte(tt.want-protocol.TempOffset), m.Payload[protocol.IndexModeTemp]>>4)
		})
	}
}

func TestModel_Fan(t *testing.T) {
	m := newTestModel(t, cool22, nil)

	m, _ = press(t, m, "f")
	assert.Equal(t, protocol.FanLow, m.State.Fan)
	m, _ = press(t, m, "f", "f")
	assert.Equal(t, protocol.FanHigh, m.State.Fan)
	assert.Equal(t, protocol.FanCodeHigh, m.Payload[protocol.IndexFan])
	m, _ = press(t, m, "f")
	assert.Equal(t, protocol.FanAuto, m.State.Fan)
}

func TestModel_EditsUpdateController(t *testing.T) {
	tx := new(mocks.Transmitter)
	m := newTestModel(t, cool22, tx)

	m, _ = press(t, m, "+", "f")
	want := protocol.ClimateState{Power: true, Mode: protocol.ModeCool, Temperature: 23, Fan: protocol.FanLow}
	assert.Equal(t, want, m.ctrl.Target())
}

func TestModel_Send(t *testing.T) {
	tx := new(mocks.Transmitter)
	m := newTestModel(t, cool22, tx)

	heat, err := protocol.Encode(protocol.ClimateState{Power: true, Mode: protocol.ModeHeat, Temperature: 22})
	require.NoError(t, err)
	tx.On("Transmit", mock.Anything, ir.CarrierFrequency, ir.Encode(heat)).Return(nil).Once()

	m, _ = press(t, m, "m")
	m, cmd := press(t, m, "s")
	require.NotNil(t, cmd)
	assert.True(t, m.Sending)

	updated, _ := m.Update(cmd())
	m = updated.(Model)

	assert.False(t, m.Sending)
	assert.Equal(t, 1, m.Sent)
	assert.Contains(t, m.Status, "mode=heat")
	tx.AssertExpectations(t)
}

func TestModel_SendError(t *testing.T) {
	tx := new(mocks.Transmitter)
	tx.On("Transmit", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("no led"))
	m := newTestModel(t, cool22, tx)

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	assert.Equal(t, 0, m.Sent)
	require.Error(t, m.Err)
	assert.Contains(t, m.Err.Error(), "no led")
	assert.Contains(t, m.View(), "no led")
}

func TestModel_SendWithoutTransmitter(t *testing.T) {
	m := newTestModel(t, cool22, nil)

	m, cmd := press(t, m, "s")
	updated, _ := m.Update(cmd())
	m = updated.(Model)

	assert.ErrorIs(t, m.Err, climate.ErrNoTransmitter)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, cool22, nil)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, cool22, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = updated.(Model)

	view := m.View()
	for _, want := range []string{AppName, "cool", "22°C", "23 CB 26 21", "138 pulses", "power"} {
		assert.Contains(t, view, want)
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, cool22, nil)
	assert.False(t, m.Help.ShowAll)

	m, _ = press(t, m, "?")
	assert.True(t, m.Help.ShowAll)
}

func TestTextTransmitter(t *testing.T) {
	p, err := protocol.Encode(cool22)
	require.NoError(t, err)
	seq := ir.Encode(p)

	t.Run("raw", func(t *testing.T) {
		var buf bytes.Buffer
		tx, err := NewTextTransmitter(&buf, FormatRaw)
		require.NoError(t, err)

		require.NoError(t, tx.Transmit(context.Background(), ir.CarrierFrequency, seq))
		require.NoError(t, tx.Transmit(context.Background(), ir.CarrierFrequency, seq))
		assert.Equal(t, 2, tx.Frames())

		out := buf.String()
		assert.Contains(t, out, "# carrier 38000")
		assert.True(t, strings.Contains(out, "3060, -1580"))

		back, err := ir.ParseRaw(strings.SplitN(out, "\n\n", 2)[0])
		require.NoError(t, err)
		decoded, err := ir.Decode(back)
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	})

	t.Run("mode2", func(t *testing.T) {
		var buf bytes.Buffer
		tx, err := NewTextTransmitter(&buf, FormatMode2)
		require.NoError(t, err)

		require.NoError(t, tx.Transmit(context.Background(), ir.CarrierFrequency, seq))
		assert.True(t, strings.HasPrefix(buf.String(), "# carrier 38000\npulse 3060\nspace 1580\n"))
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := NewTextTransmitter(&bytes.Buffer{}, "pronto")
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		tx, err := NewTextTransmitter(&bytes.Buffer{}, FormatRaw)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, tx.Transmit(ctx, ir.CarrierFrequency, seq), context.Canceled)
		assert.Equal(t, 0, tx.Frames())
	})
}
