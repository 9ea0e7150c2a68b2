package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/protocol"
)

// ModeColor returns the accent color for a mode
func ModeColor(m protocol.Mode) lipgloss.Color {
	switch m {
	case protocol.ModeCool, protocol.ModeDry:
		return CoolColor
	case protocol.ModeHeat:
		return HeatColor
	case protocol.ModeOff:
		return MutedColor
	default:
		return PrimaryColor
	}
}

// StateLine renders a state on one line, e.g. "ON  cool  22°C  fan auto"
func StateLine(s protocol.ClimateState) string {
	power := PowerOffStyle.Render("OFF")
	if s.Power {
		power = PowerOnStyle.Render("ON ")
	}
	mode := lipgloss.NewStyle().Foreground(ModeColor(s.Mode)).Bold(true).Render(s.Mode.String())
	temp := TemperatureStyle.Render(fmt.Sprintf("%d°C", s.Temperature))
	return fmt.Sprintf("%s  %s  %s  fan %s", power, mode, temp, s.Fan)
}

// RenderState renders a climate state as a small panel
func RenderState(s protocol.ClimateState, width int) string {
	width = clampWidth(width)

	power := "off"
	if s.Power {
		power = "on"
	}

	rows := []Param{
		{"Power", power},
		{"Mode", s.Mode.String()},
		{"Temperature", fmt.Sprintf("%d°C", s.Temperature)},
		{"Fan", s.Fan.String()},
	}

	lines := []string{StateLine(s), ""}
	for _, r := range rows {
		lines = append(lines, ResultKeyStyle.Render(r.Key+":")+" "+ResultValueStyle.Render(r.Value))
	}

	return PanelStyle(width).Render(strings.Join(lines, "\n"))
}

// DescribeByte explains what byte i of a payload carries. It works on
// payloads that fail validation so broken captures can be inspected.
func DescribeByte(p protocol.Payload, i int) string {
	b := p[i]
	switch {
	case i < len(protocol.Header):
		if b != protocol.Header[i] {
			return fmt.Sprintf("header (expected %02X)", protocol.Header[i])
		}
		return "header"

	case i == protocol.IndexPower:
		switch b {
		case protocol.PowerOn:
			return "power on"
		case protocol.PowerOff:
			return "power off"
		default:
			return "power (unknown)"
		}

	case i == protocol.IndexModeTemp:
		temp := int(b>>4) + protocol.TempOffset
		mode := "unknown mode"
		if m, ok := protocol.ModeFromCode(b & 0x0F); ok {
			mode = m.String()
		}
		return fmt.Sprintf("%s, %d°C", mode, temp)

	case i == protocol.IndexFan:
		if f, ok := protocol.FanFromCode(b); ok {
			return "fan " + f.String()
		}
		return "fan (unknown, read as auto)"

	case i < protocol.IndexInverse:
		return "reserved"

	default:
		src := i - protocol.IndexInverse + protocol.IndexPower
		if b == ^p[src] {
			return fmt.Sprintf("~byte %d ok", src)
		}
		return fmt.Sprintf("~byte %d MISMATCH (want %02X)", src, ^p[src])
	}
}

// RenderPayload renders an annotated byte table of a payload
func RenderPayload(p protocol.Payload, width int) string {
	width = clampWidth(width)

	lines := make([]string, 0, protocol.PayloadSize+2)
	lines = append(lines, p.String(), "")

	for i, b := range p {
		style := ByteFieldStyle
		switch {
		case i < len(protocol.Header):
			style = ByteHeaderStyle
		case i >= protocol.IndexInverse:
			style = ByteCheckStyle
		case i > protocol.IndexFan:
			style = ByteHeaderStyle
		}

		lines = append(lines, ByteIndexStyle.Render(fmt.Sprintf("%2d", i))+
			style.Render(fmt.Sprintf("%02X", b))+
			ByteNoteStyle.Render(DescribeByte(p, i)))
	}

	return PanelStyle(width).Render(strings.Join(lines, "\n"))
}

// SequenceSummary describes a pulse train in one line
func SequenceSummary(seq ir.Sequence) string {
	return fmt.Sprintf("%d pulses, %s at %d kHz",
		len(seq), seq.Duration().Round(time.Microsecond), ir.CarrierFrequency/1000)
}

// RenderSequence renders a pulse train summary with the first few pulses
func RenderSequence(seq ir.Sequence, width int) string {
	width = clampWidth(width)

	const preview = 4
	pulseLine := func(i int) string {
		return ByteIndexStyle.Render(fmt.Sprintf("%3d", i)) + " " + seq[i].String()
	}

	lines := []string{SequenceSummary(seq), ""}
	if len(seq) <= preview+1 {
		for i := range seq {
			lines = append(lines, pulseLine(i))
		}
	} else {
		for i := 0; i < preview; i++ {
			lines = append(lines, pulseLine(i))
		}
		lines = append(lines, ByteNoteStyle.Render(fmt.Sprintf("    ... %d more", len(seq)-preview-1)))
		lines = append(lines, pulseLine(len(seq)-1))
	}

	return PanelStyle(width).Render(strings.Join(lines, "\n"))
}
