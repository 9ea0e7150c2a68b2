package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/protocol"
)

func cool22(t *testing.T) protocol.Payload {
	t.Helper()
	p, err := protocol.Encode(protocol.ClimateState{
		Power:       true,
		Mode:        protocol.ModeCool,
		Temperature: 22,
		Fan:         protocol.FanMedium,
	})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return p
}

func TestDescribeByte(t *testing.T) {
	valid := cool22(t)

	badHeader := valid
	badHeader[1] = 0xCC

	badCheck := valid
	badCheck[12] = 0x00

	unknown := valid
	unknown[protocol.IndexModeTemp] = 0x64
	unknown[protocol.IndexFan] = 0x39

	off := valid
	off[protocol.IndexPower] = protocol.PowerOff

	tests := []struct {
		name    string
		payload protocol.Payload
		index   int
		want    string
	}{
		{"header", valid, 0, "header"},
		{"header mismatch", badHeader, 1, "header (expected CB)"},
		{"power on", valid, 5, "power on"},
		{"power off", off, 5, "power off"},
		{"mode temp", valid, 6, "cool, 22°C"},
		{"unknown mode", unknown, 6, "unknown mode, 22°C"},
		{"fan", valid, 7, "fan medium"},
		{"unknown fan", unknown, 7, "fan (unknown, read as auto)"},
		{"reserved", valid, 9, "reserved"},
		{"check ok", valid, 11, "~byte 5 ok"},
		{"check mismatch", badCheck, 12, "~byte 6 MISMATCH (want 9E)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeByte(tt.payload, tt.index); got != tt.want {
				t.Errorf("DescribeByte(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestRenderPayload(t *testing.T) {
	out := RenderPayload(cool22(t), 80)

	for _, want := range []string{
		"23 CB 26 21 00 40 61 35 04 00 00 BF 9E CA FB FF FF",
		"cool, 22°C",
		"fan medium",
		"~byte 10 ok",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderPayload() missing %q\n%s", want, out)
		}
	}
}

func TestRenderState(t *testing.T) {
	tests := []struct {
		name  string
		state protocol.ClimateState
		want  []string
	}{
		{
			name:  "on",
			state: protocol.ClimateState{Power: true, Mode: protocol.ModeHeat, Temperature: 27, Fan: protocol.FanHigh},
			want:  []string{"ON", "heat", "27°C", "fan high"},
		},
		{
			name:  "off",
			state: protocol.ClimateState{Mode: protocol.ModeOff, Temperature: 19},
			want:  []string{"OFF", "off", "19°C", "fan auto"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderState(tt.state, 60)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("RenderState() missing %q\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderSequence(t *testing.T) {
	seq := ir.Encode(cool22(t))
	out := RenderSequence(seq, 80)

	if !strings.Contains(out, "138 pulses") {
		t.Errorf("RenderSequence() missing pulse count\n%s", out)
	}
	if !strings.Contains(out, "+3060 -1580") {
		t.Errorf("RenderSequence() missing header pulse\n%s", out)
	}
	if !strings.Contains(out, "133 more") {
		t.Errorf("RenderSequence() missing elision\n%s", out)
	}
	if !strings.Contains(out, "+350 -0") {
		t.Errorf("RenderSequence() missing trailer\n%s", out)
	}

	short := RenderSequence(seq[:3], 80)
	if strings.Contains(short, "more") {
		t.Errorf("short sequence should not be elided\n%s", short)
	}
}

func TestResult_Render(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Frame decoded", Param{"Payload", "23 CB"}, Param{"Tolerance", "±25%"}),
			want:   []string{"SUCCESS", "Frame decoded", "Payload:", "23 CB", "Tolerance:"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Decode failed", errors.New("not a SEZ frame"), []string{"check the capture"}),
			want:   []string{"FAILED", "Decode failed", "Error: not a SEZ frame", "Troubleshooting:", "check the capture"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Config exists").AddDetail("Path", "/tmp/x"),
			want:   []string{"WARNING", "Config exists", "Path:", "/tmp/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("Render() missing %q\n%s", w, out)
				}
			}
		})
	}
}

func TestResult_DetailOrder(t *testing.T) {
	out := NewSuccessResult("ordered",
		Param{"First", "1"}, Param{"Second", "2"}, Param{"Third", "3"},
	).SetWidth(80).Render()

	first := strings.Index(out, "First")
	second := strings.Index(out, "Second")
	third := strings.Index(out, "Third")
	if first < 0 || !(first < second && second < third) {
		t.Errorf("details out of order: %d %d %d\n%s", first, second, third, out)
	}
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Encode", "sezir encode --mode cool", Param{"Mode", "cool"}).SetWidth(70).Render()

	for _, want := range []string{"ENCODE", "sezir encode --mode cool", "Mode:", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("Header.Render() missing %q\n%s", want, out)
		}
	}

	bare := NewHeader("Version", "sezir version").SetWidth(70).Render()
	if strings.Contains(bare, "Mode:") {
		t.Error("header without params should not render a params section")
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintHeader("Decode", "sezir decode")
	p.PrintPayload(cool22(t))
	p.PrintResult(NewSuccessResult("done"))

	out := buf.String()
	for _, want := range []string{"DECODE", "23 CB 26 21", "SUCCESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("Printer output missing %q", want)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := Confirm(strings.NewReader(tt.input), &out, "Overwrite config", []string{"existing file is replaced"})
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Overwrite config") {
				t.Error("Confirm() should print the title")
			}
		})
	}
}
