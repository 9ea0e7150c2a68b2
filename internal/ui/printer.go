package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/protocol"
)

// Printer writes UI components to a writer. Commands print through it so
// tests can capture their output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintState prints a climate state panel
func (p *Printer) PrintState(s protocol.ClimateState) {
	p.Println(RenderState(s, p.width))
}

// PrintPayload prints the annotated payload table
func (p *Printer) PrintPayload(payload protocol.Payload) {
	p.Println(RenderPayload(payload, p.width))
}

// PrintSequence prints the pulse train summary
func (p *Printer) PrintSequence(seq ir.Sequence) {
	p.Println(RenderSequence(seq, p.width))
}
