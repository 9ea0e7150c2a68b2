package remote

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/muurk/sezir/internal/ir"
)

// Output formats understood by TextTransmitter
const (
	FormatRaw   = "raw"
	FormatMode2 = "mode2"
)

// TextTransmitter implements climate.Transmitter by writing each frame as
// text, one frame per block, for replay with ESPHome or LIRC tooling.
type TextTransmitter struct {
	mu     sync.Mutex
	w      io.Writer
	format string
	frames int
}

// NewTextTransmitter returns a transmitter writing to w in the given format
func NewTextTransmitter(w io.Writer, format string) (*TextTransmitter, error) {
	switch format {
	case FormatRaw, FormatMode2:
	default:
		return nil, fmt.Errorf("unknown output format %q (expected %s or %s)", format, FormatRaw, FormatMode2)
	}
	return &TextTransmitter{w: w, format: format}, nil
}

// Transmit writes one frame
func (t *TextTransmitter) Transmit(ctx context.Context, carrierHz int, seq ir.Sequence) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var text string
	switch t.format {
	case FormatMode2:
		text = fmt.Sprintf("# carrier %d\n%s\n", carrierHz, ir.FormatMode2(seq))
	default:
		text = fmt.Sprintf("# carrier %d\n%s\n\n", carrierHz, ir.FormatRaw(seq))
	}

	if _, err := io.WriteString(t.w, text); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	t.frames++
	return nil
}

// Frames returns how many frames were written
func (t *TextTransmitter) Frames() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}
