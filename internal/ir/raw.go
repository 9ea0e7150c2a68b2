package ir

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRaw reads a captured signal in one of the common text dump formats:
//
//	ESPHome:   [D][remote.raw:041]: Received Raw: 3060, -1580, 350, -390, ...
//	Signed:    3060 -1580 350 -390 ...
//	LIRC mode2:
//	           pulse 3060
//	           space 1580
//
// ESPHome dumps may continue over several log lines; each line contributes
// the numbers after its last colon. Lines starting with '#' are skipped, as are
// mode2 "timeout" lines.
func ParseRaw(text string) (Sequence, error) {
	var raw []int32

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "pulse", "space":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected %q followed by a duration", lineNo, fields[0])
			}
			v, err := parseMicros(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if strings.EqualFold(fields[0], "space") {
				v = -v
			}
			raw = append(raw, v)
			continue
		case "timeout":
			continue
		}

		if idx := strings.LastIndex(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}

		for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		}) {
			v, err := parseMicros(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			raw = append(raw, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("capture contains no timings")
	}

	return FromRaw(raw), nil
}

func parseMicros(tok string) (int32, error) {
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", tok, err)
	}
	return int32(v), nil
}

// FormatRaw renders a sequence as comma separated signed microseconds,
// the format ESPHome's remote_transmitter.transmit_raw accepts.
func FormatRaw(seq Sequence) string {
	raw := seq.Raw()
	parts := make([]string, len(raw))
	for i, v := range raw {
		parts[i] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(parts, ", ")
}

// FormatMode2 renders a sequence as LIRC mode2 pulse/space lines
func FormatMode2(seq Sequence) string {
	var b strings.Builder
	for _, p := range seq {
		fmt.Fprintf(&b, "pulse %d\n", p.Mark/time.Microsecond)
		if p.Space > 0 {
			fmt.Fprintf(&b, "space %d\n", p.Space/time.Microsecond)
		}
	}
	return b.String()
}
