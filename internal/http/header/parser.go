package header

import (
	"errors"
	"fmt"
	"strings"
)

const Separator = ": "

var ErrMalformedLine = errors.New("malformed header line")

// ParseLine splits a header line on the first ": ". Neither side is trimmed.
func ParseLine(line string) (key, value string, err error) {
	key, value, ok := strings.Cut(line, Separator)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return key, value, nil
}

// Parse builds Headers from lines up to, but not including, the first empty
// line. It returns the number of lines consumed, the empty line included when
// present.
func Parse(lines []string) (*Headers, int, error) {
	h := New()
	for i, line := range lines {
		if line == "" {
			return h, i + 1, nil
		}
		key, value, err := ParseLine(line)
		if err != nil {
			return nil, 0, err
		}
		h.Set(key, value)
	}
	return h, len(lines), nil
}
