// Package format renders instants with strftime-style token patterns.
// Patterns are translated to Go reference layouts, so a pattern is valid
// exactly when every %-token has a Go equivalent.
package format

import (
	"errors"
	"fmt"
	"strings"

	"tripclock/internal/timezone"
)

// ErrInvalidPattern marks patterns containing tokens the renderer does not
// support, or no pattern at all.
var ErrInvalidPattern = errors.New("unsupported format pattern")

//nolint:gochecknoglobals // token table is fixed
var layouts = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'd': "02",
	'e': "_2",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'j': "002",
	'F': "2006-01-02",
	'R': "15:04",
	'T': "15:04:05",
}

// Translate converts a strftime-style pattern into a Go time layout.
func Translate(pattern string) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("format: empty pattern: %w", ErrInvalidPattern)
	}

	var layout strings.Builder

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			layout.WriteByte(pattern[i])
			continue
		}

		if i+1 >= len(pattern) {
			return "", fmt.Errorf("format: dangling %% at end of pattern: %w", ErrInvalidPattern)
		}

		i++
		if pattern[i] == '%' {
			layout.WriteByte('%')
			continue
		}

		goLayout, ok := layouts[pattern[i]]

		if !ok {
			return "", fmt.Errorf("format: unsupported token %%%c: %w", pattern[i], ErrInvalidPattern)
		}

		layout.WriteString(goLayout)
	}

	return layout.String(), nil
}

// Render formats instant using a strftime-style pattern.
func Render(instant timezone.Instant, pattern string) (string, error) {
	if !instant.IsZoned() {
		return "", fmt.Errorf("format: cannot render: %w", timezone.ErrNaiveInstant)
	}

	layout, err := Translate(pattern)

	if err != nil {
		return "", err
	}

	return instant.Time().Format(layout), nil
}
