package format

import (
	"fmt"
	"sort"

	"tripclock/internal/timezone"
)

const PresetUS = "US"
const PresetUK = "UK"

// PatternDisplay is the plain labeled-output pattern used by the CLI,
// e.g. "2025-03-19 18:30:00 UTC".
const PatternDisplay = "%F %T %Z"

// Formatter resolves named presets to patterns before rendering. Presets
// are plain configuration data, so new regional styles need no code change.
type Formatter struct {
	presets map[string]string
}

func NewFormatter(presets map[string]string) *Formatter {
	merged := map[string]string{
		PresetUS: "%B %d, %Y %H:%M %Z",
		PresetUK: "%d %B %Y %H:%M %Z",
	}

	for name, pattern := range presets {
		merged[name] = pattern
	}

	return &Formatter{presets: merged}
}

// Resolve maps a preset name to its pattern; anything that is not a known
// preset is treated as a raw token pattern.
func (f *Formatter) Resolve(choice string) string {
	if pattern, ok := f.presets[choice]; ok {
		return pattern
	}

	return choice
}

// Format renders instant with either a preset name or a raw pattern.
func (f *Formatter) Format(instant timezone.Instant, choice string) (string, error) {
	out, err := Render(instant, f.Resolve(choice))

	if err != nil {
		return "", fmt.Errorf("format: could not render with %q. %w", choice, err)
	}

	return out, nil
}

// Presets lists the known preset names, sorted for stable menus.
func (f *Formatter) Presets() []string {
	names := make([]string, 0, len(f.presets))
	for name := range f.presets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
