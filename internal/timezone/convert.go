package timezone

import "fmt"

// Convert re-expresses instant in the named target zone. The absolute
// point in time is preserved; only the zone label and displayed offset
// change. Pure: no I/O beyond the zone database lookup, no side effects.
func Convert(instant Instant, targetZone string) (Instant, error) {
	if !instant.IsZoned() {
		return Instant{}, fmt.Errorf("timezone: cannot convert: %w", ErrNaiveInstant)
	}

	zone, err := LoadZone(targetZone)

	if err != nil {
		return Instant{}, err
	}

	return NewInstant(instant.Time(), zone), nil
}
