package timezone

import "fmt"

// Difference is the offset gap between two zones at one instant. Sign is
// carried once: Hours and Minutes are magnitudes, Minutes in [0,59], and
// Sign is -1, 0 or +1. A zero difference has neutral sign.
type Difference struct {
	Sign    int
	Hours   int
	Minutes int
}

// Negate flips the direction of the difference.
func (d Difference) Negate() Difference {
	return Difference{Sign: -d.Sign, Hours: d.Hours, Minutes: d.Minutes}
}

func (d Difference) String() string {
	prefix := ""
	if d.Sign < 0 {
		prefix = "-"
	}

	return fmt.Sprintf("%s%d hours %d minutes", prefix, d.Hours, d.Minutes)
}

// Diff computes the offset of zone1 minus the offset of zone2 at the given
// instant. Offsets vary with daylight-saving rules, so the instant is an
// explicit parameter rather than an implicit "now". Sub-minute remainders
// (possible for historical offsets) are truncated toward zero.
func Diff(zone1, zone2 string, at Instant) (Difference, error) {
	if !at.IsZoned() {
		return Difference{}, fmt.Errorf("timezone: cannot diff at naive instant: %w", ErrNaiveInstant)
	}

	z1, err := LoadZone(zone1)

	if err != nil {
		return Difference{}, err
	}

	z2, err := LoadZone(zone2)

	if err != nil {
		return Difference{}, err
	}

	_, offset1 := at.Time().In(z1.Location).Zone()
	_, offset2 := at.Time().In(z2.Location).Zone()

	totalMinutes := (offset1 - offset2) / 60

	sign := 0
	switch {
	case totalMinutes > 0:
		sign = 1
	case totalMinutes < 0:
		sign = -1
		totalMinutes = -totalMinutes
	}

	return Difference{
		Sign:    sign,
		Hours:   totalMinutes / 60,
		Minutes: totalMinutes % 60,
	}, nil
}
