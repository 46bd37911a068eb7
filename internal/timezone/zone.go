package timezone

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidZone marks identifiers that do not resolve against the host
// IANA timezone database.
var ErrInvalidZone = errors.New("unknown timezone")

// Zone is a resolved IANA timezone identifier, e.g. "Europe/London".
type Zone struct {
	Name     string
	Location *time.Location
}

//nolint:gochecknoglobals // ok
var UTC = Zone{Name: "UTC", Location: time.UTC}

func LoadZone(name string) (Zone, error) {
	if name == "" {
		return Zone{}, fmt.Errorf("timezone: empty identifier: %w", ErrInvalidZone)
	}

	loc, err := time.LoadLocation(name)

	if err != nil {
		return Zone{}, fmt.Errorf("timezone: could not resolve %q: %w", name, ErrInvalidZone)
	}

	return Zone{Name: name, Location: loc}, nil
}
