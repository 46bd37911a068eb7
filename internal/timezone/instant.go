package timezone

import (
	"errors"
	"fmt"
	"time"

	"tripclock/internal/clock"
)

// ErrNaiveInstant marks zone operations attempted on an instant that was
// never given zone information (the zero value).
var ErrNaiveInstant = errors.New("instant carries no timezone")

// Instant is a point in time that always carries its zone. The zero value
// is "naive" and rejected by every zone operation. Instants are values;
// conversion returns a new one.
type Instant struct {
	time  time.Time
	zone  Zone
	zoned bool
}

func NewInstant(t time.Time, zone Zone) Instant {
	return Instant{time: t.In(zone.Location), zone: zone, zoned: true}
}

// NowUTC returns the current instant in UTC.
func NowUTC(clk clock.Clock) Instant {
	return NewInstant(clk.Now(), UTC)
}

// NowIn returns the current instant expressed in the named zone.
func NowIn(clk clock.Clock, name string) (Instant, error) {
	zone, err := LoadZone(name)

	if err != nil {
		return Instant{}, err
	}

	return NewInstant(clk.Now(), zone), nil
}

// FromWall interprets a wall-clock reading (already validated date parts)
// as local time in the given zone.
func FromWall(year int, month time.Month, day, hour, minute int, zone Zone) Instant {
	t := time.Date(year, month, day, hour, minute, 0, 0, zone.Location)
	return NewInstant(t, zone)
}

func (i Instant) Time() time.Time {
	return i.time
}

func (i Instant) Zone() Zone {
	return i.zone
}

func (i Instant) IsZoned() bool {
	return i.zoned
}

// Unix reports the absolute point in time, independent of zone label.
func (i Instant) Unix() int64 {
	return i.time.Unix()
}

func (i Instant) String() string {
	if !i.zoned {
		return "<naive instant>"
	}

	return i.time.Format(clock.Display)
}

// Add shifts the instant by d, keeping its zone label.
func (i Instant) Add(d time.Duration) (Instant, error) {
	if !i.zoned {
		return Instant{}, fmt.Errorf("timezone: cannot shift: %w", ErrNaiveInstant)
	}

	return NewInstant(i.time.Add(d), i.zone), nil
}
