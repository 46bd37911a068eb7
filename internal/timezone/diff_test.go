package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripclock/internal/clock"
)

func fixedInstant(t *testing.T, y int, m time.Month, d int) Instant {
	t.Helper()

	return NowUTC(clock.NewFixedClock(time.Date(y, m, d, 12, 0, 0, 0, time.UTC)))
}

func TestDiff(t *testing.T) {
	t.Parallel()

	springDay := fixedInstant(t, 2025, time.March, 19)
	winterDay := fixedInstant(t, 2025, time.January, 15)

	t.Run("computes zone1 minus zone2", func(t *testing.T) {
		// Tokyo is UTC+9, New York on EDT is UTC-4.
		diff, err := Diff("Asia/Tokyo", "America/New_York", springDay)

		require.NoError(t, err)
		assert.Equal(t, Difference{Sign: 1, Hours: 13, Minutes: 0}, diff)
	})

	t.Run("depends on the instant through daylight saving", func(t *testing.T) {
		// In January New York is back on EST, UTC-5.
		diff, err := Diff("Asia/Tokyo", "America/New_York", winterDay)

		require.NoError(t, err)
		assert.Equal(t, Difference{Sign: 1, Hours: 14, Minutes: 0}, diff)
	})

	t.Run("carries half-hour offsets in minutes", func(t *testing.T) {
		diff, err := Diff("Asia/Kolkata", "UTC", springDay)

		require.NoError(t, err)
		assert.Equal(t, Difference{Sign: 1, Hours: 5, Minutes: 30}, diff)
	})

	t.Run("is antisymmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"Asia/Tokyo", "America/New_York"},
			{"Asia/Kolkata", "Europe/London"},
			{"Australia/Sydney", "America/Los_Angeles"},
			{"UTC", "Pacific/Auckland"},
		}

		for _, pair := range pairs {
			forward, err := Diff(pair[0], pair[1], springDay)
			require.NoError(t, err)

			backward, err := Diff(pair[1], pair[0], springDay)
			require.NoError(t, err)

			assert.Equal(t, forward.Negate(), backward, "pair %v", pair)
		}
	})

	t.Run("same zone has neutral sign", func(t *testing.T) {
		for _, zone := range []string{"UTC", "Asia/Tokyo", "America/New_York"} {
			diff, err := Diff(zone, zone, springDay)

			require.NoError(t, err)
			assert.Equal(t, Difference{Sign: 0, Hours: 0, Minutes: 0}, diff)
		}
	})

	t.Run("rejects unknown zones", func(t *testing.T) {
		_, err := Diff("Mars/Phobos", "UTC", springDay)
		require.ErrorIs(t, err, ErrInvalidZone)

		_, err = Diff("UTC", "Mars/Phobos", springDay)
		require.ErrorIs(t, err, ErrInvalidZone)
	})

	t.Run("rejects naive instants", func(t *testing.T) {
		_, err := Diff("UTC", "Asia/Tokyo", Instant{})

		require.ErrorIs(t, err, ErrNaiveInstant)
	})
}

func TestDifferenceString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5 hours 0 minutes", Difference{Sign: 1, Hours: 5, Minutes: 0}.String())
	assert.Equal(t, "-9 hours 30 minutes", Difference{Sign: -1, Hours: 9, Minutes: 30}.String())
	assert.Equal(t, "0 hours 0 minutes", Difference{}.String())
}
