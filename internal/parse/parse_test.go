package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripclock/internal/timezone"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("parses YYYY-MM-DD", func(t *testing.T) {
		date, err := Date("2025-03-19")

		require.NoError(t, err)
		assert.Equal(t, 2025, date.Year())
		assert.Equal(t, time.March, date.Month())
		assert.Equal(t, 19, date.Day())
	})

	t.Run("rejects out-of-range components", func(t *testing.T) {
		_, err := Date("2025-13-40")

		require.ErrorIs(t, err, ErrInvalidDateFormat)
		assert.Contains(t, err.Error(), "2025-13-40")
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, input := range []string{"19/03/2025", "March 19 2025", ""} {
			_, err := Date(input)

			require.ErrorIs(t, err, ErrInvalidDateFormat, input)
		}
	})
}

func TestClock(t *testing.T) {
	t.Parallel()

	t.Run("parses HH:MM", func(t *testing.T) {
		hour, minute, err := Clock("14:30")

		require.NoError(t, err)
		assert.Equal(t, 14, hour)
		assert.Equal(t, 30, minute)
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		for _, input := range []string{"25:00", "14:61", "2pm", "14.30", ""} {
			_, _, err := Clock(input)

			require.ErrorIs(t, err, ErrInvalidTimeFormat, input)
		}
	})
}

func TestWall(t *testing.T) {
	t.Parallel()

	t.Run("builds a zoned instant", func(t *testing.T) {
		instant, err := Wall("2025-03-19", "14:30", "America/New_York")

		require.NoError(t, err)
		assert.True(t, instant.IsZoned())
		assert.Equal(t, "America/New_York", instant.Zone().Name)
		assert.Equal(t, 14, instant.Time().Hour())
		assert.Equal(t, 30, instant.Time().Minute())
	})

	t.Run("rejects bad dates before touching the zone", func(t *testing.T) {
		_, err := Wall("2025-13-40", "14:30", "America/New_York")

		require.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("rejects bad times", func(t *testing.T) {
		_, err := Wall("2025-03-19", "14:70", "America/New_York")

		require.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("rejects unknown zones", func(t *testing.T) {
		_, err := Wall("2025-03-19", "14:30", "Mars/Phobos")

		require.ErrorIs(t, err, timezone.ErrInvalidZone)
	})
}
