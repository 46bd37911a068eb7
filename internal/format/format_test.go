package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripclock/internal/timezone"
)

func wallInstant(t *testing.T, zoneName string, y int, m time.Month, d, hh, mm int) timezone.Instant {
	t.Helper()

	zone, err := timezone.LoadZone(zoneName)
	require.NoError(t, err)

	return timezone.FromWall(y, m, d, hh, mm, zone)
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		layout  string
	}{
		{"%Y-%m-%d", "2006-01-02"},
		{"%B %d, %Y %H:%M %Z", "January 02, 2006 15:04 MST"},
		{"%d %B %Y %H:%M %Z", "02 January 2006 15:04 MST"},
		{"%F %T %Z", "2006-01-02 15:04:05 MST"},
		{"%I:%M %p", "03:04 PM"},
		{"%a %e %b %y %z", "Mon _2 Jan 06 -0700"},
		{"100%%", "100%"},
	}

	for _, tc := range tests {
		layout, err := Translate(tc.pattern)

		require.NoError(t, err, tc.pattern)
		assert.Equal(t, tc.layout, layout, tc.pattern)
	}
}

func TestTranslateRejects(t *testing.T) {
	t.Parallel()

	t.Run("unsupported token names the token", func(t *testing.T) {
		_, err := Translate("%Y %Q")

		require.ErrorIs(t, err, ErrInvalidPattern)
		assert.Contains(t, err.Error(), "%Q")
	})

	t.Run("dangling percent", func(t *testing.T) {
		_, err := Translate("%Y-%m-%")

		require.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("empty pattern", func(t *testing.T) {
		_, err := Translate("")

		require.ErrorIs(t, err, ErrInvalidPattern)
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders zone abbreviations", func(t *testing.T) {
		instant := wallInstant(t, "America/New_York", 2025, time.March, 19, 14, 30)

		out, err := Render(instant, "%B %d, %Y %H:%M %Z")

		require.NoError(t, err)
		assert.Equal(t, "March 19, 2025 14:30 EDT", out)
	})

	t.Run("rejects naive instants", func(t *testing.T) {
		_, err := Render(timezone.Instant{}, "%F")

		require.ErrorIs(t, err, timezone.ErrNaiveInstant)
	})
}

func TestFormatterPresets(t *testing.T) {
	t.Parallel()

	formatter := NewFormatter(nil)

	t.Run("US preset", func(t *testing.T) {
		instant := wallInstant(t, "America/New_York", 2025, time.March, 19, 14, 30)

		out, err := formatter.Format(instant, PresetUS)

		require.NoError(t, err)
		assert.Equal(t, "March 19, 2025 14:30 EDT", out)
	})

	t.Run("UK preset in winter shows GMT", func(t *testing.T) {
		// BST only starts on 30 March 2025.
		instant := wallInstant(t, "Europe/London", 2025, time.March, 19, 14, 30)

		out, err := formatter.Format(instant, PresetUK)

		require.NoError(t, err)
		assert.Equal(t, "19 March 2025 14:30 GMT", out)
	})

	t.Run("UK preset in summer shows BST", func(t *testing.T) {
		instant := wallInstant(t, "Europe/London", 2025, time.July, 19, 14, 30)

		out, err := formatter.Format(instant, PresetUK)

		require.NoError(t, err)
		assert.Equal(t, "19 July 2025 14:30 BST", out)
	})

	t.Run("unknown choice is treated as a raw pattern", func(t *testing.T) {
		instant := wallInstant(t, "UTC", 2025, time.March, 19, 18, 30)

		out, err := formatter.Format(instant, "%F %R")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-19 18:30", out)
	})

	t.Run("invalid raw pattern fails", func(t *testing.T) {
		instant := wallInstant(t, "UTC", 2025, time.March, 19, 18, 30)

		_, err := formatter.Format(instant, "%Q")

		require.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("presets are extensible configuration", func(t *testing.T) {
		custom := NewFormatter(map[string]string{"ISO": "%F %T %z"})
		instant := wallInstant(t, "Asia/Tokyo", 2025, time.March, 20, 3, 30)

		out, err := custom.Format(instant, "ISO")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-20 03:30:00 +0900", out)
		assert.Equal(t, []string{"ISO", PresetUK, PresetUS}, custom.Presets())
	})
}
