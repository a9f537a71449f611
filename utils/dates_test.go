package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingDateTruncatesToDay(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2026-06-01", "2026-06-01"},
		{"2026-06-01T23:59:00Z", "2026-06-01"},
		{"2026-06-01T10:30:00", "2026-06-01"},
		{"2026-06-01 10:30:00", "2026-06-01"},
		{"  2026-06-01  ", "2026-06-01"},
	}

	for _, tc := range cases {
		got, err := ParseBookingDate(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got.Format(DayFormat), "input %q", tc.input)
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestParseBookingDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "01/06/2026", "2026-13-40"} {
		_, err := ParseBookingDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDayKeysNormalizesMixedLayouts(t *testing.T) {
	keys, err := DayKeys([]string{"2026-06-01", "2026-06-02T08:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-01", "2026-06-02"}, keys)
}

func TestDayKeysKeepsDuplicates(t *testing.T) {
	// a day submitted twice in different layouts is still the same day,
	// and the caller must be able to see the repeat
	keys, err := DayKeys([]string{"2026-06-01", "2026-06-01T23:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-06-01", "2026-06-01"}, keys)
}

func TestDayKeysFailsOnFirstBadDate(t *testing.T) {
	_, err := DayKeys([]string{"2026-06-01", "nope"})
	assert.Error(t, err)
}

func TestTruncateToDayUsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	// 02:00 local on June 2 is still June 1 in UTC
	local := time.Date(2026, 6, 2, 2, 0, 0, 0, loc)
	assert.Equal(t, "2026-06-01", DayKey(local))
}
