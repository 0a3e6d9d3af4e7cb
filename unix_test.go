package timekit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUnixTimeSecondsUTC(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")
	var testCases = []struct {
		description string
		input       time.Time
		expect      int64
	}{
		{description: "epoch", input: time.Unix(0, 0).UTC(), expect: 0},
		{description: "before epoch", input: time.Date(1969, 12, 31, 23, 59, 0, 0, time.UTC), expect: -60},
		{description: "utc", input: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), expect: 1704067200},
		{description: "local", input: time.Date(2023, 12, 31, 19, 0, 0, 0, newYork), expect: 1704067200},
	}
	for _, testCase := range testCases {
		actual, err := ToUnixTimeSecondsUTC(testCase.input)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestFromUnixTimeSecondsUTC(t *testing.T) {
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), FromUnixTimeSecondsUTC(0))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), FromUnixTimeSecondsUTC(1704067200))
	assert.Equal(t, time.UTC, FromUnixTimeSecondsUTC(-1).Location())
}

func TestUnix_RoundTrip(t *testing.T) {
	for _, input := range []time.Time{
		time.Date(2024, 2, 29, 12, 34, 56, 789000000, time.UTC),
		time.Date(1901, 1, 1, 0, 0, 0, 1, time.UTC),
		time.Date(2999, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		seconds, err := ToUnixTimeSecondsUTC(input)
		require.NoError(t, err)
		assert.Equal(t, input.Truncate(time.Second), FromUnixTimeSecondsUTC(seconds))
	}
}
