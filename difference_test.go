package timekit

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifferenceWithUTC(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	berlin := mustLocation(t, "Europe/Berlin")
	var testCases = []struct {
		description string
		input       time.Time
		expect      string
	}{
		{description: "singular", input: now.Add(time.Hour + time.Minute), expect: "Difference with UTC: 1 hour 1 minute"},
		{description: "seconds truncated", input: now.Add(time.Hour + time.Minute + 59*time.Second), expect: "Difference with UTC: 1 hour 1 minute"},
		{description: "past", input: now.Add(-2*time.Hour - 30*time.Minute), expect: "Difference with UTC: 2 hours 30 minutes"},
		{description: "zero", input: now, expect: "Difference with UTC: 0 hours 0 minutes"},
		{description: "more than a day", input: now.Add(26 * time.Hour), expect: "Difference with UTC: 26 hours 0 minutes"},
		{description: "local input converted", input: time.Date(2024, 6, 1, 15, 1, 0, 0, berlin), expect: "Difference with UTC: 1 hour 1 minute"},
	}
	for _, testCase := range testCases {
		actual, err := DifferenceWithUTC(testCase.input, WithClock(clock))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestDifferenceWithLocal(t *testing.T) {
	tokyo := mustLocation(t, "Asia/Tokyo")
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	var testCases = []struct {
		description string
		input       time.Time
		expect      string
	}{
		{description: "local wall clock", input: time.Date(2024, 6, 1, 22, 1, 0, 0, tokyo), expect: "Difference with Local: 1 hour 1 minute"},
		{description: "zone not converted", input: time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC), expect: "Difference with Local: 0 hours 0 minutes"},
		{description: "plural", input: time.Date(2024, 6, 1, 18, 58, 0, 0, tokyo), expect: "Difference with Local: 2 hours 2 minutes"},
	}
	for _, testCase := range testCases {
		actual := DifferenceWithLocal(testCase.input, WithClock(clock), WithLocation(tokyo))
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
