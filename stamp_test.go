package timekit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/timekit/locale"
)

func TestStamp_Conversions(t *testing.T) {
	newYork := mustLocation(t, "America/New_York")
	local := NewLocal(time.Date(2024, 1, 15, 9, 30, 0, 0, newYork))

	utc, err := local.ToUTC()
	require.NoError(t, err)
	assert.Equal(t, ZoneUTC, utc.Zone)
	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), utc.Time)

	same, err := utc.ToUTC()
	require.NoError(t, err)
	assert.Equal(t, utc, same)

	back := utc.ToLocal(WithLocation(newYork))
	assert.Equal(t, ZoneLocal, back.Zone)
	assert.True(t, back.Time.Equal(local.Time))
	assert.Equal(t, local, local.ToLocal())

	iso, err := local.ISO8601()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15T14:30:00Z", iso)

	seconds, err := local.Unix()
	require.NoError(t, err)
	assert.Equal(t, int64(1705329000), seconds)

	assert.True(t, Stamp{}.IsZero())
	assert.False(t, local.IsZero())
}

func TestStamp_Format(t *testing.T) {
	t.Setenv("LC_ALL", "de_DE.UTF-8")
	berlin := mustLocation(t, "Europe/Berlin")

	utc := NewUTC(time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC))
	actual, err := utc.Format("dddd HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "Tuesday 14:07", actual)

	local := NewLocal(time.Date(2024, 3, 5, 15, 7, 0, 0, berlin))
	actual, err = local.Format("dddd HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "Dienstag 15:07", actual)

	actual, err = local.Format("dddd", WithCulture(locale.French))
	require.NoError(t, err)
	assert.Equal(t, "mardi", actual)

	_, err = local.Format("'broken")
	assert.Error(t, err)
}

func TestStamp_Difference(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	utc := NewUTC(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))
	actual, err := utc.Difference(WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, "Difference with UTC: 3 hours 0 minutes", actual)

	local := NewLocal(time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC))
	actual, err = local.Difference(WithClock(clock), WithLocation(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Difference with Local: 1 hour 0 minutes", actual)
}

func TestStamp_JSON(t *testing.T) {
	tokyo := mustLocation(t, "Asia/Tokyo")
	var testCases = []struct {
		description string
		stamp       Stamp
		expect      string
	}{
		{
			description: "utc",
			stamp:       NewUTC(time.Date(2024, 1, 1, 0, 0, 0, 500, time.UTC)),
			expect:      `{"time":"2024-01-01T00:00:00.0000005Z","zone":"utc"}`,
		},
		{
			description: "local",
			stamp:       NewLocal(time.Date(2024, 1, 1, 9, 0, 0, 0, tokyo)),
			expect:      `{"time":"2024-01-01T09:00:00+09:00","zone":"local"}`,
		},
	}
	for _, testCase := range testCases {
		data, err := json.Marshal(testCase.stamp)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, string(data), testCase.description)

		var actual Stamp
		require.NoError(t, json.Unmarshal(data, &actual), testCase.description)
		assert.Equal(t, testCase.stamp.Zone, actual.Zone, testCase.description)
		assert.True(t, testCase.stamp.Time.Equal(actual.Time), testCase.description)
	}

	var stamp Stamp
	assert.Error(t, json.Unmarshal([]byte(`{"time":"yesterday","zone":"utc"}`), &stamp))
	assert.Error(t, json.Unmarshal([]byte(`{"time":"2024-01-01T00:00:00Z","zone":"mars"}`), &stamp))
}

func TestParseZone(t *testing.T) {
	for _, name := range []string{"utc", "UTC", " z "} {
		zone, err := ParseZone(name)
		require.NoError(t, err, name)
		assert.Equal(t, ZoneUTC, zone, name)
	}
	zone, err := ParseZone("")
	require.NoError(t, err)
	assert.Equal(t, ZoneLocal, zone)
	_, err = ParseZone("mars")
	assert.Error(t, err)
}
