package format

import (
	"reflect"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/timekit"
	"github.com/viant/timekit/locale"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		tagName     string
		expect      *Tag
		expectErr   bool
	}{
		{
			description: "date format",
			tag:         reflect.StructTag(`format:"dateFormat=YYYY-MM-DD,name=startDate"`),
			expect:      &Tag{Name: "startDate", DateFormat: "YYYY-MM-DD", TimeLayout: "2006-01-02"},
		},
		{
			description: "fallback",
			tagName:     "xjson",
			tag:         reflect.StructTag(`format:"dateFormat=YYYY-MM-DD,name=startDate" xjson:"dateFormat=YYYY-MM-DD hh:mm,omitempty"`),
			expect:      &Tag{Name: "startDate", DateFormat: "YYYY-MM-DD hh:mm", TimeLayout: "2006-01-02 15:04", Omitempty: true},
		},
		{
			description: "fallback simple name",
			tagName:     "json",
			tag:         reflect.StructTag(`format:"dateFormat=YYYY-MM-DD,name=startDate" json:"Id,omitempty"`),
			expect:      &Tag{Name: "startDate", DateFormat: "YYYY-MM-DD", TimeLayout: "2006-01-02", Omitempty: true},
		},
		{
			description: "fallback empty name",
			tagName:     "json",
			tag:         reflect.StructTag(`format:"name=at" json:",omitempty"`),
			expect:      &Tag{Name: "at", Omitempty: true},
		},
		{
			description: "empty pairs",
			tag:         reflect.StructTag(`format:",,"`),
			expect:      &Tag{},
		},
		{
			description: "block value with comma",
			tag:         reflect.StructTag(`format:"{pattern=MMMM d, yyyy},zone=utc"`),
			expect:      &Tag{Pattern: "MMMM d, yyyy", Zone: "utc"},
		},
		{
			description: "ignore",
			tag:         reflect.StructTag(`format:"-"`),
			expect:      &Tag{Ignore: true},
		},
		{
			description: "unknown key",
			tag:         reflect.StructTag(`format:"precision=2"`),
			expectErr:   true,
		},
		{
			description: "unknown key in fallback tag",
			tagName:     "xjson",
			tag:         reflect.StructTag(`xjson:"precision=2,strftime=%Y"`),
			expect:      &Tag{Strftime: "%Y"},
		},
		{
			description: "invalid zone",
			tag:         reflect.StructTag(`format:"zone=mars"`),
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		tag, err := Parse(testCase.tag, testCase.tagName)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, tag, testCase.description)
	}
}

func TestParse_Language(t *testing.T) {
	tag, err := Parse(`format:"pattern=dddd,lang=de_DE"`)
	require.NoError(t, err)
	assert.Equal(t, "de_DE", tag.Language)
	assert.Equal(t, locale.German, tag.culture)
	assert.Len(t, tag.Options(), 3)
}

func TestTag_ParseTime(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		input       string
		expect      time.Time
	}{
		{
			description: "date format",
			tag:         `format:"dateFormat=YYYY-MM-DD hh:mm"`,
			input:       "2024-07-04 09:30",
			expect:      time.Date(2024, 7, 4, 13, 30, 0, 0, time.UTC),
		},
		{
			description: "localized pattern",
			tag:         `format:"pattern=d. MMMM yyyy,lang=de"`,
			input:       "4. Juli 2024",
			expect:      time.Date(2024, 7, 4, 4, 0, 0, 0, time.UTC),
		},
		{
			description: "free form",
			tag:         `format:"name=at"`,
			input:       "2024-07-04T09:30:00Z",
			expect:      time.Date(2024, 7, 4, 9, 30, 0, 0, time.UTC),
		},
		{
			description: "local zone",
			tag:         `format:"pattern=yyyy-MM-dd HH:mm,zone=local"`,
			input:       "2024-07-04 13:30",
			expect:      time.Date(2024, 7, 4, 9, 30, 0, 0, newYork),
		},
	}
	for _, testCase := range testCases {
		tag, err := Parse(testCase.tag)
		require.NoError(t, err, testCase.description)
		actual, err := tag.ParseTime(testCase.input, timekit.WithLocation(newYork))
		require.NoError(t, err, testCase.description)
		assert.True(t, testCase.expect.Equal(actual), testCase.description)
	}
}

func TestTag_FormatTime(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	ts := time.Date(2024, 3, 5, 15, 7, 9, 0, berlin)
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		expect      string
	}{
		{description: "default", tag: `format:"name=at"`, expect: "2024-03-05T15:07:09+01:00"},
		{description: "date format", tag: `format:"dateFormat=YYYY-MM-DD hh:mm:ss"`, expect: "2024-03-05 15:07:09"},
		{description: "utc zone", tag: `format:"dateFormat=YYYY-MM-DD hh:mm:ss,zone=utc"`, expect: "2024-03-05 14:07:09"},
		{description: "localized pattern", tag: `format:"pattern=dddd d. MMMM,lang=de"`, expect: "Dienstag 5. März"},
		{description: "strftime", tag: `format:"strftime=%Y/%m/%d"`, expect: "2024/03/05"},
		{description: "local zone", tag: `format:"pattern=HH:mm,zone=local"`, expect: "23:07"},
	}
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	for _, testCase := range testCases {
		tag, err := Parse(testCase.tag)
		require.NoError(t, err, testCase.description)
		actual, err := tag.FormatTime(&ts, timekit.WithLocation(tokyo))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}

	tag, err := Parse(`format:"name=at"`)
	require.NoError(t, err)
	actual, err := tag.FormatTime(nil)
	assert.NoError(t, err)
	assert.Equal(t, "", actual)
}
