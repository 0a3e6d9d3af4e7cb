package locale

import (
	"time"

	"golang.org/x/text/language"
)

// Culture defines date and time conventions of a language/region
type Culture struct {
	Name string
	Tag  language.Tag

	ShortDate string
	LongDate  string
	ShortTime string
	LongTime  string
	MonthDay  string
	YearMonth string

	DateSeparator string
	TimeSeparator string
	AM            string
	PM            string
	Era           string

	Months            [12]string
	AbbreviatedMonths [12]string
	//Days starts with Sunday
	Days            [7]string
	AbbreviatedDays [7]string
}

const (
	roundTripPattern = "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffK"
	rfc1123Pattern   = "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'"
	sortablePattern  = "yyyy'-'MM'-'dd'T'HH':'mm':'ss"
	universalPattern = "yyyy'-'MM'-'dd HH':'mm':'ss'Z'"
)

// IsInvariant returns true if culture is the invariant culture
func (c *Culture) IsInvariant() bool {
	return c == Invariant
}

// MonthName returns month name
func (c *Culture) MonthName(month time.Month, abbreviated bool) string {
	if abbreviated {
		return c.AbbreviatedMonths[month-1]
	}
	return c.Months[month-1]
}

// DayName returns week day name
func (c *Culture) DayName(day time.Weekday, abbreviated bool) string {
	if abbreviated {
		return c.AbbreviatedDays[day]
	}
	return c.Days[day]
}

// Designator returns AM or PM designator for supplied hour (0-23)
func (c *Culture) Designator(hour int) string {
	if hour < 12 {
		return c.AM
	}
	return c.PM
}

// Pattern expands a standard single letter format to a custom pattern.
// Round trip, RFC1123, sortable and universal patterns are culture independent,
// invariant flag reports that these are rendered with the invariant culture.
func (c *Culture) Pattern(standard byte) (pattern string, invariant bool, ok bool) {
	switch standard {
	case 'd':
		return c.ShortDate, false, true
	case 'D':
		return c.LongDate, false, true
	case 'f':
		return c.LongDate + " " + c.ShortTime, false, true
	case 'F', 'U':
		return c.LongDate + " " + c.LongTime, false, true
	case 'g':
		return c.ShortDate + " " + c.ShortTime, false, true
	case 'G':
		return c.ShortDate + " " + c.LongTime, false, true
	case 'M', 'm':
		return c.MonthDay, false, true
	case 'Y', 'y':
		return c.YearMonth, false, true
	case 't':
		return c.ShortTime, false, true
	case 'T':
		return c.LongTime, false, true
	case 'O', 'o':
		return roundTripPattern, true, true
	case 'R', 'r':
		return rfc1123Pattern, true, true
	case 's':
		return sortablePattern, true, true
	case 'u':
		return universalPattern, true, true
	}
	return "", false, false
}

// ParsePatterns returns patterns tried by free form parsing, most specific first
func (c *Culture) ParsePatterns() []string {
	return []string{
		c.ShortDate + " " + c.LongTime,
		c.ShortDate + " " + c.ShortTime,
		c.LongDate + " " + c.LongTime,
		c.LongDate + " " + c.ShortTime,
		c.LongDate,
		c.ShortDate,
		c.MonthDay,
		c.YearMonth,
	}
}

// TimePatterns returns time only patterns tried by free form parsing
func (c *Culture) TimePatterns() []string {
	return []string{c.LongTime, c.ShortTime}
}

func (c *Culture) String() string {
	if c.Name == "" {
		return "invariant"
	}
	return c.Name
}
