package time

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/leekchan/timeutil"
	"github.com/viant/timekit/locale"
)

// Dialect defines format string syntax
type Dialect int

const (
	//DialectNET uses custom and standard date and time format strings, i.e. "yyyy-MM-ddTHH:mm:ss" or "G"
	DialectNET Dialect = iota
	//DialectGo uses go reference time layout, i.e. "2006-01-02T15:04:05Z07:00"
	DialectGo
	//DialectISO uses ISO 2022-07-15 date format, i.e. "YYYY-MM-DD hh:mm:ss"
	DialectISO
	//DialectStrftime uses C strftime directives, i.e. "%Y-%m-%d", formatting only
	DialectStrftime
)

func (d Dialect) String() string {
	switch d {
	case DialectGo:
		return "go"
	case DialectISO:
		return "iso"
	case DialectStrftime:
		return "strftime"
	}
	return "net"
}

// Layout formats and parses time text
type Layout interface {
	Format(t time.Time, culture *locale.Culture) string
	Parse(value string, culture *locale.Culture) (Fields, error)
}

// Compile returns layout for supplied format and dialect
func Compile(format string, dialect Dialect) (Layout, error) {
	switch dialect {
	case DialectGo:
		return goLayout(format), nil
	case DialectISO:
		return goLayout(DateFormatToTimeLayout(format)), nil
	case DialectStrftime:
		return strftimeLayout(format), nil
	}
	if format == "" {
		format = "G"
	}
	if utf8.RuneCountInString(format) == 1 {
		if _, _, ok := locale.Invariant.Pattern(format[0]); !ok {
			return nil, fmt.Errorf("%w: unknown standard format %q", ErrInvalidPattern, format)
		}
		return standard(format[0]), nil
	}
	return CompilePattern(format)
}

// standard represents single letter standard format, expanded with the culture in use
type standard byte

func (s standard) pattern(culture *locale.Culture) (*Pattern, *locale.Culture) {
	if culture == nil {
		culture = locale.Invariant
	}
	source, invariant, _ := culture.Pattern(byte(s))
	if invariant {
		culture = locale.Invariant
	}
	return mustPattern(source), culture
}

func (s standard) Format(t time.Time, culture *locale.Culture) string {
	switch s {
	case 'U', 'R', 'r':
		t = t.UTC()
	}
	pattern, culture := s.pattern(culture)
	return pattern.Format(t, culture)
}

func (s standard) Parse(value string, culture *locale.Culture) (Fields, error) {
	pattern, culture := s.pattern(culture)
	fields, err := pattern.Parse(value, culture)
	if err != nil {
		return fields, err
	}
	switch s {
	case 'R', 'r', 'u', 'U':
		fields.Offset, fields.HasOffset = 0, true
	}
	return fields, nil
}

// goLayout represents go reference time layout, names are always English
type goLayout string

func (l goLayout) layout() string {
	if l == "" {
		return time.RFC3339
	}
	return string(l)
}

func (l goLayout) Format(t time.Time, _ *locale.Culture) string {
	return t.Format(l.layout())
}

// dateTimeSeparator matches T between date and time digits, i.e. 2024-07-04T09:30
var dateTimeSeparator = regexp.MustCompile(`(\d)T(\d)`)

func (l goLayout) Parse(value string, _ *locale.Culture) (Fields, error) {
	layout := l.layout()
	//adjust T fragment
	if valueT, layoutT := dateTimeSeparator.MatchString(value), dateTimeSeparator.MatchString(layout); valueT != layoutT {
		if valueT {
			value = dateTimeSeparator.ReplaceAllString(value, "${1} ${2}")
		} else {
			layout = dateTimeSeparator.ReplaceAllString(layout, "${1} ${2}")
		}
	}
	ts, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		return Fields{}, fmt.Errorf("%w: %v", ErrUnexpectedInput, err)
	}
	fields := FieldsOf(ts)
	fields.HasOffset = hasNumericZone(layout)
	if !fields.HasOffset && strings.Contains(layout, "MST") {
		name, offset := ts.Zone()
		switch {
		case offset != 0:
			fields.HasOffset = true
		case name == "UTC" || name == "GMT" || name == "Z":
			fields.HasOffset = true
		default:
			fields.Offset, fields.Abbreviation = 0, name
		}
	}
	if !hasDate(layout) {
		fields.HasYear, fields.HasMonth, fields.HasDay = false, false, false
	} else if !strings.Contains(layout, "06") {
		fields.HasYear = false
	}
	return fields, nil
}

func hasNumericZone(layout string) bool {
	return strings.Contains(layout, "Z07") || strings.Contains(layout, "-07")
}

func hasDate(layout string) bool {
	for _, element := range []string{"2006", "06", "Jan", "01", "02", "_2", "Mon", "002"} {
		if strings.Contains(layout, element) {
			return true
		}
	}
	return false
}

// strftimeLayout represents C strftime directives
type strftimeLayout string

func (l strftimeLayout) Format(t time.Time, _ *locale.Culture) string {
	return timeutil.Strftime(&t, string(l))
}

func (l strftimeLayout) Parse(value string, _ *locale.Culture) (Fields, error) {
	return Fields{}, fmt.Errorf("%w: parsing %q with strftime layout %q", ErrUnsupported, value, string(l))
}
