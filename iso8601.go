package timekit

import (
	"strings"
	"time"

	"github.com/relvacode/iso8601"
)

// ISO8601Layout renders UTC time with seconds resolution and literal Z suffix
const ISO8601Layout = "2006-01-02T15:04:05Z"

// ToISO8601UTC converts t to UTC and renders it as yyyy-MM-ddTHH:mm:ssZ
func ToISO8601UTC(t time.Time, opts ...Option) (string, error) {
	utc, err := LocalToUTC(t, opts...)
	if err != nil {
		return "", err
	}
	return utc.Format(ISO8601Layout), nil
}

// ParseISO8601ToUTC parses ISO 8601 text, value without offset is read as UTC
func ParseISO8601ToUTC(value string) (time.Time, error) {
	ts, err := iso8601.ParseString(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Format: "ISO 8601", Err: err}
	}
	return ts.UTC(), nil
}
