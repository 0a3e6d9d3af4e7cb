package format

import (
	"fmt"
	"time"

	"github.com/viant/timekit"
	ftime "github.com/viant/timekit/format/time"
	"github.com/viant/timekit/locale"
)

// FormatTime renders ts with the tag format, RFC3339 by default.
// zone=utc converts ts to UTC, zone=local to local time, otherwise ts is rendered in its own location
func (t *Tag) FormatTime(ts *time.Time, opts ...timekit.Option) (string, error) {
	if ts == nil {
		return "", nil
	}
	format, dialect, ok := t.format()
	if !ok {
		format, dialect = time.RFC3339, ftime.DialectGo
	}
	options := append(t.Options(), opts...)
	options = append(options, timekit.WithDialect(dialect))
	switch {
	case t.Zone == "":
	case t.zone() == timekit.ZoneUTC:
		return timekit.LocalToUTCFormat(*ts, format, options...)
	default:
		return timekit.UTCToLocalFormat(*ts, format, options...)
	}
	layout, err := ftime.Compile(format, dialect)
	if err != nil {
		return "", fmt.Errorf("invalid format %q: %w", format, err)
	}
	culture := t.culture
	if culture == nil {
		culture = locale.Invariant
	}
	return layout.Format(*ts, culture), nil
}
