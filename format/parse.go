package format

import (
	"time"

	"github.com/viant/timekit"
)

// ParseTime parses value with the tag format, zone=local yields local time, otherwise UTC
func (t *Tag) ParseTime(value string, opts ...timekit.Option) (time.Time, error) {
	options := append(t.Options(), opts...)
	if t.Zone != "" && t.zone() == timekit.ZoneLocal {
		return timekit.ParseToLocal(value, options...)
	}
	return timekit.ParseToUTC(value, options...)
}
