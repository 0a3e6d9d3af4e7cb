package format

import (
	"github.com/viant/timekit"
	ftime "github.com/viant/timekit/format/time"
)

// Options returns timekit options implied by the tag, pattern takes precedence over strftime, date format and time layout
func (t *Tag) Options() []timekit.Option {
	var result []timekit.Option
	if format, dialect, ok := t.format(); ok {
		result = append(result, timekit.WithFormat(format), timekit.WithDialect(dialect))
	}
	if t.culture != nil {
		result = append(result, timekit.WithCulture(t.culture))
	}
	return result
}

func (t *Tag) format() (string, ftime.Dialect, bool) {
	switch {
	case t.Pattern != "":
		return t.Pattern, ftime.DialectNET, true
	case t.Strftime != "":
		return t.Strftime, ftime.DialectStrftime, true
	case t.TimeLayout != "":
		return t.TimeLayout, ftime.DialectGo, true
	}
	return "", 0, false
}

func (t *Tag) zone() timekit.Zone {
	zone, _ := timekit.ParseZone(t.Zone)
	return zone
}
