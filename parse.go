package timekit

import (
	"fmt"
	"time"

	ftime "github.com/viant/timekit/format/time"
	"github.com/viant/timekit/locale"
)

// ParseToUTC parses value with the format option (free form when empty) under the
// locale option (current culture by default), reads the result as a local wall clock
// and returns it in UTC. An offset embedded in value fixes the instant.
func ParseToUTC(value string, opts ...Option) (time.Time, error) {
	options := resolveOptions(opts)
	fields, err := options.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	if fields.HasOffset {
		return fields.Instant().UTC(), nil
	}
	instant, err := resolveWall(fields.Wall(), options.Location, options.DSTPolicy)
	if err != nil {
		return time.Time{}, err
	}
	return instant.UTC(), nil
}

// ParseToLocal parses value like ParseToUTC, reads the result as a UTC wall clock
// and returns it in the local location
func ParseToLocal(value string, opts ...Option) (time.Time, error) {
	options := resolveOptions(opts)
	fields, err := options.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	if fields.HasOffset {
		return fields.Instant().In(options.Location), nil
	}
	return fields.Wall().In(options.Location), nil
}

func (o *Options) parse(value string) (ftime.Fields, error) {
	culture := o.culture(locale.Current)
	var fields ftime.Fields
	var err error
	if o.Format == "" {
		fields, err = ftime.ParseFreeForm(value, culture)
	} else {
		var layout ftime.Layout
		if layout, err = o.layout(); err == nil {
			fields, err = layout.Parse(value, culture)
		}
	}
	if err == nil {
		fields, err = fields.Resolve(o.Clock.Now().In(o.Location))
	}
	if err == nil && fields.Abbreviation != "" && !fields.HasOffset {
		offset, ok := abbreviationOffset(fields.Wall(), o.Location, fields.Abbreviation)
		if !ok {
			err = fmt.Errorf("%w: zone %q is not known in %v", ftime.ErrUnexpectedInput, fields.Abbreviation, o.Location)
		}
		fields.Offset, fields.HasOffset = offset, ok
	}
	if err != nil {
		return fields, &ParseError{Value: value, Format: o.Format, Err: err}
	}
	return fields, nil
}
