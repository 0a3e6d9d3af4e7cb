package timekit

import (
	"fmt"
	"time"

	"github.com/viant/timekit/locale"
)

// LocalToUTC returns t in UTC. A located value keeps its instant, including
// either reading of a repeated hour. UTC values are returned unchanged.
func LocalToUTC(t time.Time, opts ...Option) (time.Time, error) {
	if t.Location() == time.UTC {
		return t, nil
	}
	return localToUTC(t, resolveOptions(opts))
}

func localToUTC(t time.Time, options *Options) (time.Time, error) {
	location := t.Location()
	if location == time.UTC {
		return t, nil
	}
	//located value carries its own offset
	if contains(wallCandidates(wallOf(t), location), t) {
		return t.UTC(), nil
	}
	instant, err := resolveWall(wallOf(t), location, options.DSTPolicy)
	if err != nil {
		return time.Time{}, err
	}
	return instant.UTC(), nil
}

// LocalToUTCFormat converts t to UTC and renders it with format, using the invariant culture unless one is supplied
func LocalToUTCFormat(t time.Time, format string, opts ...Option) (string, error) {
	options := resolveOptions(append(opts, WithFormat(format)))
	utc, err := localToUTC(t, options)
	if err != nil {
		return "", err
	}
	layout, err := options.layout()
	if err != nil {
		return "", fmt.Errorf("invalid format %q: %w", format, err)
	}
	return layout.Format(utc, options.culture(invariantCulture)), nil
}

// UTCToLocal returns t in the local location
func UTCToLocal(t time.Time, opts ...Option) time.Time {
	return t.In(resolveOptions(opts).Location)
}

// UTCToLocalFormat converts t to local time and renders it with format, using the current culture unless one is supplied
func UTCToLocalFormat(t time.Time, format string, opts ...Option) (string, error) {
	options := resolveOptions(append(opts, WithFormat(format)))
	layout, err := options.layout()
	if err != nil {
		return "", fmt.Errorf("invalid format %q: %w", format, err)
	}
	return layout.Format(t.In(options.Location), options.culture(locale.Current)), nil
}

// LocalToUTCPtr returns nil for nil t, otherwise LocalToUTC result
func LocalToUTCPtr(t *time.Time, opts ...Option) (*time.Time, error) {
	if t == nil {
		return nil, nil
	}
	utc, err := LocalToUTC(*t, opts...)
	if err != nil {
		return nil, err
	}
	return &utc, nil
}

// UTCToLocalPtr returns nil for nil t, otherwise UTCToLocal result
func UTCToLocalPtr(t *time.Time, opts ...Option) *time.Time {
	if t == nil {
		return nil
	}
	local := UTCToLocal(*t, opts...)
	return &local
}
