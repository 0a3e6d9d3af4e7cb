package timekit

import (
	"fmt"
	"strings"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/viant/timekit/locale"
)

// Zone represents provenance of a time value
type Zone int

const (
	//ZoneLocal marks wall clock reading in the value's location
	ZoneLocal Zone = iota
	//ZoneUTC marks UTC reading
	ZoneUTC
)

func (z Zone) String() string {
	if z == ZoneUTC {
		return "utc"
	}
	return "local"
}

// ParseZone parses "utc" or "local"
func ParseZone(name string) (Zone, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utc", "z":
		return ZoneUTC, nil
	case "local", "":
		return ZoneLocal, nil
	}
	return ZoneLocal, fmt.Errorf("unsupported zone: %q", name)
}

// Stamp represents a time value tagged with its zone provenance
type Stamp struct {
	Time time.Time
	Zone Zone
}

// NewLocal returns local stamp
func NewLocal(t time.Time) Stamp {
	return Stamp{Time: t, Zone: ZoneLocal}
}

// NewUTC returns UTC stamp
func NewUTC(t time.Time) Stamp {
	return Stamp{Time: t.UTC(), Zone: ZoneUTC}
}

// IsZero returns true if time is zero
func (s Stamp) IsZero() bool {
	return s.Time.IsZero()
}

// ToUTC returns UTC stamp of the same instant
func (s Stamp) ToUTC(opts ...Option) (Stamp, error) {
	if s.Zone == ZoneUTC {
		return s, nil
	}
	utc, err := localToUTC(s.Time, resolveOptions(opts))
	if err != nil {
		return s, err
	}
	return NewUTC(utc), nil
}

// ToLocal returns local stamp of the same instant
func (s Stamp) ToLocal(opts ...Option) Stamp {
	if s.Zone == ZoneLocal {
		return s
	}
	return NewLocal(UTCToLocal(s.Time, opts...))
}

// ISO8601 renders stamp as yyyy-MM-ddTHH:mm:ssZ
func (s Stamp) ISO8601(opts ...Option) (string, error) {
	utc, err := s.ToUTC(opts...)
	if err != nil {
		return "", err
	}
	return utc.Time.Format(ISO8601Layout), nil
}

// Unix returns seconds elapsed since 1970-01-01T00:00:00Z
func (s Stamp) Unix(opts ...Option) (int64, error) {
	utc, err := s.ToUTC(opts...)
	if err != nil {
		return 0, err
	}
	return utc.Time.Unix(), nil
}

// Format renders stamp in its own zone; UTC stamps use the invariant culture, local ones the current culture
func (s Stamp) Format(format string, opts ...Option) (string, error) {
	options := resolveOptions(append(opts, WithFormat(format)))
	layout, err := options.layout()
	if err != nil {
		return "", fmt.Errorf("invalid format %q: %w", format, err)
	}
	fallback := locale.Current
	if s.Zone == ZoneUTC {
		fallback = invariantCulture
	}
	return layout.Format(s.Time, options.culture(fallback)), nil
}

// Difference describes distance from now, measured in the stamp zone
func (s Stamp) Difference(opts ...Option) (string, error) {
	if s.Zone == ZoneUTC {
		return DifferenceWithUTC(s.Time, opts...)
	}
	return DifferenceWithLocal(s.Time, opts...), nil
}

func (s Stamp) String() string {
	return s.Time.Format(time.RFC3339Nano) + " " + s.Zone.String()
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (s *Stamp) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("time", s.Time.Format(time.RFC3339Nano))
	enc.StringKey("zone", s.Zone.String())
}

// IsNil implements gojay.MarshalerJSONObject
func (s *Stamp) IsNil() bool {
	return s == nil
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject
func (s *Stamp) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var text string
	switch key {
	case "time":
		if err := dec.String(&text); err != nil {
			return err
		}
		ts, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return fmt.Errorf("invalid stamp time %q: %w", text, err)
		}
		s.Time = ts
	case "zone":
		if err := dec.String(&text); err != nil {
			return err
		}
		zone, err := ParseZone(text)
		if err != nil {
			return err
		}
		s.Zone = zone
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject
func (s *Stamp) NKeys() int {
	return 2
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(&s)
}

func (s *Stamp) UnmarshalJSON(data []byte) error {
	return gojay.UnmarshalJSONObject(data, s)
}
