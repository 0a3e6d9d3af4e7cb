package timekit

import (
	"time"

	"github.com/jonboulle/clockwork"
	ftime "github.com/viant/timekit/format/time"
	"github.com/viant/timekit/locale"
	"golang.org/x/text/language"
)

// Option configures conversion
type Option interface{ apply(*Options) }

// Options represents conversion settings, zero values resolve to documented defaults
type Options struct {
	//Format is used for parsing and rendering, empty means free form parsing
	Format string
	//Dialect defines Format syntax, .NET custom and standard format strings by default
	Dialect ftime.Dialect
	//Culture defaults to the caller's current culture, or Invariant where stated
	Culture *locale.Culture
	//Location is the local time zone, time.Local by default
	Location *time.Location
	//DSTPolicy resolves skipped and repeated wall clock readings
	DSTPolicy DSTPolicy
	//Clock supplies "now", real clock by default
	Clock clockwork.Clock
}

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithFormat sets parse/render format
func WithFormat(format string) Option {
	return optionFn(func(o *Options) { o.Format = format })
}

// WithDialect sets format syntax
func WithDialect(dialect ftime.Dialect) Option {
	return optionFn(func(o *Options) { o.Dialect = dialect })
}

// WithLocale sets culture closest to supplied language tag
func WithLocale(tag language.Tag) Option {
	return optionFn(func(o *Options) { o.Culture = locale.Lookup(tag) })
}

// WithCulture sets culture
func WithCulture(culture *locale.Culture) Option {
	return optionFn(func(o *Options) { o.Culture = culture })
}

// WithLocation sets local time zone
func WithLocation(location *time.Location) Option {
	return optionFn(func(o *Options) { o.Location = location })
}

// WithDSTPolicy sets daylight saving resolution policy
func WithDSTPolicy(policy DSTPolicy) Option {
	return optionFn(func(o *Options) { o.DSTPolicy = policy })
}

// WithClock sets clock supplying current time
func WithClock(clock clockwork.Clock) Option {
	return optionFn(func(o *Options) { o.Clock = clock })
}

func resolveOptions(opts []Option) *Options {
	result := &Options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(result)
	}
	if result.Location == nil {
		result.Location = time.Local
	}
	if result.Clock == nil {
		result.Clock = clockwork.NewRealClock()
	}
	return result
}

func (o *Options) culture(fallback func() *locale.Culture) *locale.Culture {
	if o.Culture != nil {
		return o.Culture
	}
	return fallback()
}

func invariantCulture() *locale.Culture {
	return locale.Invariant
}

func (o *Options) layout() (ftime.Layout, error) {
	return ftime.Compile(o.Format, o.Dialect)
}
