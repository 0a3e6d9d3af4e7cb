package time

import (
	"fmt"
	"strings"

	"github.com/viant/timekit/locale"
)

var invariantPatterns = []string{
	"yyyy'-'MM'-'dd'T'HH':'mm':'ss.FFFFFFFK",
	"yyyy'-'MM'-'dd HH':'mm':'ss.FFFFFFFK",
	"yyyy'-'MM'-'dd'T'HH':'mmK",
	"yyyy'-'MM'-'dd HH':'mmK",
	"yyyy'-'MM'-'dd",
	"yyyy'/'MM'/'dd HH':'mm':'ss",
	"yyyy'/'MM'/'dd",
	"M'/'d'/'yyyy H':'mm':'ss",
	"M'/'d'/'yyyy H':'mm",
	"M'/'d'/'yyyy",
	"ddd, dd MMM yyyy HH':'mm':'ss 'GMT'",
	"dd MMM yyyy HH':'mm':'ss",
	"dd MMM yyyy",
	"MMMM d, yyyy",
}

var invariantTimePatterns = []string{"HH':'mm':'ss.FFFFFFF", "HH':'mm"}

// ParseFreeForm parses value trying the culture date patterns first, then
// invariant ISO 8601 like and RFC 1123 patterns, and finally time only patterns.
func ParseFreeForm(value string, culture *locale.Culture) (Fields, error) {
	if culture == nil {
		culture = locale.Invariant
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return Fields{}, fmt.Errorf("%w: empty date", ErrUnexpectedInput)
	}
	var candidates []string
	candidates = append(candidates, culture.ParsePatterns()...)
	candidates = append(candidates, culture.TimePatterns()...)
	for _, source := range candidates {
		if fields, ok := tryParse(source, value, culture); ok {
			return fields, nil
		}
	}
	for _, source := range append(invariantPatterns, invariantTimePatterns...) {
		if fields, ok := tryParse(source, value, locale.Invariant); ok {
			if strings.HasSuffix(source, "'GMT'") {
				fields.Offset, fields.HasOffset = 0, true
			}
			return fields, nil
		}
	}
	return Fields{}, fmt.Errorf("%w: %q is not a recognized %v date", ErrUnexpectedInput, value, culture)
}

func tryParse(source, value string, culture *locale.Culture) (Fields, bool) {
	fields, err := mustPattern(source).Parse(value, culture)
	return fields, err == nil
}
