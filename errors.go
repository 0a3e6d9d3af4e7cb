package timekit

import (
	"errors"
	"fmt"
	"time"
)

var (
	//ErrNonexistentTime reports wall clock reading skipped by a daylight saving transition
	ErrNonexistentTime = errors.New("nonexistent local time")
	//ErrAmbiguousTime reports wall clock reading repeated by a daylight saving transition
	ErrAmbiguousTime = errors.New("ambiguous local time")
)

// ParseError reports text that does not match requested or inferred format,
// or describes invalid calendar date or time
type ParseError struct {
	Value  string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("cannot parse %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %q: %v", e.Value, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConversionError reports local wall clock reading that cannot be resolved to an instant
type ConversionError struct {
	Wall     time.Time
	Location string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %v in %v to UTC: %v", e.Wall.Format("2006-01-02 15:04:05.999999999"), e.Location, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
