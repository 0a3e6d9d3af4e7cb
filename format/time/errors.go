package time

import "errors"

var (
	//ErrInvalidPattern reports malformed format string
	ErrInvalidPattern = errors.New("invalid format pattern")
	//ErrUnexpectedInput reports input not matching format
	ErrUnexpectedInput = errors.New("unexpected input")
	//ErrInvalidDate reports well-formed input describing a non-existing calendar date or time
	ErrInvalidDate = errors.New("invalid date")
	//ErrUnsupported reports operation not supported by a dialect
	ErrUnsupported = errors.New("unsupported")
)
