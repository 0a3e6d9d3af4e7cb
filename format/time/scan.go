package time

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viant/timekit/locale"
)

// twoDigitYearMax is the last year represented by a two digit year
const twoDigitYearMax = 2049

type scanner struct {
	input   string
	pos     int
	culture *locale.Culture
}

// Parse parses value exactly matching the pattern, returned fields are not yet resolved
func (p *Pattern) Parse(value string, culture *locale.Culture) (Fields, error) {
	if culture == nil {
		culture = locale.Invariant
	}
	s := &scanner{input: value, culture: culture}
	var fields Fields
	designator := -1
	for i := 0; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		var err error
		switch tok.kind {
		case kindLiteral:
			if !s.matchFold(tok.text) {
				if tok.text == "." && i+1 < len(p.tokens) && p.tokens[i+1].kind == kindFractionTrim {
					i++
					continue
				}
				return fields, s.unexpected(fmt.Sprintf("%q", tok.text))
			}
		case kindDay:
			fields.Day, err = s.number(tok.width, 2, "day")
			fields.HasDay = true
		case kindDayName:
			var index int
			if index, err = s.name(dayNames(culture, tok.width == 3), "day name"); err == nil {
				fields.Weekday, fields.HasWeekday = time.Weekday(index), true
			}
		case kindFraction:
			var digits int
			if digits, err = s.number(tok.width, tok.width, "fraction"); err == nil {
				fields.Nanosecond = scaleFraction(digits, tok.width)
			}
		case kindFractionTrim:
			start := s.pos
			digits := s.digits(tok.width)
			if count := s.pos - start; count > 0 {
				fields.Nanosecond = scaleFraction(digits, count)
			}
		case kindEra:
			if !s.matchFold(culture.Era) {
				err = s.unexpected("era")
			}
		case kindHour12, kindHour24:
			fields.Hour, err = s.number(tok.width, 2, "hour")
		case kindZone:
			err = s.zone(&fields)
		case kindMinute:
			fields.Minute, err = s.number(tok.width, 2, "minute")
		case kindMonth:
			var month int
			month, err = s.number(tok.width, 2, "month")
			fields.Month, fields.HasMonth = time.Month(month), true
		case kindMonthName:
			var index int
			if index, err = s.name(monthNames(culture, tok.width == 3), "month name"); err == nil {
				fields.Month, fields.HasMonth = time.Month(index+1), true
			}
		case kindSecond:
			fields.Second, err = s.number(tok.width, 2, "second")
		case kindDesignator:
			designator, err = s.designator(tok.width)
		case kindYear:
			fields.Year, err = s.year(tok.width)
			fields.HasYear = true
		case kindOffset:
			err = s.offset(&fields)
		case kindDateSeparator:
			if !s.matchFold(culture.DateSeparator) {
				err = s.unexpected("date separator")
			}
		case kindTimeSeparator:
			if !s.matchFold(culture.TimeSeparator) {
				err = s.unexpected("time separator")
			}
		}
		if err != nil {
			return fields, err
		}
	}
	if s.pos < len(s.input) {
		return fields, fmt.Errorf("%w: trailing %q", ErrUnexpectedInput, s.input[s.pos:])
	}
	switch designator {
	case 0:
		fields.Hour %= 12
	case 1:
		fields.Hour = fields.Hour%12 + 12
	}
	return fields, nil
}

func (s *scanner) unexpected(expected string) error {
	if s.pos >= len(s.input) {
		return fmt.Errorf("%w: expected %v at end of input", ErrUnexpectedInput, expected)
	}
	return fmt.Errorf("%w: expected %v at position %d of %q", ErrUnexpectedInput, expected, s.pos, s.input)
}

func (s *scanner) matchFold(text string) bool {
	if text == "" {
		return true
	}
	end := s.pos + len(text)
	if end > len(s.input) || !strings.EqualFold(s.input[s.pos:end], text) {
		return false
	}
	s.pos = end
	return true
}

// digits consumes up to max digits
func (s *scanner) digits(max int) int {
	value := 0
	for count := 0; count < max && s.pos < len(s.input); count++ {
		ch := s.input[s.pos]
		if ch < '0' || ch > '9' {
			break
		}
		value = value*10 + int(ch-'0')
		s.pos++
	}
	return value
}

// number consumes between minDigits and maxDigits digits
func (s *scanner) number(minDigits, maxDigits int, what string) (int, error) {
	start := s.pos
	value := s.digits(maxDigits)
	if s.pos-start < minDigits {
		s.pos = start
		return 0, s.unexpected(what)
	}
	return value, nil
}

func (s *scanner) year(width int) (int, error) {
	switch width {
	case 1, 2:
		year, err := s.number(width, 2, "year")
		if err != nil {
			return 0, err
		}
		return expandYear(year), nil
	case 3:
		return s.number(3, 4, "year")
	}
	return s.number(width, width, "year")
}

func expandYear(year int) int {
	year += twoDigitYearMax / 100 * 100
	if year > twoDigitYearMax {
		year -= 100
	}
	return year
}

func scaleFraction(digits, count int) int {
	for ; count < 9; count++ {
		digits *= 10
	}
	return digits
}

// name matches the longest candidate, case-insensitively, returning its index
func (s *scanner) name(candidates []string, what string) (int, error) {
	matched, length := -1, 0
	rest := s.input[s.pos:]
	for i, candidate := range candidates {
		if candidate == "" || len(candidate) <= length || len(candidate) > len(rest) {
			continue
		}
		if strings.EqualFold(rest[:len(candidate)], candidate) {
			matched, length = i, len(candidate)
		}
	}
	if matched == -1 {
		return 0, s.unexpected(what)
	}
	s.pos += length
	return matched, nil
}

// designator returns 0 for AM, 1 for PM
func (s *scanner) designator(width int) (int, error) {
	candidates := []string{s.culture.AM, s.culture.PM}
	if width == 1 {
		for i, candidate := range candidates {
			if _, size := utf8.DecodeRuneInString(candidate); size > 0 {
				candidates[i] = candidate[:size]
			}
		}
	}
	return s.name(candidates, "AM/PM designator")
}

// zone matches optional "Z" or "+hh:mm" zone designator
func (s *scanner) zone(fields *Fields) error {
	if s.pos >= len(s.input) {
		return nil
	}
	switch s.input[s.pos] {
	case 'Z', 'z':
		s.pos++
		fields.Offset, fields.HasOffset = 0, true
	case '+', '-':
		return s.offset(fields)
	}
	return nil
}

// offset matches "+h", "+hh", "+hh:mm" or "+hhmm"
func (s *scanner) offset(fields *Fields) error {
	if s.pos >= len(s.input) || (s.input[s.pos] != '+' && s.input[s.pos] != '-') {
		return s.unexpected("UTC offset sign")
	}
	sign := 1
	if s.input[s.pos] == '-' {
		sign = -1
	}
	s.pos++
	hours, err := s.number(1, 2, "UTC offset hours")
	if err != nil {
		return err
	}
	minutes := 0
	if s.pos < len(s.input) && s.input[s.pos] == ':' {
		s.pos++
		if minutes, err = s.number(2, 2, "UTC offset minutes"); err != nil {
			return err
		}
	} else if start := s.pos; s.pos+1 < len(s.input) {
		if minutes, err = s.number(2, 2, "UTC offset minutes"); err != nil {
			s.pos, minutes = start, 0
		}
	}
	if minutes > 59 {
		return fmt.Errorf("%w: offset minutes %d out of range", ErrInvalidDate, minutes)
	}
	fields.Offset = sign * (hours*3600 + minutes*60)
	fields.HasOffset = true
	return nil
}

func monthNames(culture *locale.Culture, abbreviated bool) []string {
	if abbreviated {
		return culture.AbbreviatedMonths[:]
	}
	return culture.Months[:]
}

func dayNames(culture *locale.Culture, abbreviated bool) []string {
	if abbreviated {
		return culture.AbbreviatedDays[:]
	}
	return culture.Days[:]
}
