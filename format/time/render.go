package time

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viant/timekit/locale"
)

// Format renders t with supplied culture
func (p *Pattern) Format(t time.Time, culture *locale.Culture) string {
	if culture == nil {
		culture = locale.Invariant
	}
	var out strings.Builder
	for _, tok := range p.tokens {
		switch tok.kind {
		case kindLiteral:
			out.WriteString(tok.text)
		case kindDay:
			writeNumber(&out, t.Day(), tok.width)
		case kindDayName:
			out.WriteString(culture.DayName(t.Weekday(), tok.width == 3))
		case kindFraction:
			out.WriteString(fraction(t.Nanosecond(), tok.width))
		case kindFractionTrim:
			digits := strings.TrimRight(fraction(t.Nanosecond(), tok.width), "0")
			if digits == "" {
				trimDecimalPoint(&out)
				continue
			}
			out.WriteString(digits)
		case kindEra:
			out.WriteString(culture.Era)
		case kindHour12:
			hour := t.Hour() % 12
			if hour == 0 {
				hour = 12
			}
			writeNumber(&out, hour, tok.width)
		case kindHour24:
			writeNumber(&out, t.Hour(), tok.width)
		case kindZone:
			if t.Location() == time.UTC {
				out.WriteByte('Z')
				continue
			}
			_, offset := t.Zone()
			writeOffset(&out, offset, 3)
		case kindMinute:
			writeNumber(&out, t.Minute(), tok.width)
		case kindMonth:
			writeNumber(&out, int(t.Month()), tok.width)
		case kindMonthName:
			out.WriteString(culture.MonthName(t.Month(), tok.width == 3))
		case kindSecond:
			writeNumber(&out, t.Second(), tok.width)
		case kindDesignator:
			designator := culture.Designator(t.Hour())
			if tok.width == 1 && designator != "" {
				_, size := utf8.DecodeRuneInString(designator)
				designator = designator[:size]
			}
			out.WriteString(designator)
		case kindYear:
			year := t.Year()
			if tok.width <= 2 {
				year %= 100
			}
			writeNumber(&out, year, tok.width)
		case kindOffset:
			_, offset := t.Zone()
			writeOffset(&out, offset, tok.width)
		case kindDateSeparator:
			out.WriteString(culture.DateSeparator)
		case kindTimeSeparator:
			out.WriteString(culture.TimeSeparator)
		}
	}
	return out.String()
}

func writeNumber(out *strings.Builder, value, width int) {
	text := strconv.Itoa(value)
	for i := len(text); i < width; i++ {
		out.WriteByte('0')
	}
	out.WriteString(text)
}

func fraction(nanosecond, width int) string {
	text := strconv.Itoa(nanosecond)
	text = strings.Repeat("0", 9-len(text)) + text
	return text[:width]
}

// trimDecimalPoint removes decimal point preceding an empty F fraction
func trimDecimalPoint(out *strings.Builder) {
	text := out.String()
	if strings.HasSuffix(text, ".") {
		out.Reset()
		out.WriteString(text[:len(text)-1])
	}
}

// writeOffset writes UTC offset as "+h" (width 1), "+hh" (width 2) or "+hh:mm" (width 3)
func writeOffset(out *strings.Builder, offset, width int) {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	out.WriteByte(sign)
	hours, minutes := offset/3600, (offset%3600)/60
	switch width {
	case 1:
		writeNumber(out, hours, 1)
	case 2:
		writeNumber(out, hours, 2)
	default:
		writeNumber(out, hours, 2)
		out.WriteByte(':')
		writeNumber(out, minutes, 2)
	}
}
