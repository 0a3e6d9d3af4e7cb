package time

import (
	"fmt"
	"strings"
	"sync"
)

type kind int

const (
	kindLiteral kind = iota
	kindDay
	kindDayName
	kindFraction
	kindFractionTrim
	kindEra
	kindHour12
	kindHour24
	kindZone
	kindMinute
	kindMonth
	kindMonthName
	kindSecond
	kindDesignator
	kindYear
	kindOffset
	kindDateSeparator
	kindTimeSeparator
)

const maxFractionDigits = 7

type token struct {
	kind  kind
	width int
	text  string
}

// Pattern represents compiled custom date and time format, i.e. "dd/MM/yyyy HH:mm"
type Pattern struct {
	source string
	tokens []token
}

var patterns sync.Map // map[string]*Pattern

// CompilePattern compiles a custom format pattern, compiled patterns are cached
func CompilePattern(source string) (*Pattern, error) {
	if cached, ok := patterns.Load(source); ok {
		return cached.(*Pattern), nil
	}
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	pattern := &Pattern{source: source, tokens: tokens}
	patterns.Store(source, pattern)
	return pattern, nil
}

func mustPattern(source string) *Pattern {
	pattern, err := CompilePattern(source)
	if err != nil {
		panic(err)
	}
	return pattern
}

func (p *Pattern) String() string {
	return p.source
}

func tokenize(source string) ([]token, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	var result []token
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			result = append(result, token{kind: kindLiteral, text: literal.String()})
			literal.Reset()
		}
	}
	emit := func(t token) {
		flush()
		result = append(result, t)
	}
	runes := []rune(source)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case 'd', 'f', 'F', 'g', 'h', 'H', 'K', 'm', 'M', 's', 't', 'y', 'z':
			n := repeat(runes, i)
			t, err := specifier(ch, n)
			if err != nil {
				return nil, err
			}
			emit(t)
			i += n - 1
		case ':':
			emit(token{kind: kindTimeSeparator})
		case '/':
			emit(token{kind: kindDateSeparator})
		case '\'', '"':
			end := i + 1
			for ; end < len(runes) && runes[end] != ch; end++ {
				if runes[end] == '\\' && end+1 < len(runes) {
					end++
				}
				literal.WriteRune(runes[end])
			}
			if end >= len(runes) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidPattern, source)
			}
			i = end
		case '\\':
			if i+1 >= len(runes) {
				return nil, fmt.Errorf("%w: trailing escape in %q", ErrInvalidPattern, source)
			}
			i++
			literal.WriteRune(runes[i])
		case '%':
			if i+1 >= len(runes) || runes[i+1] == '%' {
				return nil, fmt.Errorf("%w: misplaced %% in %q", ErrInvalidPattern, source)
			}
		default:
			literal.WriteRune(ch)
		}
	}
	flush()
	return result, nil
}

func repeat(runes []rune, i int) int {
	n := 1
	for i+n < len(runes) && runes[i+n] == runes[i] {
		n++
	}
	return n
}

func specifier(ch rune, n int) (token, error) {
	switch ch {
	case 'd':
		if n >= 3 {
			return token{kind: kindDayName, width: min(n, 4)}, nil
		}
		return token{kind: kindDay, width: n}, nil
	case 'f', 'F':
		if n > maxFractionDigits {
			return token{}, fmt.Errorf("%w: too many fraction digits %q", ErrInvalidPattern, strings.Repeat(string(ch), n))
		}
		if ch == 'F' {
			return token{kind: kindFractionTrim, width: n}, nil
		}
		return token{kind: kindFraction, width: n}, nil
	case 'g':
		return token{kind: kindEra}, nil
	case 'h':
		return token{kind: kindHour12, width: min(n, 2)}, nil
	case 'H':
		return token{kind: kindHour24, width: min(n, 2)}, nil
	case 'K':
		return token{kind: kindZone}, nil
	case 'm':
		return token{kind: kindMinute, width: min(n, 2)}, nil
	case 'M':
		if n >= 3 {
			return token{kind: kindMonthName, width: min(n, 4)}, nil
		}
		return token{kind: kindMonth, width: n}, nil
	case 's':
		return token{kind: kindSecond, width: min(n, 2)}, nil
	case 't':
		return token{kind: kindDesignator, width: min(n, 2)}, nil
	case 'y':
		return token{kind: kindYear, width: n}, nil
	case 'z':
		return token{kind: kindOffset, width: min(n, 3)}, nil
	}
	return token{}, fmt.Errorf("%w: unknown specifier %q", ErrInvalidPattern, ch)
}
