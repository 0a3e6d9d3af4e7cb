package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/timekit"
	ftime "github.com/viant/timekit/format/time"
	"github.com/viant/timekit/locale"
)

const (
	TagName = "format"
)

// Tag represents time formatting directives of a struct field, i.e.
// `format:"dateFormat=YYYY-MM-DD,lang=de,zone=utc"`
type Tag struct {
	Name string

	//DateFormat uses ISO 2022-07-15 syntax, TimeLayout is derived from it
	DateFormat string
	TimeLayout string
	Strftime   string
	//Pattern uses .NET custom or standard format syntax, i.e. "dd MMM yyyy" or "G"
	Pattern string

	Language string
	Zone     string

	Omitempty bool
	Ignore    bool

	culture *locale.Culture
}

func (t *Tag) update(key string, value string, strictMode bool) error {
	switch strings.ToLower(key) {
	case "name":
		t.Name = value
	case "dateformat", "isodateformat", "iso20220715":
		t.DateFormat = value
		t.TimeLayout = ftime.DateFormatToTimeLayout(value)
	case "timelayout", "datelayout", "rfc3339":
		t.TimeLayout = value
	case "strftime":
		t.Strftime = value
	case "pattern", "format":
		t.Pattern = value
	case "lang", "language", "locale", "culture":
		culture, err := locale.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid %v: %w", key, err)
		}
		t.Language = value
		t.culture = culture
	case "zone", "tz":
		if _, err := timekit.ParseZone(value); err != nil {
			return err
		}
		t.Zone = strings.ToLower(value)
	case "":
		if value == "" {
			return nil
		}
		return t.update(value, "", false)
	case "omitempty":
		t.Omitempty = true
	case "ignore", "-", "transient":
		t.Ignore = true
	default:
		if strictMode {
			return fmt.Errorf("unknown key %v", key)
		}
	}
	return nil
}

// Parse parses format tag, names lists fallback tags read in non strict mode
func Parse(tag reflect.StructTag, names ...string) (*Tag, error) {
	ret := &Tag{}

	names = append([]string{TagName}, names...)
	for i, name := range names {
		encoded := tag.Get(name)
		if encoded == "" {
			continue
		}
		switch encoded {
		case "-":
			ret.Ignore = true
		case ",omitempty":
			ret.Omitempty = true
		}
		cursor := parsly.NewCursor("", []byte(encoded), 0)
		for cursor.Pos < len(cursor.Input) {
			pos := cursor.Pos
			key, value := matchPair(cursor)
			if err := ret.update(key, value, i == 0); err != nil {
				return nil, fmt.Errorf("invalid %v tag %q: %w", name, encoded, err)
			}
			if cursor.Pos == pos {
				break
			}
		}
	}
	return ret, nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	key := ""
	value := ""
	match := cursor.MatchAny(quotedValueMatcher, pairTerminatorMatcher)
	switch match.Code {
	case quotedValueToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(pairTerminatorMatcher)
	case pairTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	if index := strings.Index(value, "="); index != -1 {
		key = value[:index]
		value = value[index+1:]
	}
	return key, value
}
