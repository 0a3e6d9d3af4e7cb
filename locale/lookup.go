package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Cultures lists built-in cultures
var Cultures = []*Culture{EnglishUS, EnglishGB, German, French, Spanish, Italian, Dutch, PortugueseBR}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	var tags = make([]language.Tag, 0, len(Cultures))
	for _, culture := range Cultures {
		tags = append(tags, culture.Tag)
	}
	return language.NewMatcher(tags)
}

// Lookup returns the closest built-in culture for supplied tag, or Invariant when none matches
func Lookup(tag language.Tag) *Culture {
	if tag == language.Und {
		return Invariant
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(Cultures) {
		return Invariant
	}
	return Cultures[index]
}

// Parse looks up a culture by name, e.g. "de-DE", "en_GB.UTF-8" or "invariant"
func Parse(name string) (*Culture, error) {
	name = normalize(name)
	switch strings.ToLower(name) {
	case "", "invariant", "c", "posix":
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	return Lookup(tag), nil
}

// Current returns the culture of the calling process, taken from LC_ALL, LC_TIME or LANG
func Current() *Culture {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := os.Getenv(key)
		if value == "" {
			continue
		}
		culture, err := Parse(value)
		if err != nil {
			continue
		}
		return culture
	}
	return Invariant
}

// normalize converts POSIX locale names (en_US.UTF-8@euro) to BCP 47 form
func normalize(name string) string {
	name = strings.TrimSpace(name)
	if index := strings.IndexAny(name, ".@"); index != -1 {
		name = name[:index]
	}
	return strings.ReplaceAll(name, "_", "-")
}
