package curriculum

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hakjeomlab/curricheck-backend/internal/textnorm"
)

// CourseLevel is the parsed form of a leveled course name such as "물리학Ⅱ":
// the base name shared by the sequence and the 1-based level.
type CourseLevel struct {
	Base  string
	Level int
}

// unicodeNumerals covers the single-character Roman numerals Ⅰ–Ⅹ. These are
// matched on the raw input because NFKC decomposes them into ASCII letters.
var unicodeNumerals = map[rune]int{
	'Ⅰ': 1, 'Ⅱ': 2, 'Ⅲ': 3, 'Ⅳ': 4, 'Ⅴ': 5,
	'Ⅵ': 6, 'Ⅶ': 7, 'Ⅷ': 8, 'Ⅸ': 9, 'Ⅹ': 10,
}

// asciiNumerals maps ASCII Roman numeral suffixes for 1–10, ordered longest
// first so "물리학VIII" resolves to level 8 and is never mis-read as a name
// ending in "I".
var asciiNumerals = []struct {
	lit   string
	level int
}{
	{"VIII", 8},
	{"III", 3}, {"VII", 7},
	{"II", 2}, {"IV", 4}, {"VI", 6}, {"IX", 9},
	{"I", 1}, {"V", 5}, {"X", 10},
}

// ParseLevel extracts the base name and hierarchy level from a course name
// ending in a Roman numeral. The match anchors at the end of the string;
// numerals outside Ⅰ–Ⅹ / I–X, or a match that would leave an empty base,
// report no level.
func ParseLevel(name string) (CourseLevel, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return CourseLevel{}, false
	}

	runes := []rune(trimmed)
	if level, ok := unicodeNumerals[runes[len(runes)-1]]; ok {
		base := textnorm.NormalizeName(string(runes[:len(runes)-1]))
		if base == "" {
			return CourseLevel{}, false
		}
		return CourseLevel{Base: base, Level: level}, true
	}

	s := strings.TrimSpace(norm.NFKC.String(trimmed))
	for _, n := range asciiNumerals {
		if !strings.HasSuffix(s, n.lit) {
			continue
		}
		base := textnorm.NormalizeName(strings.TrimSuffix(s, n.lit))
		if base == "" {
			return CourseLevel{}, false
		}
		return CourseLevel{Base: base, Level: n.level}, true
	}
	return CourseLevel{}, false
}

// levelNumeral renders a level back as its display numeral for violation
// messages.
func levelNumeral(level int) string {
	for r, l := range unicodeNumerals {
		if l == level {
			return string(r)
		}
	}
	return ""
}
