// Package textnorm canonicalizes the inconsistently formatted course and
// subject-group labels found in exported course-selection spreadsheets.
// Every function is pure and idempotent.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Separator is the canonical middle-dot separator used inside compound
// subject-group labels such as "기술·가정".
const Separator = '·' // U+00B7

// separatorVariants lists the middle-dot lookalikes that appear in real
// spreadsheets. U+119E is included because NFKC maps the Hangul interpunct
// U+318D onto it, so it must be unified after normalization as well.
var separatorVariants = []rune{
	'ㆍ', // U+318D Hangul letter araea, common Korean interpunct
	'ᆞ', // U+119E Hangul jungseong araea, NFKC image of U+318D
	'・', // U+30FB katakana middle dot
	'･', // U+FF65 halfwidth katakana middle dot
	'‧', // U+2027 hyphenation point
	'•', // U+2022 bullet
}

var (
	sepSpaceRE = regexp.MustCompile(`\s*([·/])\s*`)
	parenRE    = regexp.MustCompile(`\([^()]*\)`)
)

// Normalize returns the canonical form of s:
//
//  1. NFKC compatibility normalization (fullwidth/compatibility variants collapse)
//  2. middle-dot lookalikes unified to '·'
//  3. fullwidth slash unified to '/'
//  4. whitespace around '·' and '/' removed
//  5. whitespace inside parenthesized spans removed
//
// No other character class is altered. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)

	s = strings.Map(func(r rune) rune {
		for _, v := range separatorVariants {
			if r == v {
				return Separator
			}
		}
		if r == '／' { // U+FF0F, also covered by NFKC; kept for non-NFKC callers
			return '/'
		}
		return r
	}, s)

	s = sepSpaceRE.ReplaceAllString(s, "$1")

	s = parenRE.ReplaceAllStringFunc(s, StripSpace)

	return s
}

// NormalizeName is the identity form used when course names are compared for
// exact equality (prerequisite keys, Korean-History variants, the validator's
// held-course set). It is Normalize plus outer trimming; case and the
// canonical separators are preserved.
func NormalizeName(s string) string {
	return strings.TrimSpace(Normalize(s))
}

// StripSpace removes every whitespace rune. Used only for equivalence
// comparison of subject-group labels, never as a returned form.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			return -1
		}
		return r
	}, s)
}
