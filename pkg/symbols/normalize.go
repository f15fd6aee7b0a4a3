package symbols

import (
	"strings"
	"unicode"
)

// Delimiter joins tokens in canonical symbol names ("heat_exchanger").
const Delimiter = "_"

// stopwords are tokens that carry no equipment identity. Articles plus the
// generic plant vocabulary that shows up in tag names ("Main Cooling Unit",
// "Spare Pump Station") without narrowing the equipment type.
var stopwords = map[string]struct{}{
	"a":       {},
	"an":      {},
	"the":     {},
	"of":      {},
	"for":     {},
	"and":     {},
	"unit":    {},
	"system":  {},
	"station": {},
	"main":    {},
	"aux":     {},
	"spare":   {},
	"area":    {},
	"section": {},
	"line":    {},
}

// Normalize converts a free-text label to its canonical matching form:
// camel-case boundaries become token breaks, everything is lower-cased,
// runs of non-alphanumerics collapse to a single break, stopwords and
// tag-style tokens are dropped, and surviving tokens are joined with
// [Delimiter].
//
// Tag-style tokens are ones containing digits ("A1", "P101"): equipment
// tag numbers identify an instance, not a type, so "Ball Valve A1"
// normalizes to "ball_valve".
//
// Empty input or input consisting only of stopwords normalizes to "",
// which the matcher treats as "no match possible". Normalize is
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(label string) string {
	tokens := tokenize(label)

	kept := tokens[:0]
	for _, tok := range tokens {
		if _, skip := stopwords[tok]; skip || hasDigit(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, Delimiter)
}

func hasDigit(tok string) bool {
	for _, r := range tok {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Canonicalize converts a human-readable catalog name ("Ball Valve") to
// the canonical delimiter-joined lower-case form ("ball_valve"). Unlike
// [Normalize] it keeps stopwords: catalog names are authoritative and must
// round-trip unchanged.
func Canonicalize(name string) string {
	return strings.Join(tokenize(name), Delimiter)
}

// tokenize splits a label into lower-case alphanumeric tokens. A boundary
// is inserted between a lower-case rune and the upper-case rune that
// follows it, so "feedPump" splits the same as "feed pump".
func tokenize(s string) []string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return strings.FieldsFunc(b.String(), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Tokens splits a canonical (delimiter-joined) name into its tokens.
// Returns nil for the empty string.
func Tokens(canonical string) []string {
	if canonical == "" {
		return nil
	}
	return strings.Split(canonical, Delimiter)
}
