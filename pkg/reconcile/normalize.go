package reconcile

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// descriptorSuffixes are trailing descriptor tokens stripped from keys.
// Longer phrases come first so "wildlife park" wins over a bare "park"
// ever being added here.
var descriptorSuffixes = []string{
	"sea life centre",
	"sea life center",
	"safari park",
	"wildlife park",
	"animal park",
	"aquarium",
	"zoo",
}

// orgPrefix matches a leading organizational abbreviation such as "ZSL "
// or "RZS " on the raw, still-cased name.
var orgPrefix = regexp.MustCompile(`^[A-Z]{3} `)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a free-text zoo name into a lookup key.
// The same place is printed differently across sources ("ZSL London Zoo",
// "London Zoo", "London zoo "), so comparison happens on a lowercase,
// suffix-stripped form. The result is for matching only and is never
// displayed; canonical zoos keep their original-cased name.
//
// Normalize is pure and idempotent.
func Normalize(raw string) string {
	s := orgPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
	s = strings.ToLower(s)
	s = foldDiacritics(s)
	s = strings.NewReplacer("‘", "'", "’", "'").Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	s = stripDescriptorSuffixes(s)
	s = dropNoiseTokens(s)
	// Dropping a trailing noise token can expose another descriptor
	// suffix, so strip once more to keep the result a fixpoint.
	s = stripDescriptorSuffixes(s)
	for strings.HasPrefix(s, "the ") {
		s = strings.TrimPrefix(s, "the ")
	}

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// stripDescriptorSuffixes removes trailing descriptor phrases until none
// remain, so "x safari park zoo" and "x" compare equal. A name that is
// nothing but a descriptor ("Aquarium") is left alone.
func stripDescriptorSuffixes(s string) string {
	for {
		stripped := false
		for _, suffix := range descriptorSuffixes {
			if rest, ok := strings.CutSuffix(s, " "+suffix); ok {
				s = strings.TrimSpace(rest)
				stripped = true
				break
			}
		}
		if !stripped {
			return s
		}
	}
}

// dropNoiseTokens removes the standalone words "house" and "wild", which
// vary inconsistently between sources for the same place ("Manor House"
// vs "Manor"). Only isolated tokens are removed, never substrings of
// other words.
func dropNoiseTokens(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if f == "house" || f == "wild" {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// foldDiacritics strips combining marks so "Café" and "Cafe" compare equal.
func foldDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
