package reconcile

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/openfauna/zoolist/pkg/errors"
)

// MatchConfig holds the tunable thresholds for similarity matching.
// The defaults were chosen empirically against the UK zoo corpus and are
// deliberately configurable rather than hard-coded; they have no derived
// justification and may need retuning for other datasets.
type MatchConfig struct {
	// MinContainmentLength is the minimum length of the shorter key
	// before substring containment counts as a match. Guards short
	// generic tokens like "manor" from matching unrelated longer names.
	MinContainmentLength int

	// MaxEditDistance is the largest Levenshtein distance treated as a
	// spelling variant of the same name.
	MaxEditDistance int

	// EditDistanceKeyLimit disables the edit-distance rule for keys at or
	// above this length; long names are compared structurally instead.
	EditDistanceKeyLimit int

	// MinFirstWordLength is the minimum first-token length before an
	// equal first word counts as a match. Guards common leading words
	// such as "royal".
	MinFirstWordLength int
}

// DefaultMatchConfig returns the thresholds used by the standard pipeline.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MinContainmentLength: 8,
		MaxEditDistance:      2,
		EditDistanceKeyLimit: 15,
		MinFirstWordLength:   5,
	}
}

// Validate checks that the thresholds are usable.
func (c MatchConfig) Validate() error {
	if c.MinContainmentLength <= 0 {
		return errors.NewValidationError("min_containment_length", c.MinContainmentLength, "must be positive")
	}
	if c.MaxEditDistance < 0 {
		return errors.NewValidationError("max_edit_distance", c.MaxEditDistance, "must not be negative")
	}
	if c.EditDistanceKeyLimit <= 0 {
		return errors.NewValidationError("edit_distance_key_limit", c.EditDistanceKeyLimit, "must be positive")
	}
	if c.MinFirstWordLength <= 0 {
		return errors.NewValidationError("min_first_word_length", c.MinFirstWordLength, "must be positive")
	}
	return nil
}

// Matcher decides whether two normalized keys refer to the same zoo.
type Matcher struct {
	cfg MatchConfig
}

// NewMatcher creates a Matcher with the given thresholds.
func NewMatcher(cfg MatchConfig) *Matcher {
	return &Matcher{cfg: cfg}
}

// FindMatch scans existing keys in insertion order and returns the first
// key the candidate matches, or false when the candidate is a new zoo.
// Scanning in insertion order keeps results reproducible for a given
// input stream order.
func (m *Matcher) FindMatch(candidate string, existing []string) (string, bool) {
	for _, key := range existing {
		if m.Matches(candidate, key) {
			return key, true
		}
	}
	return "", false
}

// Matches applies the rule chain to a single pair of keys, first hit wins.
func (m *Matcher) Matches(a, b string) bool {
	return exactMatch(a, b) ||
		m.containmentMatch(a, b) ||
		m.editDistanceMatch(a, b) ||
		m.firstWordMatch(a, b)
}

// exactMatch: the keys are identical.
func exactMatch(a, b string) bool {
	return a == b
}

// containmentMatch: one key contains the other, and the shorter key is
// long enough for containment to be meaningful.
func (m *Matcher) containmentMatch(a, b string) bool {
	shorter, longer := a, b
	if utf8.RuneCountInString(shorter) > utf8.RuneCountInString(longer) {
		shorter, longer = longer, shorter
	}
	return utf8.RuneCountInString(shorter) >= m.cfg.MinContainmentLength &&
		strings.Contains(longer, shorter)
}

// editDistanceMatch: two short keys within a small Levenshtein distance
// are treated as spelling variants. Only applies below the key-length
// limit; for long names a 2-edit budget is too easy to hit by accident.
func (m *Matcher) editDistanceMatch(a, b string) bool {
	if utf8.RuneCountInString(a) >= m.cfg.EditDistanceKeyLimit ||
		utf8.RuneCountInString(b) >= m.cfg.EditDistanceKeyLimit {
		return false
	}
	return levenshtein.ComputeDistance(a, b) <= m.cfg.MaxEditDistance
}

// firstWordMatch: the keys share a sufficiently long first word, e.g.
// "paignton" in "paignton" vs "paignton south devon". Known to false
// positive on common first words; the length guard only mitigates.
func (m *Matcher) firstWordMatch(a, b string) bool {
	fa := firstWord(a)
	fb := firstWord(b)
	return fa != "" && fa == fb &&
		utf8.RuneCountInString(fa) >= m.cfg.MinFirstWordLength
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
