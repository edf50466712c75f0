package naming

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Placeholder is the rune every replaced character becomes.
const Placeholder = '_'

// ReplacementSet is the set of runes replaced by [Placeholder]. It is sorted and
// free of duplicates; the placeholder itself is never a member.
type ReplacementSet struct {
	runes []rune
}

// NewReplacementSet builds a set from every rune in chars. Duplicates and the
// placeholder are dropped.
func NewReplacementSet(chars string) ReplacementSet {
	seen := make(map[rune]bool, len(chars))
	var runes []rune
	for _, r := range chars {
		if r == Placeholder || seen[r] {
			continue
		}
		seen[r] = true
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return ReplacementSet{runes: runes}
}

// Contains reports whether r is replaced.
func (s ReplacementSet) Contains(r rune) bool {
	i := sort.Search(len(s.runes), func(i int) bool { return s.runes[i] >= r })
	return i < len(s.runes) && s.runes[i] == r
}

// Len returns the number of runes in the set.
func (s ReplacementSet) Len() int { return len(s.runes) }

// Runes returns a copy of the members in ascending order.
func (s ReplacementSet) Runes() []rune {
	out := make([]rune, len(s.runes))
	copy(out, s.runes)
	return out
}

// Apply replaces every member rune in s with the placeholder. Bytes that are
// not valid UTF-8 are copied through unchanged, so a name in a legacy encoding
// keeps its exact bytes.
func (s ReplacementSet) Apply(text string) string {
	if len(s.runes) == 0 || !s.matchesAny(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !(r == utf8.RuneError && size == 1) && s.Contains(r) {
			b.WriteRune(Placeholder)
		} else {
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

// matchesAny reports whether text holds at least one valid member rune.
func (s ReplacementSet) matchesAny(text string) bool {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !(r == utf8.RuneError && size == 1) && s.Contains(r) {
			return true
		}
		i += size
	}
	return false
}

// String renders the set for log output, e.g. {' ', '-', '.'}.
func (s ReplacementSet) String() string {
	parts := make([]string, len(s.runes))
	for i, r := range s.runes {
		parts[i] = strconv.QuoteRune(r)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
