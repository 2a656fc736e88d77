// internal/search/types.go
//
// Value types for a search session.
// Defines:
//   - Summary: the letters still possible at one position.

package search

import "strings"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Summary is the set of letters that appear at one position (1..5) across the
// current candidates. It is a value: narrowing the engine produces new
// summaries and never touches ones already handed out.
type Summary struct {
	Index   int
	letters [26]bool
	count   int
}

func newSummary(index int, candidates []string) Summary {
	s := Summary{Index: index}
	for _, w := range candidates {
		j := w[index-1] - 'a'
		if !s.letters[j] {
			s.letters[j] = true
			s.count++
		}
	}
	return s
}

// Contains reports whether letter (case-insensitive) is still possible here.
func (s Summary) Contains(letter byte) bool {
	j := lower(letter) - 'a'
	return j < 26 && s.letters[j]
}

// Len is the number of distinct letters still possible.
func (s Summary) Len() int { return s.count }

// Letters returns the possible letters in alphabetical order.
func (s Summary) Letters() string {
	var b strings.Builder
	for j, ok := range s.letters {
		if ok {
			b.WriteByte(alphabet[j])
		}
	}
	return b.String()
}

// String renders the summary compactly:
//
//	all 26  -> abcdefghijklmnopqrstuvwxyz
//	one     -> E
//	two     -> [ae]
//	3..5    -> a,e,o
//	more    -> alphabet with impossible letters as '.'
func (s Summary) String() string {
	switch {
	case s.count == 26:
		return alphabet
	case s.count == 1:
		return strings.ToUpper(s.Letters())
	case s.count == 2:
		return "[" + s.Letters() + "]"
	case s.count < 6:
		return strings.Join(strings.Split(s.Letters(), ""), ",")
	}
	var b strings.Builder
	for j, ok := range s.letters {
		if ok {
			b.WriteByte(alphabet[j])
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
