// internal/search/engine.go
//
// Candidate engine for a single search session.
// Responsibilities:
//   - Hold the live candidate set (sorted, deduplicated five-letter words).
//   - Narrow it with named filters: RequirePresent, RequireAbsent,
//     FixPosition, ExcludeAtPosition.
//   - Rebuild all five position summaries whenever the set is replaced.
//
// Notes:
//   - Every filter is a pure intersection, so filters are idempotent and the
//     final set does not depend on the order they were applied in.
//   - An Engine is not safe for concurrent use; callers serving several users
//     keep one Engine per session (see internal/store).
package search

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-cheat/internal/words"
)

// Positions is the number of letter positions in a candidate.
const Positions = words.Length

// Engine owns one candidate set and its position summaries.
type Engine struct {
	candidates []string
	summaries  [Positions]Summary
}

// New builds an engine over the normalized form of list. The input slice is
// not retained.
func New(list []string) *Engine {
	e := &Engine{}
	e.replace(words.Normalize(list))
	return e
}

// Len is the number of remaining candidates.
func (e *Engine) Len() int { return len(e.candidates) }

// Candidates returns a copy of the remaining candidates in sorted order.
func (e *Engine) Candidates() []string {
	return append([]string(nil), e.candidates...)
}

// RequirePresent keeps candidates containing every one of letters.
// An empty letters string keeps everything.
func (e *Engine) RequirePresent(letters string) {
	letters = strings.ToLower(letters)
	e.filter(func(w string) bool {
		for i := 0; i < len(letters); i++ {
			if strings.IndexByte(w, letters[i]) < 0 {
				return false
			}
		}
		return true
	})
}

// RequireAbsent keeps candidates containing none of letters.
func (e *Engine) RequireAbsent(letters string) {
	letters = strings.ToLower(letters)
	e.filter(func(w string) bool {
		return !strings.ContainsAny(w, letters)
	})
}

// FixPosition keeps candidates whose letter at index (1-based) is letter.
func (e *Engine) FixPosition(index int, letter string) error {
	if err := ValidateIndex(index); err != nil {
		return err
	}
	letter = strings.ToLower(letter)
	if len(letter) != 1 {
		return invalidArgument("fix position %d: expected exactly one letter, got %q", index, letter)
	}
	c := letter[0]
	e.filter(func(w string) bool { return w[index-1] == c })
	return nil
}

// ExcludeAtPosition keeps candidates whose letter at index (1-based) is not
// one of letters.
func (e *Engine) ExcludeAtPosition(index int, letters string) error {
	if err := ValidateIndex(index); err != nil {
		return err
	}
	letters = strings.ToLower(letters)
	e.filter(func(w string) bool {
		return strings.IndexByte(letters, w[index-1]) < 0
	})
	return nil
}

// PositionSummary returns the summary for index (1-based) as of the current
// candidate set.
func (e *Engine) PositionSummary(index int) (Summary, error) {
	if err := ValidateIndex(index); err != nil {
		return Summary{}, err
	}
	return e.summaries[index-1], nil
}

// Summaries returns all five summaries in position order.
func (e *Engine) Summaries() [Positions]Summary { return e.summaries }

// String renders the candidates, their count and the per-position summaries.
func (e *Engine) String() string {
	lines := []string{prettyWords(e.candidates), fmt.Sprintf("%d total", len(e.candidates))}
	for _, s := range e.summaries {
		lines = append(lines, fmt.Sprintf("  %d: %s", s.Index, s))
	}
	return strings.Join(lines, "\n")
}

// filter replaces the candidate set with the members satisfying keep.
func (e *Engine) filter(keep func(string) bool) {
	next := make([]string, 0, len(e.candidates))
	for _, w := range e.candidates {
		if keep(w) {
			next = append(next, w)
		}
	}
	e.replace(next)
}

// replace installs a new candidate set and rebuilds every summary from it.
func (e *Engine) replace(candidates []string) {
	e.candidates = candidates
	for i := range e.summaries {
		e.summaries[i] = newSummary(i+1, candidates)
	}
}

func quotedList(list []string) string {
	q := make([]string, len(list))
	for i, w := range list {
		q[i] = `"` + w + `"`
	}
	return strings.Join(q, ", ")
}

// prettyWords shows every word for short lists and the two ends otherwise.
func prettyWords(list []string) string {
	if len(list) <= 50 {
		return quotedList(list)
	}
	return quotedList(list[:10]) +
		fmt.Sprintf(", (%d others) , ", len(list)-20) +
		quotedList(list[len(list)-10:])
}
