// internal/feedback/feedback.go
//
// Tile feedback for a guess, and its translation into narrowing calls.
// Responsibilities:
//   - Score a guess against an answer with the classic two-pass algorithm.
//   - Turn a row of tile marks (as shown by the game) into engine filters.
//
// Translation rules, per tile:
//   - hit:     FixPosition(i, letter)
//   - present: RequirePresent(letter) and ExcludeAtPosition(i, letter)
//   - miss:    ExcludeAtPosition(i, letter); RequireAbsent(letter) only when
//              the same letter is not a hit or present elsewhere in the guess
//
// The rules never remove the true answer: a missed duplicate letter only rules
// out its own tile.
package feedback

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle-cheat/internal/search"
	"github.com/robalobadob/wordle-cheat/internal/words"
)

// Mark represents the evaluation result for a single letter in a guess.
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter is not in the answer (beyond those already marked).
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Narrower is the subset of *search.Engine that feedback drives.
type Narrower interface {
	RequirePresent(letters string)
	RequireAbsent(letters string)
	FixPosition(index int, letter string) error
	ExcludeAtPosition(index int, letters string) error
}

// Score compares guess with answer. Both are expected lowercase and the same
// length; a length mismatch yields all misses.
//
// Pass 1 marks exact matches and counts the remaining answer letters.
// Pass 2 marks a non-hit letter present while unused copies remain.
func Score(guess, answer string) []Mark {
	n := len(guess)
	res := make([]Mark, n)
	for i := range res {
		res[i] = MarkMiss
	}
	if len(answer) != n {
		return res
	}

	var counts [26]int
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else if j := idx(answer[i]); j >= 0 {
			counts[j]++
		}
	}
	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		}
	}
	return res
}

// ParseMarks reads a compact mark string: g/h = hit, y/p = present,
// b/x/. = miss (case-insensitive), e.g. "gy..b".
func ParseMarks(s string) ([]Mark, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	out := make([]Mark, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g', 'h':
			out = append(out, MarkHit)
		case 'y', 'p':
			out = append(out, MarkPresent)
		case 'b', 'x', '.':
			out = append(out, MarkMiss)
		default:
			return nil, fmt.Errorf("%w: mark %q at %d is not one of g,y,b", search.ErrInvalidArgument, s[i], i+1)
		}
	}
	return out, nil
}

// Apply narrows n with what one row of feedback reveals. Nothing is applied
// when the guess or marks are malformed.
func Apply(n Narrower, guess string, marks []Mark) error {
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != words.Length || len(words.Normalize([]string{guess})) != 1 {
		return fmt.Errorf("%w: guess %q must be %d letters", search.ErrInvalidArgument, guess, words.Length)
	}
	if len(marks) != words.Length {
		return fmt.Errorf("%w: expected %d marks, got %d", search.ErrInvalidArgument, words.Length, len(marks))
	}

	// Letters confirmed somewhere in the answer by this row.
	var confirmed [26]bool
	for i, m := range marks {
		switch m {
		case MarkHit, MarkPresent:
			confirmed[idx(guess[i])] = true
		case MarkMiss:
		default:
			return fmt.Errorf("%w: unknown mark %q", search.ErrInvalidArgument, m)
		}
	}

	for i, m := range marks {
		pos, letter := i+1, guess[i:i+1]
		var err error
		switch m {
		case MarkHit:
			err = n.FixPosition(pos, letter)
		case MarkPresent:
			n.RequirePresent(letter)
			err = n.ExcludeAtPosition(pos, letter)
		case MarkMiss:
			if !confirmed[idx(guess[i])] {
				n.RequireAbsent(letter)
			}
			err = n.ExcludeAtPosition(pos, letter)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// idx maps a lowercase ASCII letter to 0..25, anything else to -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}
