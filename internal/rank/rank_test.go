package rank

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-cheat/internal/words"
)

func TestLetterFrequencies(t *testing.T) {
	freq := LetterFrequencies([]string{"speed", "space"})

	assert.Equal(t, 2, freq['s'])
	assert.Equal(t, 2, freq['p'])
	assert.Equal(t, 3, freq['e'], "doubled letters count twice")
	assert.Equal(t, 1, freq['d'])
	assert.Equal(t, 1, freq['a'])
	assert.Equal(t, 1, freq['c'])
	assert.Zero(t, freq['z'])
}

func TestScore(t *testing.T) {
	freq := LetterFrequencies([]string{"speed", "space"})

	// s2 + p2 + e3 + e3 + d1 = 11, 'e' appears twice
	assert.InDelta(t, 5.5, Score("speed", freq), 1e-9)
	// s2 + p2 + a1 + c1 + e3 = 9, all distinct
	assert.InDelta(t, 9.0, Score("space", freq), 1e-9)
	assert.Zero(t, Score("", freq))
}

func TestScore_DividesByMostRepeatedLetter(t *testing.T) {
	freq := map[byte]int{'a': 1, 'b': 1}
	assert.InDelta(t, 5.0/3.0, Score("aaabb", freq), 1e-9)
	assert.InDelta(t, 5.0, Score("ab", map[byte]int{'a': 2, 'b': 3}), 1e-9)
}

func TestRank_SpeedSpace(t *testing.T) {
	got := Rank([]string{"space", "speed"})
	assert.Equal(t, []string{"speed", "space"}, got)

	freq := LetterFrequencies([]string{"space", "speed"})
	assert.Less(t, Score(got[0], freq), Score(got[1], freq))
}

func TestRank_TiesBrokenAlphabetically(t *testing.T) {
	// Anagrams share letters, so every score is equal.
	got := Rank([]string{"stare", "aster", "rates", "tears"})
	assert.Equal(t, []string{"aster", "rates", "stare", "tears"}, got)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []string{"space", "speed", "crane"}
	_ = Rank(in)
	assert.Equal(t, []string{"space", "speed", "crane"}, in)
	assert.Empty(t, Rank(nil))
}

func TestScored_ReproducibleFromFrequencies(t *testing.T) {
	list, err := words.LoadDefault()
	require.NoError(t, err)
	list = list[:500]

	entries := Scored(list)
	require.Len(t, entries, len(list))

	freq := LetterFrequencies(list)
	for _, e := range entries {
		assert.InDelta(t, Score(e.Word, freq), e.Score, 1e-9, e.Word)
	}
	assert.True(t, sort.SliceIsSorted(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].Word < entries[j].Word
	}))
}
