// Package rank orders candidates by how useful they are as the next guess.
//
// A word scores the summed frequency of its letters across the candidate set,
// divided by the count of its most repeated letter. Common letters raise the
// score; repeated letters waste guess slots and lower it. Rank sorts
// ascending, so the most useful guesses come last.
package rank

import "sort"

// Entry is a word with its score against the set it was ranked in.
type Entry struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// LetterFrequencies counts every letter occurrence across words. A doubled
// letter in one word counts twice.
func LetterFrequencies(words []string) map[byte]int {
	freq := make(map[byte]int, 26)
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			freq[w[i]]++
		}
	}
	return freq
}

// Score sums freq over every position of word and divides by the highest
// multiplicity of a single letter in word. Words with distinct letters divide
// by one.
func Score(word string, freq map[byte]int) float64 {
	var (
		total   int
		counts  [256]int
		maxMult int
	)
	for i := 0; i < len(word); i++ {
		c := word[i]
		total += freq[c]
		counts[c]++
		if counts[c] > maxMult {
			maxMult = counts[c]
		}
	}
	if maxMult == 0 {
		return 0
	}
	return float64(total) / float64(maxMult)
}

// Scored returns every word with its score, ordered ascending by score and
// then alphabetically. Frequencies are computed fresh from words.
func Scored(words []string) []Entry {
	freq := LetterFrequencies(words)
	out := make([]Entry, len(words))
	for i, w := range words {
		out[i] = Entry{Word: w, Score: Score(w, freq)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Rank returns a new slice of words ordered ascending by score, ties broken
// alphabetically.
func Rank(words []string) []string {
	entries := Scored(words)
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Word
	}
	return out
}
