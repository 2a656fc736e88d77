// internal/words/words.go
//
// Word list loading for the candidate engine.
//
// Responsibilities:
//   - Normalize raw token lists into candidate sets (5 ASCII letters, lowercase,
//     deduplicated, sorted).
//   - Load a word file when a path is given (the --words flag, which defaults
//     to WORDS_FILE), otherwise the embedded assets/words.txt.
//
// Malformed entries are dropped silently. Only an unreadable source is an
// error, and callers treat it as fatal.

package words

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/robalobadob/wordle-cheat/assets"
)

// Length is the only word length the assistant supports.
const Length = 5

// Normalize lower-cases every token and keeps those made of exactly five
// ASCII letters. The result is deduplicated and sorted by byte order.
func Normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		w := strings.ToLower(s)
		if len(w) != Length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// LoadDefault reads the bundled word source and normalizes it.
func LoadDefault() ([]string, error) {
	raw, err := assets.WordList()
	if err != nil {
		return nil, &LoadError{Source: "embedded:" + assets.DefaultSource, Err: err}
	}
	return Normalize(raw), nil
}

// LoadFile reads a newline-delimited word file and normalizes it.
func LoadFile(path string) ([]string, error) {
	raw, err := readWordFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return Normalize(raw), nil
}

// Load reads path when it is non-empty, otherwise the embedded default.
func Load(path string) ([]string, error) {
	var (
		list   []string
		err    error
		source = path
	)
	if path != "" {
		list, err = LoadFile(path)
	} else {
		source = "embedded:" + assets.DefaultSource
		list, err = LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &LoadError{Source: source, Err: errEmpty}
	}
	return list, nil
}

// readWordFile loads one token per line, trimmed. Filtering happens in Normalize.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, strings.TrimSpace(sc.Text()))
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
