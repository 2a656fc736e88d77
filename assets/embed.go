// Package assets bundles the default word source.
//
// words.txt is newline-delimited, one token per line. Case and stray
// punctuation are tolerated; the words package filters them.
package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// DefaultSource is the embedded file name read by WordList.
const DefaultSource = "words.txt"

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the raw, unfiltered lines of the bundled word source.
func WordList() ([]string, error) {
	return readLines(DefaultSource)
}
