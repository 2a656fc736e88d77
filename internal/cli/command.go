// internal/cli/command.go
//
// Command grammar for the interactive layer. Whitespace is stripped and
// letters are case-folded before matching; the first full match wins:
//
//	+abc    RequirePresent("abc")
//	-def    RequireAbsent("def")
//	1=g     FixPosition(1, "g")
//	2!hi    ExcludeAtPosition(2, "hi")
//	g.abc   FixPosition per non-'.' character
//	/       rank and list every candidate
//
// Anything else, blank lines included, is a help request. Unknown input is
// never an error.

package cli

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/robalobadob/wordle-cheat/internal/rank"
	"github.com/robalobadob/wordle-cheat/internal/search"
)

// Kind identifies which grammar form a line matched.
type Kind int

const (
	KindHelp Kind = iota
	KindRequirePresent
	KindRequireAbsent
	KindFixPosition
	KindExcludeAtPosition
	KindTemplate
	KindList
)

var kindNames = map[Kind]string{
	KindHelp:              "help",
	KindRequirePresent:    "require_present",
	KindRequireAbsent:     "require_absent",
	KindFixPosition:       "fix_position",
	KindExcludeAtPosition: "exclude_at_position",
	KindTemplate:          "template",
	KindList:              "list",
}

func (k Kind) String() string { return kindNames[k] }

// Narrows reports whether commands of this kind change the candidate set.
func (k Kind) Narrows() bool {
	switch k {
	case KindRequirePresent, KindRequireAbsent, KindFixPosition, KindExcludeAtPosition, KindTemplate:
		return true
	}
	return false
}

// Command is one parsed input line.
type Command struct {
	Kind    Kind
	Index   int    // 1..5 for KindFixPosition and KindExcludeAtPosition
	Letters string // letters, or the five-character template
	Raw     string // the normalized line
}

var (
	rePlus     = regexp.MustCompile(`^\+([a-z]+)$`)
	reMinus    = regexp.MustCompile(`^-([a-z]+)$`)
	reSet      = regexp.MustCompile(`^([1-5])=([a-z])$`)
	reReject   = regexp.MustCompile(`^([1-5])!([a-z]+)$`)
	reTemplate = regexp.MustCompile(`^[a-z.]{5}$`)
)

// Parse classifies one input line.
func Parse(line string) Command {
	norm := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line))

	cmd := Command{Kind: KindHelp, Raw: norm}
	switch {
	case rePlus.MatchString(norm):
		cmd.Kind, cmd.Letters = KindRequirePresent, rePlus.FindStringSubmatch(norm)[1]
	case reMinus.MatchString(norm):
		cmd.Kind, cmd.Letters = KindRequireAbsent, reMinus.FindStringSubmatch(norm)[1]
	case reSet.MatchString(norm):
		m := reSet.FindStringSubmatch(norm)
		cmd.Kind, cmd.Index, cmd.Letters = KindFixPosition, int(m[1][0]-'0'), m[2]
	case reReject.MatchString(norm):
		m := reReject.FindStringSubmatch(norm)
		cmd.Kind, cmd.Index, cmd.Letters = KindExcludeAtPosition, int(m[1][0]-'0'), m[2]
	case reTemplate.MatchString(norm):
		cmd.Kind, cmd.Letters = KindTemplate, norm
	case norm == "/":
		cmd.Kind = KindList
	}
	return cmd
}

// Outcome is the result of executing a command against an engine.
type Outcome struct {
	Command   Command
	Remaining int
	Ranked    []string // set for KindList
}

// Execute runs cmd against e. Help commands leave e untouched.
// Argument errors from the engine are returned as-is.
func Execute(e *search.Engine, cmd Command) (Outcome, error) {
	var err error
	out := Outcome{Command: cmd}
	switch cmd.Kind {
	case KindRequirePresent:
		e.RequirePresent(cmd.Letters)
	case KindRequireAbsent:
		e.RequireAbsent(cmd.Letters)
	case KindFixPosition:
		err = e.FixPosition(cmd.Index, cmd.Letters)
	case KindExcludeAtPosition:
		err = e.ExcludeAtPosition(cmd.Index, cmd.Letters)
	case KindTemplate:
		for i := 0; i < len(cmd.Letters) && err == nil; i++ {
			if cmd.Letters[i] != '.' {
				err = e.FixPosition(i+1, cmd.Letters[i:i+1])
			}
		}
	case KindList:
		out.Ranked = rank.Rank(e.Candidates())
	}
	out.Remaining = e.Len()
	return out, err
}
