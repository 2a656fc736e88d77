package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpText lists the accepted command forms.
const HelpText = `>> What was that?

Type:

> +abc  # the word contains "a", "b" and "c"
> -def  # the word contains none of "d", "e", "f"
> 1=g   # the first letter is "g"
> 2!h   # the second letter is not "h"
> g.abc # first letter "g", third to fifth "abc"
> /     # list every candidate, most useful guesses last`

var (
	colorCount = lipgloss.Color("#2CD7C7")
	colorError = lipgloss.Color("#E74C3C")
	colorMuted = lipgloss.Color("#6C7A89")
)

// styles are bound to one output so colors are dropped when it is not a TTY.
type styles struct {
	count lipgloss.Style
	err   lipgloss.Style
	muted lipgloss.Style
	word  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		count: r.NewStyle().Bold(true).Foreground(colorCount),
		err:   r.NewStyle().Foreground(colorError),
		muted: r.NewStyle().Foreground(colorMuted),
		word:  r.NewStyle().Bold(true),
	}
}

// renderer writes session output. Multi-line blocks are styled line by line
// so no padding is introduced.
type renderer struct {
	w io.Writer
	s styles
}

func (r renderer) count(n int) {
	fmt.Fprintf(r.w, "Candidates: %s\n", r.s.count.Render(fmt.Sprint(n)))
}

func (r renderer) help() {
	for _, line := range strings.Split(HelpText, "\n") {
		fmt.Fprintln(r.w, r.s.muted.Render(line))
	}
	fmt.Fprintln(r.w)
}

func (r renderer) error(err error) {
	fmt.Fprintln(r.w, r.s.err.Render("error: "+err.Error()))
	fmt.Fprintln(r.w)
}

func (r renderer) ranked(list []string) {
	quoted := make([]string, len(list))
	for i, w := range list {
		quoted[i] = r.s.word.Render(`"` + w + `"`)
	}
	fmt.Fprintln(r.w, "["+strings.Join(quoted, ", ")+"]")
	fmt.Fprintln(r.w)
}

func (r renderer) summaries(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(r.w, r.s.muted.Render(line))
	}
}

func (r renderer) blank() { fmt.Fprintln(r.w) }

func (r renderer) prompt() { fmt.Fprint(r.w, "> ") }
