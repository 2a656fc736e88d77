package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-cheat/internal/search"
)

func newTestSession(t *testing.T, list []string, opts ...Option) (*Session, *bytes.Buffer, *search.Engine) {
	t.Helper()
	t.Setenv("CLICOLOR_FORCE", "")
	var buf bytes.Buffer
	e := search.New(list)
	return NewSession(e, &buf, append([]Option{WithPrompt(false)}, opts...)...), &buf, e
}

func TestSession_Transcript(t *testing.T) {
	s, out, e := newTestSession(t, []string{"crane", "crate", "grape", "slate", "space", "speed"})

	input := strings.Join([]string{"-s", "", "3=a", "/"}, "\n")
	require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))

	assert.Equal(t, []string{"crane", "crate", "grape"}, e.Candidates())
	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Candidates: 6\n"))
	assert.Contains(t, got, "Candidates: 3\n")
	assert.Contains(t, got, `["grape", "crane", "crate"]`)
	assert.Equal(t, 1, strings.Count(got, "What was that?"), "blank line asks for help")
}

func TestSession_HelpOnUnknownInput(t *testing.T) {
	s, out, e := newTestSession(t, []string{"crane", "crate"})

	require.NoError(t, s.Run(context.Background(), strings.NewReader("what\n9=a\n")))
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, 2, strings.Count(out.String(), "What was that?"))
	assert.NotContains(t, out.String(), "error:")
}

func TestSession_ReportsErrors(t *testing.T) {
	s, out, e := newTestSession(t, []string{"crane"})

	// The grammar only admits 1..5, so feed the engine error to the renderer
	// directly.
	_, err := Execute(e, Command{Kind: KindFixPosition, Index: 0, Letters: "a"})
	require.Error(t, err)
	s.out.error(err)
	assert.Contains(t, out.String(), "error: index=0 must be between 1 and 5")
}

func TestSession_EOFEndsCleanly(t *testing.T) {
	s, out, _ := newTestSession(t, []string{"crane"})
	require.NoError(t, s.Run(context.Background(), strings.NewReader("")))
	assert.Equal(t, "Candidates: 1\n", out.String())
}

func TestSession_Prompt(t *testing.T) {
	s, out, _ := newTestSession(t, []string{"crane"}, WithPrompt(true))
	require.NoError(t, s.Run(context.Background(), strings.NewReader("+c\n")))
	assert.Equal(t, "Candidates: 1\n> \nCandidates: 1\n> ", out.String())
}

func TestSession_Summaries(t *testing.T) {
	s, out, _ := newTestSession(t, []string{"crane", "grape"}, WithSummaries(true))
	s.Handle("+r")
	assert.Contains(t, out.String(), "  1: [cg]\n")
	assert.Contains(t, out.String(), "  4: [np]\n")
}

func TestSession_BlankLinesPrintHelp(t *testing.T) {
	s, out, e := newTestSession(t, []string{"crane", "slate"})
	s.Handle("")
	s.Handle("   ")
	assert.Equal(t, 2, strings.Count(out.String(), "What was that?"))
	assert.Equal(t, 2, e.Len())
}

func TestSession_ContextCancelled(t *testing.T) {
	s, out, e := newTestSession(t, []string{"crane", "slate"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Run(ctx, strings.NewReader("-s\n")))
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "Candidates: 2\n", out.String())
}

func TestSession_CancelWhileWaitingForInput(t *testing.T) {
	s, out, e := newTestSession(t, []string{"crane", "slate"})
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr) }()

	// Nothing is ever written, so Run can only return through ctx.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept waiting for input after cancel")
	}
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "Candidates: 2\n", out.String())
}
