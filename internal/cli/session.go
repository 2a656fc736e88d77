// internal/cli/session.go
//
// Interactive loop over one search engine.
// Each round prints the candidate count, optionally a prompt, reads a line and
// executes it. End of input ends the session without error.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-cheat/internal/search"
)

// Session drives an engine from line-oriented input.
type Session struct {
	engine       *search.Engine
	out          renderer
	prompt       bool
	showSummary  bool
	commandCount int
}

// Option configures a Session.
type Option func(*Session)

// WithPrompt forces the "> " prompt on or off.
func WithPrompt(on bool) Option { return func(s *Session) { s.prompt = on } }

// WithSummaries prints the five position summaries after every narrowing.
func WithSummaries(on bool) Option { return func(s *Session) { s.showSummary = on } }

// NewSession binds e to out. The prompt is shown only when stdin is a
// terminal unless WithPrompt says otherwise.
func NewSession(e *search.Engine, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine: e,
		out:    renderer{w: out, s: newStyles(out)},
		prompt: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads commands from in until EOF or ctx is done. Both end the session
// without error; only a failed read is returned. The reader goroutine stays
// blocked on in after cancellation until in yields or is closed.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		s.out.count(s.engine.Len())
		if s.prompt {
			s.out.prompt()
		}
		if ctx.Err() != nil {
			return s.interrupted()
		}
		select {
		case <-ctx.Done():
			return s.interrupted()
		case line := <-lines:
			s.Handle(line)
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			log.Debug().Int("commands", s.commandCount).Int("remaining", s.engine.Len()).Msg("input closed")
			return nil
		}
	}
}

func (s *Session) interrupted() error {
	if s.prompt {
		s.out.blank()
	}
	log.Debug().Int("commands", s.commandCount).Int("remaining", s.engine.Len()).Msg("session interrupted")
	return nil
}

// Handle executes one line and renders its outcome. Engine argument errors
// are reported to the user and never end the session.
func (s *Session) Handle(line string) {
	cmd := Parse(line)
	switch cmd.Kind {
	case KindHelp:
		log.Debug().Str("input", cmd.Raw).Msg("unrecognized command")
		s.out.help()
		return
	}

	s.commandCount++
	before := s.engine.Len()
	res, err := Execute(s.engine, cmd)
	if err != nil {
		log.Debug().Err(err).Str("command", cmd.Kind.String()).Msg("command rejected")
		s.out.error(err)
		return
	}
	log.Debug().
		Str("command", cmd.Kind.String()).
		Str("input", cmd.Raw).
		Int("before", before).
		Int("after", res.Remaining).
		Msg("command applied")

	if cmd.Kind == KindList {
		s.out.ranked(res.Ranked)
		return
	}
	if s.showSummary {
		lines := make([]string, 0, search.Positions)
		for _, sum := range s.engine.Summaries() {
			lines = append(lines, fmt.Sprintf("  %d: %s", sum.Index, sum))
		}
		s.out.summaries(lines)
	}
	s.out.blank()
}
