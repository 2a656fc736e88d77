// internal/httpserver/routes_sessions.go
//
// HTTP routes for search sessions.
//   - POST   /sessions               → start a session, returns id + token
//   - GET    /sessions/{id}          → candidate count and position summaries
//   - POST   /sessions/{id}/commands → run one command line ("+ab", "3=e", ...)
//   - POST   /sessions/{id}/feedback → apply one row of tile feedback
//   - GET    /sessions/{id}/ranked   → ranked candidates with scores
//   - DELETE /sessions/{id}          → end the session
//
// Unrecognized command lines are not errors: they return the help text with
// 200 and leave the session unchanged, like the terminal loop does.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-cheat/internal/cli"
	"github.com/robalobadob/wordle-cheat/internal/feedback"
	"github.com/robalobadob/wordle-cheat/internal/rank"
	"github.com/robalobadob/wordle-cheat/internal/search"
)

// mountSessions registers all /sessions routes.
func (s *Server) mountSessions() {
	s.r.Post("/sessions", s.handleCreateSession)
	s.r.Route("/sessions/{id}", func(r chi.Router) {
		r.Use(s.requireSession())
		r.Get("/", s.handleGetSession)
		r.Delete("/", s.handleDeleteSession)
		r.Post("/commands", s.handleCommand)
		r.Post("/feedback", s.handleFeedback)
		r.Get("/ranked", s.handleRanked)
	})
}

// createSessionRes is the payload for POST /sessions.
type createSessionRes struct {
	SessionID  string    `json:"sessionId"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Candidates int       `json:"candidates"`
}

// positionView renders one search.Summary.
type positionView struct {
	Index   int    `json:"index"`
	Letters string `json:"letters"`
	Display string `json:"display"`
}

// sessionView is the payload for GET /sessions/{id} and narrowing responses.
type sessionView struct {
	SessionID  string         `json:"sessionId"`
	Candidates int            `json:"candidates"`
	Positions  []positionView `json:"positions"`
	Words      []string       `json:"words,omitempty"`
}

func viewOf(id string, e *search.Engine, withWords bool) sessionView {
	v := sessionView{SessionID: id, Candidates: e.Len()}
	for _, sum := range e.Summaries() {
		v.Positions = append(v.Positions, positionView{Index: sum.Index, Letters: sum.Letters(), Display: sum.String()})
	}
	if withWords {
		v.Words = e.Candidates()
	}
	return v
}

// handleCreateSession starts an isolated session and signs its token.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Create(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		_ = s.store.Delete(r.Context(), sess.ID)
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.metrics.sessionsActive.Set(float64(s.store.Len()))

	var n int
	_ = sess.Do(func(e *search.Engine) error { n = e.Len(); return nil })
	hlog.FromRequest(r).Info().Str("session", sess.ID).Int("candidates", n).Msg("session created")
	writeJSON(w, http.StatusCreated, createSessionRes{SessionID: sess.ID, Token: tok, ExpiresAt: exp.UTC(), Candidates: n})
}

// handleGetSession reports the count, summaries and, with ?words=1, the words.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	withWords := r.URL.Query().Get("words") == "1"
	var v sessionView
	_ = sess.Do(func(e *search.Engine) error {
		v = viewOf(sess.ID, e, withWords)
		return nil
	})
	writeJSON(w, http.StatusOK, v)
}

// handleDeleteSession ends a session.
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	s.metrics.sessionsActive.Set(float64(s.store.Len()))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// commandReq/Res payloads for POST /sessions/{id}/commands.
type commandReq struct {
	Command string `json:"command"`
}
type commandRes struct {
	Kind    string      `json:"kind"`
	Session sessionView `json:"session"`
	Ranked  []string    `json:"ranked,omitempty"`
	Help    string      `json:"help,omitempty"`
}

// handleCommand parses one command line and applies it to the session.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess := sessionFrom(r)
	cmd := cli.Parse(req.Command)

	var res commandRes
	err := sess.Do(func(e *search.Engine) error {
		out, err := cli.Execute(e, cmd)
		if err != nil {
			return err
		}
		res = commandRes{Kind: cmd.Kind.String(), Session: viewOf(sess.ID, e, false), Ranked: out.Ranked}
		return nil
	})
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}
	if cmd.Kind == cli.KindHelp {
		res.Help = cli.HelpText
	}
	if cmd.Kind.Narrows() {
		s.metrics.narrowings.WithLabelValues(cmd.Kind.String()).Inc()
		s.metrics.candidatesRemaining.Observe(float64(res.Session.Candidates))
	}
	hlog.FromRequest(r).Debug().Str("session", sess.ID).Str("command", cmd.Raw).Int("remaining", res.Session.Candidates).Msg("command applied")
	writeJSON(w, http.StatusOK, res)
}

// feedbackReq carries one row of tile feedback. Marks may be given as a list
// ("hit", "present", "miss") or as a compact pattern such as "gy..b".
type feedbackReq struct {
	Guess   string          `json:"guess"`
	Marks   []feedback.Mark `json:"marks"`
	Pattern string          `json:"pattern"`
}

// handleFeedback narrows the session by what one guess revealed.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	marks := req.Marks
	if len(marks) == 0 && req.Pattern != "" {
		var err error
		if marks, err = feedback.ParseMarks(req.Pattern); err != nil {
			s.writeEngineError(w, r, err)
			return
		}
	}

	sess := sessionFrom(r)
	var v sessionView
	err := sess.Do(func(e *search.Engine) error {
		if err := feedback.Apply(e, req.Guess, marks); err != nil {
			return err
		}
		v = viewOf(sess.ID, e, false)
		return nil
	})
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}
	s.metrics.narrowings.WithLabelValues("feedback").Inc()
	s.metrics.candidatesRemaining.Observe(float64(v.Candidates))
	writeJSON(w, http.StatusOK, v)
}

// rankedRes is the payload for GET /sessions/{id}/ranked.
type rankedRes struct {
	Candidates int          `json:"candidates"`
	Entries    []rank.Entry `json:"entries"`
}

// handleRanked lists candidates ascending by score. ?limit=N keeps only the N
// highest-scoring entries, still in ascending order.
func (s *Server) handleRanked(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	sess := sessionFrom(r)
	var res rankedRes
	_ = sess.Do(func(e *search.Engine) error {
		entries := rank.Scored(e.Candidates())
		res.Candidates = len(entries)
		if limit > 0 && limit < len(entries) {
			entries = entries[len(entries)-limit:]
		}
		res.Entries = entries
		return nil
	})
	writeJSON(w, http.StatusOK, res)
}

// writeEngineError maps argument errors to 400 and anything else to 500.
func (s *Server) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, search.ErrInvalidArgument) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("engine failure")
	writeError(w, http.StatusInternalServerError, "engine_error")
}
