// internal/httpserver/auth.go
//
// Session tokens.
// A token is an HS256 JWT whose "sid" claim names one session. Session routes
// accept it from "Authorization: Bearer <token>" only, and reject tokens whose
// sid differs from the {id} in the path.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordle-cheat/internal/store"
)

// ctxSessionKey is the context key type for storing the resolved session.
type ctxSessionKey struct{}

// signToken creates an HS256 JWT for session id, expiring after s.ttl.
func (s *Server) signToken(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// parseToken validates tok and returns its session id.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("token has no session")
	}
	return sid, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireSession enforces a valid token for the {id} in the path and injects
// the session into the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearer(r)
			if tok == "" {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			sid, err := s.parseToken(tok)
			if err != nil || sid != chi.URLParam(r, "id") {
				hlog.FromRequest(r).Debug().Err(err).Msg("session token rejected")
				writeError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			sess, err := s.store.Get(r.Context(), sid)
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, http.StatusNotFound, "not_found")
				return
			}
			if err != nil {
				hlog.FromRequest(r).Error().Err(err).Str("session", sid).Msg("load session")
				writeError(w, http.StatusInternalServerError, "store_error")
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFrom returns the session placed by requireSession.
func sessionFrom(r *http.Request) *store.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*store.Session)
	return sess
}
