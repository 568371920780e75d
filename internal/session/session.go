package session

import (
	"context"

	"github.com/community-pulse/cli/types"
)

// Session is the client-held proof of identity: an opaque bearer token
// plus the profile snapshot cached at login time. The user snapshot is
// only meaningful while a token is present.
type Session struct {
	Token string      `json:"token,omitempty"`
	User  *types.User `json:"user,omitempty"`
}

// Backend defines persistence operations for the session document.
// Save must be atomic with respect to Load: a concurrent Load observes
// either the previous document or the new one, never a mix.
type Backend interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, sess Session) error
	Clear(ctx context.Context) error
}

// Store wraps a backend with a stable API. The boolean queries degrade
// to "unauthenticated" on any backend failure rather than surfacing an
// error to the caller.
type Store struct {
	backend Backend
}

// NewStore constructs a Store for the provided backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Set persists the token and user snapshot together.
func (s *Store) Set(ctx context.Context, token string, user *types.User) error {
	return s.backend.Save(ctx, Session{Token: token, User: user})
}

// Token returns the stored bearer token. A storage failure reads as no
// token.
func (s *Store) Token(ctx context.Context) (string, bool) {
	sess, err := s.backend.Load(ctx)
	if err != nil || sess.Token == "" {
		return "", false
	}
	return sess.Token, true
}

// User returns the cached profile snapshot.
func (s *Store) User(ctx context.Context) (types.User, bool) {
	sess, err := s.backend.Load(ctx)
	if err != nil || sess.User == nil {
		return types.User{}, false
	}
	return *sess.User, true
}

// Clear removes the token and user. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Clear(ctx)
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// IsAdmin reports whether the cached user is an administrator. The check
// is token-gated: a stale cached user without a token never reads as
// admin.
func (s *Store) IsAdmin(ctx context.Context) bool {
	sess, err := s.backend.Load(ctx)
	if err != nil || sess.Token == "" || sess.User == nil {
		return false
	}
	return sess.User.IsAdmin
}
