package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alejomzlz/panaderia-mrp/internal/mrp/domain"
	"github.com/alejomzlz/panaderia-mrp/pkg/idx"
)

// Session is one authenticated presence. Each login mints an independent
// session; two clients logged in as the same user do not share state.
type Session struct {
	Token     idx.ID
	Identity  domain.Identity
	CreatedAt time.Time
}

// SessionService holds live sessions in memory. Tokens are opaque ULIDs and
// sessions last until logout or process restart; there is no refresh or
// expiry protocol.
type SessionService struct {
	Auth  *AuthService
	Audit *AuditService

	mu       sync.RWMutex
	sessions map[idx.ID]Session
}

// Login authenticates the credentials and, on success, registers a fresh
// session. Authentication failures pass through unchanged.
func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	identity, err := s.Auth.Authenticate(ctx, username, password)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:     idx.New(),
		Identity:  identity,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	if s.sessions == nil {
		s.sessions = make(map[idx.ID]Session)
	}
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess, nil
}

// Current returns the session for a token, or false if none is registered.
func (s *SessionService) Current(token idx.ID) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Logout removes the session for a token. It is idempotent: an unknown or
// already-removed token is not an error and records nothing.
func (s *SessionService) Logout(ctx context.Context, token idx.ID) {
	s.mu.Lock()
	sess, ok := s.sessions[token]
	if ok {
		delete(s.sessions, token)
	}
	s.mu.Unlock()

	if ok {
		s.Audit.Record(ctx, &sess.Identity.ID, domain.AuditAuth, domain.AuditLogout,
			fmt.Sprintf("logout for user %s", sess.Identity.Username))
	}
}

// Count returns the number of live sessions.
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
