// Package session holds the in-process token registry that maps opaque
// login tokens to role-scoped capabilities. The registry is the single
// authorization checkpoint: every protected request resolves its token here
// before any business rule runs. Sessions live only in memory; a process
// restart drops them all and clients log in again.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Moshe1988/CouponManagementSystem/internal/domain"
)

const tokenLength = 15

// Session pairs a capability with its idle-timeout clock. The capability is
// read-only after issuance; only the registry's touch path writes
// lastAccessed.
type Session struct {
	capability   domain.Capability
	lastAccessed time.Time
}

func (s *Session) Capability() domain.Capability { return s.capability }

func (s *Session) LastAccessed() time.Time { return s.lastAccessed }

// Registry is a mutex-guarded map from token to live session. Insertion
// happens at login, deletion at logout and at sweep time, lookups on every
// authorized request. All mutation goes through the one lock, so a resolve
// always observes the latest touch on its token.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Issue binds a capability to a fresh token and returns the token. Tokens
// are never reused: a revoked or evicted token stays invalid forever.
func (r *Registry) Issue(capability domain.Capability) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := newToken()
	for {
		if _, taken := r.sessions[token]; !taken {
			break
		}
		token = newToken()
	}

	r.sessions[token] = &Session{
		capability:   capability,
		lastAccessed: time.Now(),
	}
	return token
}

// Resolve looks the token up, refreshes its idle clock and returns the bound
// capability. An unknown or evicted token fails with ErrSessionExpired.
func (r *Registry) Resolve(token string) (domain.Capability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return domain.Capability{}, domain.ErrSessionExpired
	}

	s.lastAccessed = time.Now()
	return s.capability, nil
}

// LastAccessed behaves like Resolve but reports the refreshed timestamp, so
// a client can drive its own idle countdown.
func (r *Registry) LastAccessed(token string) (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return time.Time{}, domain.ErrSessionExpired
	}

	s.lastAccessed = time.Now()
	return s.lastAccessed, nil
}

// Revoke removes the session for token. Revoking an absent token is not an
// error.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}

// EvictIdle removes every session whose last touch is at or before cutoff
// and reports how many were removed. Logins arriving while the sweep holds
// the lock simply wait; nothing is skipped and nothing live is touched.
func (r *Registry) EvictIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for token, s := range r.sessions {
		if !s.lastAccessed.After(cutoff) {
			delete(r.sessions, token)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// newToken derives a URL-safe opaque token from a random UUID. The token
// carries no identity information.
func newToken() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return raw[:tokenLength]
}
