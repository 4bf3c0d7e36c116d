package application

import (
	"sync"

	"igrejaconnect/internal/domain/entities"
)

// AuthState is the process-wide "current identity" the presentation layer
// observes. It is an explicit object with a subscribe/unsubscribe lifecycle
// rather than ambient package state; the auth service updates it on login,
// logout and provider-reported revocation.
type AuthState struct {
	mu      sync.Mutex
	userID  string
	profile *entities.User
	subs    map[int]func(userID string)
	nextSub int
}

func NewAuthState() *AuthState {
	return &AuthState{subs: make(map[int]func(string))}
}

// Subscribe registers fn to run on every identity change and returns the
// matching unsubscribe function.
func (s *AuthState) Subscribe(fn func(userID string)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Set replaces the current identity and cached profile, then notifies
// subscribers. An empty userID means signed out; profile may be nil.
func (s *AuthState) Set(userID string, profile *entities.User) {
	s.mu.Lock()
	s.userID = userID
	s.profile = profile
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(userID)
	}
}

// Clear signs the identity out if it is the current one.
func (s *AuthState) Clear(userID string) {
	s.mu.Lock()
	current := s.userID
	s.mu.Unlock()
	if current != "" && current == userID {
		s.Set("", nil)
	}
}

func (s *AuthState) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Profile returns the locally cached profile document, nil when signed out.
func (s *AuthState) Profile() *entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}
