package session

import "sync"

// Store tracks sessions killed by an upstream 401. A token lands here once
// and stays until process restart; the middleware rejects it afterwards so a
// dead session cannot keep hammering the warranty backend.
type Store struct {
	mu          sync.Mutex
	invalidated map[string]struct{}
}

func NewStore() *Store {
	return &Store{invalidated: make(map[string]struct{})}
}

// Invalidate marks the token dead. It reports whether this call was the
// first to do so, letting callers emit the session-expired notification
// exactly once even when several in-flight requests hit 401 together.
func (s *Store) Invalidate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invalidated[token]; ok {
		return false
	}
	s.invalidated[token] = struct{}{}
	return true
}

func (s *Store) IsInvalidated(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.invalidated[token]
	return ok
}
