package content

import (
	"sync"
)

// Listener is called after the store content has been replaced.
type Listener func(p *Portfolio, version uint64)

// Store holds the live portfolio. The version starts at 1 and increases by one
// on every successful Replace.
type Store struct {
	mu        sync.RWMutex
	current   *Portfolio
	version   uint64
	listeners []Listener
}

// NewStore creates a store serving p.
func NewStore(p *Portfolio) *Store {
	return &Store{current: p, version: 1}
}

// Get returns the current portfolio and its version.
func (s *Store) Get() (*Portfolio, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

// Version returns the current version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace validates p and swaps it in. Listeners run on the calling goroutine
// after the lock is released.
func (s *Store) Replace(p *Portfolio) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = p
	s.version++
	version := s.version
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(p, version)
	}
	return nil
}

// Subscribe registers fn for future replacements.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
