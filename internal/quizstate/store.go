// Package quizstate keeps the single pending quiz question of every user in memory.
package quizstate

import (
	"sync"

	"wordquiz/internal/domain"
)

// Store is a per-user map of pending questions. Writes are last-write-wins.
type Store struct {
	mu     sync.Mutex
	seq    uint64
	states map[int64]domain.QuizState
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{states: make(map[int64]domain.QuizState)}
}

// Put replaces the user's pending question and returns it with a fresh sequence number
func (s *Store) Put(userID int64, state domain.QuizState) domain.QuizState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	state.Seq = s.seq
	s.states[userID] = state
	return state
}

// Get returns the pending question without consuming it
func (s *Store) Get(userID int64) (domain.QuizState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	return state, ok
}

// Take returns and clears the pending question
func (s *Store) Take(userID int64) (domain.QuizState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if ok {
		delete(s.states, userID)
	}
	return state, ok
}

// TakeIf clears the pending question only if its sequence number is seq
func (s *Store) TakeIf(userID int64, seq uint64) (domain.QuizState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok || state.Seq != seq {
		return domain.QuizState{}, false
	}
	delete(s.states, userID)
	return state, true
}

// Delete drops the pending question, if any
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, userID)
}

// Len returns the number of pending questions
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
