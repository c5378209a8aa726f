package memory

import (
	"context"
	"sync"

	"github.com/codebyghita/guess-game/internal/domain"
)

// GameStateStore is an in-memory implementation of app.SessionStore.
type GameStateStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewGameStateStore() *GameStateStore {
	return &GameStateStore{sessions: make(map[string]domain.Session)}
}

func (s *GameStateStore) Load(_ context.Context, userID string) (domain.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok, nil
}

func (s *GameStateStore) Save(_ context.Context, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.UserID] = sess
	return nil
}

// LeaderboardStore keeps one board per difficulty, serializing updates under
// a mutex so read-modify-write never loses an entry.
type LeaderboardStore struct {
	mu     sync.RWMutex
	boards map[domain.Difficulty][]domain.LeaderboardEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{boards: make(map[domain.Difficulty][]domain.LeaderboardEntry)}
}

func (s *LeaderboardStore) Get(_ context.Context, difficulty domain.Difficulty) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board := s.boards[difficulty]
	out := make([]domain.LeaderboardEntry, len(board))
	copy(out, board)
	return out, nil
}

func (s *LeaderboardStore) Update(_ context.Context, difficulty domain.Difficulty, fn func([]domain.LeaderboardEntry) []domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[difficulty] = fn(s.boards[difficulty])
	return nil
}

// DailyStore records presence-only daily completion markers.
type DailyStore struct {
	mu      sync.RWMutex
	markers map[string]struct{}
}

func NewDailyStore() *DailyStore {
	return &DailyStore{markers: make(map[string]struct{})}
}

func (s *DailyStore) Completed(_ context.Context, userID, day string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.markers[userID+":"+day]
	return ok, nil
}

func (s *DailyStore) MarkCompleted(_ context.Context, userID, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers[userID+":"+day] = struct{}{}
	return nil
}
