package app

import (
	"context"
	"sort"
	"time"

	"github.com/codebyghita/guess-game/internal/domain"
)

const leaderboardCap = 10

// LeaderboardStore persists one ordered board per difficulty bucket. Update
// must apply fn atomically with respect to concurrent writers of the same
// bucket (optimistic transaction in Redis, mutex in memory).
type LeaderboardStore interface {
	Get(ctx context.Context, difficulty domain.Difficulty) ([]domain.LeaderboardEntry, error)
	Update(ctx context.Context, difficulty domain.Difficulty, fn func([]domain.LeaderboardEntry) []domain.LeaderboardEntry) error
}

// LeaderboardService maintains capped, sorted per-difficulty rankings.
type LeaderboardService struct {
	store LeaderboardStore
	now   func() time.Time
}

func NewLeaderboardService(store LeaderboardStore) *LeaderboardService {
	return &LeaderboardService{store: store, now: time.Now}
}

// NewLeaderboardServiceWithClock is test-only for deterministic timestamps.
func NewLeaderboardServiceWithClock(store LeaderboardStore, now func() time.Time) *LeaderboardService {
	return &LeaderboardService{store: store, now: now}
}

// Record appends a finished game's result and trims the board to the top 10.
func (s *LeaderboardService) Record(ctx context.Context, userID string, score int, difficulty domain.Difficulty, streak int) error {
	entry := domain.LeaderboardEntry{
		UserID:     userID,
		Score:      score,
		Difficulty: difficulty,
		Streak:     streak,
		Timestamp:  s.now(),
	}
	return s.store.Update(ctx, difficulty, func(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
		return rankEntries(append(entries, entry))
	})
}

// Top returns the board for a difficulty, best score first.
func (s *LeaderboardService) Top(ctx context.Context, difficulty domain.Difficulty) ([]domain.LeaderboardEntry, error) {
	return s.store.Get(ctx, difficulty)
}

// rankEntries sorts descending by score, breaking ties by earlier timestamp,
// and caps the board length. The sort is stable so equal entries keep their
// insertion order deterministically.
func rankEntries(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	if len(entries) > leaderboardCap {
		entries = entries[:leaderboardCap]
	}
	return entries
}
