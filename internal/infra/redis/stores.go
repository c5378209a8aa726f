package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/codebyghita/guess-game/internal/domain"
	"github.com/redis/go-redis/v9"
)

// GameStateStore persists sessions as JSON under gameState:<userId>.
type GameStateStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGameStateStore(client *redis.Client, ttl time.Duration) *GameStateStore {
	return &GameStateStore{client: client, ttl: ttl}
}

func (s *GameStateStore) Load(ctx context.Context, userID string) (domain.Session, bool, error) {
	raw, err := s.client.Get(ctx, gameStateKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("load game state: %w", err)
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// Unreadable records degrade to a fresh session rather than failing.
		log.Printf("game state for %s unreadable, discarding: %v", userID, err)
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

func (s *GameStateStore) Save(ctx context.Context, sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	if err := s.client.Set(ctx, gameStateKey(sess.UserID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}

func gameStateKey(userID string) string {
	return "gameState:" + userID
}

// LeaderboardStore keeps one JSON board per difficulty under
// leaderboard:<difficulty>. Updates run inside WATCH so two racing
// completions cannot lose an entry to read-modify-write.
type LeaderboardStore struct {
	client *redis.Client
}

const leaderboardUpdateRetries = 5

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client}
}

func (s *LeaderboardStore) Get(ctx context.Context, difficulty domain.Difficulty) ([]domain.LeaderboardEntry, error) {
	raw, err := s.client.Get(ctx, leaderboardKey(difficulty)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal leaderboard: %w", err)
	}
	return entries, nil
}

func (s *LeaderboardStore) Update(ctx context.Context, difficulty domain.Difficulty, fn func([]domain.LeaderboardEntry) []domain.LeaderboardEntry) error {
	key := leaderboardKey(difficulty)
	txn := func(tx *redis.Tx) error {
		var entries []domain.LeaderboardEntry
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &entries); err != nil {
				return fmt.Errorf("unmarshal leaderboard: %w", err)
			}
		}
		updated, err := json.Marshal(fn(entries))
		if err != nil {
			return fmt.Errorf("marshal leaderboard: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < leaderboardUpdateRetries; i++ {
		err = s.client.Watch(ctx, txn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("update leaderboard: %w", err)
}

func leaderboardKey(difficulty domain.Difficulty) string {
	return "leaderboard:" + string(difficulty)
}

// DailyStore marks daily completions under daily:<userId>:<day>. Markers are
// presence-only; an optional TTL lets stale days expire on their own.
type DailyStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDailyStore(client *redis.Client, ttl time.Duration) *DailyStore {
	return &DailyStore{client: client, ttl: ttl}
}

func (s *DailyStore) Completed(ctx context.Context, userID, day string) (bool, error) {
	n, err := s.client.Exists(ctx, dailyKey(userID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("check daily marker: %w", err)
	}
	return n > 0, nil
}

func (s *DailyStore) MarkCompleted(ctx context.Context, userID, day string) error {
	if err := s.client.SetNX(ctx, dailyKey(userID, day), "completed", s.ttl).Err(); err != nil {
		return fmt.Errorf("set daily marker: %w", err)
	}
	return nil
}

func dailyKey(userID, day string) string {
	return "daily:" + userID + ":" + day
}
