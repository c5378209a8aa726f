package app_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/codebyghita/guess-game/internal/app"
	"github.com/codebyghita/guess-game/internal/domain"
	"github.com/codebyghita/guess-game/internal/infra/memory"
)

func tickingClock(start time.Time) func() time.Time {
	ts := start
	return func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}
}

func TestLeaderboardCapsAtTen(t *testing.T) {
	ctx := context.Background()
	board := app.NewLeaderboardServiceWithClock(memory.NewLeaderboardStore(), tickingClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)))

	for i := 1; i <= 15; i++ {
		if err := board.Record(ctx, fmt.Sprintf("user-%d", i), i*10, domain.DifficultyEasy, 0); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := board.Top(ctx, domain.DifficultyEasy)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score >= entries[i-1].Score {
			t.Fatalf("entries not strictly descending at %d: %d then %d", i, entries[i-1].Score, entries[i].Score)
		}
	}
	if entries[0].Score != 150 || entries[9].Score != 60 {
		t.Fatalf("expected top 150 and bottom 60, got %d and %d", entries[0].Score, entries[9].Score)
	}
}

func TestLeaderboardTieBreaksByEarlierTimestamp(t *testing.T) {
	ctx := context.Background()
	board := app.NewLeaderboardServiceWithClock(memory.NewLeaderboardStore(), tickingClock(time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)))

	if err := board.Record(ctx, "first", 100, domain.DifficultyHard, 2); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := board.Record(ctx, "second", 100, domain.DifficultyHard, 5); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := board.Top(ctx, domain.DifficultyHard)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 2 || entries[0].UserID != "first" || entries[1].UserID != "second" {
		t.Fatalf("expected earlier entry to rank first on tie, got %+v", entries)
	}
}

func TestLeaderboardBucketsAreIndependent(t *testing.T) {
	ctx := context.Background()
	board := app.NewLeaderboardServiceWithClock(memory.NewLeaderboardStore(), tickingClock(time.Now()))

	if err := board.Record(ctx, "u1", 30, domain.DifficultyEasy, 0); err != nil {
		t.Fatalf("record: %v", err)
	}
	entries, err := board.Top(ctx, domain.DifficultyMedium)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty medium board, got %+v", entries)
	}
}
