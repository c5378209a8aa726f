package app

import (
	"context"
	"time"
)

// DailyStore persists presence-only completion markers keyed by user and
// calendar day.
type DailyStore interface {
	Completed(ctx context.Context, userID, day string) (bool, error)
	MarkCompleted(ctx context.Context, userID, day string) error
}

// DailyGate decides once-per-day eligibility. The calendar day is supplied by
// the caller; the gate never consults a wall clock itself.
type DailyGate struct {
	store DailyStore
}

func NewDailyGate(store DailyStore) *DailyGate {
	return &DailyGate{store: store}
}

// CompletedToday reports whether the user already finished the daily
// challenge on the given day.
func (g *DailyGate) CompletedToday(ctx context.Context, userID, day string) (bool, error) {
	return g.store.Completed(ctx, userID, day)
}

// MarkCompleted idempotently records completion for the given day.
func (g *DailyGate) MarkCompleted(ctx context.Context, userID, day string) error {
	return g.store.MarkCompleted(ctx, userID, day)
}

// DayKey formats a timestamp as the timezone-independent calendar-date key
// used for daily gating and seeding.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
