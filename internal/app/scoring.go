package app

import (
	"strings"

	"github.com/codebyghita/guess-game/internal/domain"
)

// Scorer computes the points for a single answer submission. Implementations
// are pure; all session mutation happens in the engine.
type Scorer interface {
	Score(difficulty domain.Difficulty, attempts, hintsUsed, streak int, correct bool) domain.ScoreEvent
}

// PenaltyScorer deducts points per prior attempt and revealed hint, with a
// floor of one point for any correct answer. Used by the attempt-limited
// word mode.
type PenaltyScorer struct{}

func (PenaltyScorer) Score(difficulty domain.Difficulty, attempts, hintsUsed, _ int, correct bool) domain.ScoreEvent {
	base := domain.Points[difficulty]
	if !correct {
		return domain.ScoreEvent{BasePoints: base}
	}
	awarded := base - 2*attempts - 3*hintsUsed
	if awarded < 1 {
		awarded = 1
	}
	return domain.ScoreEvent{Correct: true, BasePoints: base, Awarded: awarded}
}

// StreakBonusScorer awards full base points plus a 50% bonus once the streak
// entering the answer is at least streakThreshold. Used by the lives-limited
// classic mode.
type StreakBonusScorer struct{}

const streakThreshold = 3

func (StreakBonusScorer) Score(difficulty domain.Difficulty, _, _, streak int, correct bool) domain.ScoreEvent {
	base := domain.Points[difficulty]
	if !correct {
		return domain.ScoreEvent{BasePoints: base}
	}
	bonus := 0
	if streak >= streakThreshold {
		bonus = base / 2
	}
	return domain.ScoreEvent{Correct: true, BasePoints: base, StreakBonus: bonus, Awarded: base + bonus}
}

// AnswerMatches reports whether a guess is accepted for a canonical answer.
// Matching is case-insensitive, whitespace-trimmed, and accepts either string
// containing the other, so abbreviated answers pass.
func AnswerMatches(guess, answer string) bool {
	g := strings.ToLower(strings.TrimSpace(guess))
	a := strings.ToLower(strings.TrimSpace(answer))
	if g == "" || a == "" {
		return false
	}
	return g == a || strings.Contains(g, a) || strings.Contains(a, g)
}
