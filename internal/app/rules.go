package app

import "github.com/codebyghita/guess-game/internal/domain"

// ModeRules is the policy object for one game variant.
type ModeRules struct {
	// Lives is the wrong-answer budget for the whole game; 0 disables it.
	Lives int
	// AttemptBudget is the per-question wrong-answer cap; 0 disables it.
	AttemptBudget int
	// QuestionTarget is how many questions make up one game.
	QuestionTarget int
	// Scorer computes points for this mode.
	Scorer Scorer
	// Daily marks the once-per-day gated variant with date-seeded selection.
	Daily bool
	// DailySetSize is how many questions the daily set contains.
	DailySetSize int
}

// DefaultRules returns the three shipped variants: lives-limited classic
// play, attempt-limited word play, and the gated daily challenge.
func DefaultRules() map[domain.Mode]ModeRules {
	return map[domain.Mode]ModeRules{
		domain.ModeClassic: {
			Lives:          3,
			QuestionTarget: 5,
			Scorer:         StreakBonusScorer{},
		},
		domain.ModeWord: {
			AttemptBudget:  3,
			QuestionTarget: 6,
			Scorer:         PenaltyScorer{},
		},
		domain.ModeDaily: {
			Lives:          3,
			QuestionTarget: 5,
			Scorer:         StreakBonusScorer{},
			Daily:          true,
			DailySetSize:   5,
		},
	}
}
