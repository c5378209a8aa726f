package app_test

import (
	"testing"

	"github.com/codebyghita/guess-game/internal/app"
	"github.com/codebyghita/guess-game/internal/domain"
)

func TestBasePointsPerDifficulty(t *testing.T) {
	for _, scorer := range []app.Scorer{app.PenaltyScorer{}, app.StreakBonusScorer{}} {
		for difficulty, want := range domain.Points {
			ev := scorer.Score(difficulty, 0, 0, 0, true)
			if ev.Awarded != want {
				t.Fatalf("%T: expected %d points for %s with no penalties, got %d", scorer, want, difficulty, ev.Awarded)
			}
		}
	}
}

func TestPenaltyScorerFloorsAtOne(t *testing.T) {
	scorer := app.PenaltyScorer{}
	ev := scorer.Score(domain.DifficultyEasy, 50, 50, 0, true)
	if ev.Awarded != 1 {
		t.Fatalf("expected floor of 1 point, got %d", ev.Awarded)
	}
	ev = scorer.Score(domain.DifficultyMedium, 2, 1, 0, true)
	if ev.Awarded != 20-4-3 {
		t.Fatalf("expected 13 points after penalties, got %d", ev.Awarded)
	}
}

func TestPenaltyScorerAwardsNothingWhenWrong(t *testing.T) {
	ev := app.PenaltyScorer{}.Score(domain.DifficultyHard, 0, 0, 0, false)
	if ev.Correct || ev.Awarded != 0 {
		t.Fatalf("expected zero award for wrong answer, got %+v", ev)
	}
}

func TestStreakBonusThreshold(t *testing.T) {
	scorer := app.StreakBonusScorer{}

	ev := scorer.Score(domain.DifficultyMedium, 0, 0, 2, true)
	if ev.Awarded != 20 || ev.StreakBonus != 0 {
		t.Fatalf("streak 2 should have no bonus, got %+v", ev)
	}

	ev = scorer.Score(domain.DifficultyMedium, 0, 0, 3, true)
	if ev.StreakBonus != 10 || ev.Awarded != 30 {
		t.Fatalf("streak 3 should add half base, got %+v", ev)
	}

	ev = scorer.Score(domain.DifficultyHard, 0, 0, 7, true)
	if ev.Awarded != 30+15 {
		t.Fatalf("expected 45 points for hard on a long streak, got %d", ev.Awarded)
	}
}

func TestAnswerMatches(t *testing.T) {
	cases := []struct {
		guess, answer string
		want          bool
	}{
		{"this is fine", "this is fine", true},
		{"  This Is FINE  ", "this is fine", true},
		{"drake", "drake pointing", true},       // guess contained in answer
		{"the doge meme", "doge", true},         // answer contained in guess
		{"woman yelling", "success kid", false},
		{"", "doge", false},
		{"doge", "", false},
	}
	for _, tc := range cases {
		if got := app.AnswerMatches(tc.guess, tc.answer); got != tc.want {
			t.Fatalf("AnswerMatches(%q, %q) = %v, want %v", tc.guess, tc.answer, got, tc.want)
		}
	}
}
