package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/codebyghita/guess-game/internal/domain"
)

// SessionStore persists per-user game state (opaque key-value semantics).
// Load reports ok=false when no usable record exists for the user.
type SessionStore interface {
	Load(ctx context.Context, userID string) (domain.Session, bool, error)
	Save(ctx context.Context, sess domain.Session) error
}

// CatalogRepository supplies candidate questions (from cache/backing store).
type CatalogRepository interface {
	Catalog(ctx context.Context) ([]domain.Question, error)
}

// GameEngine is the per-user session state machine. Every operation loads the
// session, applies one transition, and saves the result; a failed save leaves
// the in-memory value unpersisted and is surfaced to the caller. The engine
// assumes at most one in-flight mutation per user and holds no per-user locks.
type GameEngine struct {
	sessions SessionStore
	catalog  CatalogRepository
	board    *LeaderboardService
	daily    *DailyGate
	rules    map[domain.Mode]ModeRules
	pool     *QuestionPool
	now      func() time.Time
}

func NewGameEngine(sessions SessionStore, catalog CatalogRepository, board *LeaderboardService, daily *DailyGate) *GameEngine {
	return newGameEngine(sessions, catalog, board, daily, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameEngineWithClock is test-only for deterministic time and draws.
func NewGameEngineWithClock(sessions SessionStore, catalog CatalogRepository, board *LeaderboardService, daily *DailyGate, now func() time.Time, rnd *rand.Rand) *GameEngine {
	return newGameEngine(sessions, catalog, board, daily, now, rnd)
}

func newGameEngine(sessions SessionStore, catalog CatalogRepository, board *LeaderboardService, daily *DailyGate, now func() time.Time, rnd *rand.Rand) *GameEngine {
	return &GameEngine{
		sessions: sessions,
		catalog:  catalog,
		board:    board,
		daily:    daily,
		rules:    DefaultRules(),
		pool:     NewQuestionPool(rnd),
		now:      now,
	}
}

// Session returns the user's current state, refreshing the daily-completion
// flag against the gate for today.
func (e *GameEngine) Session(ctx context.Context, userID string) (domain.Session, error) {
	sess := e.loadSession(ctx, userID)
	if done, err := e.daily.CompletedToday(ctx, userID, DayKey(e.now())); err == nil {
		sess.DailyCompletedToday = done
	}
	return sess, nil
}

// StartGame begins a fresh game: resets score/streak/lives/attempts/hints,
// snapshots the game set, and draws the first question. Daily mode is blocked
// when the gate already holds today's marker, and selects its set
// deterministically from the calendar date.
func (e *GameEngine) StartGame(ctx context.Context, userID string, difficulty domain.Difficulty, mode domain.Mode) (domain.Session, error) {
	rules, ok := e.rules[mode]
	if !ok {
		mode, rules = domain.ModeClassic, e.rules[domain.ModeClassic]
	}
	sess := e.loadSession(ctx, userID)
	day := DayKey(e.now())

	if rules.Daily {
		done, err := e.daily.CompletedToday(ctx, userID, day)
		if err != nil {
			log.Printf("daily gate check for %s failed, allowing start: %v", userID, err)
		}
		if done {
			sess.DailyCompletedToday = true
			return sess, domain.ErrAlreadyCompletedToday
		}
	}

	catalog := e.loadCatalog(ctx)
	var set []domain.Question
	if rules.Daily {
		set = DailySet(catalog, day, rules.DailySetSize)
	} else {
		set = FilterByDifficulty(catalog, difficulty)
	}
	if len(set) == 0 {
		return sess, domain.ErrEmptyCatalog
	}

	sess.Mode = mode
	sess.Difficulty = difficulty
	sess.Questions = set
	sess.RemainingIDs = idsOf(set)
	sess.Score = 0
	sess.Streak = 0
	sess.LivesRemaining = rules.Lives
	sess.AttemptsOnCurrent = 0
	sess.HintsRevealed = 0
	sess.QuestionsAnswered = 0
	sess.CorrectAnswers = 0
	sess.TotalGamesPlayed++
	sess.StartedAt = e.now()

	q, err := e.pool.Draw(&sess)
	if err != nil {
		return sess, err
	}
	sess.ActiveQuestion = &q
	sess.Phase = domain.PhasePlaying

	if err := e.saveSession(ctx, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// SubmitAnswer scores a guess against the active question. Correct answers
// bank points and extend the streak; wrong ones burn an attempt or a life
// depending on the mode's rules, ending the game when the life budget hits
// zero.
func (e *GameEngine) SubmitAnswer(ctx context.Context, userID, text string) (domain.Session, domain.ScoreEvent, error) {
	sess := e.loadSession(ctx, userID)
	if sess.Phase != domain.PhasePlaying || sess.ActiveQuestion == nil {
		return sess, domain.ScoreEvent{}, domain.ErrInvalidTransition
	}
	rules := e.rulesFor(sess.Mode)
	q := *sess.ActiveQuestion

	correct := AnswerMatches(text, q.CorrectAnswer)
	ev := rules.Scorer.Score(q.Difficulty, sess.AttemptsOnCurrent, sess.HintsRevealed, sess.Streak, correct)

	if correct {
		sess.Score += ev.Awarded
		sess.Streak++
		sess.CorrectAnswers++
		sess.QuestionsAnswered++
		sess.Phase = domain.PhaseRevealed
	} else {
		sess.AttemptsOnCurrent++
		switch {
		case rules.AttemptBudget > 0:
			if sess.AttemptsOnCurrent >= rules.AttemptBudget {
				sess.Streak = 0
				sess.QuestionsAnswered++
				sess.Phase = domain.PhaseRevealed
			}
			// attempts left: stay in playing for another try
		case rules.Lives > 0:
			sess.LivesRemaining--
			sess.Streak = 0
			sess.QuestionsAnswered++
			if sess.LivesRemaining <= 0 {
				e.finishGame(ctx, &sess)
			} else {
				sess.Phase = domain.PhaseRevealed
			}
		default:
			sess.Streak = 0
			sess.QuestionsAnswered++
			sess.Phase = domain.PhaseRevealed
		}
	}

	if err := e.saveSession(ctx, sess); err != nil {
		return sess, ev, err
	}
	return sess, ev, nil
}

// UseHint reveals the next hint of the active question. The cost is realized
// by the penalty scorer at submission time, not here.
func (e *GameEngine) UseHint(ctx context.Context, userID string) (domain.Session, error) {
	sess := e.loadSession(ctx, userID)
	if sess.Phase != domain.PhasePlaying || sess.ActiveQuestion == nil {
		return sess, domain.ErrInvalidTransition
	}
	if sess.HintsRevealed >= len(sess.ActiveQuestion.Hints) {
		return sess, domain.ErrNoHintsLeft
	}
	sess.HintsRevealed++
	if err := e.saveSession(ctx, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// Advance moves past a revealed question: either the next draw, or game
// completion once the mode's question target is reached.
func (e *GameEngine) Advance(ctx context.Context, userID string) (domain.Session, error) {
	sess := e.loadSession(ctx, userID)
	if sess.Phase != domain.PhaseRevealed {
		return sess, domain.ErrInvalidTransition
	}
	rules := e.rulesFor(sess.Mode)

	if rules.QuestionTarget > 0 && sess.QuestionsAnswered >= rules.QuestionTarget {
		e.finishGame(ctx, &sess)
	} else {
		q, err := e.pool.Draw(&sess)
		if err != nil {
			return sess, err
		}
		sess.ActiveQuestion = &q
		sess.AttemptsOnCurrent = 0
		sess.HintsRevealed = 0
		sess.Phase = domain.PhasePlaying
	}

	if err := e.saveSession(ctx, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// ResetToIdle returns to the start screen. Aggregate stats survive, and the
// streak carries over too; only StartGame clears it.
func (e *GameEngine) ResetToIdle(ctx context.Context, userID string) (domain.Session, error) {
	sess := e.loadSession(ctx, userID)
	sess.Phase = domain.PhaseIdle
	sess.ActiveQuestion = nil
	sess.Questions = nil
	sess.RemainingIDs = nil
	sess.Score = 0
	sess.AttemptsOnCurrent = 0
	sess.HintsRevealed = 0
	sess.QuestionsAnswered = 0
	sess.CorrectAnswers = 0
	if err := e.saveSession(ctx, sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// Leaderboard returns the top entries for a difficulty bucket.
func (e *GameEngine) Leaderboard(ctx context.Context, difficulty domain.Difficulty) ([]domain.LeaderboardEntry, error) {
	return e.board.Top(ctx, difficulty)
}

// finishGame performs the terminal transition: best-score rollup, leaderboard
// record, and the daily completion marker. Record failures are logged, not
// fatal, so a flaky board never loses the player's session.
func (e *GameEngine) finishGame(ctx context.Context, sess *domain.Session) {
	sess.Phase = domain.PhaseComplete
	sess.ActiveQuestion = nil
	if sess.Score > sess.BestScore {
		sess.BestScore = sess.Score
	}
	if err := e.board.Record(ctx, sess.UserID, sess.Score, sess.Difficulty, sess.Streak); err != nil {
		log.Printf("record leaderboard for %s: %v", sess.UserID, err)
	}
	if e.rulesFor(sess.Mode).Daily {
		if err := e.daily.MarkCompleted(ctx, sess.UserID, DayKey(e.now())); err != nil {
			log.Printf("mark daily complete for %s: %v", sess.UserID, err)
		} else {
			sess.DailyCompletedToday = true
		}
	}
}

func (e *GameEngine) rulesFor(mode domain.Mode) ModeRules {
	if rules, ok := e.rules[mode]; ok {
		return rules
	}
	return e.rules[domain.ModeClassic]
}

// loadSession recovers locally from missing or unreadable records by starting
// from the zero-value session.
func (e *GameEngine) loadSession(ctx context.Context, userID string) domain.Session {
	sess, ok, err := e.sessions.Load(ctx, userID)
	if err != nil {
		log.Printf("load session for %s failed, starting fresh: %v", userID, err)
		return domain.NewSession(userID)
	}
	if !ok {
		return domain.NewSession(userID)
	}
	sess.UserID = userID
	return sess
}

func (e *GameEngine) saveSession(ctx context.Context, sess domain.Session) error {
	if err := e.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}
	return nil
}

// loadCatalog falls back to the builtin set whenever the content source is
// absent, failing, or empty. Source failures never surface as game errors.
func (e *GameEngine) loadCatalog(ctx context.Context) []domain.Question {
	if e.catalog == nil {
		return BuiltinCatalog()
	}
	questions, err := e.catalog.Catalog(ctx)
	if err != nil {
		log.Printf("catalog source failed, using builtin: %v", err)
		return BuiltinCatalog()
	}
	if len(questions) == 0 {
		return BuiltinCatalog()
	}
	return questions
}
