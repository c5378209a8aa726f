package app

import (
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/codebyghita/guess-game/internal/domain"
)

// QuestionPool draws non-repeating questions from a session's game set.
// The not-yet-drawn ids live in the session itself so draws survive the
// load/save cycle between operations. The rng is shared across users and
// guarded by a mutex.
type QuestionPool struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewQuestionPool(rnd *rand.Rand) *QuestionPool {
	return &QuestionPool{rnd: rnd}
}

// Draw removes and returns one question from the session's remaining set.
// An exhausted set is repopulated from the full game set before drawing, so a
// draw always succeeds as long as the set is non-empty for the session's
// difficulty filter. Daily sessions draw in stored order to keep the
// date-seeded sequence reproducible across process restarts; all other modes
// draw uniformly at random.
func (p *QuestionPool) Draw(sess *domain.Session) (domain.Question, error) {
	if len(sess.RemainingIDs) == 0 {
		if sess.Mode == domain.ModeDaily {
			// The daily set spans difficulties; refill it whole to keep order.
			sess.RemainingIDs = idsOf(sess.Questions)
		} else {
			sess.RemainingIDs = idsOf(FilterByDifficulty(sess.Questions, sess.Difficulty))
		}
	}
	if len(sess.RemainingIDs) == 0 {
		return domain.Question{}, domain.ErrEmptyCatalog
	}

	idx := 0
	if sess.Mode != domain.ModeDaily {
		p.mu.Lock()
		idx = p.rnd.Intn(len(sess.RemainingIDs))
		p.mu.Unlock()
	}
	id := sess.RemainingIDs[idx]
	sess.RemainingIDs = append(sess.RemainingIDs[:idx], sess.RemainingIDs[idx+1:]...)

	for _, q := range sess.Questions {
		if q.ID == id {
			return q, nil
		}
	}
	// Remaining ids are always drawn from the game set, so this is unreachable
	// unless the persisted session was corrupted.
	return domain.Question{}, domain.ErrEmptyCatalog
}

func idsOf(questions []domain.Question) []string {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

// DailySeed derives a deterministic seed from a calendar-date string so every
// user sees the same daily set and repeated starts within one day reproduce
// the same sequence.
func DailySeed(day string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(day))
	return int64(h.Sum64())
}

// DailySet picks the size-capped, date-ordered daily question set from the
// easy and medium slices of the catalog.
func DailySet(catalog []domain.Question, day string, size int) []domain.Question {
	var eligible []domain.Question
	for _, q := range catalog {
		if q.Difficulty == domain.DifficultyEasy || q.Difficulty == domain.DifficultyMedium {
			eligible = append(eligible, q)
		}
	}
	rnd := rand.New(rand.NewSource(DailySeed(day)))
	rnd.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if size > 0 && len(eligible) > size {
		eligible = eligible[:size]
	}
	return eligible
}
