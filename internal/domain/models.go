package domain

import "time"

// Difficulty buckets questions and leaderboards.
type Difficulty string

const (
	DifficultyAll    Difficulty = "all"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Points is the base score table per difficulty.
var Points = map[Difficulty]int{
	DifficultyEasy:   10,
	DifficultyMedium: 20,
	DifficultyHard:   30,
}

// Kind tags the two question flavors.
type Kind string

const (
	KindMeme Kind = "meme"
	KindWord Kind = "word"
)

// Mode selects the game variant and its rule set.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeWord    Mode = "word"
	ModeDaily   Mode = "daily"
)

// Phase is the session state-machine tag.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhasePlaying  Phase = "playing"
	PhaseRevealed Phase = "revealed"
	PhaseComplete Phase = "complete"
)

// Question is an immutable catalog entry.
type Question struct {
	ID            string     `json:"id"`
	Kind          Kind       `json:"kind"`
	Prompt        string     `json:"prompt"`
	Asset         string     `json:"asset,omitempty"` // image URL or ASCII art
	CorrectAnswer string     `json:"correctAnswer"`
	Options       []string   `json:"options,omitempty"` // empty means free text
	Hints         []string   `json:"hints,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	Category      string     `json:"category"`
}

// PointValue returns the base points for the question's difficulty.
func (q Question) PointValue() int {
	if p, ok := Points[q.Difficulty]; ok {
		return p
	}
	return Points[DifficultyEasy]
}

// Session is the mutable per-user game state. It is owned by the engine and
// persisted in full after every transition.
type Session struct {
	UserID     string     `json:"userId"`
	Phase      Phase      `json:"phase"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`

	// Questions is the game set snapshotted at start; RemainingIDs tracks the
	// not-yet-drawn subset for the current session.
	Questions      []Question `json:"questions,omitempty"`
	RemainingIDs   []string   `json:"remainingIds,omitempty"`
	ActiveQuestion *Question  `json:"activeQuestion,omitempty"`

	Score             int `json:"score"`
	Streak            int `json:"streak"`
	LivesRemaining    int `json:"livesRemaining"`
	AttemptsOnCurrent int `json:"attemptsOnCurrent"`
	HintsRevealed     int `json:"hintsRevealed"`
	QuestionsAnswered int `json:"questionsAnswered"`
	CorrectAnswers    int `json:"correctAnswers"`

	TotalGamesPlayed    int  `json:"totalGamesPlayed"`
	BestScore           int  `json:"bestScore"`
	DailyCompletedToday bool `json:"dailyCompletedToday"`

	StartedAt time.Time `json:"startedAt,omitempty"`
}

// NewSession returns the zero-value session for a user without saved state.
func NewSession(userID string) Session {
	return Session{UserID: userID, Phase: PhaseIdle, Difficulty: DifficultyEasy, Mode: ModeClassic}
}

// ScoreEvent summarizes the outcome of one answer submission. It is ephemeral
// and never persisted.
type ScoreEvent struct {
	Correct     bool `json:"correct"`
	BasePoints  int  `json:"basePoints"`
	StreakBonus int  `json:"streakBonus"`
	Awarded     int  `json:"awarded"`
}

// LeaderboardEntry is one row of a per-difficulty top-10 board.
type LeaderboardEntry struct {
	UserID     string     `json:"userId"`
	Score      int        `json:"score"`
	Difficulty Difficulty `json:"difficulty"`
	Streak     int        `json:"streak"`
	Timestamp  time.Time  `json:"timestamp"`
}

var rankThresholds = []struct {
	title string
	score int
}{
	{"Internet Legend", 500},
	{"Meme Expert", 300},
	{"Reddit Regular", 200},
	{"Meme Enthusiast", 120},
	{"Casual Browser", 50},
	{"Meme Newbie", 0},
}

// RankTitle maps a cumulative score onto its display rank.
func RankTitle(score int) string {
	for _, r := range rankThresholds {
		if score >= r.score {
			return r.title
		}
	}
	return "Meme Newbie"
}
