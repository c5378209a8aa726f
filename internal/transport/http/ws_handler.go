package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/codebyghita/guess-game/internal/app"
	"github.com/codebyghita/guess-game/internal/domain"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	engine   *app.GameEngine
	upgrader websocket.Upgrader
}

func NewWSHandler(engine *app.GameEngine) *WSHandler {
	return &WSHandler{
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	Difficulty string `json:"difficulty"`
	Mode       string `json:"mode"`
}

type answerPayload struct {
	Text string `json:"text"`
}

type leaderboardPayload struct {
	Difficulty string `json:"difficulty"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// questionView hides the canonical answer while a question is live.
type questionView struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	Prompt   string   `json:"prompt"`
	Asset    string   `json:"asset,omitempty"`
	Options  []string `json:"options,omitempty"`
	Category string   `json:"category"`
	Points   int      `json:"points"`
	Hints    []string `json:"hints,omitempty"` // revealed hints only
	Answer   string   `json:"answer,omitempty"`
}

type sessionView struct {
	UserID         string        `json:"userId"`
	Phase          string        `json:"phase"`
	Mode           string        `json:"mode"`
	Difficulty     string        `json:"difficulty"`
	Score          int           `json:"score"`
	Streak         int           `json:"streak"`
	Lives          int           `json:"lives"`
	Answered       int           `json:"answered"`
	Correct        int           `json:"correct"`
	TotalGames     int           `json:"totalGames"`
	BestScore      int           `json:"bestScore"`
	DailyCompleted bool          `json:"dailyCompleted"`
	Rank           string        `json:"rank"`
	Question       *questionView `json:"question,omitempty"`
}

type answerResult struct {
	Correct     bool        `json:"correct"`
	BasePoints  int         `json:"basePoints"`
	StreakBonus int         `json:"streakBonus"`
	Awarded     int         `json:"awarded"`
	Session     sessionView `json:"session"`
}

// ServeWS upgrades the connection and maps inbound messages one-to-one onto
// engine operations. A single read loop also writes, so no writer goroutine
// is needed.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "missing userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := r.Context()

	sess, err := h.engine.Session(ctx, userID)
	if err != nil {
		writeError(conn, err)
		return
	}
	writeMsg(conn, "session", toSessionView(sess))

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				writeError(conn, errors.New("invalid start payload"))
				continue
			}
			sess, err := h.engine.StartGame(ctx, userID, domain.Difficulty(payload.Difficulty), domain.Mode(payload.Mode))
			if err != nil {
				writeError(conn, err)
				continue
			}
			writeMsg(conn, "session", toSessionView(sess))

		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				writeError(conn, errors.New("invalid answer payload"))
				continue
			}
			sess, ev, err := h.engine.SubmitAnswer(ctx, userID, payload.Text)
			if err != nil {
				writeError(conn, err)
				continue
			}
			writeMsg(conn, "answerResult", answerResult{
				Correct:     ev.Correct,
				BasePoints:  ev.BasePoints,
				StreakBonus: ev.StreakBonus,
				Awarded:     ev.Awarded,
				Session:     toSessionView(sess),
			})

		case "hint":
			sess, err := h.engine.UseHint(ctx, userID)
			if err != nil {
				writeError(conn, err)
				continue
			}
			writeMsg(conn, "session", toSessionView(sess))

		case "advance":
			sess, err := h.engine.Advance(ctx, userID)
			if err != nil {
				writeError(conn, err)
				continue
			}
			writeMsg(conn, "session", toSessionView(sess))

		case "reset":
			sess, err := h.engine.ResetToIdle(ctx, userID)
			if err != nil {
				writeError(conn, err)
				continue
			}
			writeMsg(conn, "session", toSessionView(sess))

		case "leaderboard":
			var payload leaderboardPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				writeError(conn, errors.New("invalid leaderboard payload"))
				continue
			}
			entries, err := h.engine.Leaderboard(ctx, domain.Difficulty(payload.Difficulty))
			if err != nil {
				writeError(conn, err)
				continue
			}
			writeMsg(conn, "leaderboard", entries)

		default:
			writeError(conn, errors.New("unsupported message type"))
		}
	}
}

func toSessionView(sess domain.Session) sessionView {
	view := sessionView{
		UserID:         sess.UserID,
		Phase:          string(sess.Phase),
		Mode:           string(sess.Mode),
		Difficulty:     string(sess.Difficulty),
		Score:          sess.Score,
		Streak:         sess.Streak,
		Lives:          sess.LivesRemaining,
		Answered:       sess.QuestionsAnswered,
		Correct:        sess.CorrectAnswers,
		TotalGames:     sess.TotalGamesPlayed,
		BestScore:      sess.BestScore,
		DailyCompleted: sess.DailyCompletedToday,
		Rank:           domain.RankTitle(sess.Score),
	}
	if q := sess.ActiveQuestion; q != nil {
		qv := &questionView{
			ID:       q.ID,
			Kind:     string(q.Kind),
			Prompt:   q.Prompt,
			Asset:    q.Asset,
			Options:  q.Options,
			Category: q.Category,
			Points:   q.PointValue(),
			Hints:    q.Hints[:sess.HintsRevealed],
		}
		if sess.Phase == domain.PhaseRevealed {
			qv.Answer = q.CorrectAnswer
		}
		view.Question = qv
	}
	return view
}

func writeMsg[T any](conn *websocket.Conn, typ string, payload T) {
	if err := conn.WriteJSON(outboundMessage[T]{Type: typ, Payload: payload}); err != nil {
		log.Printf("ws write error: %v", err)
	}
}

func writeError(conn *websocket.Conn, err error) {
	writeMsg(conn, "error", errorPayload{Message: err.Error()})
}
