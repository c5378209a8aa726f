package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"html"
	"net/http"
	"net/url"
	"time"

	"github.com/codebyghita/guess-game/internal/domain"
)

const (
	defaultBaseURL = "https://opentdb.com/api.php"
	defaultAmount  = 15
)

// Client fetches candidate questions from the Open Trivia DB feed. It is a
// content-source collaborator only: callers treat any failure as a signal to
// fall back to the builtin catalog.
type Client struct {
	baseURL string
	amount  int
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		amount:  defaultAmount,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type rawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []rawQuestion `json:"results"`
}

// LoadCatalog satisfies the catalog loader contract used by the caches.
func (c *Client) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	reqURL := c.baseURL + "?amount=" + url.QueryEscape(fmt.Sprintf("%d", c.amount))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trivia feed returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("trivia feed response_code=%d", payload.ResponseCode)
	}

	questions := make([]domain.Question, 0, len(payload.Results))
	for _, raw := range payload.Results {
		questions = append(questions, toQuestion(raw))
	}
	return questions, nil
}

func toQuestion(raw rawQuestion) domain.Question {
	prompt := html.UnescapeString(raw.Question)
	answer := html.UnescapeString(raw.CorrectAnswer)

	var options []string
	if raw.Type == "multiple" || raw.Type == "boolean" {
		options = append(options, answer)
		for _, wrong := range raw.IncorrectAnswers {
			options = append(options, html.UnescapeString(wrong))
		}
	}

	return domain.Question{
		ID:            feedID(prompt),
		Kind:          domain.KindWord,
		Prompt:        prompt,
		CorrectAnswer: answer,
		Options:       options,
		Difficulty:    toDifficulty(raw.Difficulty),
		Category:      html.UnescapeString(raw.Category),
	}
}

func toDifficulty(raw string) domain.Difficulty {
	switch raw {
	case "medium":
		return domain.DifficultyMedium
	case "hard":
		return domain.DifficultyHard
	default:
		return domain.DifficultyEasy
	}
}

// feedID derives a stable id from the prompt so re-fetched questions keep the
// same identity within a session's remaining-pool tracking.
func feedID(prompt string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	return fmt.Sprintf("feed-%08x", h.Sum32())
}
