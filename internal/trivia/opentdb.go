package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mroshb/trivia_bot/internal/game"
	"github.com/mroshb/trivia_bot/pkg/errors"
)

const defaultBaseURL = "https://opentdb.com/api.php"

// Difficulty values accepted by the provider and the question bank.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Category keys. The bot only offers the two categories the game supports.
const (
	CategoryGeneral   = "general"
	CategoryComputers = "computers"
)

// OpenTDB category ids, see https://opentdb.com/api_config.php
var categoryIDs = map[string]int{
	CategoryGeneral:   9,
	CategoryComputers: 18,
}

func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func Categories() []string {
	return []string{CategoryGeneral, CategoryComputers}
}

// Client fetches true/false questions from the Open Trivia Database.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sanitizer  *bluemonday.Policy
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	c := NewClient(timeout)
	c.baseURL = baseURL
	return c
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []apiQuestion `json:"results"`
}

type apiQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

// FetchQuestions pulls req.Amount boolean questions from OpenTDB. The
// provider is asked for RFC 3986 encoding so the payload survives the
// occasional quote or ampersand; text is decoded and stripped of markup
// before it reaches the game.
func (c *Client) FetchQuestions(ctx context.Context, req game.FetchRequest) ([]game.Question, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "invalid provider base url")
	}

	query := endpoint.Query()
	query.Set("amount", strconv.Itoa(req.Amount))
	query.Set("type", "boolean")
	query.Set("encode", "url3986")
	if id, ok := categoryIDs[req.Category]; ok {
		query.Set("category", strconv.Itoa(id))
	}
	if req.Difficulty != "" {
		query.Set("difficulty", req.Difficulty)
	}
	endpoint.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to build provider request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeQuestionFetch, "provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeQuestionFetch,
			fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeQuestionFetch, "failed to decode provider response")
	}

	switch body.ResponseCode {
	case 0:
		// success
	case 1:
		return nil, errors.New(errors.ErrCodeQuestionFetch, "provider has no questions for this query")
	default:
		return nil, errors.New(errors.ErrCodeQuestionFetch,
			fmt.Sprintf("provider response code %d", body.ResponseCode))
	}

	questions := make([]game.Question, 0, len(body.Results))
	for _, result := range body.Results {
		text, err := url.QueryUnescape(result.Question)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeQuestionFetch, "failed to decode question text")
		}
		answer, err := url.QueryUnescape(result.CorrectAnswer)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeQuestionFetch, "failed to decode answer")
		}

		questions = append(questions, game.NewBinaryQuestion(
			c.sanitizer.Sanitize(text),
			normalizeAnswer(answer),
		))
	}

	return questions, nil
}

func normalizeAnswer(answer string) string {
	if strings.EqualFold(answer, game.AnswerTrue) {
		return game.AnswerTrue
	}
	return game.AnswerFalse
}
