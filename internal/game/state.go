package game

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mroshb/trivia_bot/pkg/errors"
)

type JoinStatus int

const (
	Joined JoinStatus = iota
	AlreadyJoined
	GameAlreadyRunning
)

type JoinResult struct {
	Status     JoinStatus
	RosterSize int
}

type StartStatus int

const (
	Started StartStatus = iota
	AlreadyRunning
	// Aborted means the round was reset while the question fetch was in
	// flight; nothing was started and the fetched questions were discarded.
	Aborted
)

type StartResult struct {
	Status  StartStatus
	RoundID string
	First   *Question
	Total   int
}

type AnswerStatus int

const (
	Correct AnswerStatus = iota
	Incorrect
	NotInGame
	GameAlreadyEnded
)

type AnswerResult struct {
	Status   AnswerStatus
	NewScore int
	// Next is the question revealed by a correct answer, nil when the round
	// just finished.
	Next      *Question
	NextIndex int
	Finished  bool
}

type SkipResult struct {
	Skipped  bool
	Next     *Question
	NextIndex int
	Finished bool
}

type StartOptions struct {
	Amount     int
	Category   string
	Difficulty string
}

type LeaderboardEntry struct {
	PlayerID string
	Name     string
	Score    int
}

// State is the trivia game of a single chat. All mutations run under the
// state mutex; the first correct answer in lock-acquisition order wins the
// point, everyone behind it answers the already-advanced question.
type State struct {
	mu sync.Mutex

	players   map[string]int
	names     map[string]string
	joinOrder []string

	questions    []Question
	currentIndex int
	running      bool
	roundID      string
}

func NewState() *State {
	return &State{
		players: make(map[string]int),
		names:   make(map[string]string),
	}
}

func (s *State) endedLocked() bool {
	return len(s.questions) > 0 && s.currentIndex >= len(s.questions)
}

// Join adds a player to the roster. Joining is refused while a round is in
// progress; once the round has ended new players may queue up for the next
// one.
func (s *State) Join(playerID, name string) JoinResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running && !s.endedLocked() {
		return JoinResult{Status: GameAlreadyRunning, RosterSize: len(s.players)}
	}

	if _, ok := s.players[playerID]; ok {
		return JoinResult{Status: AlreadyJoined, RosterSize: len(s.players)}
	}

	s.players[playerID] = 0
	s.names[playerID] = name
	s.joinOrder = append(s.joinOrder, playerID)
	return JoinResult{Status: Joined, RosterSize: len(s.players)}
}

// Start claims the round, fetches questions and begins at index 0. The fetch
// runs outside the lock so a slow provider does not block answers in other
// code paths; the claim is rolled back if the provider fails or returns
// nothing, leaving the state exactly as before.
func (s *State) Start(ctx context.Context, opts StartOptions, source QuestionSource) (StartResult, error) {
	s.mu.Lock()
	if s.running && !s.endedLocked() {
		s.mu.Unlock()
		return StartResult{Status: AlreadyRunning}, nil
	}

	prevRunning := s.running
	prevQuestions := s.questions
	prevIndex := s.currentIndex
	prevRoundID := s.roundID

	// Claim the round under its new id so a concurrent Start sees
	// AlreadyRunning while the fetch is in flight.
	claim := uuid.NewString()
	s.running = true
	s.questions = nil
	s.currentIndex = 0
	s.roundID = claim
	s.mu.Unlock()

	questions, err := source.FetchQuestions(ctx, FetchRequest{
		Amount:     opts.Amount,
		Category:   opts.Category,
		Difficulty: opts.Difficulty,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	// A Reset (or a newer Start after one) may have intervened during the
	// fetch. The intervening operation wins; this fetch is discarded.
	if s.roundID != claim {
		return StartResult{Status: Aborted}, nil
	}

	if err != nil || len(questions) == 0 {
		s.running = prevRunning
		s.questions = prevQuestions
		s.currentIndex = prevIndex
		s.roundID = prevRoundID
		if err != nil {
			return StartResult{}, errors.Wrap(err, errors.ErrCodeQuestionFetch, "failed to fetch questions")
		}
		return StartResult{}, errors.New(errors.ErrCodeQuestionFetch, "provider returned no questions")
	}

	s.questions = questions
	s.currentIndex = 0

	first := questions[0]
	return StartResult{
		Status:  Started,
		RoundID: claim,
		First:   &first,
		Total:   len(questions),
	}, nil
}

// SubmitAnswer checks answer against the current question. Only roster
// members can score, and only the current question is eligible.
func (s *State) SubmitAnswer(playerID, answer string) AnswerResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || len(s.questions) == 0 || s.endedLocked() {
		return AnswerResult{Status: GameAlreadyEnded}
	}

	score, ok := s.players[playerID]
	if !ok {
		return AnswerResult{Status: NotInGame}
	}

	if answer != s.questions[s.currentIndex].CorrectAnswer {
		return AnswerResult{Status: Incorrect}
	}

	s.players[playerID] = score + 1
	s.currentIndex++

	res := AnswerResult{Status: Correct, NewScore: score + 1}
	if s.currentIndex < len(s.questions) {
		next := s.questions[s.currentIndex]
		res.Next = &next
		res.NextIndex = s.currentIndex
	} else {
		res.Finished = true
	}
	return res
}

// SkipIfCurrent expires the question at index when it is still the current
// one. Used by the per-question timer; a question that was already answered
// is left alone.
func (s *State) SkipIfCurrent(index int) SkipResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.endedLocked() || s.currentIndex != index {
		return SkipResult{}
	}

	s.currentIndex++
	res := SkipResult{Skipped: true}
	if s.currentIndex < len(s.questions) {
		next := s.questions[s.currentIndex]
		res.Next = &next
		res.NextIndex = s.currentIndex
	} else {
		res.Finished = true
	}
	return res
}

// Leaderboard returns players sorted by score descending. The sort is stable
// over join order, so ties rank in the order players joined.
func (s *State) Leaderboard() []LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]LeaderboardEntry, 0, len(s.joinOrder))
	for _, id := range s.joinOrder {
		entries = append(entries, LeaderboardEntry{
			PlayerID: id,
			Name:     s.names[id],
			Score:    s.players[id],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// Reset abandons the current round. The roster and accumulated scores are
// kept, so consecutive rounds in the same chat build one running tally.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = nil
	s.currentIndex = 0
	s.running = false
	s.roundID = ""
}

func (s *State) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *State) IsEnded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endedLocked()
}

func (s *State) RoundID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundID
}

func (s *State) RosterSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.players)
}

// CurrentQuestion returns the question the round is waiting on, along with
// its index. ok is false before a round starts and after it ends.
func (s *State) CurrentQuestion() (Question, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || len(s.questions) == 0 || s.endedLocked() {
		return Question{}, 0, false
	}
	return s.questions[s.currentIndex], s.currentIndex, true
}

func (s *State) QuestionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.questions)
}
