package game

import "sync"

// Registry maps a chat to its game state. States are created lazily and live
// for the process lifetime.
type Registry struct {
	mu    sync.RWMutex
	games map[int64]*State
}

func NewRegistry() *Registry {
	return &Registry{
		games: make(map[int64]*State),
	}
}

// GetOrCreate returns the chat's state, creating a fresh one on first use.
func (r *Registry) GetOrCreate(chatID int64) *State {
	r.mu.RLock()
	state, ok := r.games[chatID]
	r.mu.RUnlock()
	if ok {
		return state
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.games[chatID]; ok {
		return state
	}
	state = NewState()
	r.games[chatID] = state
	return state
}

// Get returns the chat's state if one exists. A finished round is hidden
// unless includeEnded is set, so commands never act on a stale game by
// accident; leaderboard queries pass includeEnded=true.
func (r *Registry) Get(chatID int64, includeEnded bool) (*State, bool) {
	r.mu.RLock()
	state, ok := r.games[chatID]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if state.IsEnded() && !includeEnded {
		return nil, false
	}
	return state, true
}
