package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mattrk/trickhall/internal/model"
	"github.com/mattrk/trickhall/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Games are stored as JSON snapshots so callers never share mutable state
// with the store, matching the semantics of the Redis backend.
type Storage struct {
	mu    sync.RWMutex
	games map[model.GameCode][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameCode][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.Code] = data
	return nil
}

func (s *Storage) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	s.mu.RLock()
	data, ok := s.games[code]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrGameNotFound
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, code model.GameCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, code)
	return nil
}

func (s *Storage) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[code]
	return ok, nil
}
