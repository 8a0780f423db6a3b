package storage

import (
	"context"

	"github.com/mattrk/trickhall/internal/model"
)

// Storage defines the interface for game persistence. The Game aggregate
// is saved and loaded whole; partial writes are never visible.
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	DeleteGame(ctx context.Context, code model.GameCode) error
	GameExists(ctx context.Context, code model.GameCode) (bool, error)
}
