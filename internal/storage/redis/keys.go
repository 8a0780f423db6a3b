package redis

import (
	"fmt"

	"github.com/mattrk/trickhall/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "trickhall"

// gameKey returns the Redis key for a Game
func gameKey(code model.GameCode) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, code)
}
