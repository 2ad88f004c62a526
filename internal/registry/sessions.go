package registry

import (
	"sync"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

// SessionRegistry maps opaque session IDs to their player bindings. One
// session holds at most one binding at a time.
type SessionRegistry struct {
	mu      sync.RWMutex
	players map[string]*entity.Player
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		players: make(map[string]*entity.Player),
	}
}

func (that *SessionRegistry) Bind(sessionID string, player *entity.Player) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.players[sessionID] = player
}

func (that *SessionRegistry) Lookup(sessionID string) (*entity.Player, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	player, ok := that.players[sessionID]

	return player, ok
}

// Unbind drops the session's binding. Unbinding an unknown session is a no-op.
func (that *SessionRegistry) Unbind(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.players, sessionID)
}
