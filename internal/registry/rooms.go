package registry

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6

	// maxCodeAttempts bounds collision re-rolls. With 36^6 codes and a
	// handful of live rooms this is practically unreachable.
	maxCodeAttempts = 16
)

// RoomRegistry owns the set of active rooms, keyed by code. It is handed to
// the engine explicitly rather than living as a process-wide singleton.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room

	generateCode func() string
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		rooms:        make(map[string]*entity.Room),
		generateCode: randomCode,
	}
}

// Create allocates a room under a fresh code, re-rolling until the code is
// unused among active rooms.
func (that *RoomRegistry) Create() (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i := 0; i < maxCodeAttempts; i++ {
		code := that.generateCode()
		if _, taken := that.rooms[code]; taken {
			continue
		}

		room := entity.NewRoom(code)
		that.rooms[code] = room

		return room, nil
	}

	return nil, apperror.ErrRoomCodesExhausted
}

func (that *RoomRegistry) Get(code string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[code]

	return room, ok
}

// Delete removes a room from the registry. Deleting an absent code is a no-op.
func (that *RoomRegistry) Delete(code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms, code)
}

func (that *RoomRegistry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}

// randomCode produces a short human-typeable uppercase base-36 code. Room
// codes are not a security surface, so math/rand is fine here.
func randomCode() string {
	var sb strings.Builder
	sb.Grow(codeLength)

	for i := 0; i < codeLength; i++ {
		sb.WriteByte(codeAlphabet[rand.Intn(len(codeAlphabet))]) //nolint:gosec // non-cryptographic code
	}

	return sb.String()
}
