package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/protocol"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/registry"
)

// DefaultGameOverDelay is the pacing gap between the terminal move_made
// broadcast and the game_over broadcast, so clients can animate the final
// placement first.
const DefaultGameOverDelay = 500 * time.Millisecond

const resultSaveTimeout = 5 * time.Second

// Sender delivers an outbound message to a session. Sending to a session
// that is gone must be a safe no-op.
type Sender interface {
	Send(sessionID string, message any) error
}

type resultRecorder interface {
	Save(ctx context.Context, result *entity.GameResult) error
}

// Engine dispatches decoded client messages to handlers that mutate room and
// session state and emit broadcasts. A single mutex serializes handlers and
// timer callbacks: no two of them ever run concurrently against shared state.
type Engine struct {
	logger   *slog.Logger
	rooms    *registry.RoomRegistry
	sessions *registry.SessionRegistry
	sender   Sender
	results  resultRecorder

	gameOverDelay time.Duration

	mu sync.Mutex
}

func New(logger *slog.Logger, rooms *registry.RoomRegistry, sessions *registry.SessionRegistry, sender Sender, results resultRecorder, gameOverDelay time.Duration) *Engine {
	if gameOverDelay <= 0 {
		gameOverDelay = DefaultGameOverDelay
	}

	return &Engine{
		logger:   logger,
		rooms:    rooms,
		sessions: sessions,
		sender:   sender,
		results:  results,

		gameOverDelay: gameOverDelay,
	}
}

// HandleMessage decodes one inbound payload and dispatches it. Protocol
// errors produce a single error reply to the sender and touch no state.
func (that *Engine) HandleMessage(ctx context.Context, sessionID string, raw []byte) {
	msg, err := protocol.Decode(raw)
	if err != nil {
		if errors.Is(err, apperror.ErrUnknownMessage) {
			that.sendError(sessionID, "Unknown message type")
			return
		}

		that.sendError(sessionID, "Invalid message format")

		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	switch m := msg.(type) {
	case protocol.JoinRoom:
		that.handleJoinRoom(sessionID, m)
	case protocol.MakeMove:
		that.handleMakeMove(sessionID, m)
	case protocol.NewGame:
		that.handleNewGame(sessionID)
	case protocol.LeaveRoom:
		that.removePlayer(sessionID)
	case protocol.Chat:
		that.handleChat(sessionID, m)
	}
}

// HandleDisconnect runs the leave cleanup for a closed connection. It is
// idempotent: a second call for the same session is a no-op.
func (that *Engine) HandleDisconnect(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.removePlayer(sessionID)
}

func (that *Engine) broadcast(room *entity.Room, message any) {
	for _, player := range room.Players {
		that.send(player.SessionID, message)
	}
}

func (that *Engine) send(sessionID string, message any) {
	if err := that.sender.Send(sessionID, message); err != nil {
		that.logger.Error("failed to send message", "sessionID", sessionID, "error", err)
	}
}

func (that *Engine) sendError(sessionID, text string) {
	that.send(sessionID, protocol.NewError(text))
}

// scheduleGameOver fires the game_over broadcast after the pacing delay. The
// callback re-checks room existence: if the room was deleted while the timer
// was pending, the broadcast becomes a no-op.
func (that *Engine) scheduleGameOver(roomCode, winner string, winningCells []entity.Coord) {
	time.AfterFunc(that.gameOverDelay, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		room, ok := that.rooms.Get(roomCode)
		if !ok {
			return
		}

		that.broadcast(room, protocol.NewGameOver(winner, winningCells))
	})
}

// recordResult archives a finished game without blocking the dispatch path.
// Failures are logged and never surfaced to players.
func (that *Engine) recordResult(room *entity.Room, winner string) {
	if that.results == nil {
		return
	}

	result := &entity.GameResult{
		RoomCode:   room.Code,
		Winner:     winner,
		Moves:      room.Moves,
		FinishedAt: time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), resultSaveTimeout)
		defer cancel()

		if err := that.results.Save(ctx, result); err != nil {
			that.logger.Error("failed to save game result", "roomCode", result.RoomCode, "error", err)
		}
	}()
}
