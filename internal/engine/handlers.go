package engine

import (
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/protocol"
)

func (that *Engine) handleJoinRoom(sessionID string, msg protocol.JoinRoom) {
	log := that.logger.With("method", "handleJoinRoom", "sessionID", sessionID)

	if msg.RoomCode != "" {
		if existing, ok := that.rooms.Get(msg.RoomCode); ok && existing.IsFull() {
			that.sendError(sessionID, "Room is full")
			return
		}
	}

	// A session holds at most one binding; joining again vacates the old
	// seat first. That can delete the session's previous room, so the target
	// room is resolved only afterwards.
	if _, bound := that.sessions.Lookup(sessionID); bound {
		that.removePlayer(sessionID)
	}

	var room *entity.Room
	if msg.RoomCode != "" {
		if existing, ok := that.rooms.Get(msg.RoomCode); ok {
			room = existing
		}
	}

	if room == nil {
		created, err := that.rooms.Create()
		if err != nil {
			log.Error("failed to create room", "error", err)
			that.sendError(sessionID, "Failed to create room")

			return
		}
		room = created
	}

	player := &entity.Player{
		SessionID: sessionID,
		Symbol:    room.NextSymbol(),
		RoomCode:  room.Code,
	}

	that.sessions.Bind(sessionID, player)
	room.AddPlayer(player)

	that.send(sessionID, protocol.NewRoomJoined(room.Code, player.Symbol))

	if opponent := room.Opponent(sessionID); opponent != nil {
		that.send(opponent.SessionID, protocol.NewPlayerJoined(player.Symbol))
	}

	if room.IsFull() {
		room.GameStarted = true
		that.broadcast(room, protocol.NewGameStart(room.CurrentPlayer))
	}

	log.Info("player joined room", "roomCode", room.Code, "symbol", player.Symbol)
}

func (that *Engine) handleMakeMove(sessionID string, msg protocol.MakeMove) {
	player, ok := that.sessions.Lookup(sessionID)
	if !ok {
		// stale or out-of-order message, not a user mistake
		return
	}

	room, ok := that.rooms.Get(player.RoomCode)
	if !ok || !room.GameStarted || room.GameEnded {
		that.sendError(sessionID, "Game not active")
		return
	}

	if room.CurrentPlayer != player.Symbol {
		that.sendError(sessionID, "Not your turn")
		return
	}

	coord := msg.Coord()
	if room.Board.Cell(coord) != entity.EmptyCell {
		that.sendError(sessionID, "Cell already taken")
		return
	}

	room.Board.SetCell(coord, player.Symbol)
	room.Moves++

	if winningCells, won := room.Board.CheckWin(player.Symbol); won {
		that.finishGame(room, coord, player.Symbol, player.Symbol, winningCells[:])
		return
	}

	if room.Board.CheckDraw() {
		that.finishGame(room, coord, player.Symbol, entity.EmptyCell, nil)
		return
	}

	room.CurrentPlayer = entity.ToggleSymbol(room.CurrentPlayer)
	that.broadcast(room, protocol.NewMoveMade(coord, player.Symbol, room.CurrentPlayer))
}

// finishGame ends the room on a terminal move. The turn is deliberately not
// advanced, so the move_made broadcast carries the pre-move turn holder; the
// game_over broadcast follows after the pacing delay.
func (that *Engine) finishGame(room *entity.Room, coord entity.Coord, mover, winner string, winningCells []entity.Coord) {
	room.GameEnded = true

	that.broadcast(room, protocol.NewMoveMade(coord, mover, room.CurrentPlayer))
	that.scheduleGameOver(room.Code, winner, winningCells)
	that.recordResult(room, winner)

	that.logger.Info("game finished", "roomCode", room.Code, "winner", winner, "moves", room.Moves)
}

func (that *Engine) handleNewGame(sessionID string) {
	player, ok := that.sessions.Lookup(sessionID)
	if !ok {
		return
	}

	room, ok := that.rooms.Get(player.RoomCode)
	if !ok || !room.IsFull() {
		return
	}

	room.ResetForNewGame()
	that.broadcast(room, protocol.NewGameStart(room.CurrentPlayer))

	that.logger.Info("new game started", "roomCode", room.Code)
}

func (that *Engine) handleChat(sessionID string, msg protocol.Chat) {
	player, ok := that.sessions.Lookup(sessionID)
	if !ok {
		return
	}

	room, ok := that.rooms.Get(player.RoomCode)
	if !ok {
		return
	}

	that.broadcast(room, protocol.NewChatMessage(player.Symbol, msg.Message))
}

// removePlayer is the shared leave/disconnect path: unseat the player,
// notify the opponent, drop an emptied room or pause a half-empty one.
func (that *Engine) removePlayer(sessionID string) {
	player, ok := that.sessions.Lookup(sessionID)
	if !ok {
		return
	}

	that.sessions.Unbind(sessionID)

	room, ok := that.rooms.Get(player.RoomCode)
	if !ok {
		return
	}

	room.RemovePlayer(sessionID)

	if room.IsEmpty() {
		that.rooms.Delete(room.Code)
		that.logger.Info("room deleted", "roomCode", room.Code)

		return
	}

	that.broadcast(room, protocol.NewPlayerLeft(player.Symbol))
	room.Pause()

	that.logger.Info("player left room", "roomCode", room.Code, "symbol", player.Symbol)
}
