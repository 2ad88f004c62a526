package entity

// MaxPlayers is the number of seats in a room.
const MaxPlayers = 2

// Room is one isolated two-player game instance, identified by a short code.
type Room struct {
	Code          string
	Players       []*Player
	Board         Board
	CurrentPlayer string
	GameStarted   bool
	GameEnded     bool
	Moves         int
}

func NewRoom(code string) *Room {
	return &Room{
		Code:          code,
		Players:       make([]*Player, 0, MaxPlayers),
		CurrentPlayer: PlayerX,
	}
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

func (that *Room) IsEmpty() bool {
	return len(that.Players) == 0
}

// NextSymbol picks the mark for a joining player: X unless a seated player
// already holds it. A rejoiner therefore takes whichever slot was vacated.
func (that *Room) NextSymbol() string {
	for _, player := range that.Players {
		if player.Symbol == PlayerX {
			return PlayerO
		}
	}

	return PlayerX
}

func (that *Room) AddPlayer(player *Player) {
	that.Players = append(that.Players, player)
}

// RemovePlayer drops the player bound to the session, returning it if seated.
// Removing an unknown session is a no-op.
func (that *Room) RemovePlayer(sessionID string) *Player {
	for i, player := range that.Players {
		if player.SessionID == sessionID {
			that.Players = append(that.Players[:i], that.Players[i+1:]...)
			return player
		}
	}

	return nil
}

// Opponent returns the seated player that is not bound to the given session.
func (that *Room) Opponent(sessionID string) *Player {
	for _, player := range that.Players {
		if player.SessionID != sessionID {
			return player
		}
	}

	return nil
}

// ResetForNewGame clears the board and restarts play. Symbols are never
// reassigned across resets.
func (that *Room) ResetForNewGame() {
	that.Board = Board{}
	that.CurrentPlayer = PlayerX
	that.GameStarted = true
	that.GameEnded = false
	that.Moves = 0
}

// Pause suspends play after a player leaves. The board is left as-is until
// a new join or new-game request.
func (that *Room) Pause() {
	that.GameStarted = false
	that.GameEnded = false
}
