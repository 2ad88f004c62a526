package entity

// Player binds an opaque transport session to a mark and a room. The symbol
// is fixed for the lifetime of the player's stay in the room, including
// new-game resets.
type Player struct {
	SessionID string `json:"-"`
	Symbol    string `json:"symbol"`
	RoomCode  string `json:"roomCode"`
}
