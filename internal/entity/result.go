package entity

import "time"

// GameResult is the archive record of a finished game. Winner is empty for
// a draw.
type GameResult struct {
	RoomCode   string    `json:"room_code"`
	Winner     string    `json:"winner,omitempty"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
