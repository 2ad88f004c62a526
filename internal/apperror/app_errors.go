package apperror

import "errors"

var (
	ErrRoomFull           = errors.New("room is full")
	ErrRoomNotFound       = errors.New("room not found")
	ErrGameNotActive      = errors.New("game is not active")
	ErrNotYourTurn        = errors.New("it's not your turn")
	ErrCellOccupied       = errors.New("cell is already taken")
	ErrUnknownMessage     = errors.New("unknown message type")
	ErrInvalidMessage     = errors.New("invalid message format")
	ErrRoomCodesExhausted = errors.New("room code generation exhausted")
)
