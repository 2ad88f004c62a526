package protocol

import (
	"encoding/json"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

// Inbound message types.
const (
	TypeJoinRoom    = "join_room"
	TypeMakeMove    = "make_move"
	TypeNewGame     = "new_game"
	TypeLeaveRoom   = "leave_room"
	TypeChatMessage = "chat_message"
)

// Outbound message types.
const (
	TypeRoomJoined   = "room_joined"
	TypePlayerJoined = "player_joined"
	TypeGameStart    = "game_start"
	TypeMoveMade     = "move_made"
	TypeGameOver     = "game_over"
	TypePlayerLeft   = "player_left"
	TypeError        = "error"
)

type JoinRoom struct {
	RoomCode string `json:"roomCode,omitempty"`
}

type MakeMove struct {
	Layer int `json:"layer"`
	Row   int `json:"row"`
	Col   int `json:"col"`
}

func (that MakeMove) Coord() entity.Coord {
	return entity.Coord{Layer: that.Layer, Row: that.Row, Col: that.Col}
}

type NewGame struct{}

type LeaveRoom struct{}

type Chat struct {
	Message string `json:"message"`
}

// Decode turns a raw client payload into exactly one of the inbound message
// structs. Unparseable input or out-of-range move coordinates yield
// ErrInvalidMessage; an unrecognized discriminator yields ErrUnknownMessage.
func Decode(raw []byte) (any, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, apperror.ErrInvalidMessage
	}

	switch envelope.Type {
	case TypeJoinRoom:
		var msg JoinRoom
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, apperror.ErrInvalidMessage
		}
		return msg, nil
	case TypeMakeMove:
		var msg MakeMove
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, apperror.ErrInvalidMessage
		}
		if !inBounds(msg.Layer) || !inBounds(msg.Row) || !inBounds(msg.Col) {
			return nil, apperror.ErrInvalidMessage
		}
		return msg, nil
	case TypeNewGame:
		return NewGame{}, nil
	case TypeLeaveRoom:
		return LeaveRoom{}, nil
	case TypeChatMessage:
		var msg Chat
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, apperror.ErrInvalidMessage
		}
		return msg, nil
	default:
		return nil, apperror.ErrUnknownMessage
	}
}

func inBounds(i int) bool {
	return i >= 0 && i < entity.BoardSize
}

type RoomJoined struct {
	Type         string `json:"type"`
	RoomCode     string `json:"roomCode"`
	PlayerSymbol string `json:"playerSymbol"`
}

func NewRoomJoined(roomCode, playerSymbol string) RoomJoined {
	return RoomJoined{Type: TypeRoomJoined, RoomCode: roomCode, PlayerSymbol: playerSymbol}
}

type PlayerJoined struct {
	Type         string `json:"type"`
	PlayerSymbol string `json:"playerSymbol"`
}

func NewPlayerJoined(playerSymbol string) PlayerJoined {
	return PlayerJoined{Type: TypePlayerJoined, PlayerSymbol: playerSymbol}
}

type GameStart struct {
	Type          string `json:"type"`
	CurrentPlayer string `json:"currentPlayer"`
}

func NewGameStart(currentPlayer string) GameStart {
	return GameStart{Type: TypeGameStart, CurrentPlayer: currentPlayer}
}

type MoveMade struct {
	Type       string `json:"type"`
	Layer      int    `json:"layer"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Player     string `json:"player"`
	NextPlayer string `json:"nextPlayer"`
}

func NewMoveMade(coord entity.Coord, player, nextPlayer string) MoveMade {
	return MoveMade{
		Type:       TypeMoveMade,
		Layer:      coord.Layer,
		Row:        coord.Row,
		Col:        coord.Col,
		Player:     player,
		NextPlayer: nextPlayer,
	}
}

// GameOver carries the winning symbol and line, or JSON nulls for a draw.
type GameOver struct {
	Type         string   `json:"type"`
	Winner       *string  `json:"winner"`
	WinningCells [][3]int `json:"winningCells"`
}

func NewGameOver(winner string, winningCells []entity.Coord) GameOver {
	msg := GameOver{Type: TypeGameOver}

	if winner != entity.EmptyCell {
		msg.Winner = &winner
	}

	for _, cell := range winningCells {
		msg.WinningCells = append(msg.WinningCells, [3]int{cell.Layer, cell.Row, cell.Col})
	}

	return msg
}

type PlayerLeft struct {
	Type         string `json:"type"`
	PlayerSymbol string `json:"playerSymbol"`
}

func NewPlayerLeft(playerSymbol string) PlayerLeft {
	return PlayerLeft{Type: TypePlayerLeft, PlayerSymbol: playerSymbol}
}

type ChatMessage struct {
	Type    string `json:"type"`
	From    string `json:"from"`
	Message string `json:"message"`
}

func NewChatMessage(from, message string) ChatMessage {
	return ChatMessage{Type: TypeChatMessage, From: from, Message: message}
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
