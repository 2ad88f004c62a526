package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/cubetactoe-backend/internal/entity"
)

func TestDecode(t *testing.T) {
	t.Run("join_room with a code", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"join_room","roomCode":"ABC123"}`))

		require.NoError(t, err)
		assert.Equal(t, JoinRoom{RoomCode: "ABC123"}, msg)
	})

	t.Run("join_room without a code", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"join_room"}`))

		require.NoError(t, err)
		assert.Equal(t, JoinRoom{}, msg)
	})

	t.Run("make_move with in-range coordinates", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"make_move","layer":2,"row":0,"col":1}`))

		require.NoError(t, err)
		assert.Equal(t, MakeMove{Layer: 2, Row: 0, Col: 1}, msg)
	})

	t.Run("make_move with out-of-range coordinate is invalid", func(t *testing.T) {
		for _, raw := range []string{
			`{"type":"make_move","layer":3,"row":0,"col":0}`,
			`{"type":"make_move","layer":0,"row":-1,"col":0}`,
			`{"type":"make_move","layer":0,"row":0,"col":7}`,
		} {
			_, err := Decode([]byte(raw))
			assert.ErrorIs(t, err, apperror.ErrInvalidMessage, "payload %s", raw)
		}
	})

	t.Run("make_move with non-integer coordinate is invalid", func(t *testing.T) {
		_, err := Decode([]byte(`{"type":"make_move","layer":"a","row":0,"col":0}`))

		assert.ErrorIs(t, err, apperror.ErrInvalidMessage)
	})

	t.Run("new_game and leave_room carry no fields", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"new_game"}`))
		require.NoError(t, err)
		assert.Equal(t, NewGame{}, msg)

		msg, err = Decode([]byte(`{"type":"leave_room"}`))
		require.NoError(t, err)
		assert.Equal(t, LeaveRoom{}, msg)
	})

	t.Run("chat_message", func(t *testing.T) {
		msg, err := Decode([]byte(`{"type":"chat_message","message":"gl hf"}`))

		require.NoError(t, err)
		assert.Equal(t, Chat{Message: "gl hf"}, msg)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := Decode([]byte(`{"type":"self_destruct"}`))

		assert.ErrorIs(t, err, apperror.ErrUnknownMessage)
	})

	t.Run("unparseable payload", func(t *testing.T) {
		_, err := Decode([]byte(`{"type":`))

		assert.ErrorIs(t, err, apperror.ErrInvalidMessage)
	})
}

func TestGameOver_Marshal(t *testing.T) {
	t.Run("Win carries winner and cells", func(t *testing.T) {
		line := []entity.Coord{{Layer: 0, Row: 0, Col: 0}, {Layer: 1, Row: 1, Col: 1}, {Layer: 2, Row: 2, Col: 2}}

		data, err := json.Marshal(NewGameOver(entity.PlayerX, line))

		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"game_over","winner":"X","winningCells":[[0,0,0],[1,1,1],[2,2,2]]}`, string(data))
	})

	t.Run("Draw carries nulls", func(t *testing.T) {
		data, err := json.Marshal(NewGameOver(entity.EmptyCell, nil))

		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"game_over","winner":null,"winningCells":null}`, string(data))
	})
}

func TestMoveMade_Marshal(t *testing.T) {
	move := NewMoveMade(entity.Coord{Layer: 1, Row: 2, Col: 0}, entity.PlayerO, entity.PlayerX)

	data, err := json.Marshal(move)

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"move_made","layer":1,"row":2,"col":0,"player":"O","nextPlayer":"X"}`, string(data))
}
