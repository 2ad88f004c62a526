package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cubetactoe-backend/internal/apperror"
)

func TestRoomRegistry_Create(t *testing.T) {
	t.Run("Fresh room has a well-formed code and clean state", func(t *testing.T) {
		registry := NewRoomRegistry()

		room, err := registry.Create()

		require.NoError(t, err)
		require.Len(t, room.Code, codeLength)
		for i := 0; i < len(room.Code); i++ {
			assert.Contains(t, codeAlphabet, string(room.Code[i]))
		}
		assert.Empty(t, room.Players)
		assert.Equal(t, "X", room.CurrentPlayer)
		assert.False(t, room.GameStarted)
		assert.False(t, room.GameEnded)
	})

	t.Run("Codes are unique among active rooms", func(t *testing.T) {
		registry := NewRoomRegistry()

		codes := map[string]bool{}
		for i := 0; i < 100; i++ {
			room, err := registry.Create()
			require.NoError(t, err)
			assert.False(t, codes[room.Code], "code %s issued twice", room.Code)
			codes[room.Code] = true
		}

		assert.Equal(t, 100, registry.Len())
	})

	t.Run("Colliding code is re-rolled", func(t *testing.T) {
		// Given: a generator that repeats a code once before moving on
		registry := NewRoomRegistry()
		sequence := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
		registry.generateCode = func() string {
			code := sequence[0]
			if len(sequence) > 1 {
				sequence = sequence[1:]
			}
			return code
		}

		// When: creating two rooms
		first, err := registry.Create()
		require.NoError(t, err)
		second, err := registry.Create()
		require.NoError(t, err)

		// Then: the second room got the re-rolled code
		assert.Equal(t, "AAAAAA", first.Code)
		assert.Equal(t, "BBBBBB", second.Code)
	})

	t.Run("Exhausted retries fail with a dedicated error", func(t *testing.T) {
		// Given: a generator that can only ever produce one code
		registry := NewRoomRegistry()
		registry.generateCode = func() string { return "AAAAAA" }

		_, err := registry.Create()
		require.NoError(t, err)

		// When: creating a second room
		_, err = registry.Create()

		// Then: creation gives up after the retry cap
		require.ErrorIs(t, err, apperror.ErrRoomCodesExhausted)
		assert.Equal(t, 1, registry.Len())
	})
}

func TestRoomRegistry_GetAndDelete(t *testing.T) {
	registry := NewRoomRegistry()

	room, err := registry.Create()
	require.NoError(t, err)

	found, ok := registry.Get(room.Code)
	require.True(t, ok)
	assert.Same(t, room, found)

	registry.Delete(room.Code)

	_, ok = registry.Get(room.Code)
	assert.False(t, ok)

	// deleting again is a no-op
	registry.Delete(room.Code)
}
