package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_MarshalJSON(t *testing.T) {
	t.Run("Empty cells serialize as null", func(t *testing.T) {
		// Given: a board with one occupied cell
		board := Board{"AB", EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: marshaling the board
		data, err := json.Marshal(board)

		// Then: occupied cells keep their mark, empty cells become null
		require.NoError(t, err)
		assert.JSONEq(t, `["AB",null,null,null,null,null,null,null,null]`, string(data))
	})
}

func TestBoard_UnmarshalJSON(t *testing.T) {
	t.Run("Null cells decode as empty", func(t *testing.T) {
		// Given: a wire board mixing marks and nulls
		data := []byte(`["AB",null,"CD",null,null,null,null,null,null]`)

		// When: unmarshaling into a board
		var board Board
		err := json.Unmarshal(data, &board)

		// Then: nulls map to empty cells
		require.NoError(t, err)
		assert.Equal(t, Board{"AB", "", "CD", "", "", "", "", "", ""}, board)
	})

	t.Run("Oversized payload is truncated to nine cells", func(t *testing.T) {
		// Given: a board with more than nine cells
		data := []byte(`["AB","AB","AB","AB","AB","AB","AB","AB","AB","XX","XX"]`)

		// When: unmarshaling into a board
		var board Board
		err := json.Unmarshal(data, &board)

		// Then: only the first nine cells are kept
		require.NoError(t, err)
		assert.Equal(t, Board{"AB", "AB", "AB", "AB", "AB", "AB", "AB", "AB", "AB"}, board)
	})

	t.Run("Short payload leaves remaining cells empty", func(t *testing.T) {
		// Given: a board with fewer than nine cells
		data := []byte(`["AB","CD"]`)

		// When: unmarshaling into a board
		var board Board
		err := json.Unmarshal(data, &board)

		// Then: missing cells stay empty
		require.NoError(t, err)
		assert.Equal(t, Board{"AB", "CD", "", "", "", "", "", "", ""}, board)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Returns false while any cell is empty", func(t *testing.T) {
		board := Board{"AB", "CD", "AB", "CD", EmptyCell, "CD", "AB", "CD", "AB"}

		assert.False(t, board.IsFull())
	})

	t.Run("Returns true when every cell is occupied", func(t *testing.T) {
		board := Board{"AB", "CD", "AB", "CD", "AB", "CD", "CD", "AB", "CD"}

		assert.True(t, board.IsFull())
	})
}
