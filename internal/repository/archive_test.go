package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelplayhq/tictactoe-rooms/internal/apperror"
	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
	"github.com/pixelplayhq/tictactoe-rooms/testing/suite"
)

func TestGameArchive_Save(t *testing.T) {
	ctx, st := suite.New(t)

	archive := NewGameArchive(st.Storage)

	// Given: a finished game record
	record := &entity.GameRecord{
		RoomCode:   "ABCDEFG",
		Board:      entity.Board{"AL", "AL", "AL", "BO", "BO", "", "", "", ""},
		Players:    []string{"alice", "bob"},
		Result:     "alice gana!",
		FinishedAt: time.Now().UTC().Truncate(time.Second),
	}

	// When: Save is called
	err := archive.Save(ctx, record)

	// Then: no error should be returned
	require.NoError(t, err)
}

func TestGameArchive_GetByRoomCode(t *testing.T) {
	t.Run("GetByRoomCode_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		archive := NewGameArchive(st.Storage)

		// Given: a stored game record
		record := &entity.GameRecord{
			RoomCode:   "ABCDEFG",
			Board:      entity.Board{"AL", "AL", "AL", "BO", "BO", "", "", "", ""},
			Players:    []string{"alice", "bob"},
			Result:     "alice gana!",
			FinishedAt: time.Now().UTC().Truncate(time.Second),
		}

		err := archive.Save(ctx, record)
		require.NoError(t, err)

		// When: GetByRoomCode is called with the existing code
		retrieved, err := archive.GetByRoomCode(ctx, record.RoomCode)

		// Then: the retrieved record should match the saved record
		require.NoError(t, err)
		assert.Equal(t, record.RoomCode, retrieved.RoomCode)
		assert.Equal(t, record.Board, retrieved.Board)
		assert.Equal(t, record.Players, retrieved.Players)
		assert.Equal(t, record.Result, retrieved.Result)
		assert.True(t, record.FinishedAt.Equal(retrieved.FinishedAt))
	})

	t.Run("GetByRoomCode_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		archive := NewGameArchive(st.Storage)

		// When: GetByRoomCode is called with an unknown code
		retrieved, err := archive.GetByRoomCode(ctx, "ZZZZZZZ")

		// Then: an ErrResultNotFound error should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrResultNotFound)
		assert.Empty(t, retrieved.RoomCode)
	})
}

func TestGameArchive_DeleteByRoomCode(t *testing.T) {
	ctx, st := suite.New(t)

	archive := NewGameArchive(st.Storage)

	// Given: a stored game record
	record := &entity.GameRecord{
		RoomCode: "ABCDEFG",
		Result:   "Los jugadores han empatado!",
	}

	err := archive.Save(ctx, record)
	require.NoError(t, err)

	// When: DeleteByRoomCode is called
	err = archive.DeleteByRoomCode(ctx, record.RoomCode)

	// Then: the record is gone
	require.NoError(t, err)

	_, err = archive.GetByRoomCode(ctx, record.RoomCode)
	assert.ErrorIs(t, err, apperror.ErrResultNotFound)
}
