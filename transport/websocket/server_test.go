package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
)

func TestOriginAllowed(t *testing.T) {
	allowed := []string{"https://127.0.0.1:3000", "http://localhost:3000"}

	t.Run("Listed origin is accepted", func(t *testing.T) {
		assert.True(t, originAllowed(allowed, "http://localhost:3000"))
	})

	t.Run("Unlisted origin is rejected", func(t *testing.T) {
		assert.False(t, originAllowed(allowed, "http://evil.example"))
	})

	t.Run("Missing origin header is accepted", func(t *testing.T) {
		assert.True(t, originAllowed(allowed, ""))
	})

	t.Run("Empty allow-list rejects every cross-origin request", func(t *testing.T) {
		assert.False(t, originAllowed(nil, "http://localhost:3000"))
	})
}

func TestMessageDecoding(t *testing.T) {
	t.Run("playerMove payload decodes the wire board", func(t *testing.T) {
		// Given: a playerMove message as the browser client sends it
		raw := []byte(`{"event":"playerMove","payload":{"roomCode":"ABCDEFG","newBoard":["AL",null,null,null,"BO",null,null,null,null]}}`)

		// When: decoding envelope and payload
		var message Message
		require.NoError(t, json.Unmarshal(raw, &message))
		require.Equal(t, "playerMove", message.Event)

		var payload PlayerMovePayload
		require.NoError(t, json.Unmarshal(message.Payload, &payload))

		// Then: nulls become empty cells
		assert.Equal(t, "ABCDEFG", payload.RoomCode)
		assert.Equal(t, entity.Board{"AL", "", "", "", "BO", "", "", "", ""}, payload.NewBoard)
	})

	t.Run("joinRoom payload decodes name and code", func(t *testing.T) {
		raw := []byte(`{"event":"joinRoom","payload":{"name":"alice","roomCode":"ABCDEFG"}}`)

		var message Message
		require.NoError(t, json.Unmarshal(raw, &message))

		var payload JoinRoomPayload
		require.NoError(t, json.Unmarshal(message.Payload, &payload))

		assert.Equal(t, JoinRoomPayload{Name: "alice", RoomCode: "ABCDEFG"}, payload)
	})
}
