package websocket

import (
	"encoding/json"

	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
)

// Message represents a WebSocket message with an event name and a payload.
type Message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type JoinRoomPayload struct {
	Name     string `json:"name"`
	RoomCode string `json:"roomCode"`
}

type PlayerMovePayload struct {
	RoomCode string       `json:"roomCode"`
	NewBoard entity.Board `json:"newBoard"`
}

type ChatMessagePayload struct {
	RoomCode string `json:"roomCode"`
	Name     string `json:"name"`
	Message  string `json:"message"`
}
