package websocket

import (
	"encoding/json"
	"fmt"
)

func (that *Server) handleJoinRoom(c *client, payload json.RawMessage) error {
	var req JoinRoomPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.coordinator.JoinRoom(c, req.Name, req.RoomCode)

	return nil
}

func (that *Server) handlePlayerMove(c *client, payload json.RawMessage) error {
	var req PlayerMovePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.coordinator.PlayerMove(c.ID(), req.RoomCode, req.NewBoard)

	return nil
}

func (that *Server) handleChatMessage(c *client, payload json.RawMessage) error {
	var req ChatMessagePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.coordinator.ChatMessage(req.RoomCode, req.Name, req.Message)

	return nil
}
