package usecase

import "github.com/pixelplayhq/tictactoe-rooms/internal/entity"

// Room-scoped events broadcast to every connection joined to a room.
const (
	EventGameStart       = "gameStart"
	EventUpdateBoard     = "updateBoard"
	EventGameOver        = "gameOver"
	EventReceivedMessage = "receivedMessage"
)

const DrawMessage = "Los jugadores han empatado!"

// BoardUpdate - payload of an updateBoard broadcast. NextPlayer is null when
// the room has nobody left to move.
type BoardUpdate struct {
	Board      entity.Board `json:"board"`
	NextPlayer *string      `json:"nextPlayer"`
}

// ChatRelay - payload of a receivedMessage broadcast, relayed verbatim.
type ChatRelay struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
