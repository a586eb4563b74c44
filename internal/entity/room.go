package entity

import "time"

const (
	StatusWaiting  = "waiting"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Room - a session pairing players under a shared code. Players are kept in
// join order; the first joiner is the room creator and makes the first move.
type Room struct {
	Code               string    `json:"code"`
	Players            []*Player `json:"players"`
	Board              Board     `json:"board"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	GameStarted        bool      `json:"game_started"`
	Finished           bool      `json:"finished"`
}

func NewRoom(code string, creator *Player) *Room {
	return &Room{
		Code:    code,
		Players: []*Player{creator},
	}
}

// Status - derives the lifecycle state: waiting until the game-start
// broadcast, ongoing while moves are relayed, finished once a terminal
// result has been announced.
func (that *Room) Status() string {
	switch {
	case that.Finished:
		return StatusFinished
	case that.GameStarted:
		return StatusOngoing
	default:
		return StatusWaiting
	}
}

func (that *Room) AddPlayer(player *Player) {
	that.Players = append(that.Players, player)
}

// CurrentPlayer - the player whose turn it is, or nil for an empty room.
func (that *Room) CurrentPlayer() *Player {
	if len(that.Players) == 0 {
		return nil
	}

	return that.Players[that.CurrentPlayerIndex%len(that.Players)]
}

// AdvanceTurn - moves the turn index one position forward, wrapping around
// the current player count. Callers must ensure the room is not empty.
func (that *Room) AdvanceTurn() {
	that.CurrentPlayerIndex = (that.CurrentPlayerIndex + 1) % len(that.Players)
}

// RemovePlayerByConnection - drops every player bound to the given
// connection ID and reports whether anything was removed. The turn index is
// clamped back to zero when the removal leaves it out of range.
func (that *Room) RemovePlayerByConnection(connID string) bool {
	remaining := that.Players[:0]
	removed := false

	for _, player := range that.Players {
		if player.ID == connID {
			removed = true
			continue
		}
		remaining = append(remaining, player)
	}

	that.Players = remaining

	if that.CurrentPlayerIndex >= len(that.Players) {
		that.CurrentPlayerIndex = 0
	}

	return removed
}

func (that *Room) IsEmpty() bool {
	return len(that.Players) == 0
}

// GameRecord - the archived outcome of a finished room.
type GameRecord struct {
	RoomCode   string    `json:"room_code"`
	Board      Board     `json:"board"`
	Players    []string  `json:"players"`
	Result     string    `json:"result"`
	FinishedAt time.Time `json:"finished_at"`
}
