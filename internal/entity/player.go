package entity

import "strings"

// Player - a participant of a room. ID is the opaque connection identifier
// assigned by the transport; Name is display-only and not unique.
type Player struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

const markLength = 2

// Mark - the board token of this player: the first two characters of the
// name, upper-cased. Players whose names share a prefix share a mark.
func (that *Player) Mark() string {
	runes := []rune(that.Name)
	if len(runes) > markLength {
		runes = runes[:markLength]
	}

	return strings.ToUpper(string(runes))
}
