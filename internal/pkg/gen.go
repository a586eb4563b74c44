package pkg

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const (
	roomCodeLength   = 7
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateRoomCode - generates a room code: seven uppercase ASCII letters,
// chosen uniformly. Codes are not guaranteed unique; a collision simply
// joins the existing room.
func GenerateRoomCode() string {
	code := make([]byte, roomCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeAlphabet))))
		if err != nil {
			code[i] = roomCodeAlphabet[0]
			continue
		}
		code[i] = roomCodeAlphabet[n.Int64()]
	}

	return string(code)
}

// GenerateConnectionID - generates the opaque identifier tying a player to
// a live connection.
func GenerateConnectionID() string {
	return uuid.NewString()
}
