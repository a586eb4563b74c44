package rest

import (
	"encoding/json"
	"net/http"

	"github.com/pixelplayhq/tictactoe-rooms/internal/pkg"
)

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// roomCodeHandler - hands out a fresh room code for clients that prefer not
// to generate their own.
func roomCodeHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	response := map[string]string{"roomCode": pkg.GenerateRoomCode()}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
