package tictactoe

import (
	"github.com/pixelplayhq/tictactoe-rooms/internal/entity"
)

// WinCombos enumerates the 8 winning triples in row, column, diagonal order.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinningMark - returns the mark occupying a full triple, or an empty string
// when no triple is complete.
func WinningMark(board entity.Board) string {
	return winningMark(board, WinCombos)
}

func winningMark(board entity.Board, combos [][3]int) string {
	for _, combo := range combos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// ResolveWinner - maps a winning mark back to a player. Marks are lossy
// name prefixes, so on a collision the first player in join order wins.
func ResolveWinner(mark string, players []*entity.Player) *entity.Player {
	for _, player := range players {
		if player.Mark() == mark {
			return player
		}
	}

	return nil
}
