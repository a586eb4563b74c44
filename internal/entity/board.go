package entity

import (
	"encoding/json"
	"fmt"
)

const (
	BoardSize = 9

	EmptyCell = ""
)

// Board is the 3x3 grid in row-major order. Empty cells travel as JSON null,
// occupied cells as the owning player's mark.
type Board [BoardSize]string

func (that Board) MarshalJSON() ([]byte, error) {
	cells := make([]*string, BoardSize)
	for i := range that {
		if that[i] == EmptyCell {
			continue
		}
		cell := that[i]
		cells[i] = &cell
	}

	data, err := json.Marshal(cells)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal board: %w", err)
	}

	return data, nil
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []*string
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	var board Board
	for i, cell := range cells {
		if i >= BoardSize {
			break
		}
		if cell != nil {
			board[i] = *cell
		}
	}

	*that = board

	return nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
