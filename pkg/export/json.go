// Package export renders a board.State (and the moves between two of them)
// to the wire/file formats consumed by the HTTP façade and by the CLI's
// inspection tooling: JSON for the state itself, SVG for a human-readable
// snapshot.
package export

import (
	"encoding/json"

	"github.com/gasin/seiti/pkg/board"
)

// MarshalState renders state as indented JSON, matching the field layout
// the HTTP façade exchanges with clients.
func MarshalState(state board.State) ([]byte, error) {
	return json.MarshalIndent(state, "", "  ")
}

// UnmarshalState parses JSON produced by MarshalState (or any client
// sending the same {size,seed,stones,territory} shape) back into a
// board.State. Callers should still call CheckShape before using the
// result: this only validates JSON syntax, not the 19x19 contract.
func UnmarshalState(data []byte) (board.State, error) {
	var state board.State
	if err := json.Unmarshal(data, &state); err != nil {
		return board.State{}, err
	}
	return state, nil
}

// moveSet is the wire shape returned alongside a leveled board: the board
// plus the per-stone move list produced by pkg/matching.
type moveSet struct {
	Board board.State       `json:"board"`
	Moves []board.StoneMove `json:"moves"`
}

// MarshalLevelResult renders a leveled board and its computed stone moves
// as the combined JSON object the HTTP façade's /api/board/level endpoint
// returns.
func MarshalLevelResult(after board.State, moves []board.StoneMove) ([]byte, error) {
	if moves == nil {
		moves = []board.StoneMove{}
	}
	return json.MarshalIndent(moveSet{Board: after, Moves: moves}, "", "  ")
}
