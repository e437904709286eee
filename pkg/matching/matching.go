package matching

import (
	"fmt"

	"github.com/gasin/seiti/pkg/board"
)

// ComputeStoneMoves pairs every stone in before with a stone of the same
// color in after, minimizing the sum of squared displacement distances, and
// returns one board.StoneMove per paired stone.
//
// Per color, any stone occupying the identical cell in both boards is fixed
// first (a free zero-cost match); the Hungarian algorithm then solves only
// over the remaining stones, which keeps the common case — most stones
// don't move — cheap regardless of board size.
//
// ComputeStoneMoves returns board.ErrSizeMismatch if either board isn't a
// well-formed 19x19 state, and board.ErrStoneCountMismatch if a color's
// stone population differs between before and after (leveling must be
// stone-count-preserving; a mismatch indicates a bug upstream).
func ComputeStoneMoves(before, after board.State) ([]board.StoneMove, error) {
	if err := before.CheckShape(); err != nil {
		return nil, err
	}
	if err := after.CheckShape(); err != nil {
		return nil, err
	}

	var moves []board.StoneMove

	for _, color := range board.Colors {
		beforePos := board.CollectStonePositions(before.Stones, color)
		afterPos := board.CollectStonePositions(after.Stones, color)

		if len(beforePos) != len(afterPos) {
			return nil, fmt.Errorf("%w: color %d before=%d after=%d",
				board.ErrStoneCountMismatch, color, len(beforePos), len(afterPos))
		}
		n := len(beforePos)
		if n == 0 {
			continue
		}

		beforeUsed := make([]bool, n)
		afterUsed := make([]bool, n)
		for i, b := range beforePos {
			for j, a := range afterPos {
				if !afterUsed[j] && b == a {
					beforeUsed[i] = true
					afterUsed[j] = true
					moves = append(moves, board.StoneMove{Color: color, From: [2]int{b.X, b.Y}, To: [2]int{a.X, a.Y}})
					break
				}
			}
		}

		var beforeRemaining, afterRemaining []board.Point
		for i, p := range beforePos {
			if !beforeUsed[i] {
				beforeRemaining = append(beforeRemaining, p)
			}
		}
		for j, p := range afterPos {
			if !afterUsed[j] {
				afterRemaining = append(afterRemaining, p)
			}
		}

		m := len(beforeRemaining)
		if m == 0 {
			continue
		}

		cost := make([][]float64, m)
		for i, b := range beforeRemaining {
			row := make([]float64, m)
			for j, a := range afterRemaining {
				dx := float64(b.X - a.X)
				dy := float64(b.Y - a.Y)
				row[j] = dx*dx + dy*dy
			}
			cost[i] = row
		}

		assignment := hungarianAssign(cost)
		for j, i := range assignment {
			b := beforeRemaining[i]
			a := afterRemaining[j]
			moves = append(moves, board.StoneMove{Color: color, From: [2]int{b.X, b.Y}, To: [2]int{a.X, a.Y}})
		}
	}

	return moves, nil
}
