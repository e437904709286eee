package level

import "github.com/gasin/seiti/pkg/board"

// applyRectsAndFill writes the picked tiles into stones/territory — anchor
// cells get a same-color stone, every other in-pattern cell gets clean
// same-color territory — then sweeps every remaining same-color territory
// cell that landed in no tile into a solid stone.
func applyRectsAndFill(stones, territory []byte, color board.Color, picked []selectResult, used []bool) {
	for _, r := range picked {
		for dy := 0; dy < r.Spec.H; dy++ {
			for dx := 0; dx < r.Spec.W; dx++ {
				if !cellInPattern(dx, dy, r.Spec) {
					continue
				}
				i := board.Idx(r.X+dx, r.Y+dy)
				if isAnchor(dx, dy, r.Spec) {
					stones[i] = byte(color)
					territory[i] = board.Empty
				} else {
					stones[i] = board.Empty
					territory[i] = byte(color)
				}
				used[i] = true
			}
		}
	}

	for i := 0; i < board.Cells; i++ {
		if board.Color(territory[i]) == color && !used[i] {
			stones[i] = byte(color)
			territory[i] = board.Empty
		}
	}
}
