package level

import "github.com/gasin/seiti/pkg/board"

// selectRectsAndUsed generates candidates for color, solves for the subset
// satisfying the main/remainder cardinality constraints, and returns both
// the picked tiles and a used[] mask of every cell they cover.
func selectRectsAndUsed(stones, territory []byte, color board.Color, mainTarget int, remainder uint8, logger board.Logger) ([]selectResult, []bool, error) {
	used := make([]bool, board.Cells)

	remRequired := 0
	if remainder >= 1 && remainder <= 9 {
		remRequired = 1
	}
	if mainTarget == 0 && remRequired == 0 {
		return nil, used, nil
	}

	cands := generateCandidates(stones, territory, color, remainder, logger)

	picked, err := solveSelect(cands, mainTarget, remRequired, logger)
	if err != nil {
		return nil, nil, err
	}

	rects := make([]selectResult, 0, len(picked))
	for _, si := range picked {
		c := cands[si]
		rects = append(rects, selectResult{X: c.X, Y: c.Y, Spec: c.Spec})
		for dy := 0; dy < c.Spec.H; dy++ {
			for dx := 0; dx < c.Spec.W; dx++ {
				if cellInPattern(dx, dy, c.Spec) {
					used[board.Idx(c.X+dx, c.Y+dy)] = true
				}
			}
		}
	}
	return rects, used, nil
}
