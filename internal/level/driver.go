// Package level implements the leveling core: the pattern catalogue,
// candidate enumerator, binary-integer-program selector, and applier that
// together reshape each color's territory into a disjoint collection of
// axis-aligned rectangular tiles.
package level

import "github.com/gasin/seiti/pkg/board"

// PlacedTile is one tile the selector chose and the applier wrote into the
// board: just enough geometry to re-check the tile-contract invariants
// (adjacency, perimeter, anchors, residual fill) from outside the leveling
// core, without trusting the selector that produced them.
type PlacedTile struct {
	X, Y          int
	W, H          int
	MissingCorner int // 0=none, 1=TL, 2=TR, 3=BL, 4=BR
	Anchors       [][2]int
	Color         board.Color
}

// Level reshapes state's territory into the tile catalogue, one color at a
// time (black, then white), and returns the mutated board. state is not
// modified in place; callers get back a fresh board.State.
//
// For each color, the number of main tiles required is exactly
// floor(tcount/10) and the remainder tile (if tcount%10 != 0) covers the
// leftover cells — see spec §4.1 for why this is exact rather than
// approximate.
func Level(state board.State, logger board.Logger) (board.State, error) {
	out, _, err := LevelDetailed(state, logger)
	return out, err
}

// LevelDetailed runs the same pipeline as Level but also returns every tile
// the selector picked, across both colors in application order. Level
// itself discards this detail once applyRectsAndFill finishes; callers that
// need to re-verify the tile contracts (e.g. the CLI's -validate report)
// call LevelDetailed directly instead.
func LevelDetailed(state board.State, logger board.Logger) (board.State, []PlacedTile, error) {
	if err := state.CheckShape(); err != nil {
		return board.State{}, nil, err
	}
	if logger == nil {
		logger = board.NopLogger{}
	}

	out := state.Clone()
	var placed []PlacedTile

	for _, color := range board.Colors {
		tcount := board.CountTerritory(out.Territory, color)
		mainTarget := tcount / 10
		remainder := uint8(tcount % 10)

		rects, used, err := selectRectsAndUsed(out.Stones, out.Territory, color, mainTarget, remainder, logger)
		if err != nil {
			return board.State{}, nil, err
		}
		applyRectsAndFill(out.Stones, out.Territory, color, rects, used)

		for _, r := range rects {
			placed = append(placed, PlacedTile{
				X: r.X, Y: r.Y, W: r.Spec.W, H: r.Spec.H,
				MissingCorner: r.Spec.MissingCorner,
				Anchors:       anchorPairs(r.Spec.Anchors),
				Color:         color,
			})
		}
	}

	return out, placed, nil
}

// anchorPairs converts a pattern spec's local anchor offsets into the plain
// [2]int pairs PlacedTile exposes, so callers outside this package don't
// need to know about cellCoord.
func anchorPairs(anchors []cellCoord) [][2]int {
	if len(anchors) == 0 {
		return nil
	}
	out := make([][2]int, len(anchors))
	for i, a := range anchors {
		out[i] = [2]int{a.DX, a.DY}
	}
	return out
}
