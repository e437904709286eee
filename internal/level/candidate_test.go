package level

import (
	"testing"

	"github.com/gasin/seiti/pkg/board"
)

// filledBoard returns stones/territory arrays with a solid block of color
// stones from (x0,y0) to (x0+w-1,y0+h-1), everything else empty.
func filledBoard(x0, y0, w, h int, color board.Color) ([]byte, []byte) {
	stones := make([]byte, board.Cells)
	territory := make([]byte, board.Cells)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			stones[board.Idx(x, y)] = byte(color)
		}
	}
	return stones, territory
}

// TestPerimeterRejectsEmptyNeighbor places a 2x5 candidate whose perimeter
// touches board cells with neither a stone nor territory of either color:
// such a candidate must never be generated.
func TestPerimeterRejectsEmptyNeighbor(t *testing.T) {
	stones := make([]byte, board.Cells)
	territory := make([]byte, board.Cells)
	// A 5x2 block of black territory in open space: every perimeter cell is
	// "empty" (stones==territory==0), so no candidate should be legal here.
	for y := 5; y < 7; y++ {
		for x := 5; x < 10; x++ {
			territory[board.Idx(x, y)] = byte(board.Black)
		}
	}
	cands := candidatesForSpec(stones, territory, mainSpecs[0], board.Black)
	if len(cands) != 0 {
		t.Errorf("expected no legal candidates with empty perimeter, got %d", len(cands))
	}
}

// TestPerimeterAllowsSameColorBoundary places a 9x9 solid black block with a
// 5x2 black-territory patch inside it, so the patch's perimeter is entirely
// same-color stone: exactly one zero-cost 2x5 placement (at the patch
// itself) should be legal, and it must carry no penalty.
func TestPerimeterAllowsSameColorBoundary(t *testing.T) {
	stones, territory := filledBoard(2, 2, 9, 9, board.Black)
	for y := 5; y < 7; y++ {
		for x := 5; x < 10; x++ {
			stones[board.Idx(x, y)] = 0
			territory[board.Idx(x, y)] = byte(board.Black)
		}
	}
	var found bool
	for _, spec := range mainSpecs {
		if spec.Kind != Rect2x5 {
			continue
		}
		for _, c := range candidatesForSpec(stones, territory, spec, board.Black) {
			if c.X == 5 && c.Y == 5 {
				found = true
				if c.Cost != 0 {
					t.Errorf("expected zero-cost placement at (5,5), got cost=%d", c.Cost)
				}
			}
		}
	}
	if !found {
		t.Fatal("expected a legal 2x5 candidate exactly at (5,5)")
	}
}

// TestPerimeterPenalizesOpponent surrounds a black territory strip with
// white stones on one side: the perimeter test must still accept the
// placement but add +10 per opposing-color perimeter cell (spec §8 S6).
func TestPerimeterPenalizesOpponent(t *testing.T) {
	stones := make([]byte, board.Cells)
	territory := make([]byte, board.Cells)
	for y := 5; y < 7; y++ {
		for x := 5; x < 10; x++ {
			territory[board.Idx(x, y)] = byte(board.Black)
		}
	}
	// Surround on all four sides with black, except the top side which is
	// white stones: five opponent perimeter cells.
	for x := 5; x < 10; x++ {
		stones[board.Idx(x, 4)] = byte(board.White)
		stones[board.Idx(x, 7)] = byte(board.Black)
	}
	stones[board.Idx(4, 5)] = byte(board.Black)
	stones[board.Idx(4, 6)] = byte(board.Black)
	stones[board.Idx(10, 5)] = byte(board.Black)
	stones[board.Idx(10, 6)] = byte(board.Black)

	var got *candidate
	for _, spec := range mainSpecs {
		if spec.Kind != Rect2x5 || spec.W != 5 {
			continue
		}
		for i, c := range candidatesForSpec(stones, territory, spec, board.Black) {
			if c.X == 5 && c.Y == 5 {
				got = &candidatesForSpec(stones, territory, spec, board.Black)[i]
			}
		}
	}
	if got == nil {
		t.Fatal("expected a legal (if penalized) candidate at (5,5)")
	}
	if got.PerimeterOppCells != 5 || got.PenaltyPerimeter != 50 || got.Cost != 50 {
		t.Errorf("got perimOpp=%d penPerim=%d cost=%d, want 5/50/50", got.PerimeterOppCells, got.PenaltyPerimeter, got.Cost)
	}
}

// TestInternalRejectsOpponentCell ensures a candidate whose interior
// contains an opposing-color cell is never generated.
func TestInternalRejectsOpponentCell(t *testing.T) {
	stones, territory := filledBoard(2, 2, 9, 9, board.Black)
	for y := 5; y < 7; y++ {
		for x := 5; x < 10; x++ {
			stones[board.Idx(x, y)] = 0
			territory[board.Idx(x, y)] = byte(board.Black)
		}
	}
	// Poison one interior cell with a white stone.
	stones[board.Idx(6, 5)] = byte(board.White)
	territory[board.Idx(6, 5)] = 0

	for _, spec := range mainSpecs {
		if spec.Kind != Rect2x5 || spec.W != 5 {
			continue
		}
		for _, c := range candidatesForSpec(stones, territory, spec, board.Black) {
			if c.X == 5 && c.Y == 5 {
				t.Fatal("candidate covering an opponent-colored interior cell should have been rejected")
			}
		}
	}
}

// TestAnchorPenaltyAccounting checks the anchor/non-anchor penalty rule on a
// 4x3 tile (anchors at local (1,1) and (2,1)): a stone on a non-anchor cell
// costs 1, a missing stone on an anchor cell costs 1.
func TestAnchorPenaltyAccounting(t *testing.T) {
	stones, territory := filledBoard(2, 2, 9, 9, board.Black)
	// Clear interior to territory, matching the 4x3 tile footprint at (5,5).
	for y := 5; y < 8; y++ {
		for x := 5; x < 9; x++ {
			stones[board.Idx(x, y)] = 0
			territory[board.Idx(x, y)] = byte(board.Black)
		}
	}
	spec := mainSpecs[2] // Rect3x4, w=4,h=3, anchors (1,1),(2,1)
	if spec.W != 4 || spec.H != 3 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
	// Put a stone on a non-anchor cell (0,0) -> +1 penalty.
	stones[board.Idx(5, 5)] = byte(board.Black)
	territory[board.Idx(5, 5)] = 0

	var got *candidate
	for i, c := range candidatesForSpec(stones, territory, spec, board.Black) {
		if c.X == 5 && c.Y == 5 {
			cs := candidatesForSpec(stones, territory, spec, board.Black)
			got = &cs[i]
		}
	}
	if got == nil {
		t.Fatal("expected a legal 3x4 candidate at (5,5)")
	}
	// Non-anchor stone (+1) plus two missing anchor stones (+1 each) = 3.
	if got.PenaltyInternal != 3 {
		t.Errorf("PenaltyInternal = %d, want 3", got.PenaltyInternal)
	}
}
