package validate

import (
	"fmt"

	"github.com/gasin/seiti/pkg/board"
)

// Tile describes one placed pattern tile, independently of the leveling
// core's own PatternSpec: just enough geometry (bounding box, missing
// corner, anchor offsets, owning color) to check a leveled board against
// it without trusting the selector that produced it.
type Tile struct {
	X, Y          int
	W, H          int
	MissingCorner int // 0=none, 1=TL, 2=TR, 3=BL, 4=BR
	Anchors       [][2]int
	Color         board.Color
}

// cellInPattern reports whether local offset (dx,dy) belongs to t, given
// its missing-corner exclusion.
func (t Tile) cellInPattern(dx, dy int) bool {
	switch t.MissingCorner {
	case 1:
		return !(dx == 0 && dy == 0)
	case 2:
		return !(dx+1 == t.W && dy == 0)
	case 3:
		return !(dx == 0 && dy+1 == t.H)
	case 4:
		return !(dx+1 == t.W && dy+1 == t.H)
	default:
		return true
	}
}

func (t Tile) isAnchor(dx, dy int) bool {
	for _, a := range t.Anchors {
		if a[0] == dx && a[1] == dy {
			return true
		}
	}
	return false
}

// cells returns every absolute board index t covers.
func (t Tile) cells() []int {
	var out []int
	for dy := 0; dy < t.H; dy++ {
		for dx := 0; dx < t.W; dx++ {
			if t.cellInPattern(dx, dy) {
				out = append(out, board.Idx(t.X+dx, t.Y+dy))
			}
		}
	}
	return out
}

// CheckCellValueRange verifies property 1: every stone/territory cell value
// is in {0,1,2}.
func CheckCellValueRange(state board.State) ConstraintResult {
	for i, v := range state.Stones {
		if v > byte(board.White) {
			return NewConstraintResult("CellValueRange", false,
				fmt.Sprintf("stones[%d]=%d out of range", i, v))
		}
	}
	for i, v := range state.Territory {
		if v > byte(board.White) {
			return NewConstraintResult("CellValueRange", false,
				fmt.Sprintf("territory[%d]=%d out of range", i, v))
		}
	}
	return NewConstraintResult("CellValueRange", true, "")
}

// CheckNonOverlap verifies property 2's overlap half: no two tiles share a
// cell.
func CheckNonOverlap(tiles []Tile) ConstraintResult {
	owner := make(map[int]int, board.Cells)
	for ti, t := range tiles {
		for _, i := range t.cells() {
			if other, ok := owner[i]; ok {
				return NewConstraintResult("NonOverlap", false,
					fmt.Sprintf("cell %d claimed by both tile %d and tile %d", i, other, ti))
			}
			owner[i] = ti
		}
	}
	return NewConstraintResult("NonOverlap", true, "")
}

// CheckCountIdentity verifies property 3: leveling must not change a
// color's total territory population, only its shape.
func CheckCountIdentity(before, after board.State, color board.Color) ConstraintResult {
	b := board.CountTerritory(before.Territory, color)
	a := board.CountTerritory(after.Territory, color)
	if b != a {
		return NewConstraintResult("CountIdentity", false,
			fmt.Sprintf("color %d territory count changed: before=%d after=%d", color, b, a))
	}
	return NewConstraintResult("CountIdentity", true, "")
}

// adjacent4 reports whether rectangles a and b, given as (x,y,w,h), touch
// side to side along a stretch of at least one cell (not just at a corner).
func adjacent4(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	if ax+aw == bx || bx+bw == ax {
		return ay < by+bh && by < ay+ah
	}
	if ay+ah == by || by+bh == ay {
		return ax < bx+bw && bx < ax+aw
	}
	return false
}

// longEdge2x5 reports whether a and b are both 5x2 (in either orientation,
// matching orientations only) and meet flush along their length-5 side —
// the sole adjacency exception.
func longEdge2x5(a, b Tile) bool {
	is5x2 := func(t Tile) bool { return (t.W == 5 && t.H == 2) || (t.W == 2 && t.H == 5) }
	if !is5x2(a) || !is5x2(b) || a.W != b.W || a.H != b.H {
		return false
	}
	if a.W >= a.H {
		return a.X == b.X && (a.Y+a.H == b.Y || b.Y+b.H == a.Y)
	}
	return a.Y == b.Y && (a.X+a.W == b.X || b.X+b.W == a.X)
}

// CheckAdjacency verifies property 4: no two same-color tiles share a full
// edge, except the long-edge 2x5 exception.
func CheckAdjacency(tiles []Tile) ConstraintResult {
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			a, b := tiles[i], tiles[j]
			if a.Color != b.Color {
				continue
			}
			if !adjacent4(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H) {
				continue
			}
			if longEdge2x5(a, b) {
				continue
			}
			return NewConstraintResult("Adjacency", false,
				fmt.Sprintf("tiles %d and %d are improperly adjacent", i, j))
		}
	}
	return NewConstraintResult("Adjacency", true, "")
}

// CheckPerimeterContract verifies property 5: every non-corner cell just
// outside a tile is same-color, opposing-color, or off-board — never
// empty.
func CheckPerimeterContract(state board.State, tiles []Tile) ConstraintResult {
	classify := func(x, y int, color board.Color) bool {
		if !board.InBounds(x, y) {
			return true
		}
		i := board.Idx(x, y)
		if board.Color(state.Stones[i]) != board.Empty || board.Color(state.Territory[i]) != board.Empty {
			return true
		}
		return false
	}

	for ti, t := range tiles {
		for dx := 0; dx < t.W; dx++ {
			if !classify(t.X+dx, t.Y-1, t.Color) || !classify(t.X+dx, t.Y+t.H, t.Color) {
				return NewConstraintResult("PerimeterContract", false,
					fmt.Sprintf("tile %d has an empty cell on its top/bottom perimeter", ti))
			}
		}
		for dy := 0; dy < t.H; dy++ {
			if !classify(t.X-1, t.Y+dy, t.Color) || !classify(t.X+t.W, t.Y+dy, t.Color) {
				return NewConstraintResult("PerimeterContract", false,
					fmt.Sprintf("tile %d has an empty cell on its left/right perimeter", ti))
			}
		}
	}
	return NewConstraintResult("PerimeterContract", true, "")
}

// CheckAnchorContract verifies property 6: every anchor cell holds a
// same-color stone, every other in-pattern cell holds same-color
// territory.
func CheckAnchorContract(state board.State, tiles []Tile) ConstraintResult {
	for ti, t := range tiles {
		for dy := 0; dy < t.H; dy++ {
			for dx := 0; dx < t.W; dx++ {
				if !t.cellInPattern(dx, dy) {
					continue
				}
				i := board.Idx(t.X+dx, t.Y+dy)
				if t.isAnchor(dx, dy) {
					if board.Color(state.Stones[i]) != t.Color || state.Territory[i] != 0 {
						return NewConstraintResult("AnchorContract", false,
							fmt.Sprintf("tile %d anchor (%d,%d) is not a clean same-color stone", ti, dx, dy))
					}
				} else if board.Color(state.Territory[i]) != t.Color || state.Stones[i] != 0 {
					return NewConstraintResult("AnchorContract", false,
						fmt.Sprintf("tile %d cell (%d,%d) is not clean same-color territory", ti, dx, dy))
				}
			}
		}
	}
	return NewConstraintResult("AnchorContract", true, "")
}

// CheckResidualFill verifies property 7: no territory[i]=color cell exists
// outside every tile's footprint, for the given color.
func CheckResidualFill(state board.State, tiles []Tile, color board.Color) ConstraintResult {
	covered := make([]bool, board.Cells)
	for _, t := range tiles {
		if t.Color != color {
			continue
		}
		for _, i := range t.cells() {
			covered[i] = true
		}
	}
	for i := 0; i < board.Cells; i++ {
		if board.Color(state.Territory[i]) == color && !covered[i] {
			return NewConstraintResult("ResidualFill", false,
				fmt.Sprintf("cell %d holds color %d territory outside any tile", i, color))
		}
	}
	return NewConstraintResult("ResidualFill", true, "")
}

// CheckStoneMoveBijection verifies property 8: moves for color has
// cardinality equal to the same-color stone count in after, and is a
// bijection from before-positions to after-positions.
func CheckStoneMoveBijection(before, after board.State, color board.Color, moves []board.StoneMove) ConstraintResult {
	beforePos := board.CollectStonePositions(before.Stones, color)
	afterPos := board.CollectStonePositions(after.Stones, color)

	var colorMoves []board.StoneMove
	for _, m := range moves {
		if m.Color == color {
			colorMoves = append(colorMoves, m)
		}
	}
	if len(colorMoves) != len(beforePos) || len(colorMoves) != len(afterPos) {
		return NewConstraintResult("StoneMoveBijection", false,
			fmt.Sprintf("color %d: moves=%d before=%d after=%d", color, len(colorMoves), len(beforePos), len(afterPos)))
	}

	beforeSet := map[[2]int]bool{}
	for _, p := range beforePos {
		beforeSet[[2]int{p.X, p.Y}] = true
	}
	afterSet := map[[2]int]bool{}
	for _, p := range afterPos {
		afterSet[[2]int{p.X, p.Y}] = true
	}

	beforeSeen := map[[2]int]bool{}
	afterSeen := map[[2]int]bool{}
	for _, m := range colorMoves {
		if !beforeSet[m.From] || !afterSet[m.To] {
			return NewConstraintResult("StoneMoveBijection", false,
				fmt.Sprintf("color %d: move %v->%v does not join a before stone to an after stone", color, m.From, m.To))
		}
		if beforeSeen[m.From] {
			return NewConstraintResult("StoneMoveBijection", false,
				fmt.Sprintf("color %d: from position %v used twice", color, m.From))
		}
		if afterSeen[m.To] {
			return NewConstraintResult("StoneMoveBijection", false,
				fmt.Sprintf("color %d: to position %v used twice", color, m.To))
		}
		beforeSeen[m.From] = true
		afterSeen[m.To] = true
	}
	return NewConstraintResult("StoneMoveBijection", true, "")
}
