package level

import (
	"fmt"

	"github.com/gasin/seiti/pkg/board"
)

// maskWords is the number of uint64 words needed to cover board.Cells bits.
const maskWords = (board.Cells + 63) / 64

// mask is a fixed-size bitset over the 361 board cells.
type mask [maskWords]uint64

func (m *mask) set(i int) {
	m[i/64] |= 1 << uint(i%64)
}

func overlaps(a, b mask) bool {
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// candidate is a single legal (x,y,spec) placement with its computed cost,
// accounting fields, and the two bitset footprints used by the selector.
type candidate struct {
	X, Y                 int
	Spec                 PatternSpec
	Cost                 uint32
	StonesInRect         uint32
	PenaltyTotal         uint32
	PenaltyPerimeter     uint32
	PenaltyInternal      uint32
	PerimeterOppCells    uint32
	InternalNoStoneCells uint32
	Mask                 mask
	MaskBlock            mask
}

var neigh4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// perimeterClass classifies a cell just outside a candidate rectangle:
// 1 = same color or off-board, 2 = opponent color, 0 = anything else
// (empty, or neither stone nor territory of either color).
func perimeterClass(stones, territory []byte, x, y int, color board.Color) int {
	if !board.InBounds(x, y) {
		return 1
	}
	i := board.Idx(x, y)
	if board.Color(stones[i]) == color || board.Color(territory[i]) == color {
		return 1
	}
	opp := color.Opponent()
	if board.Color(stones[i]) == opp || board.Color(territory[i]) == opp {
		return 2
	}
	return 0
}

// checkPerimeter walks the four outside sides (corners excluded) of a w x h
// rectangle anchored at (x,y). It rejects the placement the moment it sees a
// cell that is neither same-color/boundary nor opponent, and otherwise
// accumulates the +10-per-cell opponent penalty.
func checkPerimeter(stones, territory []byte, x, y, w, h int, color board.Color) (ok bool, oppCells, penalty uint32) {
	classify := func(cx, cy int) bool {
		switch perimeterClass(stones, territory, cx, cy, color) {
		case 1:
			return true
		case 2:
			oppCells++
			penalty += 10
			return true
		default:
			return false
		}
	}

	for dx := 0; dx < w; dx++ {
		if !classify(x+dx, y-1) {
			return false, 0, 0
		}
	}
	for dx := 0; dx < w; dx++ {
		if !classify(x+dx, y+h) {
			return false, 0, 0
		}
	}
	for dy := 0; dy < h; dy++ {
		if !classify(x-1, y+dy) {
			return false, 0, 0
		}
	}
	for dy := 0; dy < h; dy++ {
		if !classify(x+w, y+dy) {
			return false, 0, 0
		}
	}
	return true, oppCells, penalty
}

// checkInternal reports whether every in-pattern cell is same-color stone
// or same-color territory.
func checkInternal(stones, territory []byte, x, y int, spec PatternSpec, color board.Color) bool {
	for dy := 0; dy < spec.H; dy++ {
		for dx := 0; dx < spec.W; dx++ {
			if !cellInPattern(dx, dy, spec) {
				continue
			}
			i := board.Idx(x+dx, y+dy)
			if board.Color(stones[i]) != color && board.Color(territory[i]) != color {
				return false
			}
		}
	}
	return true
}

// internalPenaltyAndMasks computes the internal penalty/accounting fields
// and the mask/mask-block footprints for a placement already known to pass
// checkPerimeter and checkInternal.
func internalPenaltyAndMasks(stones []byte, x, y int, spec PatternSpec) (stonesInRect, penalty, noStoneAnchors uint32, m, mb mask) {
	for dy := 0; dy < spec.H; dy++ {
		for dx := 0; dx < spec.W; dx++ {
			if !cellInPattern(dx, dy, spec) {
				continue
			}
			i := board.Idx(x+dx, y+dy)
			m.set(i)
			mb.set(i)
			hasStone := stones[i] != 0
			if hasStone {
				stonesInRect++
			}
			if isAnchor(dx, dy, spec) {
				if !hasStone {
					noStoneAnchors++
					penalty++
				}
			} else if hasStone {
				penalty++
			}
		}
	}
	return
}

// dilateMaskBlock adds every in-bounds 4-neighbor of the pattern's cells to
// mb, turning "occupied" into "occupied or touching" for the adjacency test.
func dilateMaskBlock(x, y int, spec PatternSpec, mb *mask) {
	for dy := 0; dy < spec.H; dy++ {
		for dx := 0; dx < spec.W; dx++ {
			if !cellInPattern(dx, dy, spec) {
				continue
			}
			cx, cy := x+dx, y+dy
			for _, n := range neigh4 {
				nx, ny := cx+n[0], cy+n[1]
				if board.InBounds(nx, ny) {
					mb.set(board.Idx(nx, ny))
				}
			}
		}
	}
}

func tryCandidate(stones, territory []byte, x, y int, spec PatternSpec, color board.Color) (candidate, bool) {
	ok, oppCells, perimPenalty := checkPerimeter(stones, territory, x, y, spec.W, spec.H, color)
	if !ok {
		return candidate{}, false
	}
	if !checkInternal(stones, territory, x, y, spec, color) {
		return candidate{}, false
	}

	stonesInRect, internalPenalty, noStoneAnchors, m, mb := internalPenaltyAndMasks(stones, x, y, spec)
	dilateMaskBlock(x, y, spec, &mb)

	total := perimPenalty + internalPenalty
	return candidate{
		X: x, Y: y, Spec: spec,
		Cost:                 total,
		StonesInRect:         stonesInRect,
		PenaltyTotal:         total,
		PenaltyPerimeter:     perimPenalty,
		PenaltyInternal:      internalPenalty,
		PerimeterOppCells:    oppCells,
		InternalNoStoneCells: noStoneAnchors,
		Mask:                 m,
		MaskBlock:            mb,
	}, true
}

func candidatesForSpec(stones, territory []byte, spec PatternSpec, color board.Color) []candidate {
	if spec.W > board.Size || spec.H > board.Size {
		return nil
	}
	var out []candidate
	for y := 0; y <= board.Size-spec.H; y++ {
		for x := 0; x <= board.Size-spec.W; x++ {
			if c, ok := tryCandidate(stones, territory, x, y, spec, color); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// generateCandidates enumerates every legal placement of every catalogue
// tile relevant to color and remainder, annotated with cost and masks, and
// returns them sorted by ascending cost.
func generateCandidates(stones, territory []byte, color board.Color, remainder uint8, logger board.Logger) []candidate {
	var cands []candidate
	for _, spec := range mainSpecs {
		cands = append(cands, candidatesForSpec(stones, territory, spec, color)...)
	}

	if remainder >= 1 && remainder <= 9 {
		for _, spec := range remainderSpecs {
			if spec.Slot.Main || spec.Slot.Remainder != remainder {
				continue
			}
			if spec.Kind == Rect1xN && max(spec.W, spec.H) >= 6 {
				continue
			}
			cands = append(cands, candidatesForSpec(stones, territory, spec, color)...)
		}
	}

	sortByCost(cands)

	if logger != nil {
		penaltyCandidates := 0
		for _, c := range cands {
			if c.PenaltyTotal > 0 {
				penaltyCandidates++
			}
		}
		logger.Log(fmt.Sprintf("[patterns] color=%d remainder=%d candidates=%d penalty_candidates=%d",
			color, remainder, len(cands), penaltyCandidates))
		if board.LogPatternsEnabled() {
			for _, c := range cands {
				logger.Log(fmt.Sprintf("[cand] color=%d slot=%s spec=%s x=%d y=%d w=%d h=%d stones=%d perimOpp=%d innerNoStone=%d penPerim=%d penInner=%d cost=%d",
					color, slotName(c.Spec.Slot), specName(c.Spec), c.X, c.Y, c.Spec.W, c.Spec.H,
					c.StonesInRect, c.PerimeterOppCells, c.InternalNoStoneCells, c.PenaltyPerimeter, c.PenaltyInternal, c.Cost))
			}
		}
	}

	return cands
}

func sortByCost(cands []candidate) {
	// Plain insertion sort: candidate counts here are low thousands at most,
	// so the O(n^2) worst case is irrelevant and this avoids sort.Slice's
	// per-call closure allocation.
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && cands[j].Cost < cands[j-1].Cost; j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

func specName(spec PatternSpec) string {
	switch spec.Kind {
	case Rect2x5:
		if spec.W == 5 {
			return "2x5(5x2)"
		}
		return "2x5(2x5)"
	case Rect3x4:
		if spec.W == 4 {
			return "3x4(4x3)"
		}
		return "3x4(3x4)"
	case Rect3x7:
		if spec.W == 3 {
			return "3x7(3x7)"
		}
		return "3x7(7x3)"
	case Rect1xN:
		return "1xN"
	case Rect2xHalf:
		return "2x(N/2)"
	default:
		return "3x3"
	}
}

func slotName(slot PatternSlot) string {
	if slot.Main {
		return "main"
	}
	return fmt.Sprintf("rem(%d)", slot.Remainder)
}
