package level

import (
	"fmt"
	"sort"

	"github.com/gasin/seiti/pkg/board"
)

// maxSearchNodes bounds the branch-and-bound search. Past this many explored
// nodes the search returns the best feasible pick found so far instead of
// continuing to prove optimality — see DESIGN.md for why no MIP library
// backs this instead.
const maxSearchNodes = 400_000

// mainWeight returns a candidate's contribution to main_target: 2 for the
// 3x7/7x3 tile (it covers 20 territory cells, i.e. two main units), 1 for
// every other main-slot tile, 0 for remainder-slot candidates.
func mainWeight(c candidate) int {
	if !c.Spec.Slot.Main {
		return 0
	}
	if c.Spec.Kind == Rect3x7 {
		return 2
	}
	return 1
}

// longEdge2x5Exception is the sole adjacency exception: two Rect2x5 tiles of
// identical orientation, meeting flush along their length-5 side.
func longEdge2x5Exception(a, b candidate) bool {
	if a.Spec.Kind != Rect2x5 || b.Spec.Kind != Rect2x5 {
		return false
	}
	if a.Spec.W != b.Spec.W || a.Spec.H != b.Spec.H {
		return false
	}
	if a.Spec.W >= a.Spec.H {
		return a.X == b.X && (a.Y+a.Spec.H == b.Y || b.Y+b.Spec.H == a.Y)
	}
	return a.Y == b.Y && (a.X+a.Spec.W == b.X || b.X+b.Spec.W == a.X)
}

// conflicts reports whether candidates i and j can never both be picked:
// either their footprints overlap, or one's mask-block (footprint dilated by
// one cell) touches the other's footprint, and no long-edge exception saves
// the pair.
func conflicts(a, b candidate) bool {
	if overlaps(a.Mask, b.Mask) {
		return true
	}
	adjacent := overlaps(a.MaskBlock, b.Mask) || overlaps(b.MaskBlock, a.Mask)
	if !adjacent {
		return false
	}
	return !longEdge2x5Exception(a, b)
}

// selectResult is a chosen tile and the footprint it marks used.
type selectResult struct {
	X, Y int
	Spec PatternSpec
}

// solveSelect searches for a minimum-cost subset of cands such that the
// main-weight sum equals mainTarget exactly, the remainder count equals
// remRequired (0 or 1) exactly, and no two picked candidates conflict.
//
// It returns board.ErrSolver if no feasible pick exists at all (mirroring
// the original's solver-error contract: no silent under-tiled result).
func solveSelect(cands []candidate, mainTarget, remRequired int, logger board.Logger) ([]int, error) {
	if mainTarget == 0 && remRequired == 0 {
		return nil, nil
	}

	adj := buildConflicts(cands)

	s := &searcher{
		cands:      cands,
		adj:        adj,
		mainTarget: mainTarget,
		remTarget:  remRequired,
	}
	s.suffixMain, s.suffixRem = suffixAvailability(cands)

	s.search(0, 0, 0, 0, make(map[int]bool))

	if logger != nil {
		conflictCount := 0
		for _, js := range adj {
			conflictCount += len(js)
		}
		logSelection(logger, cands, s.bestPicked, conflictCount/2, mainTarget, remRequired, s.nodes, s.bestPicked != nil)
	}

	if s.bestPicked == nil {
		return nil, fmt.Errorf("%w: no feasible tile selection for main_target=%d remainder_required=%d",
			board.ErrSolver, mainTarget, remRequired)
	}
	return s.bestPicked, nil
}

// buildConflicts returns, for each candidate i, the sorted list of every j
// (before or after i) it conflicts with — a symmetric adjacency list over the
// O(n^2) conflict test.
func buildConflicts(cands []candidate) [][]int {
	adj := make([][]int, len(cands))
	total := 0
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if conflicts(cands[i], cands[j]) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
				total++
			}
		}
	}
	for i := range adj {
		sort.Ints(adj[i])
	}
	return adj
}

// suffixAvailability precomputes, for each index i, the total main-weight
// and remainder count available among cands[i:] — used to prune branches
// that can no longer reach the required targets.
func suffixAvailability(cands []candidate) (mainAvail, remAvail []int) {
	n := len(cands)
	mainAvail = make([]int, n+1)
	remAvail = make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		mainAvail[i] = mainAvail[i+1] + mainWeight(cands[i])
		r := 0
		if !cands[i].Spec.Slot.Main {
			r = 1
		}
		remAvail[i] = remAvail[i+1] + r
	}
	return
}

type searcher struct {
	cands      []candidate
	adj        [][]int
	mainTarget int
	remTarget  int

	suffixMain []int
	suffixRem  []int

	bestCost      uint32
	bestPicked    []int
	currentPicked []int
	nodes         int
}

// search explores the include/exclude decision for cands[idx:], tracking
// mainSum/remSum so far and the set of already-excluded indices via
// `blocked` (candidates conflicting with something already picked).
// It keeps the lowest-cost feasible pick found within maxSearchNodes nodes.
func (s *searcher) search(idx int, mainSum, remSum int, cost uint32, blocked map[int]bool) {
	if s.nodes >= maxSearchNodes {
		return
	}
	s.nodes++

	if mainSum == s.mainTarget && remSum == s.remTarget {
		if s.bestPicked == nil || cost < s.bestCost {
			s.bestCost = cost
			s.bestPicked = append([]int(nil), s.currentPicked...)
		}
	}

	if idx >= len(s.cands) {
		return
	}
	if s.bestPicked != nil && cost >= s.bestCost {
		return
	}
	if mainSum+s.suffixMain[idx] < s.mainTarget || remSum+s.suffixRem[idx] < s.remTarget {
		return
	}

	// Branch 1: skip cands[idx].
	s.search(idx+1, mainSum, remSum, cost, blocked)

	// Branch 2: pick cands[idx], if it doesn't conflict with anything
	// already picked and doesn't overshoot either target.
	if blocked[idx] {
		return
	}
	w := mainWeight(s.cands[idx])
	r := 0
	if !s.cands[idx].Spec.Slot.Main {
		r = 1
	}
	if mainSum+w > s.mainTarget || remSum+r > s.remTarget {
		return
	}

	s.currentPicked = append(s.currentPicked, idx)
	newlyBlocked := s.blockConflicts(idx, blocked)
	s.search(idx+1, mainSum+w, remSum+r, cost+s.cands[idx].Cost, blocked)
	s.unblockConflicts(newlyBlocked, blocked)
	s.currentPicked = s.currentPicked[:len(s.currentPicked)-1]
}

func (s *searcher) blockConflicts(idx int, blocked map[int]bool) []int {
	var newly []int
	for _, j := range s.adj[idx] {
		if !blocked[j] {
			blocked[j] = true
			newly = append(newly, j)
		}
	}
	return newly
}

func (s *searcher) unblockConflicts(newly []int, blocked map[int]bool) {
	for _, j := range newly {
		delete(blocked, j)
	}
}

func logSelection(logger board.Logger, cands []candidate, picked []int, conflictCount, mainTarget, remRequired, nodes int, feasible bool) {
	logger.Log(fmt.Sprintf("[select] nodes=%d vars=%d conflicts=%d main_target=%d rem_required=%d feasible=%t",
		nodes, len(cands), conflictCount, mainTarget, remRequired, feasible))
	if !feasible {
		return
	}
	var costSum, penaltySum, penPerim, penInner uint32
	pickedPenalty := 0
	for _, i := range picked {
		c := cands[i]
		costSum += c.Cost
		penaltySum += c.PenaltyTotal
		penPerim += c.PenaltyPerimeter
		penInner += c.PenaltyInternal
		if c.PenaltyTotal > 0 {
			pickedPenalty++
		}
	}
	logger.Log(fmt.Sprintf("[select] picked=%d picked_penalty=%d cost_sum=%d penalty_sum=%d (perim=%d inner=%d)",
		len(picked), pickedPenalty, costSum, penaltySum, penPerim, penInner))

	if board.LogPatternsEnabled() {
		for _, i := range picked {
			c := cands[i]
			logger.Log(fmt.Sprintf("[pick] i=%d spec=%s x=%d y=%d w=%d h=%d stones=%d perimOpp=%d innerNoStone=%d penPerim=%d penInner=%d cost=%d",
				i, specName(c.Spec), c.X, c.Y, c.Spec.W, c.Spec.H,
				c.StonesInRect, c.PerimeterOppCells, c.InternalNoStoneCells, c.PenaltyPerimeter, c.PenaltyInternal, c.Cost))
		}
	}
}
