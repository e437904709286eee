package level

// PatternSlot is either the main slot (pays down main_target) or a
// remainder slot tied to a specific tcount%10 value in 1..9.
type PatternSlot struct {
	Main      bool
	Remainder uint8 // valid only when !Main
}

func mainSlot() PatternSlot             { return PatternSlot{Main: true} }
func remainderSlot(r uint8) PatternSlot { return PatternSlot{Main: false, Remainder: r} }

// PatternKind groups specs for logging and for the 2x5 long-edge exception
// (which applies only within Rect2x5).
type PatternKind int

const (
	Rect2x5 PatternKind = iota
	Rect3x4
	Rect3x7
	Rect1xN
	Rect2xHalf
	Rect3x3
)

// cellCoord is a local (dx,dy) offset inside a pattern's bounding box.
type cellCoord struct{ DX, DY int }

// PatternSpec is one catalogue entry: a bounding box, an optional missing
// corner, and zero or more anchor cells (cells that must hold a stone after
// apply rather than clean territory).
type PatternSpec struct {
	Slot          PatternSlot
	Kind          PatternKind
	W, H          int
	MissingCorner int // 0=none, 1=TL, 2=TR, 3=BL, 4=BR
	Anchors       []cellCoord
}

// cellInPattern reports whether local offset (dx,dy) belongs to the pattern,
// i.e. is not excluded by MissingCorner.
func cellInPattern(dx, dy int, spec PatternSpec) bool {
	switch spec.MissingCorner {
	case 1:
		return !(dx == 0 && dy == 0)
	case 2:
		return !(dx+1 == spec.W && dy == 0)
	case 3:
		return !(dx == 0 && dy+1 == spec.H)
	case 4:
		return !(dx+1 == spec.W && dy+1 == spec.H)
	default:
		return true
	}
}

func isAnchor(dx, dy int, spec PatternSpec) bool {
	for _, a := range spec.Anchors {
		if a.DX == dx && a.DY == dy {
			return true
		}
	}
	return false
}

var (
	anchors34w4h3 = []cellCoord{{1, 1}, {2, 1}}
	anchors34w3h4 = []cellCoord{{1, 1}, {1, 2}}
	anchor37w3h7  = []cellCoord{{1, 3}}
	anchor37w7h3  = []cellCoord{{3, 1}}
)

// mainSpecs is the fixed main-tile catalogue: every entry covers exactly 10
// territory cells (Rect3x7 covers 20, i.e. two main units — see mainWeight
// in ip.go).
var mainSpecs = []PatternSpec{
	{Slot: mainSlot(), Kind: Rect2x5, W: 5, H: 2},
	{Slot: mainSlot(), Kind: Rect2x5, W: 2, H: 5},
	{Slot: mainSlot(), Kind: Rect3x4, W: 4, H: 3, Anchors: anchors34w4h3},
	{Slot: mainSlot(), Kind: Rect3x4, W: 3, H: 4, Anchors: anchors34w3h4},
	{Slot: mainSlot(), Kind: Rect3x7, W: 3, H: 7, Anchors: anchor37w3h7},
	{Slot: mainSlot(), Kind: Rect3x7, W: 7, H: 3, Anchors: anchor37w7h3},
}

// remainderSpecs is the fixed remainder-tile catalogue (tcount%10 in 1..9).
// For each r it offers both Rect1xN orientations (save r=1, which is only
// 1x1), a Rect2xHalf shape (one full tile for even r, four missing-corner
// variants for odd r), and — only for r=9 — a 3x3 Rect3x3 tile.
var remainderSpecs = buildRemainderSpecs()

func buildRemainderSpecs() []PatternSpec {
	var specs []PatternSpec

	for r := uint8(1); r <= 9; r++ {
		n := int(r)
		if r == 1 {
			specs = append(specs, PatternSpec{Slot: remainderSlot(r), Kind: Rect1xN, W: 1, H: 1})
			continue
		}
		specs = append(specs,
			PatternSpec{Slot: remainderSlot(r), Kind: Rect1xN, W: n, H: 1},
			PatternSpec{Slot: remainderSlot(r), Kind: Rect1xN, W: 1, H: n},
		)
	}

	// 2x(r/2) for even r, four missing-corner 2x(ceil(r/2)) variants for odd r.
	for r := uint8(2); r <= 8; r += 2 {
		half := int(r) / 2
		specs = append(specs, PatternSpec{Slot: remainderSlot(r), Kind: Rect2xHalf, W: half, H: 2})
	}
	for r := uint8(3); r <= 9; r += 2 {
		half := (int(r) + 1) / 2
		for _, mc := range []int{1, 2, 3, 4} {
			specs = append(specs, PatternSpec{Slot: remainderSlot(r), Kind: Rect2xHalf, W: half, H: 2, MissingCorner: mc})
		}
	}

	specs = append(specs, PatternSpec{Slot: remainderSlot(9), Kind: Rect3x3, W: 3, H: 3})

	return specs
}
