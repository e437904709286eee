package generate

import "github.com/gasin/seiti/pkg/board"

// Generation parameters. These are tuned constants, not user-facing config:
// changing them changes what "natural-looking" means for this generator.
const (
	seedXORMask                 uint32  = 0x9e3779b9
	fbmSeedXOR                  uint32  = 0x12345678
	fbmScale                    float32 = 6.0
	fbmOctaves                  uint32  = 4
	fbmLacunarity               float32 = 2.0
	fbmGain                     float32 = 0.5
	territoryCarveIter                  = 3
	territoryCarveDenom         uint32  = 5
	minSingleTerritoryComponent         = 4
)

var neigh4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// isColorStoneOrTerritory reports whether cell (x,y) is already claimed by
// color, as a stone or as territory.
func isColorStoneOrTerritory(stones, territory []byte, x, y int, color board.Color) bool {
	i := board.Idx(x, y)
	return board.Color(stones[i]) == color || board.Color(territory[i]) == color
}

// isColorOrBoundary treats off-board neighbors as "already same color",
// since an edge can't let an opposing shape leak in.
func isColorOrBoundary(stones, territory []byte, x, y int, color board.Color) bool {
	if !board.InBounds(x, y) {
		return true
	}
	return isColorStoneOrTerritory(stones, territory, x, y, color)
}

// carveTerritory randomly converts fully-surrounded same-color stones into
// territory, iterating until a pass converts no cell or maxIters is
// reached. A cell is eligible once all eight neighbors (diagonals included)
// are same-color stone/territory or the board edge.
func carveTerritory(rng *uint32, stones, territory []byte, color board.Color, maxIters int, chanceDenom uint32) {
	for iter := 0; iter < maxIters; iter++ {
		changed := 0

		for y := 0; y < board.Size; y++ {
			for x := 0; x < board.Size; x++ {
				i := board.Idx(x, y)
				if board.Color(stones[i]) != color || territory[i] != 0 {
					continue
				}

				surrounded := true
				for dy := -1; dy <= 1 && surrounded; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if !isColorOrBoundary(stones, territory, x+dx, y+dy, color) {
							surrounded = false
							break
						}
					}
				}

				if surrounded && randChance1In(rng, chanceDenom) {
					stones[i] = 0
					territory[i] = byte(color)
					changed++
				}
			}
		}

		if changed == 0 {
			break
		}
	}
}

// connectedComponents groups every cell in cells (by index) into 4-connected
// components and returns the size of each.
func connectedComponents(cells map[int]bool) []int {
	visited := make(map[int]bool, len(cells))
	var sizes []int
	for start := range cells {
		if visited[start] {
			continue
		}
		size := 0
		stack := []int{start}
		visited[start] = true
		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			x, y := i%board.Size, i/board.Size
			for _, n := range neigh4 {
				nx, ny := x+n[0], y+n[1]
				if !board.InBounds(nx, ny) {
					continue
				}
				ni := board.Idx(nx, ny)
				if cells[ni] && !visited[ni] {
					visited[ni] = true
					stack = append(stack, ni)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return sizes
}

// removeStoneGroupsNotTouchingTwoTerritories finds every 4-connected
// same-color stone group and removes it (converting to opposing territory,
// or flipping existing territory if present) unless the territory cells it
// touches form at least two separate components — or one component large
// enough to count as a real territory on its own.
func removeStoneGroupsNotTouchingTwoTerritories(stones, territory []byte) bool {
	visited := make([]bool, board.Cells)
	changedAny := false

	for start := 0; start < board.Cells; start++ {
		color := board.Color(stones[start])
		if color == board.Empty || visited[start] {
			continue
		}

		var group []int
		queue := []int{start}
		visited[start] = true
		touched := map[int]bool{}

		for len(queue) > 0 {
			i := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			group = append(group, i)
			x, y := i%board.Size, i/board.Size
			for _, n := range neigh4 {
				nx, ny := x+n[0], y+n[1]
				if !board.InBounds(nx, ny) {
					continue
				}
				ni := board.Idx(nx, ny)
				if territory[ni] != 0 {
					touched[ni] = true
				}
				if board.Color(stones[ni]) == color && !visited[ni] {
					visited[ni] = true
					queue = append(queue, ni)
				}
			}
		}

		sizes := connectedComponents(touched)
		maxComponent := 0
		for _, s := range sizes {
			if s > maxComponent {
				maxComponent = s
			}
		}
		isolated := !(len(sizes) >= 2 || (len(sizes) == 1 && maxComponent >= minSingleTerritoryComponent))

		if isolated {
			opp := color.Opponent()
			for _, gi := range group {
				stones[gi] = 0
				switch board.Color(territory[gi]) {
				case board.Empty:
					territory[gi] = byte(opp)
				case board.Black:
					territory[gi] = byte(board.White)
				case board.White:
					territory[gi] = byte(board.Black)
				}
			}
			changedAny = true
		}
	}
	return changedAny
}

// fillTouchingTerritoriesWithStones converts any territory cell that
// 4-directionally touches opposing territory into a stone of its own color
// (clearing the territory mark), since adjacent opposing territories can't
// both stand as claimed land.
func fillTouchingTerritoriesWithStones(stones, territory []byte) bool {
	toBlack := make([]bool, board.Cells)
	toWhite := make([]bool, board.Cells)
	changedAny := false

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			i := board.Idx(x, y)
			t := board.Color(territory[i])
			if t == board.Empty {
				continue
			}
			for _, n := range neigh4 {
				nx, ny := x+n[0], y+n[1]
				if !board.InBounds(nx, ny) {
					continue
				}
				nt := board.Color(territory[board.Idx(nx, ny)])
				if t == board.Black && nt == board.White {
					toBlack[i] = true
					break
				}
				if t == board.White && nt == board.Black {
					toWhite[i] = true
					break
				}
			}
		}
	}

	for i := 0; i < board.Cells; i++ {
		switch {
		case toBlack[i]:
			stones[i] = byte(board.Black)
			territory[i] = board.Empty
			changedAny = true
		case toWhite[i]:
			stones[i] = byte(board.White)
			territory[i] = board.Empty
			changedAny = true
		}
	}
	return changedAny
}

// GenerateBoardState procedurally builds a fresh pre-leveling board from
// seed: a Perlin noise field splits the board into two solid color masses,
// carveTerritory erodes each mass's interior into territory, and the two
// cleanup passes run to a fixed point so every stone group touches two
// separate territories or one of at least minSingleTerritoryComponent cells,
// and no two opposing territories stay adjacent.
func GenerateBoardState(seed uint32) board.State {
	rng := seed ^ seedXORMask

	state := board.NewState(seed)

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			fx := float32(x) / fbmScale
			fy := float32(y) / fbmScale
			n := fbm2(seed^fbmSeedXOR, fx, fy, fbmOctaves, fbmLacunarity, fbmGain)
			color := board.Black
			if n < 0 {
				color = board.White
			}
			state.Stones[board.Idx(x, y)] = byte(color)
		}
	}

	for _, color := range board.Colors {
		carveTerritory(&rng, state.Stones, state.Territory, color, territoryCarveIter, territoryCarveDenom)
	}

	for i := 0; i < board.Cells; i++ {
		changed3 := removeStoneGroupsNotTouchingTwoTerritories(state.Stones, state.Territory)
		changed4 := fillTouchingTerritoriesWithStones(state.Stones, state.Territory)
		if !changed3 && !changed4 {
			break
		}
	}

	return state
}
