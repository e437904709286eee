// Package matching computes a minimum-cost correspondence between a color's
// stones before and after leveling, so that animation layers can move each
// stone along a single straight path instead of popping them into place.
package matching

import "math"

// hungarianAssign solves the square minimum-cost bipartite assignment
// problem over cost (an n x n matrix) and returns assignment, where
// assignment[j] is the row matched to column j. It is the O(n^3) potentials
// formulation (successive shortest augmenting paths with reduced costs),
// not a naive O(n^4) search.
func hungarianAssign(cost [][]float64) []int {
	n := len(cost)
	if n == 0 {
		return nil
	}

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row matched to column j; p[n] is the sentinel
	way := make([]int, n+1)
	for j := range p {
		p[j] = n
	}

	for i := 0; i < n; i++ {
		p[n] = i
		j0 := n
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := n

			for j := 0; j < n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0][j] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == n {
				break
			}
		}

		for j0 != n {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	copy(assignment, p[:n])
	return assignment
}
