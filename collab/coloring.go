package collab

import "sort"

// GreedyColoring implements ColoringFunc with a largest-degree-first greedy
// graph coloring: vertices are processed in descending order of degree
// (ties broken by ascending vertex id, for determinism), and each is
// assigned the smallest color not already used by an already-colored
// neighbor. This is the Go-native stand-in for pyamg's
// vertex_coloring_mis, which CLJPSplitter uses only to seed weights, not to
// certify an exact maximum independent set of colors — any proper coloring
// suffices for that purpose.
func GreedyColoring(n int, rowptr, colind []int, coloring []int) {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	degree := func(v int) int { return rowptr[v+1] - rowptr[v] }
	sort.Slice(order, func(a, b int) bool {
		da, db := degree(order[a]), degree(order[b])
		if da != db {
			return da > db
		}
		return order[a] < order[b]
	})

	for i := range coloring {
		coloring[i] = -1
	}

	var used []bool
	for _, v := range order {
		neighbors := colind[rowptr[v]:rowptr[v+1]]
		maxNeighborColor := -1
		for _, u := range neighbors {
			if coloring[u] > maxNeighborColor {
				maxNeighborColor = coloring[u]
			}
		}
		if cap(used) < maxNeighborColor+1 {
			used = make([]bool, maxNeighborColor+1)
		} else {
			used = used[:maxNeighborColor+1]
			for i := range used {
				used[i] = false
			}
		}
		for _, u := range neighbors {
			if c := coloring[u]; c >= 0 && c < len(used) {
				used[c] = true
			}
		}
		color := 0
		for color < len(used) && used[color] {
			color++
		}
		coloring[v] = color
	}
}
