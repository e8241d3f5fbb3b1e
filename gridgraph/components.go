package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells,
// according to the grid's connectivity. Impassable cells belong to no component.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by their
// lowest index.
//
// To convert an index back to (col,row), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[N]) ConnectedComponents() [][]int {
	total := gg.cols * gg.rows
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !gg.IsPassable(i0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range gg.Neighbors(queue[qi]) {
				if !seen[v] && gg.IsPassable(v) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
