package graph

// ConnectedComponents labels every vertex with its connected component.
// It returns the component count and a slice mapping vertex index to
// component label in 0..count-1.
//
// Labels are assigned in ascending first-seen order: the scan walks
// vertices 0..n-1 and flood-fills each unseen one, so component c's
// lowest vertex index is smaller than component c+1's. This makes the
// labeling — and any per-component root choice derived from it —
// reproducible across runs.
//
// Time:   O(V + E)
// Memory: O(V) for labels and the work queue.
func ConnectedComponents(g *Graph) (int, []int, error) {
	if g == nil {
		return 0, nil, ErrGraphNil
	}

	n := g.Order()
	label := make([]int, n)
	for i := range label {
		label[i] = -1 // unseen
	}

	count := 0
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if label[v] != -1 {
			continue
		}
		// BFS flood fill to label the component of v.
		queue = queue[:0]
		queue = append(queue, v)
		label[v] = count
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, nbr := range g.adj[u] {
				if label[nbr] == -1 {
					label[nbr] = count
					queue = append(queue, nbr)
				}
			}
		}
		count++
	}
	return count, label, nil
}
