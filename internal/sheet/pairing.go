package sheet

// AdjacencyMap maps an exercise id to its directly paired partner ids,
// symmetric by construction and ordered by first declaration.
type AdjacencyMap map[int][]int

// Pairs builds the partner adjacency from raw paired-set declarations.
// A declaration is skipped when it has fewer than two values or pairs an
// exercise with itself; declaring the same pair twice is a no-op. Malformed
// input never fails, it just degrades to "no pairing" for that entry.
func Pairs(declarations [][]int) AdjacencyMap {
	adj := make(AdjacencyMap)
	for _, decl := range declarations {
		if len(decl) < 2 {
			continue
		}
		a, b := decl[0], decl[1]
		if a == b {
			continue
		}
		adj.add(a, b)
		adj.add(b, a)
	}
	return adj
}

func (m AdjacencyMap) add(from, to int) {
	for _, existing := range m[from] {
		if existing == to {
			return
		}
	}
	m[from] = append(m[from], to)
}
