package sheet

import (
	"reflect"
	"testing"
)

// TestPairsSymmetry verifies that every accepted declaration produces a
// symmetric adjacency: b in partners(a) iff a in partners(b).
func TestPairsSymmetry(t *testing.T) {
	adj := Pairs([][]int{{1, 2}, {2, 5}, {7, 1}})
	for a, partners := range adj {
		for _, b := range partners {
			if !contains(adj[b], a) {
				t.Errorf("partners(%d) contains %d but partners(%d) = %v lacks %d", a, b, b, adj[b], a)
			}
		}
	}
	if !reflect.DeepEqual(adj[2], []int{1, 5}) {
		t.Errorf("partners(2) = %v, want [1 5]", adj[2])
	}
}

// TestPairsSkipsMalformed verifies that empty, short and self-referential
// declarations are dropped without error.
func TestPairsSkipsMalformed(t *testing.T) {
	adj := Pairs([][]int{nil, {}, {4}, {3, 3}, {1, 2}})
	if len(adj) != 2 {
		t.Fatalf("adjacency has %d entries, want 2 (only the valid pair): %v", len(adj), adj)
	}
	if !contains(adj[1], 2) || !contains(adj[2], 1) {
		t.Errorf("valid pair (1,2) missing from adjacency: %v", adj)
	}
}

// TestPairsIdempotent verifies that declaring the same pair twice (in
// either orientation) yields the same adjacency as declaring it once.
func TestPairsIdempotent(t *testing.T) {
	once := Pairs([][]int{{1, 2}})
	twice := Pairs([][]int{{1, 2}, {1, 2}, {2, 1}})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("duplicate declarations changed adjacency: once=%v twice=%v", once, twice)
	}
}

// TestPairsIgnoresTrailingValues verifies that only the first two values of
// an over-long declaration are used.
func TestPairsIgnoresTrailingValues(t *testing.T) {
	adj := Pairs([][]int{{1, 2, 3}})
	if contains(adj[1], 3) || len(adj[3]) != 0 {
		t.Errorf("third declaration value leaked into adjacency: %v", adj)
	}
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
