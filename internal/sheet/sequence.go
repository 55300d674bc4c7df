package sheet

import "github.com/claude/fitplan/internal/models"

// Sequence walks the workout's exercise list once and partitions it into
// blocks: each id appears in exactly one block, either as a primary or as
// a partner pulled forward by a paired-set declaration.
//
// Partner expansion is one hop deep: only the primary's direct partners
// join its block. A chain A-B, B-C therefore yields (A,[B]) and a later
// standalone (C) — chains longer than a pair are not guaranteed fully
// contiguous.
func Sequence(exerciseIDs []int, adj AdjacencyMap, lookup map[int]models.Exercise) []Block {
	inWorkout := make(map[int]bool, len(exerciseIDs))
	for _, id := range exerciseIDs {
		inWorkout[id] = true
	}

	rendered := make(map[int]bool, len(exerciseIDs))
	var blocks []Block

	for _, id := range exerciseIDs {
		if rendered[id] {
			continue
		}
		block := Block{Primary: entryFor(id, lookup, false)}
		rendered[id] = true

		for _, partner := range adj[id] {
			if !inWorkout[partner] || rendered[partner] {
				continue
			}
			block.Partners = append(block.Partners, entryFor(partner, lookup, true))
			rendered[partner] = true
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func entryFor(id int, lookup map[int]models.Exercise, partner bool) Entry {
	if ex, ok := lookup[id]; ok {
		return newEntry(id, &ex, partner)
	}
	return newEntry(id, nil, partner)
}
