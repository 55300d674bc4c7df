// Package sheet lays out printable workout sheets: it resolves paired-set
// declarations into an adjacency map, sequences a workout's exercises into
// blocks (a primary exercise followed by its still-unrendered partners),
// distributes block entries across pages with a vertical-space budget, and
// renders the result as a fill-in PDF.
package sheet

import (
	"fmt"

	"github.com/claude/fitplan/internal/models"
)

// Entry is the renderable unit for one exercise row on a sheet.
type Entry struct {
	ExerciseID int
	Name       string
	Sets       int
	RepsText   string
	Comment    string
	RestSec    *int
	// Partner marks the subordinate half of a superset; partner rows are
	// drawn slightly indented under their primary.
	Partner bool
}

// Block is one unit of sequencing output: a primary exercise plus the
// directly paired partners that had not been rendered before it.
type Block struct {
	Primary  Entry
	Partners []Entry
}

// Placement binds an entry to a page index and a vertical position.
// Y is the distance from the bottom page edge, in the same unit as the
// Geometry that produced it.
type Placement struct {
	Page  int
	Y     float64
	Entry Entry
}

// newEntry builds the display entry for an exercise id. A nil exercise
// (workout references an id missing from the catalog) degrades to a
// visible placeholder row instead of failing the whole sheet.
func newEntry(id int, ex *models.Exercise, partner bool) Entry {
	if ex == nil {
		return Entry{
			ExerciseID: id,
			Name:       fmt.Sprintf("Exercise #%d (missing)", id),
			Sets:       models.DefaultSets,
			Partner:    partner,
		}
	}
	name := ex.Name
	if name == "" {
		name = fmt.Sprintf("#%d", id)
	}
	sets := ex.Sets
	if sets <= 0 {
		sets = models.DefaultSets
	}
	return Entry{
		ExerciseID: id,
		Name:       name,
		Sets:       sets,
		RepsText:   ex.Reps.String(),
		Comment:    ex.Comment,
		RestSec:    ex.RestSec,
		Partner:    partner,
	}
}
