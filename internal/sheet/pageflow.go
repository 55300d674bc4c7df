package sheet

import "fmt"

// Geometry holds the fixed vertical layout constants for a sheet.
// All values are millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	TopMargin    float64
	BottomMargin float64
	// HeaderHeight is the band reserved under the top margin for the
	// workout title, repeated on every page.
	HeaderHeight float64

	PrimaryRow float64
	PartnerRow float64

	// GapAfterSingle trails a block with no partners; GapAfterPaired
	// trails a superset block and is larger to set it apart visually.
	GapAfterSingle float64
	GapAfterPaired float64

	// BreakThreshold is the minimum space that must remain above the
	// bottom margin before the next entry may start on the current page.
	BreakThreshold float64
}

// A4Geometry returns the layout constants of the standard A4 fill-in sheet.
func A4Geometry() Geometry {
	return Geometry{
		PageWidth:      210,
		PageHeight:     297,
		TopMargin:      12,
		BottomMargin:   12,
		HeaderHeight:   10,
		PrimaryRow:     8,
		PartnerRow:     7,
		GapAfterSingle: 7,
		GapAfterPaired: 8,
		BreakThreshold: 30,
	}
}

// pageTop is the cursor position at the start of each page: page height
// minus top margin minus the header band.
func (g Geometry) pageTop() float64 {
	return g.PageHeight - g.TopMargin - g.HeaderHeight
}

// Validate rejects geometry that cannot host a single entry. This is the
// engine's only failure condition; everything downstream degrades instead.
func (g Geometry) Validate() error {
	if g.PrimaryRow <= 0 || g.PartnerRow <= 0 {
		return fmt.Errorf("sheet geometry: row heights must be positive (primary=%g, partner=%g)", g.PrimaryRow, g.PartnerRow)
	}
	if g.GapAfterSingle < 0 || g.GapAfterPaired < 0 || g.BreakThreshold < 0 {
		return fmt.Errorf("sheet geometry: gaps and break threshold must be non-negative")
	}
	if g.pageTop()-g.BottomMargin <= 0 {
		return fmt.Errorf("sheet geometry: no usable height (page=%g, top=%g, header=%g, bottom=%g)",
			g.PageHeight, g.TopMargin, g.HeaderHeight, g.BottomMargin)
	}
	if g.pageTop() <= g.BottomMargin+g.BreakThreshold {
		return fmt.Errorf("sheet geometry: break threshold %g leaves no room for entries", g.BreakThreshold)
	}
	return nil
}

// Layout distributes block entries across pages. Placements come out in
// block order with monotonically non-decreasing page indices; the break
// check runs before each entry is placed, so an entry is never split
// across a page boundary. The renderer draws the header band once per
// page index it encounters.
func Layout(blocks []Block, g Geometry) ([]Placement, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	page := 0
	cursor := g.pageTop()
	var placements []Placement

	place := func(e Entry, rowHeight float64) {
		if cursor < g.BottomMargin+g.BreakThreshold {
			page++
			cursor = g.pageTop()
		}
		placements = append(placements, Placement{Page: page, Y: cursor, Entry: e})
		cursor -= rowHeight
	}

	for _, b := range blocks {
		place(b.Primary, g.PrimaryRow)
		for _, p := range b.Partners {
			place(p, g.PartnerRow)
		}
		if len(b.Partners) > 0 {
			cursor -= g.GapAfterPaired
		} else {
			cursor -= g.GapAfterSingle
		}
	}
	return placements, nil
}
