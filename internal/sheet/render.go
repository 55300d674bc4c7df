package sheet

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/claude/fitplan/internal/models"
)

// Horizontal layout constants, in millimetres. Vertical flow is owned by
// Geometry; these only position things within a row.
const (
	leftMargin    = 12.0
	partnerIndent = 4.0
	boxOffsetX    = 50.0
	boxWidth      = 14.0
	boxHeight     = 8.0
	boxGap        = 4.0
)

// RenderPDF runs the layout engine for one workout and writes the fill-in
// sheet as a PDF. Each entry row gets the exercise name, a meta line
// (target reps, rest, comment) and one reps/kg box pair per set. The
// workout title is drawn at the top of every page.
func RenderPDF(w io.Writer, workout models.Workout, exercises map[int]models.Exercise, g Geometry) error {
	blocks := Sequence(workout.Exercises, Pairs(workout.PairedSets), exercises)
	placements, err := Layout(blocks, g)
	if err != nil {
		return fmt.Errorf("laying out workout %d: %w", workout.ID, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(workout.DisplayName(), true)

	page := -1
	newPage := func() {
		pdf.AddPage()
		page++
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(leftMargin, g.TopMargin, workout.DisplayName())
	}

	newPage() // an empty workout still yields a titled sheet
	for _, pl := range placements {
		for page < pl.Page {
			newPage()
		}
		drawEntry(pdf, g, pl)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing sheet pdf for workout %d: %w", workout.ID, err)
	}
	return nil
}

// drawEntry draws one placed exercise row. Placement.Y counts from the
// bottom page edge; fpdf coordinates grow downward.
func drawEntry(pdf *fpdf.Fpdf, g Geometry, pl Placement) {
	y := g.PageHeight - pl.Y
	x := leftMargin
	if pl.Entry.Partner {
		x += partnerIndent
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(x, y-1, pl.Entry.Name)

	if meta := metaLine(pl.Entry); meta != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.Text(x, y+2, meta)
	}

	drawBoxes(pdf, leftMargin+boxOffsetX, y-6, pl.Entry.Sets)
}

// metaLine joins the target reps, rest and comment into one small line
// under the exercise name.
func metaLine(e Entry) string {
	var parts []string
	if e.RepsText != "" {
		parts = append(parts, e.RepsText+" reps")
	}
	if e.RestSec != nil {
		parts = append(parts, fmt.Sprintf("%ds rest", *e.RestSec))
	}
	if c := strings.TrimSpace(e.Comment); c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, ", ")
}

// drawBoxes draws one reps/kg checkbox pair per set, labelled in small
// print so the sheet can be filled in by hand.
func drawBoxes(pdf *fpdf.Fpdf, x, y float64, sets int) {
	pdf.SetFont("Helvetica", "", 6)
	for i := 0; i < sets; i++ {
		pdf.Rect(x, y, boxWidth, boxHeight, "D")
		labelCentered(pdf, x, y, "reps")
		x += boxWidth
		pdf.Rect(x, y, boxWidth, boxHeight, "D")
		labelCentered(pdf, x, y, "kg")
		x += boxWidth + boxGap
	}
}

func labelCentered(pdf *fpdf.Fpdf, boxX, boxY float64, label string) {
	tw := pdf.GetStringWidth(label)
	pdf.Text(boxX+(boxWidth-tw)/2, boxY+boxHeight-1.5, label)
}

var unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9_\-]+`)

// Sanitize turns a workout name into a filesystem-safe filename fragment.
func Sanitize(s string) string {
	return strings.Trim(unsafeFilenameRe.ReplaceAllString(s, "_"), "_")
}
