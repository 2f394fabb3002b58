package quality

import (
	"github.com/corentings/chess/v2"

	"github.com/mfranca/tbquality/wdl"
)

// MoveReport is the per-move outcome of annotating a line.
type MoveReport struct {
	Index      int
	Mover      chess.Color
	Before     wdl.WDL // mover's perspective
	After      wdl.WDL // mover's perspective
	Assessment Assessment
	Badge      Badge
	Critical   bool
}

// Summary aggregates the reports of one line.
type Summary struct {
	Moves    int
	Blunders int
	Mistakes int
	Saves    int
	Critical int
}

// AnnotateLine classifies every move of a line given the tablebase value of
// each successive position. values[i] is relative to the side to move in
// position i, exactly as successive lookups return them, so every
// transition crosses a perspective flip and is normalized once. firstMover
// is the side to move in the first position. Fewer than two values means no
// moves to grade.
func AnnotateLine(values []wdl.WDL, firstMover chess.Color) ([]MoveReport, Summary) {
	if len(values) < 2 {
		return nil, Summary{}
	}

	reports := make([]MoveReport, 0, len(values)-1)
	var sum Summary
	mover := firstMover

	for i := 0; i+1 < len(values); i++ {
		before := values[i].Clamp()
		after := wdl.Normalize(values[i+1])

		assessment := Assess(before, after)
		critical := IsCritical(before, after)

		reports = append(reports, MoveReport{
			Index:      i,
			Mover:      mover,
			Before:     before,
			After:      after,
			Assessment: assessment,
			Badge:      Compare(values[i], values[i+1]),
			Critical:   critical,
		})

		sum.Moves++
		switch assessment.Quality {
		case Blunder:
			sum.Blunders++
		case Mistake:
			sum.Mistakes++
		}
		if critical {
			sum.Critical++
			if assessment.Quality == Excellent {
				sum.Saves++
			}
		}

		mover = mover.Other()
	}
	return reports, sum
}
