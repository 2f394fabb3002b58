// Package quality classifies a move from the tablebase values of the
// positions before and after it.
//
// Assess and IsCritical expect both values in the mover's perspective (see
// wdl.Normalize). Compare takes the raw lookup output and performs the
// negation itself, so the flip runs exactly once on either path.
package quality

import "github.com/mfranca/tbquality/wdl"

// Quality is the coarse grade of a move.
type Quality string

const (
	Excellent Quality = "excellent"
	Good      Quality = "good"
	Mistake   Quality = "mistake"
	Blunder   Quality = "blunder"
)

// Pair carries the same-perspective WDL values a verdict was derived from.
type Pair struct {
	Before wdl.WDL
	After  wdl.WDL
}

// Assessment is the rich classification result for a single move.
type Assessment struct {
	Quality             Quality
	Reason              string
	IsTablebaseAnalysis bool
	Tablebase           Pair
}

// Reason strings surfaced to the user.
const (
	ReasonWinMaintained     = "Win maintained!"
	ReasonThrewAwayWin      = "Threw away the win!"
	ReasonBlunderedIntoLoss = "Blundered into a loss!"
	ReasonBlunderedDraw     = "Blundered the draw!"
	ReasonDrawingResource   = "Found the drawing resource!"
	ReasonIncredibleSave    = "Incredible save!"
	ReasonBestDefense       = "Best defense in a lost position"
	ReasonImproved          = "Position improved"
	ReasonMaintained        = "Evaluation maintained"
	ReasonWorsened          = "Position worsened"
)

// Assess grades a move from its before/after WDL pair, both in the mover's
// perspective. The named outcome pairs are checked first; anything else,
// notably pairs involving cursed wins or blessed losses, falls back to the
// sign of the WDL delta. Assess is total: out-of-domain values are clamped.
func Assess(before, after wdl.WDL) Assessment {
	before, after = before.Clamp(), after.Clamp()
	a := Assessment{
		IsTablebaseAnalysis: true,
		Tablebase:           Pair{Before: before, After: after},
	}

	switch {
	case before == wdl.Win && after == wdl.Win:
		a.Quality, a.Reason = Excellent, ReasonWinMaintained
	case before == wdl.Win && after == wdl.Draw:
		// A full point lost, not a generic slip.
		a.Quality, a.Reason = Blunder, ReasonThrewAwayWin
	case before == wdl.Win && after == wdl.Loss:
		a.Quality, a.Reason = Blunder, ReasonBlunderedIntoLoss
	case before == wdl.Draw && after == wdl.Loss:
		a.Quality, a.Reason = Blunder, ReasonBlunderedDraw
	case before == wdl.Loss && after == wdl.Draw:
		a.Quality, a.Reason = Excellent, ReasonDrawingResource
	case before == wdl.Loss && after == wdl.Win:
		a.Quality, a.Reason = Excellent, ReasonIncredibleSave
	case before == wdl.Loss && after == wdl.Loss:
		// Holding a lost position is the best achievable outcome,
		// not a neutral non-event.
		a.Quality, a.Reason = Good, ReasonBestDefense
	default:
		switch delta := after - before; {
		case delta > 0:
			a.Quality, a.Reason = Excellent, ReasonImproved
		case delta == 0:
			a.Quality, a.Reason = Good, ReasonMaintained
		default:
			a.Quality, a.Reason = Mistake, ReasonWorsened
		}
	}
	return a
}

// Description returns the human-readable reason for the before/after pair,
// both in the mover's perspective.
func Description(before, after wdl.WDL) string {
	return Assess(before, after).Reason
}

// IsCritical reports whether the move changed the win/draw/loss status in
// either direction: a thrown-away win or draw, or a defensive save. Moves
// that keep the status (a maintained win, or best defense in a lost
// position) are not critical. Pairs involving cursed wins or blessed losses
// never count as critical.
func IsCritical(before, after wdl.WDL) bool {
	before, after = before.Clamp(), after.Clamp()
	switch {
	case before == wdl.Win && (after == wdl.Draw || after == wdl.Loss):
		return true
	case before == wdl.Draw && after == wdl.Loss:
		return true
	case before == wdl.Loss && (after == wdl.Draw || after == wdl.Win):
		return true
	}
	return false
}
