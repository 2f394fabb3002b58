// Package wdl defines the tablebase Win/Draw/Loss value domain and the
// perspective normalization that makes before/after values comparable.
//
// A WDL value is always relative to whichever side is to move in the
// position it was computed for. It is not globally side-stable: the value
// reported after a move belongs to the opponent of whoever just moved.
package wdl

import (
	"errors"
	"fmt"
)

// WDL is a tablebase Win/Draw/Loss value, relative to the side to move.
type WDL int

const (
	Loss        WDL = -2
	BlessedLoss WDL = -1
	Draw        WDL = 0
	CursedWin   WDL = 1
	Win         WDL = 2
)

func (w WDL) String() string {
	switch w.Clamp() {
	case Win:
		return "win"
	case CursedWin:
		return "cursed win"
	case Draw:
		return "draw"
	case BlessedLoss:
		return "blessed loss"
	default:
		return "loss"
	}
}

// Clamp snaps out-of-domain values to the nearest legal WDL value. Inputs
// outside {-2..2} are a caller contract violation; clamping keeps every
// downstream function total instead of panicking.
func (w WDL) Clamp() WDL {
	if w > Win {
		return Win
	}
	if w < Loss {
		return Loss
	}
	return w
}

// IsWin reports whether the value is a win for the side it is relative to,
// including cursed wins.
func (w WDL) IsWin() bool { return w > Draw }

// IsDraw reports whether the value is a draw.
func (w WDL) IsDraw() bool { return w == Draw }

// IsLoss reports whether the value is a loss, including blessed losses.
func (w WDL) IsLoss() bool { return w < Draw }

// Normalize converts the WDL value reported after a move into the mover's
// perspective. Tablebase results are relative to the side to move, so the
// post-move value belongs to the opponent and must be negated exactly once
// before it can be compared against the pre-move value. Draws are
// perspective-invariant. Applying Normalize twice is the identity.
func Normalize(after WDL) WDL {
	return -after.Clamp()
}

// Tablebase category strings, as returned by lookup services.
const (
	CategoryWin         = "win"
	CategoryCursedWin   = "cursed-win"
	CategoryDraw        = "draw"
	CategoryBlessedLoss = "blessed-loss"
	CategoryLoss        = "loss"
)

// ErrUnknownCategory is returned when a category string is not one of the
// five tablebase outcomes.
var ErrUnknownCategory = errors.New("unknown tablebase category")

// FromCategory converts a tablebase category string to its WDL value.
func FromCategory(category string) (WDL, error) {
	switch category {
	case CategoryWin:
		return Win, nil
	case CategoryCursedWin:
		return CursedWin, nil
	case CategoryDraw:
		return Draw, nil
	case CategoryBlessedLoss:
		return BlessedLoss, nil
	case CategoryLoss:
		return Loss, nil
	default:
		return Draw, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// Category returns the category string for the value.
func (w WDL) Category() string {
	switch w.Clamp() {
	case Win:
		return CategoryWin
	case CursedWin:
		return CategoryCursedWin
	case Draw:
		return CategoryDraw
	case BlessedLoss:
		return CategoryBlessedLoss
	default:
		return CategoryLoss
	}
}
