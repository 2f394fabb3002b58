package quality

import "github.com/mfranca/tbquality/wdl"

// Badge is the compact verdict handed to display layers: a symbol plus a
// semantic class name.
type Badge struct {
	Text      string
	ClassName string
}

// Display class names.
const (
	ClassExcellent = "eval-excellent"
	ClassNeutral   = "eval-neutral"
	ClassMistake   = "eval-mistake"
	ClassBlunder   = "eval-blunder"
)

// Display symbols.
const (
	SymbolExcellent  = "✅"
	SymbolDefense    = "🛡️"
	SymbolBlunder    = "🚨"
	SymbolMaintained = "➖"
	SymbolWorsened   = "🔻"
)

// Compare classifies a move straight from raw tablebase output. afterRaw is
// the value reported for the post-move position, which belongs to the
// opponent's perspective; Compare negates it internally, so callers must
// not pre-normalize. Compare and Assess always agree on the category of a
// move (excellent/good/mistake/blunder).
func Compare(before, afterRaw wdl.WDL) Badge {
	before = before.Clamp()
	after := wdl.Normalize(afterRaw)

	switch {
	case before == wdl.Win && after == wdl.Win:
		return Badge{Text: SymbolExcellent, ClassName: ClassExcellent}
	case before == wdl.Win && after == wdl.Draw,
		before == wdl.Win && after == wdl.Loss,
		before == wdl.Draw && after == wdl.Loss:
		return Badge{Text: SymbolBlunder, ClassName: ClassBlunder}
	case before == wdl.Loss && after == wdl.Draw,
		before == wdl.Loss && after == wdl.Win:
		return Badge{Text: SymbolExcellent, ClassName: ClassExcellent}
	case before == wdl.Loss && after == wdl.Loss:
		return Badge{Text: SymbolDefense, ClassName: ClassNeutral}
	}

	switch delta := after - before; {
	case delta > 0:
		return Badge{Text: SymbolExcellent, ClassName: ClassExcellent}
	case delta == 0:
		return Badge{Text: SymbolMaintained, ClassName: ClassNeutral}
	default:
		return Badge{Text: SymbolWorsened, ClassName: ClassMistake}
	}
}
