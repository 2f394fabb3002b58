// Package evalfmt renders engine and tablebase evaluations for display.
package evalfmt

import (
	"fmt"
	"math"
	"strconv"

	"github.com/corentings/chess/v2"

	"github.com/mfranca/tbquality/wdl"
)

// Kind discriminates the evaluation union.
type Kind int

const (
	KindEngine Kind = iota
	KindTablebase
)

// Evaluation is a single position's evaluation as produced by an engine
// search or a tablebase lookup. Only the fields of the active Kind are
// meaningful. Values are never mutated after construction.
type Evaluation struct {
	Kind Kind

	// Engine fields.
	ScoreCP *int
	Mate    *int

	// Tablebase fields.
	WDL wdl.WDL
	DTM *int
	DTZ *int

	IsTablebasePosition bool
	Perspective         chess.Color
}

// FromProbe adapts a tablebase lookup into a formatter input.
func FromProbe(p wdl.Probe, perspective chess.Color) *Evaluation {
	return &Evaluation{
		Kind:                KindTablebase,
		WDL:                 p.Value(),
		DTM:                 p.DTM,
		DTZ:                 p.DTZ,
		IsTablebasePosition: true,
		Perspective:         perspective,
	}
}

// Metadata flags accompany every formatted evaluation.
type Metadata struct {
	IsTablebase bool
	IsMate      bool
	IsDrawn     bool
}

// Formatted is a display-ready evaluation.
type Formatted struct {
	MainText   string
	DetailText *string
	ClassName  string
	Metadata   Metadata
}

// Display class names.
const (
	ClassWinning      = "winning"
	ClassLosing       = "losing"
	ClassNeutral      = "neutral"
	ClassAdvantage    = "advantage"
	ClassDisadvantage = "disadvantage"
)

// Config tunes the class-name boundaries for engine scores. It never
// affects text rendering.
type Config struct {
	// NeutralThreshold is the absolute centipawn score at or below which
	// the position displays as neutral regardless of sign.
	NeutralThreshold int
	// ExtremeScoreThreshold is the absolute centipawn score beyond which
	// the position displays as decisively winning or losing. The score
	// itself is never clamped, only its class.
	ExtremeScoreThreshold int
}

// DefaultConfig returns the thresholds used when no overrides are given.
func DefaultConfig() Config {
	return Config{NeutralThreshold: 20, ExtremeScoreThreshold: 1000}
}

// Formatter renders evaluations for display. Construct with New; the
// formatter is stateless and safe for concurrent use.
type Formatter struct {
	cfg Config
}

// New returns a Formatter with the given thresholds. Non-positive
// thresholds fall back to their defaults.
func New(cfg Config) *Formatter {
	def := DefaultConfig()
	if cfg.NeutralThreshold <= 0 {
		cfg.NeutralThreshold = def.NeutralThreshold
	}
	if cfg.ExtremeScoreThreshold <= 0 {
		cfg.ExtremeScoreThreshold = def.ExtremeScoreThreshold
	}
	return &Formatter{cfg: cfg}
}

// Format renders a single evaluation. A nil evaluation, or one with no
// populated fields, renders as the "..." placeholder; this is a designed
// default, not an error path.
func (f *Formatter) Format(ev *Evaluation) Formatted {
	if ev == nil {
		return placeholder()
	}
	if ev.Kind == KindTablebase && ev.IsTablebasePosition {
		return formatTablebase(ev)
	}
	if ev.Mate != nil {
		return formatMate(*ev.Mate)
	}
	if ev.ScoreCP != nil {
		return f.formatScore(*ev.ScoreCP)
	}
	return placeholder()
}

func placeholder() Formatted {
	return Formatted{MainText: "...", ClassName: ClassNeutral}
}

func formatTablebase(ev *Evaluation) Formatted {
	out := Formatted{Metadata: Metadata{IsTablebase: true}}

	switch ev.WDL.Clamp() {
	case wdl.Win:
		out.MainText, out.ClassName = "TB Win", ClassWinning
		if ev.DTM != nil {
			out.DetailText = strPtr(fmt.Sprintf("DTM: %d", *ev.DTM))
		}
	case wdl.CursedWin:
		// The asterisk marks a win that depends on the 50-move rule.
		out.MainText, out.ClassName = "TB Win*", ClassWinning
		if ev.DTM != nil {
			out.DetailText = strPtr(fmt.Sprintf("DTM: %d", *ev.DTM))
		}
	case wdl.Draw:
		out.MainText, out.ClassName = "TB Draw", ClassNeutral
		out.Metadata.IsDrawn = true
		if ev.DTZ != nil && *ev.DTZ != 0 {
			out.DetailText = strPtr(fmt.Sprintf("DTZ: %d", *ev.DTZ))
		}
	case wdl.BlessedLoss:
		out.MainText, out.ClassName = "TB Loss*", ClassLosing
		if ev.DTM != nil {
			out.DetailText = strPtr(fmt.Sprintf("DTM: %d", absInt(*ev.DTM)))
		}
	default:
		out.MainText, out.ClassName = "TB Loss", ClassLosing
		// Losing DTM values can arrive signed; always show the magnitude.
		if ev.DTM != nil {
			out.DetailText = strPtr(fmt.Sprintf("DTM: %d", absInt(*ev.DTM)))
		}
	}
	return out
}

func formatMate(mate int) Formatted {
	out := Formatted{Metadata: Metadata{IsMate: true}}
	if mate == 0 {
		// Checkmate on the board.
		out.MainText = "M#"
	} else {
		// The sign is conveyed through the class name only.
		out.MainText = fmt.Sprintf("M%d", absInt(mate))
	}
	if mate >= 0 {
		out.ClassName = ClassWinning
	} else {
		out.ClassName = ClassLosing
	}
	return out
}

func (f *Formatter) formatScore(score int) Formatted {
	// One fractional pawn digit, rounding half away from zero so that
	// +125cp renders as "1.3".
	pawns := math.Round(float64(score)/10) / 10
	if pawns == 0 {
		pawns = 0 // avoid "-0.0"
	}
	out := Formatted{MainText: strconv.FormatFloat(pawns, 'f', 1, 64)}

	switch abs := absInt(score); {
	case abs <= f.cfg.NeutralThreshold:
		out.ClassName = ClassNeutral
	case abs > f.cfg.ExtremeScoreThreshold:
		if score > 0 {
			out.ClassName = ClassWinning
		} else {
			out.ClassName = ClassLosing
		}
	case score > 0:
		out.ClassName = ClassAdvantage
	default:
		out.ClassName = ClassDisadvantage
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func strPtr(s string) *string { return &s }
