package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfranca/tbquality/quality"
	"github.com/mfranca/tbquality/wdl"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name      string
		before    wdl.WDL
		afterRaw  wdl.WDL
		text      string
		className string
	}{
		{
			// The canonical Kd7 case: the opponent is now losing, so the
			// raw value is -2 and the mover kept the win.
			name:      "win maintained despite raw sign flip",
			before:    wdl.Win,
			afterRaw:  wdl.Loss,
			text:      "✅",
			className: quality.ClassExcellent,
		},
		{
			// Raw +2 means the opponent is winning: still lost, held on.
			name:      "best defense in lost position",
			before:    wdl.Loss,
			afterRaw:  wdl.Win,
			text:      "🛡️",
			className: quality.ClassNeutral,
		},
		{
			name:      "win thrown away to draw",
			before:    wdl.Win,
			afterRaw:  wdl.Draw,
			text:      "🚨",
			className: quality.ClassBlunder,
		},
		{
			name:      "win blundered into loss",
			before:    wdl.Win,
			afterRaw:  wdl.Win,
			text:      "🚨",
			className: quality.ClassBlunder,
		},
		{
			name:      "draw blundered",
			before:    wdl.Draw,
			afterRaw:  wdl.Win,
			text:      "🚨",
			className: quality.ClassBlunder,
		},
		{
			name:      "loss saved to draw",
			before:    wdl.Loss,
			afterRaw:  wdl.Draw,
			text:      "✅",
			className: quality.ClassExcellent,
		},
		{
			name:      "loss saved to win",
			before:    wdl.Loss,
			afterRaw:  wdl.Loss,
			text:      "✅",
			className: quality.ClassExcellent,
		},
		{
			name:      "draw maintained",
			before:    wdl.Draw,
			afterRaw:  wdl.Draw,
			text:      "➖",
			className: quality.ClassNeutral,
		},
		{
			name:      "win degraded to cursed win",
			before:    wdl.Win,
			afterRaw:  wdl.BlessedLoss,
			text:      "🔻",
			className: quality.ClassMistake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quality.Compare(tt.before, tt.afterRaw)
			assert.Equal(t, tt.text, got.Text)
			assert.Contains(t, got.ClassName, tt.className)
		})
	}
}

// categoryOf maps both verdict shapes onto the shared
// excellent/good/mistake/blunder scale.
func categoryOf(className string) quality.Quality {
	switch className {
	case quality.ClassExcellent:
		return quality.Excellent
	case quality.ClassNeutral:
		return quality.Good
	case quality.ClassMistake:
		return quality.Mistake
	default:
		return quality.Blunder
	}
}

// Compare (raw input, internal negation) and Assess (pre-normalized input)
// must agree on every logical input across the whole WDL domain.
func TestCompare_AgreesWithAssess(t *testing.T) {
	for before := wdl.Loss; before <= wdl.Win; before++ {
		for afterRaw := wdl.Loss; afterRaw <= wdl.Win; afterRaw++ {
			badge := quality.Compare(before, afterRaw)
			rich := quality.Assess(before, wdl.Normalize(afterRaw))
			assert.Equal(t, rich.Quality, categoryOf(badge.ClassName),
				"before=%d afterRaw=%d", before, afterRaw)
		}
	}
}
