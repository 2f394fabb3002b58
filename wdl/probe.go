package wdl

// Probe mirrors a single tablebase lookup for one queried FEN. WDL is a
// pointer so a lookup that only carried a category string is representable;
// Value resolves whichever field is present.
type Probe struct {
	WDL      *int
	DTZ      *int
	DTM      *int
	Category string
	Precise  bool
}

// Value returns the probe's WDL value, preferring the numeric field and
// falling back to the category string. A probe with neither (or with an
// unknown category) counts as a draw.
func (p Probe) Value() WDL {
	if p.WDL != nil {
		return WDL(*p.WDL).Clamp()
	}
	v, _ := FromCategory(p.Category)
	return v
}
