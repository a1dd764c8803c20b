package style

// PropertyRecord is one changed cell, as the file formats store it:
// an 8-byte {control, property, value} triple.
type PropertyRecord struct {
	Control  Control
	Property Property
	Value    int32
}

// Changes returns every cell that must be serialized, in the order
// the file formats require. The scan has two passes:
//
//  1. DEFAULT first: any DEFAULT property that differs from its
//     backup is emitted.
//  2. Every other control in ascending order, properties in
//     ascending order: a cell is emitted only when it differs from
//     its own backup AND from DEFAULT's current value. A cell that
//     merely tracks DEFAULT is inherited, not an override, so it is
//     suppressed even if the user set it explicitly.
//
// Binary, text and code output all consume this exact sequence, so
// the ordering is part of the file contract.
func (d *Document) Changes() []PropertyRecord {
	var recs []PropertyRecord

	for p := Property(0); p < NumProps; p++ {
		if d.backup[ControlDefault][p] != d.values[ControlDefault][p] {
			recs = append(recs, PropertyRecord{ControlDefault, p, d.values[ControlDefault][p]})
		}
	}

	for c := Control(1); c < NumControls; c++ {
		for p := Property(0); p < NumProps; p++ {
			if d.backup[c][p] != d.values[c][p] && d.values[c][p] != d.values[ControlDefault][p] {
				recs = append(recs, PropertyRecord{c, p, d.values[c][p]})
			}
		}
	}
	return recs
}

// CountChanges returns the number of records Changes would emit. It
// sizes the binary header, so it is defined as the length of the same
// scan rather than a separate count.
func (d *Document) CountChanges() int {
	return len(d.Changes())
}
