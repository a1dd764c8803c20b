package style

// Document is one independent style: the live property table plus the
// backup snapshot used for change detection. The zero value is not
// usable; construct with New.
//
// The backup is never touched by edits. It is re-taken by
// SnapshotBackup when a style finishes loading and by ResetToDefault,
// so for any cell that differs between the two the edit is considered
// a pending change.
type Document struct {
	values [NumControls][NumProps]int32
	backup [NumControls][NumProps]int32
}

// New returns a document initialised to the built-in baseline, with
// the backup already snapshotted (no pending changes).
func New() *Document {
	d := &Document{}
	d.ResetToDefault()
	return d
}

// Get returns the current value of one cell. Out-of-range indices are
// a programming error and panic.
func (d *Document) Get(c Control, p Property) int32 {
	d.check(c, p)
	return d.values[c][p]
}

// Set stores a value into one cell. Out-of-range indices panic.
func (d *Document) Set(c Control, p Property, v int32) {
	d.check(c, p)
	d.values[c][p] = v
}

// BackupValue returns the backup snapshot value of one cell.
func (d *Document) BackupValue(c Control, p Property) int32 {
	d.check(c, p)
	return d.backup[c][p]
}

// ResetToDefault reloads every cell from the built-in baseline and
// re-snapshots the backup, leaving the document with no pending
// changes.
func (d *Document) ResetToDefault() {
	for c := 0; c < NumControls; c++ {
		for p := 0; p < NumProps; p++ {
			d.values[c][p] = int32(defaultBaseline[p])
		}
	}
	d.SnapshotBackup()
}

// SnapshotBackup re-baselines change detection at the current table
// contents. Call after loading a brand-new style.
func (d *Document) SnapshotBackup() {
	d.backup = d.values
}

func (d *Document) check(c Control, p Property) {
	if !c.Valid() {
		panic("style: control out of range")
	}
	if !p.Valid() {
		panic("style: property out of range")
	}
}
