package style

import "testing"

func TestNewDocumentHasNoChanges(t *testing.T) {
	d := New()
	if got := d.CountChanges(); got != 0 {
		t.Fatalf("fresh document reports %d changes, want 0", got)
	}
}

func TestDefaultChangesAlwaysEmitted(t *testing.T) {
	d := New()
	red := PackColor(0xff, 0, 0, 0xff)
	d.Set(ControlDefault, BaseColorNormal, red)
	d.Set(ControlDefault, TextSize, 20)

	recs := d.Changes()
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(recs), recs)
	}
	if recs[0].Control != ControlDefault || recs[0].Property != BaseColorNormal || recs[0].Value != red {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Control != ControlDefault || recs[1].Property != TextSize || recs[1].Value != 20 {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

// A non-DEFAULT cell that ends up equal to DEFAULT's current value is
// inherited, not an override, even when the user set it explicitly.
func TestInheritanceSuppression(t *testing.T) {
	d := New()
	red := PackColor(0xff, 0, 0, 0xff)
	d.Set(ControlButton, BaseColorNormal, red)
	d.Set(ControlDefault, BaseColorNormal, red)

	recs := d.Changes()
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1: %+v", len(recs), recs)
	}
	if recs[0].Control != ControlDefault || recs[0].Property != BaseColorNormal || recs[0].Value != red {
		t.Fatalf("unexpected record: %+v", recs[0])
	}
}

func TestChangeOrderDefaultFirstThenControlsAscending(t *testing.T) {
	d := New()
	d.Set(ControlScrollBar, BorderWidth, 7)
	d.Set(ControlButton, BorderWidth, 3)
	d.Set(ControlButton, TextAlignment, 2)
	d.Set(ControlDefault, TextSpacing, 4)

	recs := d.Changes()
	want := []PropertyRecord{
		{ControlDefault, TextSpacing, 4},
		{ControlButton, BorderWidth, 3},
		{ControlButton, TextAlignment, 2},
		{ControlScrollBar, BorderWidth, 7},
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d records, want %d: %+v", len(recs), len(want), recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Fatalf("record %d = %+v, want %+v", i, recs[i], want[i])
		}
	}
}

func TestCountChangesMatchesChanges(t *testing.T) {
	d := New()
	d.Set(ControlDefault, BorderWidth, 2)
	d.Set(ControlLabel, TextColorNormal, PackColor(1, 2, 3, 4))
	d.Set(ControlListView, BaseColorPressed, PackColor(9, 9, 9, 9))

	if got, want := d.CountChanges(), len(d.Changes()); got != want {
		t.Fatalf("CountChanges = %d, len(Changes) = %d", got, want)
	}
}

func TestResetToDefaultClearsChanges(t *testing.T) {
	d := New()
	d.Set(ControlButton, BaseColorNormal, PackColor(1, 2, 3, 4))
	d.Set(ControlDefault, TextSize, 32)
	d.ResetToDefault()

	if got := d.CountChanges(); got != 0 {
		t.Fatalf("document reports %d changes after reset, want 0", got)
	}
	if got := d.Get(ControlDefault, TextSize); got != DefaultValue(TextSize) {
		t.Fatalf("TEXT_SIZE = %d after reset, want baseline %d", got, DefaultValue(TextSize))
	}
}

func TestSnapshotBackupAbsorbsEdits(t *testing.T) {
	d := New()
	d.Set(ControlSlider, BorderColorFocused, PackColor(5, 6, 7, 8))
	d.SnapshotBackup()

	if got := d.CountChanges(); got != 0 {
		t.Fatalf("document reports %d changes after snapshot, want 0", got)
	}
	if got, want := d.BackupValue(ControlSlider, BorderColorFocused), PackColor(5, 6, 7, 8); got != want {
		t.Fatalf("backup value = %#x, want %#x", got, want)
	}
}

func TestPackUnpackColor(t *testing.T) {
	v := PackColor(0x12, 0x34, 0x56, 0x78)
	if v != 0x12345678 {
		t.Fatalf("PackColor = %#x, want 0x12345678", v)
	}
	r, g, b, a := UnpackColor(PackColor(0xff, 0x01, 0x80, 0x00))
	if r != 0xff || g != 0x01 || b != 0x80 || a != 0x00 {
		t.Fatalf("UnpackColor = %d,%d,%d,%d", r, g, b, a)
	}
}
