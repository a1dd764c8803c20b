package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Name-based lookup for tool layers that address cells by the
// canonical names ("BUTTON", "BASE_COLOR_NORMAL", ...) instead of raw
// indices. Unknown names come back with nearest-match suggestions.

// ControlNamed resolves a control name, case-insensitively and
// tolerant of space/dash separators.
func ControlNamed(name string) (Control, error) {
	n := normalizeName(name)
	for i, cand := range controlNames {
		if n == cand {
			return Control(i), nil
		}
	}
	return 0, unknownNameError("control", name, controlNames[:])
}

// PropertyNamed resolves a property name, including the EXTnn names
// of the reserved extended slots.
func PropertyNamed(name string) (Property, error) {
	n := normalizeName(name)
	all := make([]string, 0, NumProps)
	for p := Property(0); p < NumProps; p++ {
		all = append(all, p.String())
	}
	for i, cand := range all {
		if n == cand {
			return Property(i), nil
		}
	}
	return 0, unknownNameError("property", name, all)
}

// SetNamed resolves both names and stores the value. Intended for
// tooling that edits single properties without walking the enums.
func (d *Document) SetNamed(control, property string, v int32) error {
	c, err := ControlNamed(control)
	if err != nil {
		return err
	}
	p, err := PropertyNamed(property)
	if err != nil {
		return err
	}
	d.Set(c, p, v)
	return nil
}

func normalizeName(raw string) string {
	raw = strings.TrimSpace(strings.ToUpper(raw))
	var b strings.Builder
	lastSep := false
	for _, r := range raw {
		switch {
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSep = false
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if !lastSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			lastSep = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

func unknownNameError(kind, name string, candidates []string) error {
	n := normalizeName(name)
	type scored struct {
		val  string
		dist int
	}
	var near []scored
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(n, cand)
		if dist <= len(cand)/2 {
			near = append(near, scored{cand, dist})
		}
	}
	if len(near) == 0 {
		return fmt.Errorf("style: unknown %s name %q", kind, name)
	}
	sort.SliceStable(near, func(i, j int) bool {
		if near[i].dist == near[j].dist {
			return near[i].val < near[j].val
		}
		return near[i].dist < near[j].dist
	})
	return fmt.Errorf("style: unknown %s name %q (did you mean %s?)", kind, name, near[0].val)
}
