package style

import "fmt"

// Property indexes a control's property row. The first NumBaseProps
// slots share one layout across every control; the NumExtendedProps
// slots after them only carry meaning on ControlDefault.
type Property int32

// Base properties, shared by all controls.
const (
	BorderColorNormal Property = iota
	BaseColorNormal
	TextColorNormal
	BorderColorFocused
	BaseColorFocused
	TextColorFocused
	BorderColorPressed
	BaseColorPressed
	TextColorPressed
	BorderColorDisabled
	BaseColorDisabled
	TextColorDisabled
	BorderWidth
	TextPadding
	TextAlignment
	PropReserved
)

// Extended properties, defined for ControlDefault only.
const (
	TextSize Property = NumBaseProps + iota
	TextSpacing
	LineColor
	BackgroundColor
	Ext04
	Ext05
	Ext06
	Ext07
)

const (
	NumBaseProps     = 16
	NumExtendedProps = 8
	NumProps         = NumBaseProps + NumExtendedProps
)

var basePropNames = [NumBaseProps]string{
	"BORDER_COLOR_NORMAL",
	"BASE_COLOR_NORMAL",
	"TEXT_COLOR_NORMAL",
	"BORDER_COLOR_FOCUSED",
	"BASE_COLOR_FOCUSED",
	"TEXT_COLOR_FOCUSED",
	"BORDER_COLOR_PRESSED",
	"BASE_COLOR_PRESSED",
	"TEXT_COLOR_PRESSED",
	"BORDER_COLOR_DISABLED",
	"BASE_COLOR_DISABLED",
	"TEXT_COLOR_DISABLED",
	"BORDER_WIDTH",
	"TEXT_PADDING",
	"TEXT_ALIGNMENT",
	"RESERVED",
}

// The first four extended slots have fixed meanings; the rest are
// reserved and fall back to a generic EXTnn name.
var extendedPropNames = [4]string{
	"TEXT_SIZE",
	"TEXT_SPACING",
	"LINE_COLOR",
	"BACKGROUND_COLOR",
}

// Valid reports whether p is inside the property space.
func (p Property) Valid() bool {
	return p >= 0 && p < NumProps
}

// Extended reports whether p is an extended property slot.
func (p Property) Extended() bool {
	return p >= NumBaseProps && p < NumProps
}

// IsColor reports whether p packs an RGBA color. The twelve state
// color slots are colors, and so are LINE_COLOR and BACKGROUND_COLOR.
func (p Property) IsColor() bool {
	return (p >= BorderColorNormal && p <= TextColorDisabled) ||
		p == LineColor || p == BackgroundColor
}

func (p Property) String() string {
	switch {
	case p >= 0 && p < NumBaseProps:
		return basePropNames[p]
	case p >= NumBaseProps && p < NumBaseProps+4:
		return extendedPropNames[p-NumBaseProps]
	case p.Extended():
		return fmt.Sprintf("EXT%02d", int(p-NumBaseProps))
	default:
		return "INVALID"
	}
}
