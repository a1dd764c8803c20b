package style

// Control identifies a gui control kind. ControlDefault is the
// distinguished fallback: its property values act as the baseline
// every other control inherits from.
type Control int32

const (
	ControlDefault Control = iota
	ControlLabel
	ControlButton
	ControlToggle
	ControlSlider
	ControlProgressBar
	ControlCheckBox
	ControlComboBox
	ControlDropdownBox
	ControlTextBox
	ControlValueBox
	ControlSpinner
	ControlListView
	ControlColorPicker
	ControlScrollBar
	ControlReserved
)

// NumControls is the fixed size of the control space.
const NumControls = 16

// Some names cover several raygui widgets (LABEL also styles
// LABELBUTTON, TOGGLE also styles TOGGLEGROUP, and so on).
var controlNames = [NumControls]string{
	"DEFAULT",
	"LABEL",
	"BUTTON",
	"TOGGLE",
	"SLIDER",
	"PROGRESSBAR",
	"CHECKBOX",
	"COMBOBOX",
	"DROPDOWNBOX",
	"TEXTBOX",
	"VALUEBOX",
	"SPINNER",
	"LISTVIEW",
	"COLORPICKER",
	"SCROLLBAR",
	"RESERVED",
}

// Valid reports whether c is inside the control space.
func (c Control) Valid() bool {
	return c >= 0 && c < NumControls
}

func (c Control) String() string {
	if !c.Valid() {
		return "INVALID"
	}
	return controlNames[c]
}
