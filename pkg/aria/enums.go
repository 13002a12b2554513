package aria

// Tristate is a three-valued logical state, distinct from a plain boolean:
// an attribute can be true, false, or not applicable to the element.
type Tristate int

const (
	// TristateUndefined indicates the state does not apply.
	TristateUndefined Tristate = -1
	// TristateFalse indicates the state is off.
	TristateFalse Tristate = 0
	// TristateTrue indicates the state is on.
	TristateTrue Tristate = 1
)

func (t Tristate) String() string {
	switch t {
	case TristateFalse:
		return "false"
	case TristateTrue:
		return "true"
	default:
		return "undefined"
	}
}

// Checked is the token set of the checked state (aria-checked).
type Checked int

const (
	// CheckedUndefined indicates the element does not support being checked.
	CheckedUndefined Checked = -1
	// CheckedFalse indicates the element is not checked.
	CheckedFalse Checked = 0
	// CheckedTrue indicates the element is checked.
	CheckedTrue Checked = 1
	// CheckedMixed indicates a mixed-mode value for a tri-state checkbox.
	CheckedMixed Checked = 2
)

func (c Checked) String() string {
	switch c {
	case CheckedFalse:
		return "false"
	case CheckedTrue:
		return "true"
	case CheckedMixed:
		return "mixed"
	default:
		return "undefined"
	}
}

// Invalid is the token set of the invalid state (aria-invalid).
type Invalid int

const (
	// InvalidFalse indicates no detected errors.
	InvalidFalse Invalid = iota
	// InvalidTrue indicates the entered value does not conform.
	InvalidTrue
	// InvalidGrammar indicates a grammatical error was detected.
	InvalidGrammar
	// InvalidSpelling indicates a spelling error was detected.
	InvalidSpelling
)

func (i Invalid) String() string {
	switch i {
	case InvalidTrue:
		return "true"
	case InvalidGrammar:
		return "grammar"
	case InvalidSpelling:
		return "spelling"
	default:
		return "false"
	}
}

// Pressed is the token set of the pressed state (aria-pressed).
type Pressed int

const (
	// PressedUndefined indicates the element does not support being pressed.
	PressedUndefined Pressed = -1
	// PressedFalse indicates the element is not pressed.
	PressedFalse Pressed = 0
	// PressedTrue indicates the element is pressed.
	PressedTrue Pressed = 1
	// PressedMixed indicates a mixed-mode value for a tri-state toggle button.
	PressedMixed Pressed = 2
)

func (p Pressed) String() string {
	switch p {
	case PressedFalse:
		return "false"
	case PressedTrue:
		return "true"
	case PressedMixed:
		return "mixed"
	default:
		return "undefined"
	}
}

// Autocomplete is the token set of the autocomplete property
// (aria-autocomplete).
type Autocomplete int

const (
	// AutocompleteNone indicates no autocompletion is offered.
	AutocompleteNone Autocomplete = iota
	// AutocompleteInline indicates completion appears inline after the caret.
	AutocompleteInline
	// AutocompleteList indicates completions appear in a separate collection.
	AutocompleteList
	// AutocompleteBoth indicates both inline and list completion.
	AutocompleteBoth
)

func (a Autocomplete) String() string {
	switch a {
	case AutocompleteInline:
		return "inline"
	case AutocompleteList:
		return "list"
	case AutocompleteBoth:
		return "both"
	default:
		return "none"
	}
}

// Orientation is the token set of the orientation property
// (aria-orientation).
type Orientation int

const (
	// OrientationUndefined indicates the orientation is unknown or ambiguous.
	OrientationUndefined Orientation = -1
	// OrientationHorizontal indicates a horizontal orientation.
	OrientationHorizontal Orientation = 0
	// OrientationVertical indicates a vertical orientation.
	OrientationVertical Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "undefined"
	}
}

// Sort is the token set of the sort property (aria-sort).
type Sort int

const (
	// SortNone indicates no defined sort order.
	SortNone Sort = iota
	// SortAscending indicates items are sorted in ascending order.
	SortAscending
	// SortDescending indicates items are sorted in descending order.
	SortDescending
	// SortOther indicates a sort order other than ascending or descending.
	SortOther
)

func (s Sort) String() string {
	switch s {
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	case SortOther:
		return "other"
	default:
		return "none"
	}
}
